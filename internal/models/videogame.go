package models

import "gorm.io/gorm"

// Videogame is a catalog entry. The catalog is read-only from the app's
// perspective; entries are seeded out of band.
type Videogame struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title         string   `json:"title" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	Subtitle      string   `json:"subtitle" gorm:"type:varchar(200)"`
	Description   string   `json:"description"`
	Category      []string `json:"category" gorm:"serializer:json"`
	ImageCarousel string   `json:"image_carousel"`
	ImageProfile  string   `json:"image_profile"`
	gorm.Model    `json:"-"`
}
