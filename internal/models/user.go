package models

import "gorm.io/gorm"

// User represents a member of the catalog community.
// Following and Followers are denormalized mirrors of the follow edge:
// when A follows B, B's id is added to A.Following and A's id to B.Followers,
// always inside one transaction.
type User struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Username    string   `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email       string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string   `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	ProfileIcon string   `json:"profile_icon"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Following   []string `json:"following" gorm:"serializer:json"`
	Followers   []string `json:"followers" gorm:"serializer:json"`
	gorm.Model  `json:"-"` // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
