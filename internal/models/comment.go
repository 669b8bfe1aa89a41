package models

// Comment is a user's star-rated review of one videogame. At most one comment
// exists per (UserID, VideogameID) pair; the edit path updates in place instead
// of inserting a second row.
//
// CreatedAt is stored as an RFC3339 string so descending/ascending sorts are
// plain lexicographic comparisons, matching the source document store.
type Comment struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VideogameID string  `json:"videogame_id" gorm:"index;type:varchar(36)" validate:"required"`
	UserID      string  `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
	Content     string  `json:"content" validate:"required,min=10"`
	CreatedAt   string  `json:"created_at" gorm:"type:varchar(64)"`

	// Display fields resolved at read time from the user and videogame
	// collections. Never persisted.
	Username           string `json:"username" gorm:"-"`
	UserProfileIcon    string `json:"user_profile_icon" gorm:"-"`
	VideogameTitle     string `json:"videogame_title" gorm:"-"`
	VideogameImage     string `json:"videogame_image" gorm:"-"`
	CreatedAtFormatted string `json:"created_at_formatted" gorm:"-"`
}

// UserComments groups one author's comments inside the following feed.
// Built per render, never persisted.
type UserComments struct {
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	UserProfileIcon string    `json:"user_profile_icon"`
	Comments        []Comment `json:"comments"`
}
