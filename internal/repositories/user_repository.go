package repositories

import "gamecritic/internal/models"

// UserRepository defines the interface for user data access.
// Single-document getters return (nil, nil) for missing users; only store
// failures are errors.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// UpdateProfile mutates the editable profile fields. A nil profileIcon
	// leaves the stored icon untouched.
	UpdateProfile(id, name, username, description string, profileIcon *string) error
	// Search matches name or username by case-insensitive substring.
	Search(query string, limit int) ([]models.User, error)
	// Follow and Unfollow update both sides of the follow edge atomically.
	Follow(currentID, targetID string) error
	Unfollow(currentID, targetID string) error
}
