package repositories

import (
	"gamecritic/internal/models"
)

// CommentRepository defines the interface for comment data access.
// Listing methods return raw rows; display enrichment happens in the service.
type CommentRepository interface {
	// ListByVideogame returns comments for one game in chronological order.
	ListByVideogame(videogameID string) ([]models.Comment, error)
	// ListByUser returns one user's comments newest-first.
	ListByUser(userID string) ([]models.Comment, error)
	// FindByUserAndVideogame returns at most one comment, nil when absent.
	FindByUserAndVideogame(userID, videogameID string) (*models.Comment, error)
	GetByID(id string) (*models.Comment, error)
	Create(comment *models.Comment) error
	// UpdateRatingAndContent mutates only the editable fields of a comment.
	UpdateRatingAndContent(id string, rating float64, content string) error
	Delete(id string) error
}
