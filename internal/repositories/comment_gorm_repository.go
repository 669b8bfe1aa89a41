package repositories

import (
	"errors"
	"fmt"

	"gamecritic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// ListByVideogame retrieves all comments for a videogame, oldest first.
// Rows sharing a created_at keep store order; no secondary sort key.
func (r *GORMCommentRepository) ListByVideogame(videogameID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("videogame_id = ?", videogameID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments for videogame %s: %w", videogameID, err)
	}
	return comments, nil
}

// ListByUser retrieves all comments written by a user, newest first.
func (r *GORMCommentRepository) ListByUser(userID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments for user %s: %w", userID, err)
	}
	return comments, nil
}

// FindByUserAndVideogame returns the user's comment on a game, capped at one
// result. A missing comment is not an error: it returns (nil, nil) so callers
// can branch between the add and edit paths.
func (r *GORMCommentRepository) FindByUserAndVideogame(userID, videogameID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("user_id = ? AND videogame_id = ?", userID, videogameID).
		Limit(1).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment for user %s on videogame %s: %w", userID, videogameID, err)
	}
	return &comment, nil
}

// GetByID retrieves a single comment by its ID.
func (r *GORMCommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment by ID %s: %w", id, err)
	}
	return &comment, nil
}

// Create inserts a new comment.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// UpdateRatingAndContent updates only the editable fields of an existing
// comment; author, game and created_at never change on edit.
func (r *GORMCommentRepository) UpdateRatingAndContent(id string, rating float64, content string) error {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rating":  rating,
		"content": content,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update comment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %s not found for update", id)
	}
	return nil
}

// Delete removes a comment by its ID.
func (r *GORMCommentRepository) Delete(id string) error {
	res := r.db.Delete(&models.Comment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %s not found for deletion", id)
	}
	return nil
}
