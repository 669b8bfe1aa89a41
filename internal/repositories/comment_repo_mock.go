package repositories

import (
	"fmt"
	"sort"
	"sync"

	"gamecritic/internal/models"

	"github.com/google/uuid"
)

// MockCommentRepository is an in-memory implementation of CommentRepository.
type MockCommentRepository struct {
	comments map[string]models.Comment
	mu       sync.RWMutex
}

// NewMockCommentRepository creates a new instance of MockCommentRepository.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[string]models.Comment),
	}
}

// ListByVideogame returns a game's comments oldest first.
func (r *MockCommentRepository) ListByVideogame(videogameID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.VideogameID == videogameID {
			list = append(list, c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt < list[j].CreatedAt })
	return list, nil
}

// ListByUser returns a user's comments newest first.
func (r *MockCommentRepository) ListByUser(userID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.UserID == userID {
			list = append(list, c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt > list[j].CreatedAt })
	return list, nil
}

// FindByUserAndVideogame returns the user's comment on a game, nil when absent.
func (r *MockCommentRepository) FindByUserAndVideogame(userID, videogameID string) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.comments {
		if c.UserID == userID && c.VideogameID == videogameID {
			comment := c
			return &comment, nil
		}
	}
	return nil, nil
}

// GetByID returns a comment by its ID, nil when absent.
func (r *MockCommentRepository) GetByID(id string) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

// Create adds a new comment.
func (r *MockCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	r.comments[comment.ID] = *comment
	return nil
}

// UpdateRatingAndContent modifies the editable fields of an existing comment.
func (r *MockCommentRepository) UpdateRatingAndContent(id string, rating float64, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return fmt.Errorf("comment with ID %s not found for update", id)
	}
	comment.Rating = rating
	comment.Content = content
	r.comments[id] = comment
	return nil
}

// Delete removes a comment by its ID.
func (r *MockCommentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.comments[id]
	if !ok {
		return fmt.Errorf("comment with ID %s not found for deletion", id)
	}
	delete(r.comments, id)
	return nil
}
