package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"gamecritic/internal/models"
	"gamecritic/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// minContentLength is the shortest comment the app accepts.
const minContentLength = 10

// Validation failures are produced before any store call is made.
var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5 stars")
	ErrContentTooShort  = errors.New("comment must be at least 10 characters")
)

// EventPublisher publishes social activity events. Satisfied by
// rabbitmq.Client; a nil publisher disables events.
type EventPublisher interface {
	PublishActivity(event string, payload map[string]interface{}) error
}

// CommentService handles review comments and their display enrichment:
// raw rows are joined with author and game documents through a per-call
// memoizing cache so a batch sharing authors costs one fetch per author.
type CommentService struct {
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
	gameRepo    repositories.VideogameRepository
	events      EventPublisher
}

// NewCommentService creates a new CommentService. events may be nil.
func NewCommentService(
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	gameRepo repositories.VideogameRepository,
	events EventPublisher,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		gameRepo:    gameRepo,
		events:      events,
	}
}

// ListForVideogame returns a game's comments in chronological order, fully
// enriched for display.
func (s *CommentService) ListForVideogame(videogameID string) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByVideogame(videogameID)
	if err != nil {
		return nil, err
	}
	if err := s.enrichAll(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListForUser returns one user's comments newest-first, fully enriched.
func (s *CommentService) ListForUser(userID string) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.enrichAll(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// FindUserCommentForVideogame returns the user's review of a game, enriched,
// or nil when the user has not reviewed it. Callers use this to decide
// between the add and edit paths.
func (s *CommentService) FindUserCommentForVideogame(userID, videogameID string) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByUserAndVideogame(userID, videogameID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, nil
	}
	cache := newEnrichmentCache(s.userRepo, s.gameRepo)
	if err := cache.enrichComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Add stores a new review. When the user already reviewed the game, the
// existing comment is updated in place so at most one comment ever exists per
// (user, game) pair. Validation runs before any store call.
func (s *CommentService) Add(userID, videogameID string, rating float64, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if err := validateComment(rating, content); err != nil {
		return nil, err
	}

	existing, err := s.commentRepo.FindByUserAndVideogame(userID, videogameID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.commentRepo.UpdateRatingAndContent(existing.ID, rating, content); err != nil {
			return nil, err
		}
		existing.Rating = rating
		existing.Content = content
		s.publish("comment.updated", map[string]interface{}{
			"commentID":   existing.ID,
			"userID":      userID,
			"videogameID": videogameID,
			"rating":      rating,
		})
		return existing, nil
	}

	comment := &models.Comment{
		VideogameID: videogameID,
		UserID:      userID,
		Rating:      rating,
		Content:     content,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	s.publish("comment.created", map[string]interface{}{
		"commentID":   comment.ID,
		"userID":      userID,
		"videogameID": videogameID,
		"rating":      rating,
	})
	return comment, nil
}

// Update edits the rating and content of an existing review. Author, game and
// creation time never change.
func (s *CommentService) Update(commentID string, rating float64, content string) error {
	content = strings.TrimSpace(content)
	if err := validateComment(rating, content); err != nil {
		return err
	}
	if err := s.commentRepo.UpdateRatingAndContent(commentID, rating, content); err != nil {
		return err
	}
	s.publish("comment.updated", map[string]interface{}{
		"commentID": commentID,
		"rating":    rating,
	})
	return nil
}

// Delete removes a review.
func (s *CommentService) Delete(commentID string) error {
	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}
	s.publish("comment.deleted", map[string]interface{}{
		"commentID": commentID,
	})
	return nil
}

// enrichAll resolves author and game documents for a batch of comments.
// Side-fetches run concurrently; each result merges back into its own slot,
// so the slice order never changes. The shared cache deduplicates lookups
// across the batch.
func (s *CommentService) enrichAll(comments []models.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	cache := newEnrichmentCache(s.userRepo, s.gameRepo)
	var g errgroup.Group
	for i := range comments {
		comment := &comments[i]
		g.Go(func() error {
			return cache.enrichComment(comment)
		})
	}
	return g.Wait()
}

func (s *CommentService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishActivity(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

func validateComment(rating float64, content string) error {
	if rating < 1.0 || rating > 5.0 {
		return ErrRatingOutOfRange
	}
	if len(content) < minContentLength {
		return ErrContentTooShort
	}
	return nil
}
