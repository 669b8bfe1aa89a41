package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gamecritic/internal/models"

	"gorm.io/gorm"
)

// GORMVideogameRepository is a GORM implementation of VideogameRepository.
type GORMVideogameRepository struct {
	db *gorm.DB
}

// NewGORMVideogameRepository creates a new instance of GORMVideogameRepository.
func NewGORMVideogameRepository(db *gorm.DB) *GORMVideogameRepository {
	return &GORMVideogameRepository{
		db: db,
	}
}

// GetByID retrieves a videogame by ID, nil when absent.
func (r *GORMVideogameRepository) GetByID(id string) (*models.Videogame, error) {
	var game models.Videogame
	if err := r.db.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get videogame by ID %s: %w", id, err)
	}
	return &game, nil
}

// ListByCategory returns the games tagged with the given category.
// Category is a serialized tag list, so the filter runs in memory over the
// full (small) catalog rather than in SQL.
func (r *GORMVideogameRepository) ListByCategory(category string) ([]models.Videogame, error) {
	var games []models.Videogame
	if err := r.db.Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list videogames: %w", err)
	}
	matched := make([]models.Videogame, 0, len(games))
	for _, game := range games {
		for _, tag := range game.Category {
			if tag == category {
				matched = append(matched, game)
				break
			}
		}
	}
	return matched, nil
}

// Search matches videogames whose title or subtitle contains the query,
// case-insensitively, capped at limit rows.
func (r *GORMVideogameRepository) Search(query string, limit int) ([]models.Videogame, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var games []models.Videogame
	if err := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(subtitle) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to search videogames: %w", err)
	}
	return games, nil
}
