package repositories

import (
	"strings"
	"sync"

	"gamecritic/internal/models"
)

// MockVideogameRepository is an in-memory implementation of
// VideogameRepository, used for tests and local development seeding.
type MockVideogameRepository struct {
	games map[string]models.Videogame
	mu    sync.RWMutex
}

// NewMockVideogameRepository creates a new instance of MockVideogameRepository.
func NewMockVideogameRepository() *MockVideogameRepository {
	return &MockVideogameRepository{
		games: make(map[string]models.Videogame),
	}
}

// Seed stores a videogame, overwriting any existing entry with the same ID.
func (r *MockVideogameRepository) Seed(game models.Videogame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[game.ID] = game
}

// GetByID returns a videogame by its ID, nil when absent.
func (r *MockVideogameRepository) GetByID(id string) (*models.Videogame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[id]
	if !ok {
		return nil, nil
	}
	return &game, nil
}

// ListByCategory returns the games carrying the given category tag.
func (r *MockVideogameRepository) ListByCategory(category string) ([]models.Videogame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Videogame, 0)
	for _, game := range r.games {
		for _, tag := range game.Category {
			if tag == category {
				matched = append(matched, game)
				break
			}
		}
	}
	return matched, nil
}

// Search matches title or subtitle by case-insensitive substring.
func (r *MockVideogameRepository) Search(query string, limit int) ([]models.Videogame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.Videogame, 0)
	for _, game := range r.games {
		if len(matched) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(game.Title), needle) ||
			strings.Contains(strings.ToLower(game.Subtitle), needle) {
			matched = append(matched, game)
		}
	}
	return matched, nil
}
