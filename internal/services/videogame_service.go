package services

import (
	"gamecritic/internal/models"
	"gamecritic/internal/repositories"
)

// VideogameService handles read access to the catalog.
type VideogameService struct {
	repo repositories.VideogameRepository
}

// NewVideogameService creates a new VideogameService.
func NewVideogameService(repo repositories.VideogameRepository) *VideogameService {
	return &VideogameService{
		repo: repo,
	}
}

// GetByID retrieves a single videogame, nil when absent.
func (s *VideogameService) GetByID(id string) (*models.Videogame, error) {
	return s.repo.GetByID(id)
}

// ListByCategory retrieves the games carrying the given category tag.
func (s *VideogameService) ListByCategory(category string) ([]models.Videogame, error) {
	return s.repo.ListByCategory(category)
}
