package repositories

import "gamecritic/internal/models"

// VideogameRepository defines the interface for catalog data access.
// The catalog is read-only; no create/update/delete path exists.
type VideogameRepository interface {
	GetByID(id string) (*models.Videogame, error)
	ListByCategory(category string) ([]models.Videogame, error)
	// Search matches title or subtitle by case-insensitive substring.
	Search(query string, limit int) ([]models.Videogame, error)
}
