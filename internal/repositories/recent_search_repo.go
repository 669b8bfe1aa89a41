package repositories

import "gamecritic/internal/models"

// RecentSearchRepository defines the interface for the local recent-search
// store. Entries live in a small embedded database on the device side of the
// deployment, never in the primary store.
type RecentSearchRepository interface {
	// Upsert inserts the entry or, when the item id already exists, replaces
	// that row in place.
	Upsert(search *models.RecentSearch) error
	DeleteByID(id int64) error
	DeleteByItemID(itemID string) error
	DeleteAll() error
	// List returns up to limit entries, newest first.
	List(limit int) ([]models.RecentSearch, error)
}
