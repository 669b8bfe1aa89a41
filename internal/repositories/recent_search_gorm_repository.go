package repositories

import (
	"fmt"

	"gamecritic/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRecentSearchRepository is a GORM implementation of
// RecentSearchRepository backed by the embedded sqlite store.
type GORMRecentSearchRepository struct {
	db *gorm.DB
}

// NewGORMRecentSearchRepository creates a new instance of
// GORMRecentSearchRepository.
func NewGORMRecentSearchRepository(db *gorm.DB) *GORMRecentSearchRepository {
	return &GORMRecentSearchRepository{
		db: db,
	}
}

// Upsert inserts or replaces the entry for search.ItemID. Re-searching the
// same item refreshes its timestamp and display fields instead of adding a
// duplicate row.
func (r *GORMRecentSearchRepository) Upsert(search *models.RecentSearch) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_text", "timestamp", "tab", "image_url",
		}),
	}).Create(search).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recent search for item %s: %w", search.ItemID, err)
	}
	return nil
}

// DeleteByID removes an entry by its local row id.
func (r *GORMRecentSearchRepository) DeleteByID(id int64) error {
	if err := r.db.Delete(&models.RecentSearch{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete recent search %d: %w", id, err)
	}
	return nil
}

// DeleteByItemID removes an entry by the searched item's id. Used as a
// fallback for entries whose local row id is unknown to the caller.
func (r *GORMRecentSearchRepository) DeleteByItemID(itemID string) error {
	if err := r.db.Delete(&models.RecentSearch{}, "item_id = ?", itemID).Error; err != nil {
		return fmt.Errorf("failed to delete recent search for item %s: %w", itemID, err)
	}
	return nil
}

// DeleteAll removes every entry unconditionally.
func (r *GORMRecentSearchRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.RecentSearch{}).Error; err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}
	return nil
}

// List returns the newest entries first, capped at limit.
func (r *GORMRecentSearchRepository) List(limit int) ([]models.RecentSearch, error) {
	var searches []models.RecentSearch
	if err := r.db.Order("timestamp DESC").Limit(limit).Find(&searches).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	return searches, nil
}
