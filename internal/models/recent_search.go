package models

// Search result tabs. Stored as-is in the local recent-search table.
const (
	SearchTabVideogames = "VIDEOGAMES"
	SearchTabUsers      = "USERS"
)

// RecentSearch is a locally persisted record of a tapped search result.
// ItemID carries a unique index so re-searching the same item updates the
// existing row instead of duplicating it.
type RecentSearch struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemID      string `json:"item_id" gorm:"column:item_id;uniqueIndex;type:varchar(36)"`
	DisplayText string `json:"display_text" gorm:"column:display_text"`
	Timestamp   int64  `json:"timestamp" gorm:"index"`
	Tab         string `json:"tab" gorm:"type:varchar(16)"`
	ImageURL    string `json:"image_url" gorm:"column:image_url"`
}

// TableName keeps the table name aligned with the original local schema.
func (RecentSearch) TableName() string { return "recent_searches" }
