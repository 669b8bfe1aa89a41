package repositories_test

import (
	"testing"

	"gamecritic/internal/models"
	"gamecritic/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestGORMRecentSearchRepository_UpsertIsIdempotentPerItem(t *testing.T) {
	db := newTestDB(t, &models.RecentSearch{})
	repo := repositories.NewGORMRecentSearchRepository(db)

	first := &models.RecentSearch{
		ItemID:      "g1",
		DisplayText: "Celeste",
		Timestamp:   1000,
		Tab:         models.SearchTabVideogames,
		ImageURL:    "celeste.png",
	}
	assert.NoError(t, repo.Upsert(first))

	// Same item again with fresher fields: the row is replaced, not duplicated.
	assert.NoError(t, repo.Upsert(&models.RecentSearch{
		ItemID:      "g1",
		DisplayText: "Celeste (2018)",
		Timestamp:   2000,
		Tab:         models.SearchTabVideogames,
		ImageURL:    "celeste-v2.png",
	}))

	entries, err := repo.List(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Celeste (2018)", entries[0].DisplayText)
	assert.Equal(t, int64(2000), entries[0].Timestamp)
	assert.Equal(t, "celeste-v2.png", entries[0].ImageURL)
}

func TestGORMRecentSearchRepository_ListNewestFirstCapped(t *testing.T) {
	db := newTestDB(t, &models.RecentSearch{})
	repo := repositories.NewGORMRecentSearchRepository(db)

	for i := int64(1); i <= 5; i++ {
		assert.NoError(t, repo.Upsert(&models.RecentSearch{
			ItemID:      string(rune('a' + i)),
			DisplayText: "entry",
			Timestamp:   i * 100,
			Tab:         models.SearchTabUsers,
		}))
	}

	entries, err := repo.List(3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, int64(500), entries[0].Timestamp)
	assert.Equal(t, int64(400), entries[1].Timestamp)
	assert.Equal(t, int64(300), entries[2].Timestamp)
}

func TestGORMRecentSearchRepository_Deletes(t *testing.T) {
	db := newTestDB(t, &models.RecentSearch{})
	repo := repositories.NewGORMRecentSearchRepository(db)

	assert.NoError(t, repo.Upsert(&models.RecentSearch{ItemID: "g1", DisplayText: "Celeste", Timestamp: 100}))
	assert.NoError(t, repo.Upsert(&models.RecentSearch{ItemID: "u1", DisplayText: "ana", Timestamp: 200}))
	assert.NoError(t, repo.Upsert(&models.RecentSearch{ItemID: "u2", DisplayText: "bruno", Timestamp: 300}))

	entries, _ := repo.List(10)
	assert.Len(t, entries, 3)

	// By local row id.
	assert.NoError(t, repo.DeleteByID(entries[0].ID))
	// By item id.
	assert.NoError(t, repo.DeleteByItemID("g1"))

	entries, _ = repo.List(10)
	assert.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].ItemID)

	assert.NoError(t, repo.DeleteAll())
	entries, _ = repo.List(10)
	assert.Empty(t, entries)
}
