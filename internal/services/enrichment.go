package services

import (
	"sync"
	"time"

	"gamecritic/internal/models"
	"gamecritic/internal/repositories"

	"golang.org/x/sync/singleflight"
)

// unknownUsername is shown for comments whose author document is missing.
const unknownUsername = "unknown user"

// createdAtDisplayLayout renders stored RFC3339 timestamps for display.
const createdAtDisplayLayout = "02 Jan 2006 • 15:04"

// enrichmentCache memoizes author and game lookups for the duration of one
// enrichment call. It is created fresh per call and discarded afterwards;
// nothing is shared across requests. Negative results (missing documents) are
// cached too, so a batch referencing a deleted user costs one fetch, not one
// per comment. Concurrent lookups of the same key collapse into a single
// repository read via singleflight.
type enrichmentCache struct {
	users repositories.UserRepository
	games repositories.VideogameRepository

	group singleflight.Group

	mu       sync.Mutex
	userByID map[string]*models.User
	gameByID map[string]*models.Videogame
}

func newEnrichmentCache(users repositories.UserRepository, games repositories.VideogameRepository) *enrichmentCache {
	return &enrichmentCache{
		users:    users,
		games:    games,
		userByID: make(map[string]*models.User),
		gameByID: make(map[string]*models.Videogame),
	}
}

// user resolves a user document through the cache. Returns nil for blank ids
// and missing users.
func (c *enrichmentCache) user(id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}
	v, err, _ := c.group.Do("user:"+id, func() (interface{}, error) {
		c.mu.Lock()
		cached, ok := c.userByID[id]
		c.mu.Unlock()
		if ok {
			return cached, nil
		}
		user, err := c.users.GetByID(id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.userByID[id] = user
		c.mu.Unlock()
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	user, _ := v.(*models.User)
	return user, nil
}

// game resolves a videogame document through the cache, same contract as user.
func (c *enrichmentCache) game(id string) (*models.Videogame, error) {
	if id == "" {
		return nil, nil
	}
	v, err, _ := c.group.Do("game:"+id, func() (interface{}, error) {
		c.mu.Lock()
		cached, ok := c.gameByID[id]
		c.mu.Unlock()
		if ok {
			return cached, nil
		}
		game, err := c.games.GetByID(id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.gameByID[id] = game
		c.mu.Unlock()
		return game, nil
	})
	if err != nil {
		return nil, err
	}
	game, _ := v.(*models.Videogame)
	return game, nil
}

// enrichComment fills the display fields of one comment in place. Missing
// documents degrade to placeholders rather than failing the batch; only store
// errors propagate.
func (c *enrichmentCache) enrichComment(comment *models.Comment) error {
	user, err := c.user(comment.UserID)
	if err != nil {
		return err
	}
	game, err := c.game(comment.VideogameID)
	if err != nil {
		return err
	}

	if user != nil {
		comment.Username = user.Username
		comment.UserProfileIcon = user.ProfileIcon
	} else {
		comment.Username = unknownUsername
		comment.UserProfileIcon = ""
	}
	if game != nil {
		comment.VideogameTitle = game.Title
		comment.VideogameImage = game.ImageProfile
	} else {
		comment.VideogameTitle = ""
		comment.VideogameImage = ""
	}
	comment.CreatedAtFormatted = formatCreatedAt(comment.CreatedAt)
	return nil
}

// formatCreatedAt renders a stored timestamp for display. Blank input yields
// a blank string; an unparseable timestamp degrades to the raw string instead
// of failing the comment.
func formatCreatedAt(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format(createdAtDisplayLayout)
}
