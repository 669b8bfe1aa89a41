package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"gamecritic/internal/models"
	"gamecritic/internal/repositories"
)

const (
	// defaultDebounce is how long input must stay quiet before a search runs.
	defaultDebounce = 400 * time.Millisecond
	// searchResultCap bounds each result list.
	searchResultCap = 50
	// recentSearchLimit is how many recent selections a state snapshot carries.
	recentSearchLimit = 10
)

// SearchState is an immutable snapshot of the search pipeline. A new snapshot
// is emitted on every transition; consumers read them off States() instead of
// observing mutable fields.
type SearchState struct {
	Query      string
	Searching  bool
	Err        string
	Videogames []models.Videogame
	Users      []models.User
	Recent     []models.RecentSearch
}

// Searcher turns free-text input into videogame and user result lists.
//
// Lifecycle per input event: a keystroke arms (or re-arms) the debounce
// timer, cancelling any pending timer and any in-flight query; when input
// stays quiet for the debounce window the query runs. Both collections are
// always searched so switching result tabs needs no new query. An empty query
// clears the lists synchronously, bypassing the debounce entirely.
type Searcher struct {
	games  repositories.VideogameRepository
	users  repositories.UserRepository
	recent repositories.RecentSearchRepository

	debounce time.Duration

	mu     sync.Mutex
	query  string
	timer  *time.Timer
	cancel context.CancelFunc
	state  SearchState
	states chan SearchState
}

// NewSearcher creates a search pipeline. A zero debounce selects the default
// window.
func NewSearcher(
	games repositories.VideogameRepository,
	users repositories.UserRepository,
	recent repositories.RecentSearchRepository,
	debounce time.Duration,
) *Searcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Searcher{
		games:    games,
		users:    users,
		recent:   recent,
		debounce: debounce,
		states:   make(chan SearchState, 16),
	}
}

// States delivers state snapshots. Slow consumers miss intermediate
// snapshots rather than blocking the pipeline.
func (s *Searcher) States() <-chan SearchState {
	return s.states
}

// State returns the latest snapshot.
func (s *Searcher) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetQuery feeds one input event into the pipeline.
func (s *Searcher) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.cancelPendingLocked()

	if strings.TrimSpace(query) == "" {
		// Empty query short-circuits: clear synchronously, back to idle.
		s.state = SearchState{Query: query, Recent: s.state.Recent}
		s.emitLocked()
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.runSearch()
	})
}

// SearchNow skips the debounce window and queries immediately with the
// current input.
func (s *Searcher) SearchNow() {
	s.mu.Lock()
	s.cancelPendingLocked()
	s.mu.Unlock()
	s.runSearch()
}

// Search runs both collection queries for an explicit one-shot request,
// outside the debounced state machine.
func (s *Searcher) Search(query string) ([]models.Videogame, []models.User, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.Videogame{}, []models.User{}, nil
	}
	games, err := s.games.Search(trimmed, searchResultCap)
	if err != nil {
		return nil, nil, err
	}
	users, err := s.users.Search(trimmed, searchResultCap)
	if err != nil {
		return nil, nil, err
	}
	return games, users, nil
}

// Close stops any pending work. The state channel stays open; callers simply
// stop receiving.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
}

// RecordVideogameSelection remembers a tapped videogame result. Blank titles
// are silently dropped.
func (s *Searcher) RecordVideogameSelection(game models.Videogame) error {
	return s.recordSelection(game.ID, game.Title, models.SearchTabVideogames, game.ImageProfile)
}

// RecordUserSelection remembers a tapped user result. Blank usernames are
// silently dropped.
func (s *Searcher) RecordUserSelection(user models.User) error {
	return s.recordSelection(user.ID, user.Username, models.SearchTabUsers, user.ProfileIcon)
}

func (s *Searcher) recordSelection(itemID, displayText, tab, imageURL string) error {
	displayText = strings.TrimSpace(displayText)
	if displayText == "" {
		return nil
	}
	return s.recent.Upsert(&models.RecentSearch{
		ItemID:      itemID,
		DisplayText: displayText,
		Timestamp:   time.Now().UnixMilli(),
		Tab:         tab,
		ImageURL:    imageURL,
	})
}

// DeleteRecent removes one remembered selection, by local row id when the
// entry carries one, otherwise by item id.
func (s *Searcher) DeleteRecent(entry models.RecentSearch) error {
	if entry.ID != 0 {
		return s.recent.DeleteByID(entry.ID)
	}
	return s.recent.DeleteByItemID(entry.ItemID)
}

// ClearRecent removes every remembered selection.
func (s *Searcher) ClearRecent() error {
	return s.recent.DeleteAll()
}

// RecentSearches returns remembered selections, newest first.
func (s *Searcher) RecentSearches(limit int) ([]models.RecentSearch, error) {
	if limit <= 0 {
		limit = recentSearchLimit
	}
	return s.recent.List(limit)
}

// cancelPendingLocked stops the armed debounce timer and abandons any
// in-flight query so its results are discarded on arrival.
func (s *Searcher) cancelPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// runSearch executes the settled query. It queries both collections
// unconditionally; either failure replaces the lists with a single error.
func (s *Searcher) runSearch() {
	s.mu.Lock()
	query := strings.TrimSpace(s.query)
	if query == "" {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = SearchState{Query: s.query, Searching: true, Recent: s.state.Recent}
	s.emitLocked()
	s.mu.Unlock()

	games, gamesErr := s.games.Search(query, searchResultCap)
	users, usersErr := s.users.Search(query, searchResultCap)
	recent, _ := s.recent.List(recentSearchLimit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		// A newer input event superseded this query; drop its results.
		return
	}
	s.cancel = nil

	next := SearchState{Query: s.query, Recent: recent}
	if gamesErr != nil {
		next.Err = gamesErr.Error()
	} else if usersErr != nil {
		next.Err = usersErr.Error()
	} else {
		next.Videogames = games
		next.Users = users
	}
	s.state = next
	s.emitLocked()
}

func (s *Searcher) emitLocked() {
	select {
	case s.states <- s.state:
	default:
	}
}
