package services

import (
	"log"
	"sort"

	"gamecritic/internal/models"
	"gamecritic/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// feedCap bounds how many comments one feed render shows across all follows.
const feedCap = 20

// FeedService aggregates followed users' recent reviews into a grouped
// activity feed.
type FeedService struct {
	userRepo repositories.UserRepository
	comments *CommentService
}

// NewFeedService creates a new FeedService.
func NewFeedService(userRepo repositories.UserRepository, comments *CommentService) *FeedService {
	return &FeedService{
		userRepo: userRepo,
		comments: comments,
	}
}

// LoadFollowingFeed builds the activity feed for a signed-in user: every
// followed user's comments are fetched concurrently, merged, sorted
// newest-first, capped, and grouped per author.
//
// A missing user document means an empty following set, not an error. A
// single followed user's failing fetch is logged and skipped so the rest of
// the feed still renders. An empty result is the valid "no recent activity"
// state, distinct from an error.
func (s *FeedService) LoadFollowingFeed(currentUserID string) ([]models.UserComments, error) {
	user, err := s.userRepo.GetByID(currentUserID)
	if err != nil {
		return nil, err
	}
	var following []string
	if user != nil {
		following = user.Following
	}
	if len(following) == 0 {
		return []models.UserComments{}, nil
	}

	// Fan out one fetch per followed user. Results land in per-follow slots
	// so merge order is deterministic regardless of completion order.
	results := make([][]models.Comment, len(following))
	var g errgroup.Group
	for i, followedID := range following {
		i, followedID := i, followedID
		g.Go(func() error {
			comments, err := s.comments.ListForUser(followedID)
			if err != nil {
				log.Printf("Skipping feed entries for user %s: %v", followedID, err)
				return nil
			}
			results[i] = comments
			return nil
		})
	}
	// Workers never return errors; failed follows are skipped above.
	_ = g.Wait()

	merged := make([]models.Comment, 0)
	for _, comments := range results {
		merged = append(merged, comments...)
	}
	// RFC3339 sorts lexicographically, so string comparison is chronological.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt > merged[j].CreatedAt
	})
	if len(merged) > feedCap {
		merged = merged[:feedCap]
	}

	return groupByAuthor(merged), nil
}

// groupByAuthor projects the capped feed into one group per distinct author,
// in order of each author's first (newest) appearance, preserving each
// group's internal chronological order. The first comment supplies the
// group's display identity; all comments from one author carry identical
// author fields because they were enriched from the same document.
func groupByAuthor(comments []models.Comment) []models.UserComments {
	groups := make([]models.UserComments, 0)
	indexByUser := make(map[string]int)
	for _, comment := range comments {
		idx, ok := indexByUser[comment.UserID]
		if !ok {
			idx = len(groups)
			indexByUser[comment.UserID] = idx
			groups = append(groups, models.UserComments{
				UserID:          comment.UserID,
				Username:        comment.Username,
				UserProfileIcon: comment.UserProfileIcon,
			})
		}
		groups[idx].Comments = append(groups[idx].Comments, comment)
	}
	return groups
}
