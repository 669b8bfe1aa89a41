package services_test

import (
	"fmt"
	"testing"

	"gamecritic/internal/models"
	"gamecritic/internal/services"

	"github.com/stretchr/testify/assert"
)

func feedFixture(userRepo *MockUserRepository, commentRepo *MockCommentRepository, gameRepo *MockVideogameRepository) *services.FeedService {
	commentService := services.NewCommentService(commentRepo, userRepo, gameRepo, nil)
	return services.NewFeedService(userRepo, commentService)
}

func TestFeedService_GroupsByNewestAuthorFirst(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	gameRepo := new(MockVideogameRepository)
	service := feedFixture(userRepo, commentRepo, gameRepo)

	userRepo.On("GetByID", "me").Return(&models.User{ID: "me", Following: []string{"a", "b"}}, nil).Once()
	// A commented twice, B once; B's comment is the most recent overall.
	commentRepo.On("ListByUser", "a").Return([]models.Comment{
		{ID: "c2", UserID: "a", VideogameID: "g1", CreatedAt: "2024-03-02T10:00:00Z"},
		{ID: "c1", UserID: "a", VideogameID: "g1", CreatedAt: "2024-03-01T10:00:00Z"},
	}, nil).Once()
	commentRepo.On("ListByUser", "b").Return([]models.Comment{
		{ID: "c3", UserID: "b", VideogameID: "g1", CreatedAt: "2024-03-03T10:00:00Z"},
	}, nil).Once()
	userRepo.On("GetByID", "a").Return(&models.User{ID: "a", Username: "ana"}, nil)
	userRepo.On("GetByID", "b").Return(&models.User{ID: "b", Username: "bruno"}, nil)
	gameRepo.On("GetByID", "g1").Return(&models.Videogame{ID: "g1", Title: "Celeste"}, nil)

	groups, err := service.LoadFollowingFeed("me")

	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	// B's group leads because its newest comment is the most recent.
	assert.Equal(t, "b", groups[0].UserID)
	assert.Equal(t, "bruno", groups[0].Username)
	assert.Equal(t, []string{"c3"}, commentIDs(groups[0].Comments))
	assert.Equal(t, "a", groups[1].UserID)
	assert.Equal(t, []string{"c2", "c1"}, commentIDs(groups[1].Comments))
}

func TestFeedService_CapsMergedFeedAtTwenty(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	gameRepo := new(MockVideogameRepository)
	service := feedFixture(userRepo, commentRepo, gameRepo)

	following := []string{"f1", "f2", "f3", "f4", "f5"}
	userRepo.On("GetByID", "me").Return(&models.User{ID: "me", Following: following}, nil).Once()
	for fi, followed := range following {
		comments := make([]models.Comment, 10)
		for i := range comments {
			comments[i] = models.Comment{
				ID:          fmt.Sprintf("%s-c%d", followed, i),
				UserID:      followed,
				VideogameID: "g1",
				CreatedAt:   fmt.Sprintf("2024-%02d-%02dT10:00:00Z", fi+1, 10-i),
			}
		}
		commentRepo.On("ListByUser", followed).Return(comments, nil).Once()
		userRepo.On("GetByID", followed).Return(&models.User{ID: followed, Username: followed}, nil)
	}
	gameRepo.On("GetByID", "g1").Return(&models.Videogame{ID: "g1", Title: "Celeste"}, nil)

	groups, err := service.LoadFollowingFeed("me")

	assert.NoError(t, err)
	total := 0
	var previous string
	for _, group := range groups {
		total += len(group.Comments)
		// Each group's internal order stays newest-first.
		for i := 1; i < len(group.Comments); i++ {
			assert.GreaterOrEqual(t, group.Comments[i-1].CreatedAt, group.Comments[i].CreatedAt)
		}
		if previous != "" {
			assert.GreaterOrEqual(t, previous, group.Comments[0].CreatedAt)
		}
		previous = group.Comments[len(group.Comments)-1].CreatedAt
	}
	assert.Equal(t, 20, total)
}

func TestFeedService_EmptyFollowingIsEmptyFeedNotError(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	gameRepo := new(MockVideogameRepository)
	service := feedFixture(userRepo, commentRepo, gameRepo)

	userRepo.On("GetByID", "me").Return(&models.User{ID: "me"}, nil).Once()

	groups, err := service.LoadFollowingFeed("me")

	assert.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestFeedService_MissingUserDocumentIsEmptyFeed(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	gameRepo := new(MockVideogameRepository)
	service := feedFixture(userRepo, commentRepo, gameRepo)

	userRepo.On("GetByID", "ghost").Return(nil, nil).Once()

	groups, err := service.LoadFollowingFeed("ghost")

	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestFeedService_FailedFollowIsSkippedNotFatal(t *testing.T) {
	userRepo := new(MockUserRepository)
	commentRepo := new(MockCommentRepository)
	gameRepo := new(MockVideogameRepository)
	service := feedFixture(userRepo, commentRepo, gameRepo)

	userRepo.On("GetByID", "me").Return(&models.User{ID: "me", Following: []string{"ok", "broken"}}, nil).Once()
	commentRepo.On("ListByUser", "ok").Return([]models.Comment{
		{ID: "c1", UserID: "ok", VideogameID: "g1", CreatedAt: "2024-03-01T10:00:00Z"},
	}, nil).Once()
	commentRepo.On("ListByUser", "broken").Return(nil, fmt.Errorf("timeout")).Once()
	userRepo.On("GetByID", "ok").Return(&models.User{ID: "ok", Username: "oksana"}, nil)
	gameRepo.On("GetByID", "g1").Return(&models.Videogame{ID: "g1", Title: "Celeste"}, nil)

	groups, err := service.LoadFollowingFeed("me")

	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "ok", groups[0].UserID)
}

func commentIDs(comments []models.Comment) []string {
	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}
