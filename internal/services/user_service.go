package services

import (
	"log"

	"gamecritic/internal/models"
	"gamecritic/internal/repositories"
)

// UserService handles profiles and the follow graph.
type UserService struct {
	userRepo repositories.UserRepository
	events   EventPublisher
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(userRepo repositories.UserRepository, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		events:   events,
	}
}

// GetProfile returns a user's profile, nil when the user does not exist.
func (s *UserService) GetProfile(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile edits the user-editable profile fields. A nil profileIcon
// leaves the stored icon untouched.
func (s *UserService) UpdateProfile(id, name, username, description string, profileIcon *string) error {
	return s.userRepo.UpdateProfile(id, name, username, description, profileIcon)
}

// Follow records that currentID follows targetID. Both user documents are
// updated atomically; following yourself is a no-op.
func (s *UserService) Follow(currentID, targetID string) error {
	if currentID == targetID {
		return nil
	}
	if err := s.userRepo.Follow(currentID, targetID); err != nil {
		return err
	}
	s.publish("user.followed", currentID, targetID)
	return nil
}

// Unfollow removes the follow edge from currentID to targetID.
func (s *UserService) Unfollow(currentID, targetID string) error {
	if currentID == targetID {
		return nil
	}
	if err := s.userRepo.Unfollow(currentID, targetID); err != nil {
		return err
	}
	s.publish("user.unfollowed", currentID, targetID)
	return nil
}

// IsFollowing reports whether currentID follows targetID. Always false for
// yourself and for missing users.
func (s *UserService) IsFollowing(currentID, targetID string) (bool, error) {
	if currentID == targetID {
		return false, nil
	}
	user, err := s.userRepo.GetByID(currentID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	for _, id := range user.Following {
		if id == targetID {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserService) publish(event, currentID, targetID string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishActivity(event, map[string]interface{}{
		"userID":   currentID,
		"targetID": targetID,
	})
	if err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
