package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gamecritic/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID, nil when the user does not exist.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	return r.getOne("id = ?", id)
}

// GetByUsername retrieves a user by username, nil when absent.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getOne("username = ?", username)
}

// GetByEmail retrieves a user by email, nil when absent.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne("email = ?", email)
}

func (r *GORMUserRepository) getOne(query string, arg string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %q: %w", query, err)
	}
	return &user, nil
}

// UpdateProfile updates the editable profile fields of a user.
func (r *GORMUserRepository) UpdateProfile(id, name, username, description string, profileIcon *string) error {
	updates := map[string]interface{}{
		"name":        name,
		"username":    username,
		"description": description,
	}
	if profileIcon != nil {
		updates["profile_icon"] = *profileIcon
	}
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update profile for user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s not found for update", id)
	}
	return nil
}

// Search matches users whose name or username contains the query,
// case-insensitively, capped at limit rows.
func (r *GORMUserRepository) Search(query string, limit int) ([]models.User, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var users []models.User
	if err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(username) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// Follow adds the edge currentID -> targetID. Both user rows are updated in
// one transaction so the followers/following mirrors can never diverge.
// Following yourself is a no-op.
func (r *GORMUserRepository) Follow(currentID, targetID string) error {
	if currentID == targetID {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		current, target, err := loadFollowPair(tx, currentID, targetID)
		if err != nil {
			return err
		}
		current.Following = appendUnique(current.Following, targetID)
		target.Followers = appendUnique(target.Followers, currentID)
		if err := tx.Model(current).Update("following", current.Following).Error; err != nil {
			return err
		}
		return tx.Model(target).Update("followers", target.Followers).Error
	})
	if err != nil {
		return fmt.Errorf("failed to follow user %s: %w", targetID, err)
	}
	return nil
}

// Unfollow removes the edge currentID -> targetID, again both-or-neither.
func (r *GORMUserRepository) Unfollow(currentID, targetID string) error {
	if currentID == targetID {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		current, target, err := loadFollowPair(tx, currentID, targetID)
		if err != nil {
			return err
		}
		current.Following = removeString(current.Following, targetID)
		target.Followers = removeString(target.Followers, currentID)
		if err := tx.Model(current).Update("following", current.Following).Error; err != nil {
			return err
		}
		return tx.Model(target).Update("followers", target.Followers).Error
	})
	if err != nil {
		return fmt.Errorf("failed to unfollow user %s: %w", targetID, err)
	}
	return nil
}

func loadFollowPair(tx *gorm.DB, currentID, targetID string) (*models.User, *models.User, error) {
	var current, target models.User
	if err := tx.First(&current, "id = ?", currentID).Error; err != nil {
		return nil, nil, fmt.Errorf("user %s: %w", currentID, err)
	}
	if err := tx.First(&target, "id = ?", targetID).Error; err != nil {
		return nil, nil, fmt.Errorf("user %s: %w", targetID, err)
	}
	return &current, &target, nil
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeString(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
