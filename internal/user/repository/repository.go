// Package repository implements user persistence on gorm.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/user/model"
)

// Repository is the user data access interface.
type Repository interface {
	// GetByID finds a user by id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// SetIsActive flips the activity flag and returns the updated user.
	SetIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error)

	// ReviewList returns PRs where the user is a reviewer, newest first.
	ReviewList(ctx context.Context, userID string) ([]model.ReviewItem, error)

	// ActiveTeamMemberIDs returns ids of active members of a team.
	ActiveTeamMemberIDs(ctx context.Context, teamName string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a user repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) SetIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("is_active", isActive)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrUserNotFound
	}
	return r.GetByID(ctx, userID)
}

func (r *repository) ReviewList(ctx context.Context, userID string) ([]model.ReviewItem, error) {
	var items []model.ReviewItem
	err := r.db.WithContext(ctx).
		Table("pull_request_reviewers").
		Select("pull_requests.pull_request_id, pull_requests.pull_request_name, pull_requests.author_id, pull_requests.status").
		Joins("JOIN pull_requests ON pull_requests.pull_request_id = pull_request_reviewers.pull_request_id").
		Where("pull_request_reviewers.user_id = ?", userID).
		Order("pull_requests.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.ReviewItem{}
	}
	return items, nil
}

func (r *repository) ActiveTeamMemberIDs(ctx context.Context, teamName string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("team_name = ? AND is_active = ?", teamName, true).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
