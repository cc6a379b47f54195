// Package repository implements pull request persistence on gorm.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/pullrequest/model"
)

// Repository is the pull request store interface.
type Repository interface {
	// Create inserts a new PR in OPEN state.
	Create(ctx context.Context, prID, prName, authorID string) (*model.PullRequest, error)

	// GetByID finds a PR by id.
	GetByID(ctx context.Context, prID string) (*model.PullRequest, error)

	// MarkMerged transitions the PR to MERGED with the given timestamp.
	MarkMerged(ctx context.Context, prID string, mergedAt time.Time) error

	// Reviewers returns the PR's reviewer ids in assignment order.
	Reviewers(ctx context.Context, prID string) ([]string, error)

	// AddReviewer appends a user to the PR's reviewer set.
	AddReviewer(ctx context.Context, prID, userID string) error

	// RemoveReviewer drops a user from the PR's reviewer set.
	// Removing a user who is not assigned returns ErrNotAssigned.
	RemoveReviewer(ctx context.Context, prID, userID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a pull request repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, prID, prName, authorID string) (*model.PullRequest, error) {
	pr := &model.PullRequest{
		PullRequestID:   prID,
		PullRequestName: prName,
		AuthorID:        authorID,
		Status:          model.StatusOpen,
		CreatedAt:       time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(pr).Error; err != nil {
		if isDuplicate(err) {
			return nil, model.ErrPullRequestExists
		}
		return nil, err
	}
	return pr, nil
}

func (r *repository) GetByID(ctx context.Context, prID string) (*model.PullRequest, error) {
	var pr model.PullRequest
	err := r.db.WithContext(ctx).
		Where("pull_request_id = ?", prID).
		First(&pr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPullRequestNotFound
		}
		return nil, err
	}
	return &pr, nil
}

func (r *repository) MarkMerged(ctx context.Context, prID string, mergedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.PullRequest{}).
		Where("pull_request_id = ?", prID).
		Updates(map[string]interface{}{
			"status":    model.StatusMerged,
			"merged_at": mergedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrPullRequestNotFound
	}
	return nil
}

func (r *repository) Reviewers(ctx context.Context, prID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.ReviewerAssignment{}).
		Where("pull_request_id = ?", prID).
		Order("assigned_at ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (r *repository) AddReviewer(ctx context.Context, prID, userID string) error {
	assignment := &model.ReviewerAssignment{
		PullRequestID: prID,
		UserID:        userID,
		AssignedAt:    time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if isDuplicate(err) {
			return model.ErrReviewerAlreadyAssigned
		}
		return err
	}
	return nil
}

func (r *repository) RemoveReviewer(ctx context.Context, prID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("pull_request_id = ? AND user_id = ?", prID, userID).
		Delete(&model.ReviewerAssignment{})
	if result.Error != nil {
		return result.Error
	}
	// Zero affected rows means someone else removed the reviewer first;
	// the caller surfaces this as a conflict instead of double-applying.
	if result.RowsAffected == 0 {
		return model.ErrNotAssigned
	}
	return nil
}

// isDuplicate reports whether err is a unique constraint violation.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
