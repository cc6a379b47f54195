// Package service implements user business logic.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/akarpov/pr-reviewer-service/internal/user/model"
	"github.com/akarpov/pr-reviewer-service/internal/user/repository"
)

// Service is the user business logic interface.
type Service interface {
	// SetIsActive toggles whether the user can receive assignments.
	SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error)

	// ReviewList returns PRs the user currently reviews.
	ReviewList(ctx context.Context, userID string) (*model.ReviewListResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a user service.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error) {
	if req.UserID == "" || len(req.UserID) > 255 {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.SetIsActive(ctx, req.UserID, *req.IsActive)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("user activity updated", "user_id", req.UserID, "is_active", *req.IsActive)
	return &model.SetIsActiveResponse{User: *user}, nil
}

func (s *service) ReviewList(ctx context.Context, userID string) (*model.ReviewListResponse, error) {
	if userID == "" || len(userID) > 255 {
		return nil, model.ErrInvalidUserID
	}

	// Unknown reviewers are a 404, not an empty list.
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	items, err := s.repo.ReviewList(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.ReviewListResponse{UserID: userID, PullRequests: items}, nil
}
