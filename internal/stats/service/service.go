// Package service implements statistics business logic.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/akarpov/pr-reviewer-service/internal/stats/model"
	"github.com/akarpov/pr-reviewer-service/internal/stats/repository"
)

// Service is the statistics interface.
type Service interface {
	// ReviewerLoad returns assignment counts per reviewer.
	ReviewerLoad(ctx context.Context) (*model.ReviewerLoadResponse, error)

	// PullRequestTotals returns PR aggregates.
	PullRequestTotals(ctx context.Context) (*model.PullRequestTotalsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a statistics service.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ReviewerLoad(ctx context.Context) (*model.ReviewerLoadResponse, error) {
	load, err := s.repo.ReviewerLoad(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ReviewerLoadResponse{Reviewers: load, Total: len(load)}, nil
}

func (s *service) PullRequestTotals(ctx context.Context) (*model.PullRequestTotalsResponse, error) {
	totals, err := s.repo.PullRequestTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PullRequestTotalsResponse{Statistics: *totals}, nil
}
