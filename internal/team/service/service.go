// Package service implements team business logic.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/team/model"
	"github.com/akarpov/pr-reviewer-service/internal/team/repository"
)

// Service is the team business logic interface.
type Service interface {
	// CreateTeam creates a team together with its members.
	CreateTeam(ctx context.Context, req *model.CreateTeamRequest) (*model.TeamResponse, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, teamName string) (*model.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a team service.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

func (s *service) CreateTeam(ctx context.Context, req *model.CreateTeamRequest) (*model.TeamResponse, error) {
	if req.TeamName == "" || len(req.TeamName) > 255 {
		return nil, model.ErrInvalidTeamName
	}
	if len(req.Members) == 0 {
		return nil, model.ErrNoMembers
	}

	var resp *model.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := txRepo.Create(ctx, req.TeamName); err != nil {
			return err
		}
		for _, member := range req.Members {
			if _, err := txRepo.UpsertMember(ctx, req.TeamName, member); err != nil {
				return err
			}
		}

		members, err := txRepo.Members(ctx, req.TeamName)
		if err != nil {
			return err
		}
		resp = &model.TeamResponse{TeamName: req.TeamName, Members: members}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_name", req.TeamName, "members", len(req.Members))
	return resp, nil
}

func (s *service) GetTeam(ctx context.Context, teamName string) (*model.TeamResponse, error) {
	if teamName == "" {
		return nil, model.ErrInvalidTeamName
	}

	if _, err := s.repo.GetByName(ctx, teamName); err != nil {
		return nil, err
	}
	members, err := s.repo.Members(ctx, teamName)
	if err != nil {
		return nil, err
	}
	return &model.TeamResponse{TeamName: teamName, Members: members}, nil
}
