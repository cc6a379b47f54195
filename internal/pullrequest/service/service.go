// Package service implements the pull request lifecycle engine:
// creation with automatic reviewer assignment, merge, and reviewer
// reassignment.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	prmodel "github.com/akarpov/pr-reviewer-service/internal/pullrequest/model"
	prrepo "github.com/akarpov/pr-reviewer-service/internal/pullrequest/repository"
	"github.com/akarpov/pr-reviewer-service/internal/selector"
	usermodel "github.com/akarpov/pr-reviewer-service/internal/user/model"
	userrepo "github.com/akarpov/pr-reviewer-service/internal/user/repository"
)

// Reviewer counts for initial assignment and reassignment.
const (
	initialReviewers = 2
	replacementCount = 1
)

// Service is the pull request lifecycle interface.
type Service interface {
	// Create opens a PR and assigns up to two reviewers from the
	// author's team.
	Create(ctx context.Context, req *prmodel.CreatePullRequestRequest) (*prmodel.PullRequestResponse, error)

	// Merge transitions the PR to MERGED. Merging an already merged
	// PR is a no-op returning the current state.
	Merge(ctx context.Context, req *prmodel.MergePullRequestRequest) (*prmodel.PullRequestResponse, error)

	// Reassign swaps one reviewer for another active teammate of the
	// author, never re-selecting the departing reviewer.
	Reassign(ctx context.Context, req *prmodel.ReassignReviewerRequest) (*prmodel.ReassignReviewerResponse, error)
}

type service struct {
	prs      prrepo.Repository
	users    userrepo.Repository
	selector *selector.Selector
	db       *gorm.DB
	logger   *zap.SugaredLogger
}

// New creates a pull request service.
func New(
	prs prrepo.Repository,
	users userrepo.Repository,
	sel *selector.Selector,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{prs: prs, users: users, selector: sel, db: db, logger: logger}
}

func (s *service) Create(ctx context.Context, req *prmodel.CreatePullRequestRequest) (*prmodel.PullRequestResponse, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	var resp *prmodel.PullRequestResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txPRs := prrepo.New(tx)
		txUsers := userrepo.New(tx)

		author, err := txUsers.GetByID(ctx, req.AuthorID)
		if err != nil {
			if errors.Is(err, usermodel.ErrUserNotFound) {
				return prmodel.ErrAuthorNotFound
			}
			return err
		}

		if _, err := txPRs.GetByID(ctx, req.PullRequestID); err == nil {
			return prmodel.ErrPullRequestExists
		} else if !errors.Is(err, prmodel.ErrPullRequestNotFound) {
			return err
		}

		candidates, err := txUsers.ActiveTeamMemberIDs(ctx, author.TeamName)
		if err != nil {
			return err
		}
		reviewers := s.selector.Select(candidates, selector.Exclude(author.UserID), initialReviewers)

		pr, err := txPRs.Create(ctx, req.PullRequestID, req.PullRequestName, req.AuthorID)
		if err != nil {
			return err
		}
		for _, reviewerID := range reviewers {
			if err := txPRs.AddReviewer(ctx, pr.PullRequestID, reviewerID); err != nil {
				return err
			}
		}

		resp = toResponse(pr, reviewers)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("pull request created",
		"pull_request_id", req.PullRequestID,
		"author_id", req.AuthorID,
		"reviewers", resp.AssignedReviewers,
	)
	return resp, nil
}

func (s *service) Merge(ctx context.Context, req *prmodel.MergePullRequestRequest) (*prmodel.PullRequestResponse, error) {
	if req.PullRequestID == "" || len(req.PullRequestID) > 255 {
		return nil, prmodel.ErrInvalidField
	}

	var resp *prmodel.PullRequestResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txPRs := prrepo.New(tx)

		pr, err := txPRs.GetByID(ctx, req.PullRequestID)
		if err != nil {
			return err
		}

		// Repeated merge keeps the original merged_at.
		if pr.Status != prmodel.StatusMerged {
			now := time.Now()
			if err := txPRs.MarkMerged(ctx, pr.PullRequestID, now); err != nil {
				return err
			}
			pr.Status = prmodel.StatusMerged
			pr.MergedAt = &now
		}

		reviewers, err := txPRs.Reviewers(ctx, pr.PullRequestID)
		if err != nil {
			return err
		}
		resp = toResponse(pr, reviewers)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("pull request merged", "pull_request_id", req.PullRequestID)
	return resp, nil
}

func (s *service) Reassign(ctx context.Context, req *prmodel.ReassignReviewerRequest) (*prmodel.ReassignReviewerResponse, error) {
	if req.PullRequestID == "" || len(req.PullRequestID) > 255 ||
		req.OldReviewerID == "" || len(req.OldReviewerID) > 255 {
		return nil, prmodel.ErrInvalidField
	}

	var resp *prmodel.ReassignReviewerResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txPRs := prrepo.New(tx)
		txUsers := userrepo.New(tx)

		// Checks run in a fixed order so each failure mode keeps a
		// stable error: missing PR, missing user, merged PR, not
		// assigned, no candidate.
		pr, err := txPRs.GetByID(ctx, req.PullRequestID)
		if err != nil {
			return err
		}
		if _, err := txUsers.GetByID(ctx, req.OldReviewerID); err != nil {
			return err
		}
		if pr.Status == prmodel.StatusMerged {
			return prmodel.ErrPullRequestMerged
		}

		reviewers, err := txPRs.Reviewers(ctx, pr.PullRequestID)
		if err != nil {
			return err
		}
		if !containsID(reviewers, req.OldReviewerID) {
			return prmodel.ErrNotAssigned
		}

		author, err := txUsers.GetByID(ctx, pr.AuthorID)
		if err != nil {
			return err
		}
		candidates, err := txUsers.ActiveTeamMemberIDs(ctx, author.TeamName)
		if err != nil {
			return err
		}

		// The departing reviewer stays excluded, so they can never be
		// selected as their own replacement.
		excluded := selector.Exclude(append([]string{pr.AuthorID}, reviewers...)...)
		picked := s.selector.Select(candidates, excluded, replacementCount)
		if len(picked) == 0 {
			return prmodel.ErrNoCandidate
		}
		replacement := picked[0]

		if err := txPRs.RemoveReviewer(ctx, pr.PullRequestID, req.OldReviewerID); err != nil {
			return err
		}
		if err := txPRs.AddReviewer(ctx, pr.PullRequestID, replacement); err != nil {
			return err
		}

		updated, err := txPRs.Reviewers(ctx, pr.PullRequestID)
		if err != nil {
			return err
		}
		resp = &prmodel.ReassignReviewerResponse{
			PR:         toResponse(pr, updated),
			ReplacedBy: replacement,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("reviewer reassigned",
		"pull_request_id", req.PullRequestID,
		"old_reviewer_id", req.OldReviewerID,
		"replaced_by", resp.ReplacedBy,
	)
	return resp, nil
}

func validateCreate(req *prmodel.CreatePullRequestRequest) error {
	for _, field := range []string{req.PullRequestID, req.PullRequestName, req.AuthorID} {
		if field == "" || len(field) > 255 {
			return prmodel.ErrInvalidField
		}
	}
	return nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func toResponse(pr *prmodel.PullRequest, reviewers []string) *prmodel.PullRequestResponse {
	resp := &prmodel.PullRequestResponse{
		PullRequestID:     pr.PullRequestID,
		PullRequestName:   pr.PullRequestName,
		AuthorID:          pr.AuthorID,
		Status:            pr.Status,
		AssignedReviewers: reviewers,
	}
	if pr.MergedAt != nil {
		resp.MergedAt = pr.MergedAt.Format(time.RFC3339)
	}
	return resp
}
