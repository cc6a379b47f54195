// Package repository implements statistics queries on gorm.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/stats/model"
)

// Repository is the statistics data access interface.
type Repository interface {
	// ReviewerLoad returns assignment counts per user, busiest first.
	ReviewerLoad(ctx context.Context) ([]model.ReviewerLoad, error)

	// PullRequestTotals returns PR aggregates by status.
	PullRequestTotals(ctx context.Context) (*model.PullRequestTotals, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a statistics repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ReviewerLoad(ctx context.Context) ([]model.ReviewerLoad, error) {
	var load []model.ReviewerLoad
	err := r.db.WithContext(ctx).
		Table("users").
		Select(`users.user_id, users.username, users.team_name, users.is_active,
			COALESCE(COUNT(pull_request_reviewers.user_id), 0) AS assignment_count`).
		Joins("LEFT JOIN pull_request_reviewers ON pull_request_reviewers.user_id = users.user_id").
		Group("users.user_id, users.username, users.team_name, users.is_active").
		Order("assignment_count DESC, users.user_id ASC").
		Scan(&load).Error
	if err != nil {
		return nil, err
	}
	if load == nil {
		load = []model.ReviewerLoad{}
	}
	return load, nil
}

func (r *repository) PullRequestTotals(ctx context.Context) (*model.PullRequestTotals, error) {
	var row struct {
		TotalPRs     int64   `gorm:"column:total_prs"`
		OpenPRs      int64   `gorm:"column:open_prs"`
		MergedPRs    int64   `gorm:"column:merged_prs"`
		AvgReviewers float64 `gorm:"column:avg_reviewers"`
	}

	err := r.db.WithContext(ctx).
		Table("pull_requests").
		Select(`COUNT(*) AS total_prs,
			COALESCE(SUM(CASE WHEN status = 'OPEN' THEN 1 ELSE 0 END), 0) AS open_prs,
			COALESCE(SUM(CASE WHEN status = 'MERGED' THEN 1 ELSE 0 END), 0) AS merged_prs,
			COALESCE(AVG(rc.reviewer_count), 0) AS avg_reviewers`).
		Joins(`LEFT JOIN (
			SELECT pull_request_id, CAST(COUNT(*) AS REAL) AS reviewer_count
			FROM pull_request_reviewers
			GROUP BY pull_request_id
		) rc ON rc.pull_request_id = pull_requests.pull_request_id`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &model.PullRequestTotals{
		TotalPRs:          int(row.TotalPRs),
		OpenPRs:           int(row.OpenPRs),
		MergedPRs:         int(row.MergedPRs),
		AvgReviewersPerPR: row.AvgReviewers,
	}, nil
}
