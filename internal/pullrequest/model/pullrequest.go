// Package model holds the pull request entities, DTOs, and domain errors.
package model

import "time"

// Pull request lifecycle states. MERGED is terminal.
const (
	StatusOpen   = "OPEN"
	StatusMerged = "MERGED"
)

// PullRequest is a review request authored by a user. The id is assigned
// by the caller, not generated.
type PullRequest struct {
	PullRequestID   string     `gorm:"primaryKey;column:pull_request_id;type:varchar(255)"                           json:"pull_request_id"`
	PullRequestName string     `gorm:"column:pull_request_name;type:varchar(255);not null"                           json:"pull_request_name"`
	AuthorID        string     `gorm:"column:author_id;type:varchar(255);not null;index:idx_pull_requests_author_id" json:"author_id"`
	Status          string     `gorm:"column:status;type:varchar(6);not null"                                        json:"status"`
	CreatedAt       time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                     json:"createdAt"`
	MergedAt        *time.Time `gorm:"column:merged_at;type:timestamptz"                                             json:"mergedAt,omitempty"`
}

// TableName maps PullRequest to the pull_requests table.
func (PullRequest) TableName() string {
	return "pull_requests"
}

// ReviewerAssignment is one row of the PR's reviewer set.
type ReviewerAssignment struct {
	ID            int64     `gorm:"primaryKey;column:id"                                                                  json:"id"`
	PullRequestID string    `gorm:"column:pull_request_id;type:varchar(255);not null;index:idx_reviewers_pull_request_id" json:"pull_request_id"`
	UserID        string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_reviewers_user_id"                 json:"user_id"`
	AssignedAt    time.Time `gorm:"column:assigned_at;type:timestamptz;not null;default:now()"                            json:"assigned_at"`
}

// TableName maps ReviewerAssignment to the pull_request_reviewers table.
func (ReviewerAssignment) TableName() string {
	return "pull_request_reviewers"
}
