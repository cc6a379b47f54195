// Package model holds statistics DTOs.
package model

// ReviewerLoad is the assignment count for one user.
type ReviewerLoad struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	TeamName        string `json:"team_name"`
	IsActive        bool   `json:"is_active"`
	AssignmentCount int    `json:"assignment_count"`
}

// ReviewerLoadResponse is the body of GET /stats/reviewers.
type ReviewerLoadResponse struct {
	Reviewers []ReviewerLoad `json:"reviewers"`
	Total     int            `json:"total"`
}

// PullRequestTotals aggregates PRs by status and reviewer count.
type PullRequestTotals struct {
	TotalPRs          int     `json:"total_prs"`
	OpenPRs           int     `json:"open_prs"`
	MergedPRs         int     `json:"merged_prs"`
	AvgReviewersPerPR float64 `json:"average_reviewers_per_pr"`
}

// PullRequestTotalsResponse is the body of GET /stats/pullRequests.
type PullRequestTotalsResponse struct {
	Statistics PullRequestTotals `json:"statistics"`
}
