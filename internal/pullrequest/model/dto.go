package model

// CreatePullRequestRequest is the body of POST /pullRequest/create.
type CreatePullRequestRequest struct {
	PullRequestID   string `json:"pull_request_id"   binding:"required"`
	PullRequestName string `json:"pull_request_name" binding:"required"`
	AuthorID        string `json:"author_id"         binding:"required"`
}

// MergePullRequestRequest is the body of POST /pullRequest/merge.
type MergePullRequestRequest struct {
	PullRequestID string `json:"pull_request_id" binding:"required"`
}

// ReassignReviewerRequest is the body of POST /pullRequest/reassign.
type ReassignReviewerRequest struct {
	PullRequestID string `json:"pull_request_id" binding:"required"`
	OldReviewerID string `json:"old_reviewer_id" binding:"required"`
}

// PullRequestResponse is the PR representation returned by the lifecycle
// endpoints. MergedAt is set only for merged PRs.
type PullRequestResponse struct {
	PullRequestID     string   `json:"pull_request_id"`
	PullRequestName   string   `json:"pull_request_name"`
	AuthorID          string   `json:"author_id"`
	Status            string   `json:"status"`
	AssignedReviewers []string `json:"assigned_reviewers"`
	MergedAt          string   `json:"merged_at,omitempty"`
}

// ReassignReviewerResponse pairs the updated PR with the replacement id.
type ReassignReviewerResponse struct {
	PR         *PullRequestResponse `json:"pr"`
	ReplacedBy string               `json:"replaced_by"`
}
