package model

// SetIsActiveRequest is the body of POST /users/setIsActive.
// IsActive is a pointer so that an explicit false passes binding.
type SetIsActiveRequest struct {
	UserID   string `json:"user_id"   binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// SetIsActiveResponse wraps the updated user.
type SetIsActiveResponse struct {
	User User `json:"user"`
}

// ReviewItem is a short PR representation in review listings.
type ReviewItem struct {
	PullRequestID   string `json:"pull_request_id"`
	PullRequestName string `json:"pull_request_name"`
	AuthorID        string `json:"author_id"`
	Status          string `json:"status"`
}

// ReviewListResponse is the body of GET /users/getReview.
type ReviewListResponse struct {
	UserID       string       `json:"user_id"`
	PullRequests []ReviewItem `json:"pull_requests"`
}
