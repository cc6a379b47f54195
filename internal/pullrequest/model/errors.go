package model

import "errors"

var (
	// ErrPullRequestExists is returned when the caller-assigned id is taken.
	ErrPullRequestExists = errors.New("PR id already exists")
	// ErrPullRequestNotFound is returned when the PR does not exist.
	ErrPullRequestNotFound = errors.New("pull request not found")
	// ErrPullRequestMerged is returned for mutations on a merged PR.
	ErrPullRequestMerged = errors.New("cannot reassign on merged PR")
	// ErrNotAssigned is returned when the departing user is not a reviewer.
	ErrNotAssigned = errors.New("reviewer is not assigned to this PR")
	// ErrNoCandidate is returned when the replacement pool is empty.
	ErrNoCandidate = errors.New("no active replacement candidate in team")
	// ErrAuthorNotFound is returned when the author id resolves to nobody.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrReviewerAlreadyAssigned is returned on duplicate assignment.
	ErrReviewerAlreadyAssigned = errors.New("reviewer already assigned to this PR")
	// ErrInvalidField is returned when a field exceeds storage limits.
	ErrInvalidField = errors.New("fields must be between 1 and 255 characters")
)
