package model

import "errors"

var (
	// ErrUserNotFound is returned when the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID is returned for an empty or oversized user id.
	ErrInvalidUserID = errors.New("user_id must be between 1 and 255 characters")
)
