package model

import "errors"

var (
	// ErrTeamExists is returned when the team name is already taken.
	ErrTeamExists = errors.New("team_name already exists")
	// ErrTeamNotFound is returned when the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName is returned for an empty or oversized team name.
	ErrInvalidTeamName = errors.New("team_name must be between 1 and 255 characters")
	// ErrNoMembers is returned when a team is created without members.
	ErrNoMembers = errors.New("members must not be empty")
)
