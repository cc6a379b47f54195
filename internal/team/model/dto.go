package model

// Member is a team member as it appears in requests and responses.
// IsActive is a pointer so that an explicit false survives binding;
// omitting it means active.
type Member struct {
	UserID   string `json:"user_id"  binding:"required"`
	Username string `json:"username" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// CreateTeamRequest is the body of POST /team/add.
type CreateTeamRequest struct {
	TeamName string   `json:"team_name" binding:"required"`
	Members  []Member `json:"members"  binding:"required,dive"`
}

// TeamResponse is a team with its members.
type TeamResponse struct {
	TeamName string   `json:"team_name"`
	Members  []Member `json:"members"`
}
