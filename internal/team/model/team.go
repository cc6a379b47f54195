// Package model holds the team entity, DTOs, and domain errors.
package model

import "time"

// Team is a named group of users that forms the reviewer candidate pool.
type Team struct {
	TeamName  string    `gorm:"primaryKey;column:team_name;type:varchar(255)"             json:"team_name"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName maps Team to the teams table.
func (Team) TableName() string {
	return "teams"
}
