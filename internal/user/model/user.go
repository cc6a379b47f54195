// Package model holds the user entity, DTOs, and domain errors.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User belongs to exactly one team and is eligible for review
// assignment while active.
type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(255)"                           json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(255);not null"                            json:"username"`
	TeamName  string    `gorm:"column:team_name;type:varchar(255);not null;index:idx_users_team_name" json:"team_name"`
	// No gorm-side default: an explicit false must reach the INSERT
	// instead of being dropped for the column default.
	IsActive  bool      `gorm:"column:is_active;type:boolean;not null"                                json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"             json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"             json:"-"`
}

// TableName maps User to the users table.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate refreshes the update timestamp.
func (u *User) BeforeUpdate(_ *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
