// Package repository implements team persistence on gorm.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	teammodel "github.com/akarpov/pr-reviewer-service/internal/team/model"
	usermodel "github.com/akarpov/pr-reviewer-service/internal/user/model"
)

// Repository is the team data access interface.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, teamName string) (*teammodel.Team, error)

	// GetByName finds a team by name.
	GetByName(ctx context.Context, teamName string) (*teammodel.Team, error)

	// UpsertMember creates or updates a user inside the team.
	UpsertMember(ctx context.Context, teamName string, member teammodel.Member) (*usermodel.User, error)

	// Members lists the team's members ordered by user id.
	Members(ctx context.Context, teamName string) ([]teammodel.Member, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a team repository.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, teamName string) (*teammodel.Team, error) {
	team := &teammodel.Team{TeamName: teamName}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if isDuplicate(err) {
			return nil, teammodel.ErrTeamExists
		}
		return nil, err
	}
	return team, nil
}

func (r *repository) GetByName(ctx context.Context, teamName string) (*teammodel.Team, error) {
	var team teammodel.Team
	err := r.db.WithContext(ctx).
		Where("team_name = ?", teamName).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teammodel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) UpsertMember(ctx context.Context, teamName string, member teammodel.Member) (*usermodel.User, error) {
	// Omitted is_active means active; an explicit false is kept as is.
	isActive := true
	if member.IsActive != nil {
		isActive = *member.IsActive
	}

	user := &usermodel.User{
		UserID:   member.UserID,
		Username: member.Username,
		TeamName: teamName,
		IsActive: isActive,
	}

	// Save upserts by primary key, so re-adding a known user moves
	// them into this team.
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *repository) Members(ctx context.Context, teamName string) ([]teammodel.Member, error) {
	var members []teammodel.Member
	err := r.db.WithContext(ctx).
		Table("users").
		Select("user_id, username, is_active").
		Where("team_name = ?", teamName).
		Order("user_id ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []teammodel.Member{}
	}
	return members, nil
}

// isDuplicate reports whether err is a unique constraint violation.
// Covers gorm's translated error plus raw postgres and sqlite messages.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
