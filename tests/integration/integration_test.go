//go:build integration
// +build integration

// Package integration exercises the HTTP API against a real PostgreSQL
// instance with the production migrations applied.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/akarpov/pr-reviewer-service/internal/database"
	"github.com/akarpov/pr-reviewer-service/internal/health"
	"github.com/akarpov/pr-reviewer-service/internal/middleware"
	prrouter "github.com/akarpov/pr-reviewer-service/internal/pullrequest/router"
	"github.com/akarpov/pr-reviewer-service/internal/selector"
	statsrouter "github.com/akarpov/pr-reviewer-service/internal/stats/router"
	teamrouter "github.com/akarpov/pr-reviewer-service/internal/team/router"
	userrouter "github.com/akarpov/pr-reviewer-service/internal/user/router"
)

type IntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	router    *gin.Engine
}

func (s *IntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pr_reviewer_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	db, err := gorm.Open(pgdriver.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(s.T(), err)
	s.db = db

	s.T().Setenv("MIGRATIONS_PATH", "../../migrations")
	require.NoError(s.T(), database.Migrate(db))

	logger := zap.NewNop().Sugar()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.GET("/health", health.New(db, logger).Check)

	sel := selector.New(selector.NewSource(1))
	teamrouter.Register(r, db, logger)
	userrouter.Register(r, db, logger)
	prrouter.Register(r, db, sel, logger)
	statsrouter.Register(r, db, logger)
	s.router = r
}

func (s *IntegrationSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *IntegrationSuite) SetupTest() {
	s.db.Exec("TRUNCATE TABLE pull_request_reviewers, pull_requests, users, teams CASCADE")
}

func (s *IntegrationSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var fields map[string]json.RawMessage
	if len(w.Body.Bytes()) > 0 {
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &fields))
	}
	return w, fields
}

func (s *IntegrationSuite) errorCode(fields map[string]json.RawMessage) string {
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(s.T(), json.Unmarshal(fields["error"], &body))
	return body.Code
}

func (s *IntegrationSuite) createTeam(name string, memberIDs ...string) {
	members := make([]map[string]interface{}, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, map[string]interface{}{
			"user_id": id, "username": "user " + id, "is_active": true,
		})
	}
	w, _ := s.do(http.MethodPost, "/team/add", map[string]interface{}{
		"team_name": name, "members": members,
	})
	require.Equal(s.T(), http.StatusCreated, w.Code)
}

func (s *IntegrationSuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *IntegrationSuite) TestTeamLifecycle() {
	s.createTeam("backend", "u1", "u2")

	w, _ := s.do(http.MethodPost, "/team/add", map[string]interface{}{
		"team_name": "backend",
		"members":   []map[string]interface{}{{"user_id": "u3", "username": "user u3"}},
	})
	s.Equal(http.StatusBadRequest, w.Code)

	w, fields := s.do(http.MethodGet, "/team/get?team_name=backend", nil)
	s.Equal(http.StatusOK, w.Code)
	var members []map[string]interface{}
	s.Require().NoError(json.Unmarshal(fields["members"], &members))
	s.Len(members, 2)
}

func (s *IntegrationSuite) TestPullRequestFlow() {
	s.createTeam("backend", "u1", "u2", "u3", "u4")

	w, fields := s.do(http.MethodPost, "/pullRequest/create", map[string]interface{}{
		"pull_request_id": "pr-1", "pull_request_name": "Feature", "author_id": "u1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var pr struct {
		AssignedReviewers []string `json:"assigned_reviewers"`
		Status            string   `json:"status"`
	}
	s.Require().NoError(json.Unmarshal(fields["pr"], &pr))
	s.Len(pr.AssignedReviewers, 2)
	s.NotContains(pr.AssignedReviewers, "u1")
	s.Equal("OPEN", pr.Status)

	// Duplicate id.
	w, fields = s.do(http.MethodPost, "/pullRequest/create", map[string]interface{}{
		"pull_request_id": "pr-1", "pull_request_name": "Again", "author_id": "u1",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("PR_EXISTS", s.errorCode(fields))

	// The reviewer sees the PR in their queue.
	reviewer := pr.AssignedReviewers[0]
	w, fields = s.do(http.MethodGet, "/users/getReview?user_id="+reviewer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var queue []map[string]interface{}
	s.Require().NoError(json.Unmarshal(fields["pull_requests"], &queue))
	s.Len(queue, 1)

	// Reassignment picks someone outside the current set.
	w, fields = s.do(http.MethodPost, "/pullRequest/reassign", map[string]interface{}{
		"pull_request_id": "pr-1", "old_reviewer_id": reviewer,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	var replacedBy string
	s.Require().NoError(json.Unmarshal(fields["replaced_by"], &replacedBy))
	s.NotEqual(reviewer, replacedBy)
	s.NotEqual("u1", replacedBy)

	// Merge, then verify it is terminal for reassignment.
	w, fields = s.do(http.MethodPost, "/pullRequest/merge", map[string]interface{}{
		"pull_request_id": "pr-1",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(fields["pr"], &pr))
	s.Equal("MERGED", pr.Status)

	w, fields = s.do(http.MethodPost, "/pullRequest/reassign", map[string]interface{}{
		"pull_request_id": "pr-1", "old_reviewer_id": replacedBy,
	})
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("PR_MERGED", s.errorCode(fields))

	// Repeated merge is a no-op.
	w, _ = s.do(http.MethodPost, "/pullRequest/merge", map[string]interface{}{
		"pull_request_id": "pr-1",
	})
	s.Equal(http.StatusOK, w.Code)
}

func (s *IntegrationSuite) TestDeactivatedUsersAreSkipped() {
	s.createTeam("backend", "u1", "u2", "u3")

	w, _ := s.do(http.MethodPost, "/users/setIsActive", map[string]interface{}{
		"user_id": "u2", "is_active": false,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	w, fields := s.do(http.MethodPost, "/pullRequest/create", map[string]interface{}{
		"pull_request_id": "pr-1", "pull_request_name": "Feature", "author_id": "u1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var pr struct {
		AssignedReviewers []string `json:"assigned_reviewers"`
	}
	s.Require().NoError(json.Unmarshal(fields["pr"], &pr))
	s.Equal([]string{"u3"}, pr.AssignedReviewers)
}

func (s *IntegrationSuite) TestMemberInactiveFromTeamCreation() {
	// An is_active=false declared at team creation must stick and keep
	// the member out of the reviewer pool.
	w, _ := s.do(http.MethodPost, "/team/add", map[string]interface{}{
		"team_name": "backend",
		"members": []map[string]interface{}{
			{"user_id": "u1", "username": "user u1", "is_active": true},
			{"user_id": "u2", "username": "user u2", "is_active": false},
			{"user_id": "u3", "username": "user u3", "is_active": true},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w, fields := s.do(http.MethodGet, "/team/get?team_name=backend", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var members []struct {
		UserID   string `json:"user_id"`
		IsActive bool   `json:"is_active"`
	}
	s.Require().NoError(json.Unmarshal(fields["members"], &members))
	s.Require().Len(members, 3)
	s.Equal("u2", members[1].UserID)
	s.False(members[1].IsActive)

	w, fields = s.do(http.MethodPost, "/pullRequest/create", map[string]interface{}{
		"pull_request_id": "pr-1", "pull_request_name": "Feature", "author_id": "u1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var pr struct {
		AssignedReviewers []string `json:"assigned_reviewers"`
	}
	s.Require().NoError(json.Unmarshal(fields["pr"], &pr))
	s.Equal([]string{"u3"}, pr.AssignedReviewers)
}

func (s *IntegrationSuite) TestStats() {
	s.createTeam("backend", "u1", "u2", "u3")

	w, _ := s.do(http.MethodPost, "/pullRequest/create", map[string]interface{}{
		"pull_request_id": "pr-1", "pull_request_name": "Feature", "author_id": "u1",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w, fields := s.do(http.MethodGet, "/stats/pullRequests", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var stats struct {
		TotalPRs int `json:"total_prs"`
		OpenPRs  int `json:"open_prs"`
	}
	s.Require().NoError(json.Unmarshal(fields["statistics"], &stats))
	s.Equal(1, stats.TotalPRs)
	s.Equal(1, stats.OpenPRs)

	w, _ = s.do(http.MethodGet, "/stats/reviewers", nil)
	s.Equal(http.StatusOK, w.Code)
}

func TestIntegration(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}
