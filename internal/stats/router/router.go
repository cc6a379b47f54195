// Package router wires statistics routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/stats/handler"
	"github.com/akarpov/pr-reviewer-service/internal/stats/repository"
	"github.com/akarpov/pr-reviewer-service/internal/stats/service"
)

// Register mounts statistics routes on the engine.
func Register(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/stats/reviewers", h.ReviewerLoad)
	r.GET("/stats/pullRequests", h.PullRequestTotals)
}
