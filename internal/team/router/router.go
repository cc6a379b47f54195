// Package router wires team routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/team/handler"
	"github.com/akarpov/pr-reviewer-service/internal/team/repository"
	"github.com/akarpov/pr-reviewer-service/internal/team/service"
)

// Register mounts team routes on the engine.
func Register(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/team/add", h.CreateTeam)
	r.GET("/team/get", h.GetTeam)
}
