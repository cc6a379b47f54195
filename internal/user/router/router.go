// Package router wires user routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/user/handler"
	"github.com/akarpov/pr-reviewer-service/internal/user/repository"
	"github.com/akarpov/pr-reviewer-service/internal/user/service"
)

// Register mounts user routes on the engine.
func Register(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/users/setIsActive", h.SetIsActive)
	r.GET("/users/getReview", h.ReviewList)
}
