// Package router wires pull request routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/pullrequest/handler"
	prrepo "github.com/akarpov/pr-reviewer-service/internal/pullrequest/repository"
	"github.com/akarpov/pr-reviewer-service/internal/pullrequest/service"
	"github.com/akarpov/pr-reviewer-service/internal/selector"
	userrepo "github.com/akarpov/pr-reviewer-service/internal/user/repository"
)

// Register mounts pull request routes on the engine.
func Register(r *gin.Engine, db *gorm.DB, sel *selector.Selector, logger *zap.SugaredLogger) {
	svc := service.New(prrepo.New(db), userrepo.New(db), sel, db, logger)
	h := handler.New(svc, logger)

	r.POST("/pullRequest/create", h.Create)
	r.POST("/pullRequest/merge", h.Merge)
	r.POST("/pullRequest/reassign", h.Reassign)
}
