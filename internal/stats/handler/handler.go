// Package handler exposes statistics HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akarpov/pr-reviewer-service/internal/stats/service"
)

// Handler handles statistics HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a statistics handler.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ReviewerLoad handles GET /stats/reviewers.
func (h *Handler) ReviewerLoad(c *gin.Context) {
	resp, err := h.service.ReviewerLoad(c.Request.Context())
	if err != nil {
		h.logger.Errorw("reviewer load stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PullRequestTotals handles GET /stats/pullRequests.
func (h *Handler) PullRequestTotals(c *gin.Context) {
	resp, err := h.service.PullRequestTotals(c.Request.Context())
	if err != nil {
		h.logger.Errorw("pull request stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
