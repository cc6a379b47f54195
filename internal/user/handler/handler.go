// Package handler exposes user HTTP endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akarpov/pr-reviewer-service/internal/user/model"
	"github.com/akarpov/pr-reviewer-service/internal/user/service"
)

// Handler handles user HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a user handler.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SetIsActive handles POST /users/setIsActive.
func (h *Handler) SetIsActive(c *gin.Context) {
	var req model.SetIsActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.SetIsActive(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
		case errors.Is(err, model.ErrInvalidUserID):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.logger.Errorw("set is_active failed", "user_id", req.UserID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReviewList handles GET /users/getReview.
func (h *Handler) ReviewList(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id parameter is required")
		return
	}

	resp, err := h.service.ReviewList(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
		case errors.Is(err, model.ErrInvalidUserID):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.logger.Errorw("review list failed", "user_id", userID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
