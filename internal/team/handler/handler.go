// Package handler exposes team HTTP endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akarpov/pr-reviewer-service/internal/team/model"
	"github.com/akarpov/pr-reviewer-service/internal/team/service"
)

// Handler handles team HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a team handler.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /team/add.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamExists):
			errorResponse(c, http.StatusBadRequest, "TEAM_EXISTS", "team_name already exists")
		case errors.Is(err, model.ErrInvalidTeamName), errors.Is(err, model.ErrNoMembers):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.logger.Errorw("create team failed", "team_name", req.TeamName, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": resp})
}

// GetTeam handles GET /team/get.
func (h *Handler) GetTeam(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "team_name parameter is required")
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), teamName)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
			return
		}
		h.logger.Errorw("get team failed", "team_name", teamName, "error", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}
