// Package handler exposes pull request HTTP endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	prmodel "github.com/akarpov/pr-reviewer-service/internal/pullrequest/model"
	"github.com/akarpov/pr-reviewer-service/internal/pullrequest/service"
	usermodel "github.com/akarpov/pr-reviewer-service/internal/user/model"
)

// Handler handles pull request HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a pull request handler.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /pullRequest/create.
func (h *Handler) Create(c *gin.Context) {
	var req prmodel.CreatePullRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prmodel.ErrAuthorNotFound):
			errorResponse(c, http.StatusNotFound, "AUTHOR_NOT_FOUND", "author not found")
		case errors.Is(err, prmodel.ErrPullRequestExists):
			errorResponse(c, http.StatusBadRequest, "PR_EXISTS", "PR id already exists")
		case errors.Is(err, prmodel.ErrInvalidField):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.logger.Errorw("create pull request failed", "pull_request_id", req.PullRequestID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pr": resp})
}

// Merge handles POST /pullRequest/merge.
func (h *Handler) Merge(c *gin.Context) {
	var req prmodel.MergePullRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Merge(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prmodel.ErrPullRequestNotFound):
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
		case errors.Is(err, prmodel.ErrInvalidField):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.logger.Errorw("merge pull request failed", "pull_request_id", req.PullRequestID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"pr": resp})
}

// Reassign handles POST /pullRequest/reassign.
func (h *Handler) Reassign(c *gin.Context) {
	var req prmodel.ReassignReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.service.Reassign(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, prmodel.ErrPullRequestNotFound), errors.Is(err, usermodel.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
		case errors.Is(err, prmodel.ErrPullRequestMerged):
			errorResponse(c, http.StatusConflict, "PR_MERGED", "cannot reassign on merged PR")
		case errors.Is(err, prmodel.ErrNotAssigned):
			errorResponse(c, http.StatusConflict, "NOT_ASSIGNED", "reviewer is not assigned to this PR")
		case errors.Is(err, prmodel.ErrNoCandidate):
			errorResponse(c, http.StatusConflict, "NO_CANDIDATE", "no active replacement candidate in team")
		case errors.Is(err, prmodel.ErrInvalidField):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.logger.Errorw("reassign reviewer failed",
				"pull_request_id", req.PullRequestID,
				"old_reviewer_id", req.OldReviewerID,
				"error", err,
			)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
