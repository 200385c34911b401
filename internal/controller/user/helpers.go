package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prepdeck/internal/dto"
	"prepdeck/internal/service"
	"prepdeck/internal/session"
)

// parseIDParam reads a uuid path parameter, answering 400 itself on failure.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service-layer sentinels onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrTopicNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAttemptForbidden):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrAttemptNotCompleted),
		errors.Is(err, session.ErrSubmitting):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, session.ErrSubmitFailed):
		// Recoverable: the session is back InProgress, the client may retry.
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Failed to save submission, please retry", Details: []string{err.Error()}})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
