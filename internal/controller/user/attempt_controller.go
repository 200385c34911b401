package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/dto"
	"prepdeck/internal/middleware"
	"prepdeck/internal/service"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// StartAttempt godoc
// @Summary Start or resume a test attempt
// @Description Creates a new attempt for the test, or resumes the caller's open attempt (same question order, persisted answers, remaining time).
// @Tags Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.AttemptSessionDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	userID := middleware.UserID(ctx)

	sessionDTO, err := c.attemptService.StartOrResume(userID, testID)
	if err != nil {
		log.Error().Err(err).Str("test_id", testID.String()).Msg("StartAttempt: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sessionDTO)
}

// SelectAnswer godoc
// @Summary Record an answer for a question in a running attempt
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Param answer body dto.SelectAnswerDTO true "Question and selected option"
// @Success 200 {object} dto.AttemptStateDTO
// @Failure 409 {object} dto.ErrorResponse "No live session for this attempt"
// @Security BearerAuth
// @Router /attempts/{attempt_id}/answers [post]
func (c *AttemptController) SelectAnswer(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.SelectAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.attemptService.SelectAnswer(middleware.UserID(ctx), attemptID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// ToggleMark godoc
// @Summary Toggle the marked-for-review flag on a question
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Param mark body dto.ToggleMarkDTO true "Question to toggle"
// @Success 200 {object} dto.AttemptStateDTO
// @Security BearerAuth
// @Router /attempts/{attempt_id}/marks [post]
func (c *AttemptController) ToggleMark(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.ToggleMarkDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.attemptService.ToggleMark(middleware.UserID(ctx), attemptID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Navigate godoc
// @Summary Move the current-question pointer
// @Description Out-of-range indexes are ignored and the unchanged state is returned.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Param navigation body dto.NavigateDTO true "Target question index"
// @Success 200 {object} dto.AttemptStateDTO
// @Security BearerAuth
// @Router /attempts/{attempt_id}/navigate [post]
func (c *AttemptController) Navigate(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.NavigateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.attemptService.Navigate(middleware.UserID(ctx), attemptID, *req.Index)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitAttempt godoc
// @Summary Submit a running attempt for scoring
// @Description Cancels any pending autosave, scores the attempt and writes the terminal record. On a persistence failure the attempt stays open and the call can be retried.
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 503 {object} dto.ErrorResponse "Submission could not be persisted; retry"
// @Security BearerAuth
// @Router /attempts/{attempt_id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}

	result, err := c.attemptService.Submit(ctx.Request.Context(), middleware.UserID(ctx), attemptID)
	if err != nil {
		log.Error().Err(err).Str("attempt_id", attemptID.String()).Msg("SubmitAttempt: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetRecentAttempts godoc
// @Summary List the caller's most recent attempts across all tests
// @Tags Attempts
// @Produce json
// @Param limit query int false "Maximum rows to return (default 10, max 50)"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attempts/recent [get]
func (c *AttemptController) GetRecentAttempts(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	attempts, err := c.attemptService.GetRecentAttempts(middleware.UserID(ctx), limit)
	if err != nil {
		log.Error().Err(err).Msg("GetRecentAttempts: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttemptResult godoc
// @Summary Get the result of a completed attempt
// @Tags Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt still in progress"
// @Security BearerAuth
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttemptResult(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}

	result, err := c.attemptService.GetResult(middleware.UserID(ctx), attemptID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
