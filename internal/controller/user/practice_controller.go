package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/dto"
	"prepdeck/internal/middleware"
	"prepdeck/internal/service"
)

type PracticeController struct {
	practiceService service.PracticeService
}

func NewPracticeController(practiceService service.PracticeService) *PracticeController {
	return &PracticeController{practiceService: practiceService}
}

// CheckAnswer godoc
// @Summary Check a practice answer
// @Description Returns correctness and the explanation immediately, and bumps the caller's per-topic progress counters.
// @Tags Practice
// @Accept json
// @Produce json
// @Param answer body dto.PracticeAnswerDTO true "Question and selected option"
// @Success 200 {object} dto.PracticeFeedbackDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Security BearerAuth
// @Router /practice/answers [post]
func (c *PracticeController) CheckAnswer(ctx *gin.Context) {
	var req dto.PracticeAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	feedback, err := c.practiceService.CheckAnswer(middleware.UserID(ctx), req)
	if err != nil {
		log.Error().Err(err).Str("question_id", req.QuestionID.String()).Msg("CheckAnswer: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// GetProgress godoc
// @Summary Get the caller's per-topic practice progress
// @Tags Practice
// @Produce json
// @Success 200 {array} dto.TopicProgressDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /practice/progress [get]
func (c *PracticeController) GetProgress(ctx *gin.Context) {
	progress, err := c.practiceService.GetProgress(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetProgress: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
