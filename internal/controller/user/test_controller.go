package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/dto"
	"prepdeck/internal/middleware"
	"prepdeck/internal/service"
)

type TestController struct {
	testService    service.TestService
	attemptService service.AttemptService
}

func NewTestController(testService service.TestService, attemptService service.AttemptService) *TestController {
	return &TestController{testService: testService, attemptService: attemptService}
}

// GetAllTests godoc
// @Summary List all active tests
// @Tags Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests [get]
func (c *TestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.testService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("GetAllTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get a test definition
// @Description Duration, marking policy and question count. Questions themselves are only served inside an attempt.
// @Tags Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Security BearerAuth
// @Router /tests/{test_id} [get]
func (c *TestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	test, err := c.testService.GetTest(testID)
	if err != nil {
		log.Error().Err(err).Str("test_id", testID.String()).Msg("GetTestDetails: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// GetMyTestAttempts godoc
// @Summary List the caller's attempts for a test
// @Tags Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id}/my-attempts [get]
func (c *TestController) GetMyTestAttempts(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	attempts, err := c.attemptService.GetUserAttemptsForTest(middleware.UserID(ctx), testID)
	if err != nil {
		log.Error().Err(err).Str("test_id", testID.String()).Msg("GetMyTestAttempts: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
