package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetFields godoc
// @Summary List active exam fields
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.FieldDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /fields [get]
func (c *CatalogController) GetFields(ctx *gin.Context) {
	fields, err := c.catalogService.GetFields()
	if err != nil {
		log.Error().Err(err).Msg("GetFields: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fields)
}

// GetSubjects godoc
// @Summary List active subjects under a field
// @Tags Catalog
// @Produce json
// @Param field_id path string true "Field ID"
// @Success 200 {array} dto.SubjectDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /fields/{field_id}/subjects [get]
func (c *CatalogController) GetSubjects(ctx *gin.Context) {
	fieldID, ok := parseIDParam(ctx, "field_id")
	if !ok {
		return
	}
	subjects, err := c.catalogService.GetSubjects(fieldID)
	if err != nil {
		log.Error().Err(err).Str("field_id", fieldID.String()).Msg("GetSubjects: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// GetTopics godoc
// @Summary List active topics under a subject
// @Tags Catalog
// @Produce json
// @Param subject_id path string true "Subject ID"
// @Success 200 {array} dto.TopicDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subjects/{subject_id}/topics [get]
func (c *CatalogController) GetTopics(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "subject_id")
	if !ok {
		return
	}
	topics, err := c.catalogService.GetTopics(subjectID)
	if err != nil {
		log.Error().Err(err).Str("subject_id", subjectID.String()).Msg("GetTopics: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetTopicQuestions godoc
// @Summary List practice questions for a topic
// @Description Correct options and explanations are withheld; use the practice answer check to reveal them.
// @Tags Catalog
// @Produce json
// @Param topic_id path string true "Topic ID"
// @Success 200 {array} dto.PracticeQuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Security BearerAuth
// @Router /topics/{topic_id}/questions [get]
func (c *CatalogController) GetTopicQuestions(ctx *gin.Context) {
	topicID, ok := parseIDParam(ctx, "topic_id")
	if !ok {
		return
	}
	questions, err := c.catalogService.GetTopicQuestions(topicID)
	if err != nil {
		log.Error().Err(err).Str("topic_id", topicID.String()).Msg("GetTopicQuestions: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
