package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/dto"
	"prepdeck/internal/middleware"
	"prepdeck/internal/service"
)

type BookmarkController struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkController(bookmarkService service.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkService: bookmarkService}
}

// ListBookmarks godoc
// @Summary List the caller's bookmarked questions
// @Tags Bookmarks
// @Produce json
// @Success 200 {array} dto.BookmarkDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /bookmarks [get]
func (c *BookmarkController) ListBookmarks(ctx *gin.Context) {
	bookmarks, err := c.bookmarkService.List(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ListBookmarks: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bookmarks)
}

// AddBookmark godoc
// @Summary Bookmark a question
// @Description Idempotent: bookmarking an already-bookmarked question succeeds without duplicating.
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param bookmark body dto.BookmarkCreateDTO true "Question to bookmark"
// @Success 204
// @Security BearerAuth
// @Router /bookmarks [post]
func (c *BookmarkController) AddBookmark(ctx *gin.Context) {
	var req dto.BookmarkCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.bookmarkService.Add(middleware.UserID(ctx), req); err != nil {
		log.Error().Err(err).Str("question_id", req.QuestionID.String()).Msg("AddBookmark: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Tags Bookmarks
// @Param question_id path string true "Question ID"
// @Success 204
// @Security BearerAuth
// @Router /bookmarks/{question_id} [delete]
func (c *BookmarkController) RemoveBookmark(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.bookmarkService.Remove(middleware.UserID(ctx), questionID); err != nil {
		log.Error().Err(err).Str("question_id", questionID.String()).Msg("RemoveBookmark: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
