package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/dto"
	"prepdeck/internal/middleware"
	"prepdeck/internal/service"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.Get(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetProfile: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Only the provided fields are changed.
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body dto.ProfileUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ProfileDTO
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.profileService.Update(middleware.UserID(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("UpdateProfile: service error")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
