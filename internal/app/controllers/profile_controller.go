package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/app/services"
	"github.com/ilokeshmewari/college-project/internal/middleware"
)

// ProfileController handles profile operations for the signed-in user
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile retrieves the profile of the authenticated user
// @Summary Get own profile
// @Description Returns the signed-in user's profile, creating a bare row on first visit. The complete flag tells the client whether the profile form still needs to be filled in.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, email, ok := requireSession(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetOrCreate(ctx.Request.Context(), userID, email)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FromProfile(profile),
	})
}

// SaveProfile upserts the profile of the authenticated user
// @Summary Save own profile
// @Description Saves the profile form for the signed-in user. The same endpoint completes a fresh profile and edits an existing one.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [put]
func (c *ProfileController) SaveProfile(ctx *gin.Context) {
	userID, email, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profileService.Save(ctx.Request.Context(), userID, email, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to save profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", userID).Msg("Profile saved")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FromProfile(profile),
	})
}
