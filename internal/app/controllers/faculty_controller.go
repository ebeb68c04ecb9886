package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/app/services"
	"github.com/ilokeshmewari/college-project/internal/middleware"
	"github.com/ilokeshmewari/college-project/internal/pkg/helpers"
)

// FacultyController handles the faculty directory endpoints
type FacultyController struct {
	facultyService services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		logger:         logger,
	}
}

// ListFaculty returns one page of the faculty directory
// @Summary List faculty
// @Description Returns one page of the faculty directory ordered by name
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyResponse} "Faculty list retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	faculty, pagination, err := c.facultyService.ListFaculty(ctx.Request.Context(), page, size)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list faculty")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       dto.FromFacultyList(faculty),
		Pagination: &pagination,
	})
}

// GetFaculty returns one faculty by id
// @Summary Get faculty
// @Description Returns a single faculty entry by id
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FromFaculty(faculty),
	})
}

// CreateFaculty creates a new faculty entry with an optional image
// @Summary Create faculty
// @Description Creates a new faculty entry from a multipart form. The optional image is stored before the record; if the upload fails, nothing is created.
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Faculty name"
// @Param department formData string false "Department"
// @Param email formData string false "Email address"
// @Param phone formData string false "Phone number"
// @Param image formData file false "Profile image"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Image upload failed or internal server error"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid faculty request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The image is optional; only a present-but-broken file part is an error
	image, err := ctx.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		c.logger.Warn().Err(err).Msg("Invalid image file part")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image file").WithField("image")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx.Request.Context(), &req, image)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create faculty")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("facultyID", faculty.ID).Str("name", faculty.Name).Msg("Faculty created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.FromFaculty(faculty),
	})
}

// DeleteFaculty deletes a faculty entry
// @Summary Delete faculty
// @Description Deletes a faculty entry by id. Feedback already submitted for the faculty is kept.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("facultyID", id).Msg("Failed to delete faculty")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("facultyID", id).Msg("Faculty deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Faculty deleted successfully"},
	})
}
