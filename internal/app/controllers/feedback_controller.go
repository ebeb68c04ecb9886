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

// FeedbackController handles feedback submission and review
type FeedbackController struct {
	feedbackService services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// SubmitFeedback stores one feedback submission for a faculty
// @Summary Submit feedback
// @Description Stores one feedback row for the selected faculty. The submitter's email is taken from the session token; out-of-range ratings are clamped into 1..5.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitFeedbackRequest true "Feedback submission"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "No faculty selected or invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	_, email, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid feedback request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), email, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("facultyID", req.FacultyID).Msg("Failed to submit feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("feedbackID", feedback.ID).
		Int64("facultyID", feedback.FacultyID).
		Msg("Feedback submitted")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.FromFeedback(feedback),
	})
}

// ListFacultyFeedback returns one page of a faculty's feedback
// @Summary List faculty feedback
// @Description Returns one page of feedback for a faculty, newest first. Works for deleted faculty too since feedback rows are kept.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse} "Feedback retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id}/feedback [get]
func (c *FeedbackController) ListFacultyFeedback(ctx *gin.Context) {
	facultyID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	feedback, pagination, err := c.feedbackService.ListByFaculty(ctx.Request.Context(), facultyID, page, size)
	if err != nil {
		c.logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Failed to list feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       dto.FromFeedbackList(feedback),
		Pagination: &pagination,
	})
}
