package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/app/services"
	"github.com/rhydam1003/demo-erp/internal/middleware"
)

// FeedbackController handles feedback records and the final-submission gate
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

// GetFeedback returns the caller's feedback for one course
// @Summary Get feedback for a course
// @Description Returns the authenticated student's feedback record for the given course, or null when nothing has been submitted yet. Used to pre-fill the feedback form.
// @Tags feedback
// @Produce json
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback record or null"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed courseId"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feedback [get]
func (c *FeedbackController) GetFeedback(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course ID is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.GetForCourse(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Failed to load feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FeedbackResponse{Feedback: feedback},
	})
}

// SubmitFeedback saves the caller's feedback for one course
// @Summary Submit feedback for a course
// @Description Creates or overwrites the authenticated student's feedback for the given course. Rejected once the student has finally submitted.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackRequest true "Course and teacher ratings"
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackResponse} "Saved feedback record"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or out-of-range ratings"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Feedback already finally submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid feedback request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.Submit(ctx.Request.Context(), studentID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Int64("courseID", req.CourseID).Msg("Failed to submit feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FeedbackResponse{Feedback: feedback},
	})
}

// GetSubmission returns the caller's final-submission state
// @Summary Get final-submission state
// @Description Returns the authenticated student's final-submission record, or null when the student has never finalized.
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse} "Submission record or null"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feedback/final-submit [get]
func (c *FeedbackController) GetSubmission(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	submission, err := c.feedbackService.GetSubmission(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to load submission")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SubmissionResponse{Submission: submission},
	})
}

// FinalSubmit locks the caller's feedback for the semester
// @Summary Finalize feedback
// @Description Locks the authenticated student's feedback once every semester course has a submitted record. Calling again after locking succeeds without changing anything.
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FinalSubmitResponse} "Feedback locked"
// @Failure 400 {object} dto.ErrorResponse "Feedback missing for one or more courses"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feedback/final-submit [post]
func (c *FeedbackController) FinalSubmit(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	submission, err := c.feedbackService.FinalSubmit(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Final submit failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FinalSubmitResponse{
			Message:    "Feedback submitted successfully",
			Submission: submission,
		},
	})
}

// GetQuestions returns the fixed question sets
// @Summary List feedback questions
// @Description Returns the course and teacher question sets that answer arrays are positional against.
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.QuestionsResponse} "Question sets"
// @Security BearerAuth
// @Router /feedback/questions [get]
func (c *FeedbackController) GetQuestions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: c.feedbackService.Questions(),
	})
}
