package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/app/services"
	"github.com/rhydam1003/demo-erp/internal/middleware"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

// CourseController handles the semester course listing
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses returns the authenticated student's semester courses
// @Summary List semester courses
// @Description Returns every course of the student's current semester with its teacher and whether the student has already submitted feedback for it.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Course list"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	courseList, err := c.courseService.ListForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to list courses")
		// A vanished student still gets an empty courses array so clients
		// can render the page without a special case.
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			ctx.JSON(http.StatusNotFound, dto.APIResponse{
				Data:  dto.CourseListResponse{Courses: []dto.CourseWithStatus{}},
				Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: courseList,
	})
}
