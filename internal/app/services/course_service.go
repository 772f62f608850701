package services

import (
	"context"
	"fmt"

	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/app/repositories"
)

// courseService implements CourseService
type courseService struct {
	studentRepo  repositories.IStudentRepository
	courseRepo   repositories.ICourseRepository
	feedbackRepo repositories.IFeedbackRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	feedbackRepo repositories.IFeedbackRepository,
) CourseService {
	return &courseService{
		studentRepo:  studentRepo,
		courseRepo:   courseRepo,
		feedbackRepo: feedbackRepo,
	}
}

// ListForStudent returns every course of the student's semester together
// with the student's own feedback status per course. feedbackCompleted is
// computed strictly against the requesting student's id.
func (s *courseService) ListForStudent(ctx context.Context, studentID int64) (*dto.CourseListResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetBySemester(ctx, student.Semester)
	if err != nil {
		return nil, fmt.Errorf("error loading semester courses: %w", err)
	}

	courseIDs := make([]int64, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}

	submitted, err := s.feedbackRepo.GetSubmittedCourseIDs(ctx, studentID, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading feedback status: %w", err)
	}

	response := &dto.CourseListResponse{
		Courses: make([]dto.CourseWithStatus, 0, len(courses)),
	}

	for _, course := range courses {
		item := dto.CourseWithStatus{
			ID:                course.ID,
			Code:              course.Code,
			Name:              course.Name,
			Semester:          course.Semester,
			FeedbackCompleted: submitted[course.ID],
		}
		if course.Teacher != nil {
			item.Teacher = dto.TeacherData{
				ID:         course.Teacher.ID,
				Name:       course.Teacher.Name,
				Department: course.Teacher.Department,
			}
		}
		response.Courses = append(response.Courses, item)
	}

	return response, nil
}
