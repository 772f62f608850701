package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/app/repositories"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

// feedbackService implements FeedbackService
type feedbackService struct {
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
	feedbackRepo   repositories.IFeedbackRepository
	submissionRepo repositories.ISubmissionRepository
	logger         zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	feedbackRepo repositories.IFeedbackRepository,
	submissionRepo repositories.ISubmissionRepository,
	logger zerolog.Logger,
) FeedbackService {
	return &feedbackService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		feedbackRepo:   feedbackRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// validateAnswers checks both answer arrays against the fixed question
// sets: exact length, every rating within 1..5. The client uses 0 as an
// "unanswered" sentinel, which fails the lower bound here.
func (s *feedbackService) validateAnswers(req *dto.SubmitFeedbackRequest) error {
	if len(req.CourseAnswers) != len(models.CourseQuestions) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("courseAnswers must have exactly %d ratings", len(models.CourseQuestions)))
	}

	if len(req.TeacherAnswers) != len(models.TeacherQuestions) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("teacherAnswers must have exactly %d ratings", len(models.TeacherQuestions)))
	}

	for _, rating := range req.CourseAnswers {
		if rating < models.RatingMin || rating > models.RatingMax {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "every rating must be between 1 and 5")
		}
	}

	for _, rating := range req.TeacherAnswers {
		if rating < models.RatingMin || rating > models.RatingMax {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "every rating must be between 1 and 5")
		}
	}

	return nil
}

// GetForCourse returns the student's feedback row for a course, or nil
// when none exists yet. Used to pre-fill the form before the final lock.
func (s *feedbackService) GetForCourse(ctx context.Context, studentID, courseID int64) (*models.Feedback, error) {
	return s.feedbackRepo.GetByStudentAndCourse(ctx, studentID, courseID)
}

// Submit upserts the (student, course) feedback row. Resubmitting before
// the final lock overwrites the previous answers; after the lock the
// request is rejected, upholding the rule that a locked student's
// feedback can no longer change.
func (s *feedbackService) Submit(ctx context.Context, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if err := s.validateAnswers(req); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking final submission: %w", err)
	}
	if submission != nil && submission.FinalSubmit {
		return nil, apperrors.ErrFeedbackLocked
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		StudentID:      studentID,
		CourseID:       req.CourseID,
		CourseAnswers:  req.CourseAnswers,
		TeacherAnswers: req.TeacherAnswers,
	}

	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int64("courseID", req.CourseID).
		Msg("Feedback submitted")

	return feedback, nil
}

// GetSubmission returns the caller's own final-submission row, or nil.
// There is deliberately no way to address another student's row.
func (s *feedbackService) GetSubmission(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error) {
	return s.submissionRepo.GetByStudent(ctx, studentID)
}

// FinalSubmit transitions a student from Open to Locked. The guard
// recomputes completeness from the store on every call: the count of
// submitted feedback rows restricted to the semester's courses must equal
// the course count. Locking an already-locked student succeeds and simply
// re-confirms the lock.
func (s *feedbackService) FinalSubmit(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading submission: %w", err)
	}

	if submission == nil || !submission.FinalSubmit {
		courses, err := s.courseRepo.GetBySemester(ctx, student.Semester)
		if err != nil {
			return nil, fmt.Errorf("error loading semester courses: %w", err)
		}

		courseIDs := make([]int64, 0, len(courses))
		for _, course := range courses {
			courseIDs = append(courseIDs, course.ID)
		}

		count, err := s.feedbackRepo.CountSubmitted(ctx, studentID, courseIDs)
		if err != nil {
			return nil, fmt.Errorf("error counting submitted feedback: %w", err)
		}

		if count != len(courses) {
			return nil, apperrors.ErrIncompleteFeedback
		}
	}

	result := &models.FeedbackSubmission{
		StudentID: studentID,
		Semester:  student.Semester,
	}

	if err := s.submissionRepo.Upsert(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", studentID).
		Int("semester", student.Semester).
		Msg("Feedback finalized")

	return result, nil
}

// Questions returns the fixed question sets answers are positional against
func (s *feedbackService) Questions() *dto.QuestionsResponse {
	return &dto.QuestionsResponse{
		CourseQuestions:  models.CourseQuestions,
		TeacherQuestions: models.TeacherQuestions,
	}
}
