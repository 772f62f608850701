package services

import (
	"context"
	"time"

	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. Each one keeps
// the same invariants as the real tables: unique student email and roll
// number, one feedback row per (student, course), one submission row per
// student.

type mockStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	for _, existing := range m.students {
		if existing.Email == student.Email || existing.RollNo == student.RollNo {
			return apperrors.ErrStudentAlreadyExists
		}
	}
	student.ID = m.nextID
	m.nextID++
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *mockStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, student := range m.students {
		if student.Email == email {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentRepo) ExistsByEmailOrRollNo(ctx context.Context, email, rollNo string) (bool, error) {
	for _, student := range m.students {
		if student.Email == email || student.RollNo == rollNo {
			return true, nil
		}
	}
	return false, nil
}

type mockCourseRepo struct {
	courses map[int64]*models.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]*models.Course)}
}

func (m *mockCourseRepo) add(course *models.Course) {
	m.courses[course.ID] = course
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (m *mockCourseRepo) GetBySemester(ctx context.Context, semester int) ([]*models.Course, error) {
	var result []*models.Course
	for _, course := range m.courses {
		if course.Semester == semester {
			result = append(result, course)
		}
	}
	return result, nil
}

type feedbackKey struct {
	studentID int64
	courseID  int64
}

type mockFeedbackRepo struct {
	feedbacks map[feedbackKey]*models.Feedback
	nextID    int64
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{feedbacks: make(map[feedbackKey]*models.Feedback), nextID: 1}
}

func (m *mockFeedbackRepo) Upsert(ctx context.Context, feedback *models.Feedback) error {
	key := feedbackKey{feedback.StudentID, feedback.CourseID}
	now := time.Now()
	if existing, ok := m.feedbacks[key]; ok {
		feedback.ID = existing.ID
	} else {
		feedback.ID = m.nextID
		m.nextID++
	}
	feedback.Submitted = true
	feedback.SubmittedAt = &now
	m.feedbacks[key] = feedback
	return nil
}

func (m *mockFeedbackRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Feedback, error) {
	feedback, ok := m.feedbacks[feedbackKey{studentID, courseID}]
	if !ok {
		return nil, nil
	}
	return feedback, nil
}

func (m *mockFeedbackRepo) GetSubmittedCourseIDs(ctx context.Context, studentID int64, courseIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	for _, courseID := range courseIDs {
		if feedback, ok := m.feedbacks[feedbackKey{studentID, courseID}]; ok && feedback.Submitted {
			result[courseID] = true
		}
	}
	return result, nil
}

func (m *mockFeedbackRepo) CountSubmitted(ctx context.Context, studentID int64, courseIDs []int64) (int, error) {
	submitted, err := m.GetSubmittedCourseIDs(ctx, studentID, courseIDs)
	if err != nil {
		return 0, err
	}
	return len(submitted), nil
}

type mockSubmissionRepo struct {
	submissions map[int64]*models.FeedbackSubmission
	nextID      int64
	upsertCalls int
}

func newMockSubmissionRepo() *mockSubmissionRepo {
	return &mockSubmissionRepo{submissions: make(map[int64]*models.FeedbackSubmission), nextID: 1}
}

func (m *mockSubmissionRepo) GetByStudent(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error) {
	submission, ok := m.submissions[studentID]
	if !ok {
		return nil, nil
	}
	return submission, nil
}

func (m *mockSubmissionRepo) Upsert(ctx context.Context, submission *models.FeedbackSubmission) error {
	m.upsertCalls++
	now := time.Now()
	if existing, ok := m.submissions[submission.StudentID]; ok {
		submission.ID = existing.ID
	} else {
		submission.ID = m.nextID
		m.nextID++
	}
	submission.FinalSubmit = true
	submission.SubmittedAt = &now
	m.submissions[submission.StudentID] = submission
	return nil
}
