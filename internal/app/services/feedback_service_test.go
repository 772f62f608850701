package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

type feedbackFixture struct {
	svc          FeedbackService
	studentRepo  *mockStudentRepo
	courseRepo   *mockCourseRepo
	feedbackRepo *mockFeedbackRepo
	subRepo      *mockSubmissionRepo
	student      *models.Student
	courseIDs    []int64
}

// newFeedbackFixture seeds one semester-5 student with four courses.
func newFeedbackFixture(t *testing.T) *feedbackFixture {
	t.Helper()

	studentRepo := newMockStudentRepo()
	courseRepo := newMockCourseRepo()
	feedbackRepo := newMockFeedbackRepo()
	subRepo := newMockSubmissionRepo()

	student := &models.Student{Name: "Asha Verma", Email: "asha@college.edu", RollNo: "CS21B042", Semester: 5, Branch: "CSE"}
	if err := studentRepo.Create(context.Background(), student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}

	teacher := &models.Teacher{ID: 1, Name: "Dr. Rajesh Kumar", Department: "Computer Science"}
	codes := []string{"CSE301", "CSE302", "CSE303", "CSE304"}
	courseIDs := make([]int64, 0, len(codes))
	for i, code := range codes {
		id := int64(i + 1)
		courseRepo.add(&models.Course{ID: id, Code: code, Name: code, Semester: 5, TeacherID: 1, Teacher: teacher})
		courseIDs = append(courseIDs, id)
	}

	return &feedbackFixture{
		svc:          NewFeedbackService(studentRepo, courseRepo, feedbackRepo, subRepo, zerolog.Nop()),
		studentRepo:  studentRepo,
		courseRepo:   courseRepo,
		feedbackRepo: feedbackRepo,
		subRepo:      subRepo,
		student:      student,
		courseIDs:    courseIDs,
	}
}

func fullRatings() []int32 {
	return []int32{5, 4, 3, 4, 5, 4, 3, 5}
}

func submitRequest(courseID int64) *dto.SubmitFeedbackRequest {
	return &dto.SubmitFeedbackRequest{
		CourseID:       courseID,
		CourseAnswers:  fullRatings(),
		TeacherAnswers: fullRatings(),
	}
}

func TestFeedbackSubmitAndGet(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	feedback, err := f.svc.Submit(ctx, f.student.ID, submitRequest(1))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !feedback.Submitted {
		t.Error("submitted feedback should be marked as submitted")
	}
	if feedback.SubmittedAt == nil {
		t.Error("submitted feedback should carry a timestamp")
	}

	loaded, err := f.svc.GetForCourse(ctx, f.student.ID, 1)
	if err != nil {
		t.Fatalf("GetForCourse failed: %v", err)
	}
	if loaded == nil || loaded.ID != feedback.ID {
		t.Fatal("GetForCourse should return the stored record")
	}

	// No record for another course yet
	none, err := f.svc.GetForCourse(ctx, f.student.ID, 2)
	if err != nil {
		t.Fatalf("GetForCourse failed: %v", err)
	}
	if none != nil {
		t.Error("GetForCourse should return nil for an unsubmitted course")
	}
}

func TestFeedbackResubmitOverwrites(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, f.student.ID, submitRequest(1))
	if err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}

	revised := submitRequest(1)
	revised.CourseAnswers = []int32{1, 1, 1, 1, 1, 1, 1, 1}
	second, err := f.svc.Submit(ctx, f.student.ID, revised)
	if err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("resubmission created a new row (id %d vs %d) instead of overwriting", second.ID, first.ID)
	}

	loaded, _ := f.svc.GetForCourse(ctx, f.student.ID, 1)
	if loaded.CourseAnswers[0] != 1 {
		t.Error("resubmission did not overwrite the stored answers")
	}
}

func TestFeedbackSubmitValidation(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.SubmitFeedbackRequest)
	}{
		{"too few course answers", func(r *dto.SubmitFeedbackRequest) { r.CourseAnswers = r.CourseAnswers[:5] }},
		{"too few teacher answers", func(r *dto.SubmitFeedbackRequest) { r.TeacherAnswers = r.TeacherAnswers[:7] }},
		{"rating zero", func(r *dto.SubmitFeedbackRequest) { r.CourseAnswers[3] = 0 }},
		{"rating above five", func(r *dto.SubmitFeedbackRequest) { r.TeacherAnswers[0] = 6 }},
		{"negative rating", func(r *dto.SubmitFeedbackRequest) { r.CourseAnswers[0] = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := submitRequest(1)
			tc.mutate(req)
			_, err := f.svc.Submit(ctx, f.student.ID, req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("got %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestFeedbackSubmitUnknownCourse(t *testing.T) {
	f := newFeedbackFixture(t)

	_, err := f.svc.Submit(context.Background(), f.student.ID, submitRequest(999))
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("got %v, want ErrCourseNotFound", err)
	}
}

func TestFinalSubmitRequiresAllCourses(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	// 3 of 4 courses submitted
	for _, courseID := range f.courseIDs[:3] {
		if _, err := f.svc.Submit(ctx, f.student.ID, submitRequest(courseID)); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	if _, err := f.svc.FinalSubmit(ctx, f.student.ID); !errors.Is(err, apperrors.ErrIncompleteFeedback) {
		t.Fatalf("got %v, want ErrIncompleteFeedback with 3 of 4 courses", err)
	}

	// Fourth course completes the set
	if _, err := f.svc.Submit(ctx, f.student.ID, submitRequest(f.courseIDs[3])); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	submission, err := f.svc.FinalSubmit(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("FinalSubmit failed with all courses submitted: %v", err)
	}
	if !submission.FinalSubmit {
		t.Error("submission should be locked after final submit")
	}
	if submission.Semester != 5 {
		t.Errorf("submission semester = %d, want 5", submission.Semester)
	}
}

func TestFinalSubmitIsIdempotent(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	for _, courseID := range f.courseIDs {
		if _, err := f.svc.Submit(ctx, f.student.ID, submitRequest(courseID)); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	first, err := f.svc.FinalSubmit(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("first FinalSubmit failed: %v", err)
	}

	second, err := f.svc.FinalSubmit(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("repeated FinalSubmit must succeed, got: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-lock created a new submission row (id %d vs %d)", second.ID, first.ID)
	}
	if !second.FinalSubmit {
		t.Error("submission should stay locked")
	}
}

func TestSubmitRejectedAfterLock(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	for _, courseID := range f.courseIDs {
		if _, err := f.svc.Submit(ctx, f.student.ID, submitRequest(courseID)); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	if _, err := f.svc.FinalSubmit(ctx, f.student.ID); err != nil {
		t.Fatalf("FinalSubmit failed: %v", err)
	}

	_, err := f.svc.Submit(ctx, f.student.ID, submitRequest(1))
	if !errors.Is(err, apperrors.ErrFeedbackLocked) {
		t.Errorf("got %v, want ErrFeedbackLocked after final submit", err)
	}
}

func TestFinalSubmitUnknownStudent(t *testing.T) {
	f := newFeedbackFixture(t)

	_, err := f.svc.FinalSubmit(context.Background(), 9999)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("got %v, want ErrStudentNotFound", err)
	}
}

func TestGetSubmissionStates(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	submission, err := f.svc.GetSubmission(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if submission != nil {
		t.Fatal("GetSubmission should return nil before any final submit")
	}

	for _, courseID := range f.courseIDs {
		if _, err := f.svc.Submit(ctx, f.student.ID, submitRequest(courseID)); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	if _, err := f.svc.FinalSubmit(ctx, f.student.ID); err != nil {
		t.Fatalf("FinalSubmit failed: %v", err)
	}

	submission, err = f.svc.GetSubmission(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if submission == nil || !submission.FinalSubmit {
		t.Fatal("GetSubmission should return the locked record after final submit")
	}
}

func TestQuestionsMatchAnswerLengths(t *testing.T) {
	f := newFeedbackFixture(t)

	questions := f.svc.Questions()
	if len(questions.CourseQuestions) != len(models.CourseQuestions) {
		t.Errorf("got %d course questions, want %d", len(questions.CourseQuestions), len(models.CourseQuestions))
	}
	if len(questions.TeacherQuestions) != len(models.TeacherQuestions) {
		t.Errorf("got %d teacher questions, want %d", len(questions.TeacherQuestions), len(models.TeacherQuestions))
	}
}
