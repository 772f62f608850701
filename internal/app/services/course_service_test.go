package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

func seedSemesterFixture(studentRepo *mockStudentRepo, courseRepo *mockCourseRepo) *models.Student {
	student := &models.Student{
		Name:     "Asha Verma",
		Email:    "asha@college.edu",
		RollNo:   "CS21B042",
		Semester: 5,
		Branch:   "CSE",
	}
	_ = studentRepo.Create(context.Background(), student)

	teacher := &models.Teacher{ID: 1, Name: "Dr. Rajesh Kumar", Department: "Computer Science"}
	courseRepo.add(&models.Course{ID: 1, Code: "CSE301", Name: "Database Management Systems", Semester: 5, TeacherID: 1, Teacher: teacher})
	courseRepo.add(&models.Course{ID: 2, Code: "CSE302", Name: "Operating Systems", Semester: 5, TeacherID: 1, Teacher: teacher})
	// Different semester, must never show up for this student
	courseRepo.add(&models.Course{ID: 3, Code: "CSE401", Name: "Compilers", Semester: 7, TeacherID: 1, Teacher: teacher})

	return student
}

func TestCourseServiceListForStudent(t *testing.T) {
	studentRepo := newMockStudentRepo()
	courseRepo := newMockCourseRepo()
	feedbackRepo := newMockFeedbackRepo()
	student := seedSemesterFixture(studentRepo, courseRepo)

	svc := NewCourseService(studentRepo, courseRepo, feedbackRepo)

	resp, err := svc.ListForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("ListForStudent failed: %v", err)
	}

	if len(resp.Courses) != 2 {
		t.Fatalf("got %d courses, want 2 (semester filter)", len(resp.Courses))
	}
	for _, course := range resp.Courses {
		if course.Semester != 5 {
			t.Errorf("course %s from semester %d leaked into the listing", course.Code, course.Semester)
		}
		if course.FeedbackCompleted {
			t.Errorf("course %s should start with feedbackCompleted=false", course.Code)
		}
		if course.Teacher.Name == "" {
			t.Errorf("course %s missing teacher data", course.Code)
		}
	}
}

func TestCourseServiceFeedbackStatusIsPerStudent(t *testing.T) {
	studentRepo := newMockStudentRepo()
	courseRepo := newMockCourseRepo()
	feedbackRepo := newMockFeedbackRepo()
	student := seedSemesterFixture(studentRepo, courseRepo)

	other := &models.Student{Name: "Ravi", Email: "ravi@college.edu", RollNo: "CS21B043", Semester: 5, Branch: "CSE"}
	_ = studentRepo.Create(context.Background(), other)

	// The other student submits feedback for course 1
	_ = feedbackRepo.Upsert(context.Background(), &models.Feedback{
		StudentID:      other.ID,
		CourseID:       1,
		CourseAnswers:  []int32{5, 5, 5, 5, 5, 5, 5, 5},
		TeacherAnswers: []int32{5, 5, 5, 5, 5, 5, 5, 5},
	})

	svc := NewCourseService(studentRepo, courseRepo, feedbackRepo)

	resp, err := svc.ListForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("ListForStudent failed: %v", err)
	}

	for _, course := range resp.Courses {
		if course.FeedbackCompleted {
			t.Errorf("course %s shows feedbackCompleted from another student's submission", course.Code)
		}
	}

	otherResp, err := svc.ListForStudent(context.Background(), other.ID)
	if err != nil {
		t.Fatalf("ListForStudent failed: %v", err)
	}
	var found bool
	for _, course := range otherResp.Courses {
		if course.ID == 1 && course.FeedbackCompleted {
			found = true
		}
	}
	if !found {
		t.Error("submitting student should see feedbackCompleted=true for course 1")
	}
}

func TestCourseServiceEmptySemester(t *testing.T) {
	studentRepo := newMockStudentRepo()
	courseRepo := newMockCourseRepo()
	feedbackRepo := newMockFeedbackRepo()

	student := &models.Student{Name: "Lone", Email: "lone@college.edu", RollNo: "CS21B050", Semester: 2, Branch: "CSE"}
	_ = studentRepo.Create(context.Background(), student)

	svc := NewCourseService(studentRepo, courseRepo, feedbackRepo)

	resp, err := svc.ListForStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("ListForStudent failed: %v", err)
	}
	if resp.Courses == nil {
		t.Fatal("Courses must be an empty slice, not nil")
	}
	if len(resp.Courses) != 0 {
		t.Errorf("got %d courses, want 0", len(resp.Courses))
	}
}

func TestCourseServiceUnknownStudent(t *testing.T) {
	svc := NewCourseService(newMockStudentRepo(), newMockCourseRepo(), newMockFeedbackRepo())

	_, err := svc.ListForStudent(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("got %v, want ErrStudentNotFound", err)
	}
}
