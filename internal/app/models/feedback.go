package models

import (
	"time"
)

// Feedback holds one student's ratings for one course, covering both the
// course itself and its teacher. Unique per (student, course) pair;
// resubmission overwrites rather than duplicates.
type Feedback struct {
	ID             int64      `json:"id" db:"id"`
	StudentID      int64      `json:"studentId" db:"student_id"`
	CourseID       int64      `json:"courseId" db:"course_id"`
	CourseAnswers  []int32    `json:"courseAnswers" db:"course_answers"`   // Ordered 1-5 ratings for the course questions
	TeacherAnswers []int32    `json:"teacherAnswers" db:"teacher_answers"` // Ordered 1-5 ratings for the teacher questions
	Submitted      bool       `json:"submitted" db:"submitted"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty" db:"submitted_at"`
}

// FeedbackSubmission is the per-student final-submission gate. At most one
// row per student; FinalSubmit only ever transitions false to true.
type FeedbackSubmission struct {
	ID          int64      `json:"id" db:"id"`
	StudentID   int64      `json:"studentId" db:"student_id"`
	Semester    int        `json:"semester" db:"semester"`
	FinalSubmit bool       `json:"finalSubmit" db:"final_submit"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty" db:"submitted_at"`
}
