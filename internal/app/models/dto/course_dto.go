package dto

// TeacherData represents teacher information in a course listing
type TeacherData struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Prof. A. Kumar"`
	Department string `json:"department" example:"Computer Science"`
}

// CourseWithStatus is one course of the student's semester together with
// the caller's own feedback progress for it.
type CourseWithStatus struct {
	ID                int64       `json:"id" example:"1"`
	Code              string      `json:"code" example:"CSE301"`
	Name              string      `json:"name" example:"Data Structures"`
	Semester          int         `json:"semester" example:"5"`
	Teacher           TeacherData `json:"teacher"`
	FeedbackCompleted bool        `json:"feedbackCompleted" example:"false"`
}

// CourseListResponse wraps the semester's course listing. Courses is never
// null; a semester without courses serializes as an empty array.
type CourseListResponse struct {
	Courses []CourseWithStatus `json:"courses"`
}
