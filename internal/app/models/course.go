package models

// Course represents a course offered in a semester. Static reference data
// per academic term.
type Course struct {
	ID        int64  `json:"id" db:"id"`
	Code      string `json:"code" db:"code"`
	Name      string `json:"name" db:"name"`
	Semester  int    `json:"semester" db:"semester"`
	TeacherID int64  `json:"teacherId" db:"teacher_id"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty"`
}
