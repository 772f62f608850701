package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`                          // Unique identifier for the student
	Name      string    `json:"name" db:"name" example:"Demo Student"`           // Student's display name
	Email     string    `json:"email" db:"email" example:"demo@college.edu"`     // Student's email address (unique)
	Password  string    `json:"-" db:"password"`                                 // Bcrypt hash (excluded from JSON)
	RollNo    string    `json:"rollNo" db:"roll_no" example:"CS21B001"`          // Roll number (unique)
	Semester  int       `json:"semester" db:"semester" example:"5"`              // Current semester, positive
	Branch    string    `json:"branch" db:"branch" example:"Computer Science"`   // Branch of study
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                       // Timestamp when the student registered
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`                       // Timestamp of the last update
}
