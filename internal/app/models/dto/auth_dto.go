package dto

import "github.com/rhydam1003/demo-erp/internal/app/models"

// RegisterRequest represents a student registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	RollNo   string `json:"rollNo" binding:"required"`
	Semester int    `json:"semester" binding:"required,min=1"`
	Branch   string `json:"branch" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StudentProfile is the subset of the student record exposed to clients.
// The password hash never appears here.
type StudentProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RollNo   string `json:"rollNo"`
	Semester int    `json:"semester"`
	Branch   string `json:"branch"`
}

// RegisterResponse is returned on successful registration. Registration
// does not log the student in.
type RegisterResponse struct {
	Message string         `json:"message"`
	Student StudentProfile `json:"student"`
}

// LoginResponse is returned on successful login alongside the session cookie
type LoginResponse struct {
	Student StudentProfile `json:"student"`
}

// MeResponse wraps the authenticated student's profile
type MeResponse struct {
	Student StudentProfile `json:"student"`
}

// NewStudentProfile maps a student record to its exposed profile
func NewStudentProfile(student *models.Student) StudentProfile {
	return StudentProfile{
		ID:       student.ID,
		Name:     student.Name,
		Email:    student.Email,
		RollNo:   student.RollNo,
		Semester: student.Semester,
		Branch:   student.Branch,
	}
}
