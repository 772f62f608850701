// Package services contains the business rules of the portal. Every
// service is an interface so controllers can be tested without a live
// database.
package services

import (
	"context"

	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
)

// AuthService handles registration, login and profile lookup
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, string, error)
	GetStudent(ctx context.Context, studentID int64) (*models.Student, error)
}

// CourseService handles the semester course listing
type CourseService interface {
	ListForStudent(ctx context.Context, studentID int64) (*dto.CourseListResponse, error)
}

// FeedbackService handles feedback records and the final-submission gate
type FeedbackService interface {
	GetForCourse(ctx context.Context, studentID, courseID int64) (*models.Feedback, error)
	Submit(ctx context.Context, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	GetSubmission(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error)
	FinalSubmit(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error)
	Questions() *dto.QuestionsResponse
}
