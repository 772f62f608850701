package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/app/repositories"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
	"github.com/rhydam1003/demo-erp/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// authService implements AuthService
type authService struct {
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateRegistration re-checks the request beyond gin binding
func (s *authService) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "name cannot be empty")
	}

	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid email format")
	}

	if len(req.Password) < 8 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "password must be at least 8 characters long")
	}

	if strings.TrimSpace(req.RollNo) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "roll number cannot be empty")
	}

	if req.Semester < 1 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "semester must be a positive integer")
	}

	return nil
}

// Register creates a new student account. Registration does not log the
// student in.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByEmailOrRollNo(ctx, req.Email, req.RollNo)
	if err != nil {
		return nil, fmt.Errorf("error checking if student exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		RollNo:   req.RollNo,
		Semester: req.Semester,
		Branch:   req.Branch,
	}

	// The unique keys still guard the race between the existence check
	// and the insert; a concurrent duplicate surfaces as the same conflict.
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Str("rollNo", student.RollNo).
		Int("semester", student.Semester).
		Msg("Student registered")

	return &dto.RegisterResponse{
		Message: "Registration successful",
		Student: dto.NewStudentProfile(student),
	}, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password both fail with ErrInvalidCredentials so the
// responses are indistinguishable at the message level.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, string, error) {
	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(student)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing session token: %w", err)
	}

	return student, token, nil
}

// GetStudent loads the authenticated student's record
func (s *authService) GetStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}
