// Package repositories contains all database access for the portal.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rhydam1003/demo-erp/internal/app/models"
)

// IStudentRepository defines student data access
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	ExistsByEmailOrRollNo(ctx context.Context, email, rollNo string) (bool, error)
}

// ICourseRepository defines course reference-data access
type ICourseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetBySemester(ctx context.Context, semester int) ([]*models.Course, error)
}

// IFeedbackRepository defines feedback record access
type IFeedbackRepository interface {
	Upsert(ctx context.Context, feedback *models.Feedback) error
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Feedback, error)
	GetSubmittedCourseIDs(ctx context.Context, studentID int64, courseIDs []int64) (map[int64]bool, error)
	CountSubmitted(ctx context.Context, studentID int64, courseIDs []int64) (int, error)
}

// ISubmissionRepository defines final-submission gate access
type ISubmissionRepository interface {
	GetByStudent(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error)
	Upsert(ctx context.Context, submission *models.FeedbackSubmission) error
}

// Repositories bundles every repository for dependency injection
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	FeedbackRepository   *FeedbackRepository
	SubmissionRepository *SubmissionRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		FeedbackRepository:   NewFeedbackRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
	}
}
