package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
	"github.com/rhydam1003/demo-erp/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and sets the generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, password, roll_no, semester, branch)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.Password,
		student.RollNo,
		student.Semester,
		student.Branch,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		// Both unique keys collapse into the same conflict for the caller
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") ||
			dberrors.IsDuplicateConstraintError(err, "students_roll_no_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, email, password, roll_no, semester, branch, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Password,
		&student.RollNo,
		&student.Semester,
		&student.Branch,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT id, name, email, password, roll_no, semester, branch, created_at, updated_at
		FROM students
		WHERE email = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Password,
		&student.RollNo,
		&student.Semester,
		&student.Branch,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return &student, nil
}

// ExistsByEmailOrRollNo checks whether any student already uses the email or roll number
func (r *StudentRepository) ExistsByEmailOrRollNo(ctx context.Context, email, rollNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 OR roll_no = $2)`,
		email, rollNo).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}
