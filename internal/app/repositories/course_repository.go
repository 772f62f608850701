package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetByID retrieves a course with its teacher by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.name, c.semester, c.teacher_id,
		       t.id, t.name, t.department, t.email
		FROM courses c
		JOIN teachers t ON t.id = c.teacher_id
		WHERE c.id = $1
	`

	var course models.Course
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Semester,
		&course.TeacherID,
		&teacher.ID,
		&teacher.Name,
		&teacher.Department,
		&teacher.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.Teacher = &teacher
	return &course, nil
}

// GetBySemester retrieves every course of a semester with its teacher
func (r *CourseRepository) GetBySemester(ctx context.Context, semester int) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.code, c.name, c.semester, c.teacher_id,
		       t.id, t.name, t.department, t.email
		FROM courses c
		JOIN teachers t ON t.id = c.teacher_id
		WHERE c.semester = $1
		ORDER BY c.code
	`

	rows, err := r.db.Query(ctx, query, semester)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var teacher models.Teacher
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Name,
			&course.Semester,
			&course.TeacherID,
			&teacher.ID,
			&teacher.Name,
			&teacher.Department,
			&teacher.Email,
		); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		course.Teacher = &teacher
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
