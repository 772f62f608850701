package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/pkg/logger"
)

// FeedbackRepository handles database operations for feedback records
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert creates or overwrites the feedback row for the record's
// (student, course) pair. The unique-key conflict clause makes concurrent
// submissions last-writer-wins instead of raising a duplicate-key error.
func (r *FeedbackRepository) Upsert(ctx context.Context, feedback *models.Feedback) error {
	now := time.Now()

	sql, args, err := r.sb.Insert("feedbacks").
		Columns("student_id", "course_id", "course_answers", "teacher_answers", "submitted", "submitted_at").
		Values(feedback.StudentID, feedback.CourseID, feedback.CourseAnswers, feedback.TeacherAnswers, true, now).
		Suffix(`ON CONFLICT (student_id, course_id) DO UPDATE SET
			course_answers = EXCLUDED.course_answers,
			teacher_answers = EXCLUDED.teacher_answers,
			submitted = EXCLUDED.submitted,
			submitted_at = EXCLUDED.submitted_at
			RETURNING id`).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building feedback upsert SQL")
		return fmt.Errorf("failed to build feedback upsert query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&feedback.ID)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", feedback.StudentID).Int64("courseID", feedback.CourseID).Msg("Error executing feedback upsert")
		return fmt.Errorf("error upserting feedback: %w", err)
	}

	feedback.Submitted = true
	feedback.SubmittedAt = &now

	return nil
}

// GetByStudentAndCourse retrieves the feedback row for a (student, course)
// pair, or nil when the student has not submitted for the course.
func (r *FeedbackRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Feedback, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "course_answers", "teacher_answers", "submitted", "submitted_at").
		From("feedbacks").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building feedback select SQL")
		return nil, fmt.Errorf("failed to build feedback query: %w", err)
	}

	var feedback models.Feedback
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&feedback.ID,
		&feedback.StudentID,
		&feedback.CourseID,
		&feedback.CourseAnswers,
		&feedback.TeacherAnswers,
		&feedback.Submitted,
		&feedback.SubmittedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error scanning feedback row")
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	return &feedback, nil
}

// GetSubmittedCourseIDs returns which of the given courses the student has
// submitted feedback for. Always scoped to one student.
func (r *FeedbackRepository) GetSubmittedCourseIDs(ctx context.Context, studentID int64, courseIDs []int64) (map[int64]bool, error) {
	submitted := make(map[int64]bool, len(courseIDs))
	if len(courseIDs) == 0 {
		return submitted, nil
	}

	sql, args, err := r.sb.Select("course_id").
		From("feedbacks").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseIDs, "submitted": true}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building submitted course ids SQL")
		return nil, fmt.Errorf("failed to build submitted course ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying submitted course ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		if err := rows.Scan(&courseID); err != nil {
			return nil, fmt.Errorf("error scanning submitted course id: %w", err)
		}
		submitted[courseID] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return submitted, nil
}

// CountSubmitted counts the student's submitted feedback rows restricted
// to the given course ids. The final-submit gate compares this against the
// number of required courses on every call; completeness is always
// recomputed from the store.
func (r *FeedbackRepository) CountSubmitted(ctx context.Context, studentID int64, courseIDs []int64) (int, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Select("COUNT(*)").
		From("feedbacks").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseIDs, "submitted": true}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building submitted count SQL")
		return 0, fmt.Errorf("failed to build submitted count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting submitted feedback: %w", err)
	}

	return count, nil
}
