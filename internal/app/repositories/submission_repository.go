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

// SubmissionRepository handles database operations for the per-student
// final-submission gate
type SubmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByStudent retrieves a student's submission row, or nil when the
// student has never finalized. Callers must pass the session's own student
// id; there is no cross-student lookup.
func (r *SubmissionRepository) GetByStudent(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error) {
	sql, args, err := r.sb.Select("id", "student_id", "semester", "final_submit", "submitted_at").
		From("feedback_submissions").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building submission select SQL")
		return nil, fmt.Errorf("failed to build submission query: %w", err)
	}

	var submission models.FeedbackSubmission
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&submission.ID,
		&submission.StudentID,
		&submission.Semester,
		&submission.FinalSubmit,
		&submission.SubmittedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning submission row")
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}

	return &submission, nil
}

// Upsert creates or re-confirms the student's lock. Concurrent calls
// converge on the same row because the written state is identical
// regardless of ordering.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission *models.FeedbackSubmission) error {
	now := time.Now()

	sql, args, err := r.sb.Insert("feedback_submissions").
		Columns("student_id", "semester", "final_submit", "submitted_at").
		Values(submission.StudentID, submission.Semester, true, now).
		Suffix(`ON CONFLICT (student_id) DO UPDATE SET
			final_submit = EXCLUDED.final_submit,
			submitted_at = EXCLUDED.submitted_at
			RETURNING id`).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building submission upsert SQL")
		return fmt.Errorf("failed to build submission upsert query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&submission.ID)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", submission.StudentID).Msg("Error executing submission upsert")
		return fmt.Errorf("error upserting submission: %w", err)
	}

	submission.FinalSubmit = true
	submission.SubmittedAt = &now

	return nil
}
