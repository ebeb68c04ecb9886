package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/pkg/helpers"
	"github.com/ilokeshmewari/college-project/internal/pkg/logger"
)

const feedbackColumns = "id, faculty_id, faculty_name, user_email, class_management, discipline, punctuality, rating, feedback_message, created_at"

// FeedbackRepository handles feedback database operations. Feedback rows are
// append-only: there are no update or delete operations.
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

// CreateFeedback inserts one feedback row and returns it with the
// server-assigned id and timestamp
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	sql, args, err := r.sb.Insert("feedback").
		Columns("faculty_id", "faculty_name", "user_email", "class_management", "discipline", "punctuality", "rating", "feedback_message").
		Values(
			feedback.FacultyID,
			feedback.FacultyName,
			feedback.UserEmail,
			feedback.ClassManagement,
			feedback.Discipline,
			feedback.Punctuality,
			feedback.Rating,
			helpers.GetContentNullString(feedback.FeedbackMessage),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	stored := *feedback
	err = r.db.QueryRow(ctx, sql, args...).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", feedback.FacultyID).Msg("Error executing create feedback query")
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}

	return &stored, nil
}

// GetByFacultyID retrieves one page of feedback for a faculty, newest first.
// Rows remain fetchable by faculty id after the faculty itself is deleted.
func (r *FeedbackRepository) GetByFacultyID(ctx context.Context, facultyID int64, offset uint64, limit int) ([]*models.Feedback, error) {
	sql, args, err := r.sb.Select(feedbackColumns).
		From("feedback").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error executing list feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	feedback := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{}
		var message *string
		if err := rows.Scan(
			&fb.ID, &fb.FacultyID, &fb.FacultyName, &fb.UserEmail, &fb.ClassManagement,
			&fb.Discipline, &fb.Punctuality, &fb.Rating, &message, &fb.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning feedback row during list")
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		if message != nil {
			fb.FeedbackMessage = *message
		}
		feedback = append(feedback, fb)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating feedback rows")
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return feedback, nil
}

// CountByFacultyID returns the number of feedback rows for a faculty
func (r *FeedbackRepository) CountByFacultyID(ctx context.Context, facultyID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("feedback").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count feedback query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Error counting feedback rows")
		return 0, fmt.Errorf("error counting feedback: %w", err)
	}

	return count, nil
}
