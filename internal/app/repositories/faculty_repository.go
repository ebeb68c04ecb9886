package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/pkg/helpers"
	"github.com/ilokeshmewari/college-project/internal/pkg/logger"
)

// Faculty error types
var (
	ErrFacultyNotFound = ErrNotFound
)

const facultyColumns = "id, name, department, email, phone, image_url, created_at"

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	faculty := &models.Faculty{}
	err := row.Scan(
		&faculty.ID, &faculty.Name, &faculty.Department, &faculty.Email,
		&faculty.Phone, &faculty.ImageURL, &faculty.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return faculty, nil
}

// CreateFaculty inserts a new faculty row and returns its id
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "department", "email", "phone", "image_url").
		Values(
			faculty.Name,
			helpers.GetNullString(faculty.Department),
			helpers.GetNullString(faculty.Email),
			helpers.GetNullString(faculty.Phone),
			helpers.GetNullString(faculty.ImageURL),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return id, nil
}

// GetFacultyByID retrieves a faculty by id
func (r *FacultyRepository) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by id: %w", err)
	}

	return faculty, nil
}

// GetFaculty retrieves one page of the faculty directory ordered by name
func (r *FacultyRepository) GetFaculty(ctx context.Context, offset uint64, limit int) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns).
		From("faculty").
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	faculty := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row during list")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculty = append(faculty, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculty, nil
}

// CountFaculty returns the total number of faculty rows
func (r *FacultyRepository) CountFaculty(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("faculty").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count faculty query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting faculty rows")
		return 0, fmt.Errorf("error counting faculty: %w", err)
	}

	return count, nil
}

// DeleteFaculty deletes a faculty by id. Feedback rows referencing the id
// are intentionally left in place; they carry their own faculty name
// snapshot.
func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFacultyNotFound
	}

	return nil
}
