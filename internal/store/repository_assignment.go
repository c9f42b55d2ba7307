package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/models"
)

type assignmentRepository struct {
	*DB
	notifier
	logger *logger.Logger
}

// NewAssignmentRepository constructs the sqlite-backed assignment collection.
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	return &assignmentRepository{DB: db, logger: logger}
}

// Upsert implements [AssignmentRepository]: delete-then-insert per record
// inside one transaction, subscribers notified after commit.
func (r *assignmentRepository) Upsert(ctx context.Context, assignments ...models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin assignments upsert: %w", err)
	}
	defer tx.Rollback()

	for _, a := range assignments {
		if _, err = tx.ExecContext(ctx, deleteAssignmentByID, a.ID); err != nil {
			return fmt.Errorf("delete assignment %d before insert: %w", a.ID, err)
		}

		_, err = tx.ExecContext(ctx, insertAssignment,
			a.ID,
			a.SubjectID,
			string(a.SubjectKind),
			a.SRSStage,
			a.UnlockedAt,
			a.StartedAt,
			a.AvailableAt,
			a.BurnedAt,
			a.DataUpdatedAt,
		)
		if err != nil {
			r.logger.Err(err).
				Str("func", "assignmentRepository.Upsert").
				Int64("id", a.ID).
				Msg("failed to insert assignment")
			return fmt.Errorf("insert assignment %d: %w", a.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit assignments upsert: %w", err)
	}

	r.notifyAll()
	return nil
}

// GetByID implements [AssignmentRepository].
func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (models.Assignment, error) {
	query, args, err := assignmentColumns().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Assignment{}, fmt.Errorf("build assignment query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("query assignment %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return models.Assignment{}, fmt.Errorf("iterate assignment rows: %w", err)
		}
		return models.Assignment{}, fmt.Errorf("assignment %d: %w", id, ErrNotFound)
	}

	return scanAssignment(rows)
}

// List implements [AssignmentRepository]. Filter terms are combined with
// AND; an empty filter returns the whole collection ordered by id. The
// AvailableBefore bound excludes NULL available_at rows, matching the
// "null means never due" rule.
func (r *assignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error) {
	builder := assignmentColumns()

	if len(filter.SubjectIDs) > 0 {
		builder = builder.Where(sq.Eq{"subject_id": filter.SubjectIDs})
	}
	if filter.MinSRSStage != nil {
		builder = builder.Where(sq.GtOrEq{"srs_stage": *filter.MinSRSStage})
	}
	if filter.AvailableBefore != nil {
		builder = builder.Where(sq.Lt{"available_at": *filter.AvailableBefore})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignments query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "assignmentRepository.List").
			Msg("failed to query assignments")
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignment rows: %w", err)
	}

	return assignments, nil
}

// Delete implements [AssignmentRepository]: remove every assignment matched
// by filter. An empty filter is rejected in favour of the explicit DeleteAll.
func (r *assignmentRepository) Delete(ctx context.Context, filter AssignmentFilter) error {
	if len(filter.SubjectIDs) == 0 && filter.MinSRSStage == nil && filter.AvailableBefore == nil {
		return fmt.Errorf("delete assignments: empty filter, use DeleteAll")
	}

	builder := sq.Delete("assignments")
	if len(filter.SubjectIDs) > 0 {
		builder = builder.Where(sq.Eq{"subject_id": filter.SubjectIDs})
	}
	if filter.MinSRSStage != nil {
		builder = builder.Where(sq.GtOrEq{"srs_stage": *filter.MinSRSStage})
	}
	if filter.AvailableBefore != nil {
		builder = builder.Where(sq.Lt{"available_at": *filter.AvailableBefore})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build assignments delete: %w", err)
	}
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}

	r.notifyAll()
	return nil
}

// DeleteAll implements [AssignmentRepository].
func (r *assignmentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM assignments;`); err != nil {
		return fmt.Errorf("delete all assignments: %w", err)
	}
	r.notifyAll()
	return nil
}

func assignmentColumns() sq.SelectBuilder {
	return sq.Select(
		"id", "subject_id", "subject_kind", "srs_stage", "unlocked_at",
		"started_at", "available_at", "burned_at", "data_updated_at",
	).From("assignments").OrderBy("id")
}

func scanAssignment(rows *sql.Rows) (models.Assignment, error) {
	var (
		a                                          models.Assignment
		kind                                       string
		unlockedAt, startedAt, availableAt, burned sql.NullTime
		updatedAt                                  sql.NullTime
	)

	err := rows.Scan(
		&a.ID,
		&a.SubjectID,
		&kind,
		&a.SRSStage,
		&unlockedAt,
		&startedAt,
		&availableAt,
		&burned,
		&updatedAt,
	)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("scan assignment row: %w", err)
	}

	a.SubjectKind = models.SubjectKind(kind)
	a.UnlockedAt = nullTimePtr(unlockedAt)
	a.StartedAt = nullTimePtr(startedAt)
	a.AvailableAt = nullTimePtr(availableAt)
	a.BurnedAt = nullTimePtr(burned)
	if updatedAt.Valid {
		a.DataUpdatedAt = updatedAt.Time
	}

	return a, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	tt := t.Time
	return &tt
}
