package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/models"
)

type studyMaterialRepository struct {
	*DB
	notifier
	logger *logger.Logger
}

// NewStudyMaterialRepository constructs the sqlite-backed study-material
// collection.
func NewStudyMaterialRepository(db *DB, logger *logger.Logger) StudyMaterialRepository {
	return &studyMaterialRepository{DB: db, logger: logger}
}

// Upsert implements [StudyMaterialRepository]: delete-then-insert per record
// inside one transaction, subscribers notified after commit.
func (r *studyMaterialRepository) Upsert(ctx context.Context, materials ...models.StudyMaterial) error {
	if len(materials) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin study materials upsert: %w", err)
	}
	defer tx.Rollback()

	for _, m := range materials {
		if _, err = tx.ExecContext(ctx, deleteStudyMaterialByID, m.ID); err != nil {
			return fmt.Errorf("delete study material %d before insert: %w", m.ID, err)
		}

		synonyms, err := encodeJSON(m.MeaningSynonyms)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertStudyMaterial,
			m.ID,
			m.SubjectID,
			m.MeaningNote,
			m.ReadingNote,
			synonyms,
			m.DataUpdatedAt,
		)
		if err != nil {
			r.logger.Err(err).
				Str("func", "studyMaterialRepository.Upsert").
				Int64("id", m.ID).
				Msg("failed to insert study material")
			return fmt.Errorf("insert study material %d: %w", m.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit study materials upsert: %w", err)
	}

	r.notifyAll()
	return nil
}

// GetByID implements [StudyMaterialRepository].
func (r *studyMaterialRepository) GetByID(ctx context.Context, id int64) (models.StudyMaterial, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, subject_id, meaning_note, reading_note, meaning_synonyms, data_updated_at
		 FROM study_materials WHERE id = ?;`, id)
	if err != nil {
		return models.StudyMaterial{}, fmt.Errorf("query study material %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return models.StudyMaterial{}, fmt.Errorf("iterate study material rows: %w", err)
		}
		return models.StudyMaterial{}, fmt.Errorf("study material %d: %w", id, ErrNotFound)
	}

	return scanStudyMaterial(rows)
}

// List implements [StudyMaterialRepository].
func (r *studyMaterialRepository) List(ctx context.Context, filter StudyMaterialFilter) ([]models.StudyMaterial, error) {
	builder := sq.Select(
		"id", "subject_id", "meaning_note", "reading_note",
		"meaning_synonyms", "data_updated_at",
	).From("study_materials").OrderBy("id")

	if len(filter.SubjectIDs) > 0 {
		builder = builder.Where(sq.Eq{"subject_id": filter.SubjectIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build study materials query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "studyMaterialRepository.List").
			Msg("failed to query study materials")
		return nil, fmt.Errorf("query study materials: %w", err)
	}
	defer rows.Close()

	var materials []models.StudyMaterial
	for rows.Next() {
		m, err := scanStudyMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study material rows: %w", err)
	}

	return materials, nil
}

// Delete implements [StudyMaterialRepository]: remove every study material
// matched by filter. An empty filter is rejected in favour of the explicit
// DeleteAll.
func (r *studyMaterialRepository) Delete(ctx context.Context, filter StudyMaterialFilter) error {
	if len(filter.SubjectIDs) == 0 {
		return fmt.Errorf("delete study materials: empty filter, use DeleteAll")
	}

	query, args, err := sq.Delete("study_materials").
		Where(sq.Eq{"subject_id": filter.SubjectIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build study materials delete: %w", err)
	}
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete study materials: %w", err)
	}

	r.notifyAll()
	return nil
}

// DeleteAll implements [StudyMaterialRepository].
func (r *studyMaterialRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM study_materials;`); err != nil {
		return fmt.Errorf("delete all study materials: %w", err)
	}
	r.notifyAll()
	return nil
}

func scanStudyMaterial(rows *sql.Rows) (models.StudyMaterial, error) {
	var (
		m         models.StudyMaterial
		synonyms  string
		updatedAt sql.NullTime
	)

	err := rows.Scan(
		&m.ID,
		&m.SubjectID,
		&m.MeaningNote,
		&m.ReadingNote,
		&synonyms,
		&updatedAt,
	)
	if err != nil {
		return models.StudyMaterial{}, fmt.Errorf("scan study material row: %w", err)
	}

	if updatedAt.Valid {
		m.DataUpdatedAt = updatedAt.Time
	}
	if err = decodeJSON(synonyms, &m.MeaningSynonyms); err != nil {
		return models.StudyMaterial{}, err
	}

	return m, nil
}
