package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/models"
)

type subjectRepository struct {
	*DB
	notifier
	logger *logger.Logger
}

// NewSubjectRepository constructs the sqlite-backed subject collection.
func NewSubjectRepository(db *DB, logger *logger.Logger) SubjectRepository {
	return &subjectRepository{DB: db, logger: logger}
}

// Upsert implements [SubjectRepository]. Each subject is replaced wholesale:
// delete-then-insert inside one transaction, never a partial-field merge.
// Subscribers are notified once after the transaction commits.
func (r *subjectRepository) Upsert(ctx context.Context, subjects ...models.Subject) error {
	if len(subjects) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin subjects upsert: %w", err)
	}
	defer tx.Rollback()

	for _, s := range subjects {
		if _, err = tx.ExecContext(ctx, deleteSubjectByID, s.ID); err != nil {
			return fmt.Errorf("delete subject %d before insert: %w", s.ID, err)
		}

		meanings, err := encodeJSON(s.Meanings)
		if err != nil {
			return err
		}
		readings, err := encodeJSON(s.Readings)
		if err != nil {
			return err
		}
		components, err := encodeJSON(s.ComponentSubjectIDs)
		if err != nil {
			return err
		}
		audio, err := encodeJSON(s.AudioURLs)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertSubject,
			s.ID,
			string(s.Kind),
			s.Level,
			s.Slug,
			s.Characters,
			meanings,
			readings,
			s.MeaningMnemonic,
			s.ReadingMnemonic,
			components,
			audio,
			s.DataUpdatedAt,
		)
		if err != nil {
			r.logger.Err(err).
				Str("func", "subjectRepository.Upsert").
				Int64("id", s.ID).
				Msg("failed to insert subject")
			return fmt.Errorf("insert subject %d: %w", s.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit subjects upsert: %w", err)
	}

	r.notifyAll()
	return nil
}

// GetByID implements [SubjectRepository].
func (r *subjectRepository) GetByID(ctx context.Context, id int64) (models.Subject, error) {
	subjects, err := r.List(ctx, SubjectFilter{IDs: []int64{id}})
	if err != nil {
		return models.Subject{}, err
	}
	if len(subjects) == 0 {
		return models.Subject{}, fmt.Errorf("subject %d: %w", id, ErrNotFound)
	}
	return subjects[0], nil
}

// List implements [SubjectRepository]. Filter terms are combined with AND;
// an empty filter returns the whole collection ordered by id.
func (r *subjectRepository) List(ctx context.Context, filter SubjectFilter) ([]models.Subject, error) {
	builder := sq.Select(
		"id", "kind", "level", "slug", "characters", "meanings", "readings",
		"meaning_mnemonic", "reading_mnemonic", "component_subject_ids",
		"audio_urls", "data_updated_at",
	).From("subjects").OrderBy("id")

	if len(filter.IDs) > 0 {
		builder = builder.Where(sq.Eq{"id": filter.IDs})
	}
	if len(filter.Levels) > 0 {
		builder = builder.Where(sq.Eq{"level": filter.Levels})
	}
	if len(filter.Kinds) > 0 {
		kinds := make([]string, 0, len(filter.Kinds))
		for _, k := range filter.Kinds {
			kinds = append(kinds, string(k))
		}
		builder = builder.Where(sq.Eq{"kind": kinds})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build subjects query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "subjectRepository.List").
			Msg("failed to query subjects")
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subject rows: %w", err)
	}

	return subjects, nil
}

// Delete implements [SubjectRepository]: remove every subject matched by
// filter. An empty filter is rejected in favour of the explicit DeleteAll.
func (r *subjectRepository) Delete(ctx context.Context, filter SubjectFilter) error {
	if len(filter.IDs) == 0 && len(filter.Levels) == 0 && len(filter.Kinds) == 0 {
		return fmt.Errorf("delete subjects: empty filter, use DeleteAll")
	}

	builder := sq.Delete("subjects")
	if len(filter.IDs) > 0 {
		builder = builder.Where(sq.Eq{"id": filter.IDs})
	}
	if len(filter.Levels) > 0 {
		builder = builder.Where(sq.Eq{"level": filter.Levels})
	}
	if len(filter.Kinds) > 0 {
		kinds := make([]string, 0, len(filter.Kinds))
		for _, k := range filter.Kinds {
			kinds = append(kinds, string(k))
		}
		builder = builder.Where(sq.Eq{"kind": kinds})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build subjects delete: %w", err)
	}
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete subjects: %w", err)
	}

	r.notifyAll()
	return nil
}

// DeleteAll implements [SubjectRepository].
func (r *subjectRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM subjects;`); err != nil {
		return fmt.Errorf("delete all subjects: %w", err)
	}
	r.notifyAll()
	return nil
}

func scanSubject(rows *sql.Rows) (models.Subject, error) {
	var (
		s                                      models.Subject
		kind                                   string
		meanings, readings, components, audios string
		updatedAt                              sql.NullTime
	)

	err := rows.Scan(
		&s.ID,
		&kind,
		&s.Level,
		&s.Slug,
		&s.Characters,
		&meanings,
		&readings,
		&s.MeaningMnemonic,
		&s.ReadingMnemonic,
		&components,
		&audios,
		&updatedAt,
	)
	if err != nil {
		return models.Subject{}, fmt.Errorf("scan subject row: %w", err)
	}

	s.Kind = models.SubjectKind(kind)
	if updatedAt.Valid {
		s.DataUpdatedAt = updatedAt.Time
	}
	err = errors.Join(
		decodeJSON(meanings, &s.Meanings),
		decodeJSON(readings, &s.Readings),
		decodeJSON(components, &s.ComponentSubjectIDs),
		decodeJSON(audios, &s.AudioURLs),
	)
	if err != nil {
		return models.Subject{}, err
	}

	return s, nil
}
