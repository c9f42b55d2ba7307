package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mrdjohnson/sukistudy/internal/logger"
)

// Fixed keys of the scalar local state.
const (
	KeyAPIToken             = "api_token"
	KeySubjectsCursor       = "sync_cursor_subjects"
	KeyAssignmentsCursor    = "sync_cursor_assignments"
	KeyStudyMaterialsCursor = "sync_cursor_study_materials"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

// NewKVRepository constructs the scalar key/value store holding sync cursors
// and the credential.
func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{DB: db, logger: logger}
}

// Get implements [KVRepository]. Returns [ErrNotFound] for an absent key.
func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("kv %q: %w", key, ErrNotFound)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to query kv")
		return "", fmt.Errorf("query kv %q: %w", key, err)
	}

	return value, nil
}

// Set implements [KVRepository].
func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, setKV, key, value); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to write kv")
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}

// Delete implements [KVRepository]. Deleting an absent key is a no-op.
func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteKV, key); err != nil {
		return fmt.Errorf("delete kv %q: %w", key, err)
	}
	return nil
}
