package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mrdjohnson/sukistudy/internal/config"
	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/models"
)

// newTestStorages opens an in-memory mirror with migrations applied.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.Storage{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStorages(db, logger.Nop())
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func tsPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := ts(t, value)
	return &parsed
}

func testSubject(id int64, level int, kind models.SubjectKind) models.Subject {
	return models.Subject{
		ID:         id,
		Kind:       kind,
		Level:      level,
		Slug:       "slug",
		Characters: "字",
		Meanings:   []models.Meaning{{Meaning: "Character", Primary: true}},
	}
}
