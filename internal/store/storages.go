package store

import (
	"context"
	"fmt"

	"github.com/mrdjohnson/sukistudy/internal/logger"
)

// Storages aggregates the four mirrored collections plus the scalar state.
// It is the single local-persistence entry point handed to the sync engine,
// the query layer, and the app facade.
type Storages struct {
	Subjects       SubjectRepository
	Assignments    AssignmentRepository
	StudyMaterials StudyMaterialRepository
	Users          UserRepository
	KV             KVRepository

	logger *logger.Logger
}

// NewStorages wires one repository per entity kind over the shared db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Subjects:       NewSubjectRepository(db, log),
		Assignments:    NewAssignmentRepository(db, log),
		StudyMaterials: NewStudyMaterialRepository(db, log),
		Users:          NewUserRepository(db, log),
		KV:             NewKVRepository(db, log),
		logger:         log,
	}
}

// ClearAll empties all four collections and removes the three sync cursors.
// It runs on logout and on a rejected credential. The stored credential
// itself is owned by the caller and removed separately.
func (s *Storages) ClearAll(ctx context.Context) error {
	if err := s.Subjects.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear subjects: %w", err)
	}
	if err := s.Assignments.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}
	if err := s.StudyMaterials.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear study materials: %w", err)
	}
	if err := s.Users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	for _, key := range []string{KeySubjectsCursor, KeyAssignmentsCursor, KeyStudyMaterialsCursor} {
		if err := s.KV.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear cursor %q: %w", key, err)
		}
	}

	s.logger.Info().Str("func", "Storages.ClearAll").Msg("local mirror cleared")
	return nil
}
