package store

import (
	"context"
	"time"

	"github.com/mrdjohnson/sukistudy/models"
)

// SubjectFilter selects subjects by primary key, level, or kind. Zero-value
// fields are ignored; all set fields are ANDed.
type SubjectFilter struct {
	IDs    []int64
	Levels []int
	Kinds  []models.SubjectKind
}

// AssignmentFilter selects assignments by foreign key, minimum SRS stage, or
// an availability upper bound. Zero-value fields are ignored.
type AssignmentFilter struct {
	SubjectIDs      []int64
	MinSRSStage     *int
	AvailableBefore *time.Time
}

// StudyMaterialFilter selects study materials by foreign key.
type StudyMaterialFilter struct {
	SubjectIDs []int64
}

// SubjectRepository is the durable collection of mirrored subjects.
//
// Upsert is whole-record replace: the existing row with the same id is
// removed and the new row inserted inside one transaction, so stale fields
// can never survive a sync. Subscribe registers a callback fired after every
// successful mutation.
type SubjectRepository interface {
	Upsert(ctx context.Context, subjects ...models.Subject) error
	GetByID(ctx context.Context, id int64) (models.Subject, error)
	List(ctx context.Context, filter SubjectFilter) ([]models.Subject, error)
	Delete(ctx context.Context, filter SubjectFilter) error
	DeleteAll(ctx context.Context) error
	Subscribe(fn func()) (unsubscribe func())
}

// AssignmentRepository is the durable collection of mirrored assignments.
type AssignmentRepository interface {
	Upsert(ctx context.Context, assignments ...models.Assignment) error
	GetByID(ctx context.Context, id int64) (models.Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error)
	Delete(ctx context.Context, filter AssignmentFilter) error
	DeleteAll(ctx context.Context) error
	Subscribe(fn func()) (unsubscribe func())
}

// StudyMaterialRepository is the durable collection of mirrored study
// materials.
type StudyMaterialRepository interface {
	Upsert(ctx context.Context, materials ...models.StudyMaterial) error
	GetByID(ctx context.Context, id int64) (models.StudyMaterial, error)
	List(ctx context.Context, filter StudyMaterialFilter) ([]models.StudyMaterial, error)
	Delete(ctx context.Context, filter StudyMaterialFilter) error
	DeleteAll(ctx context.Context) error
	Subscribe(fn func()) (unsubscribe func())
}

// UserRepository holds the singleton session user, keyed by
// [models.LocalUserID] and overwritten wholesale on every sync.
type UserRepository interface {
	Upsert(ctx context.Context, user models.User) error
	Get(ctx context.Context) (models.User, error)
	DeleteAll(ctx context.Context) error
	Subscribe(fn func()) (unsubscribe func())
}

// KVRepository stores the scalar local state: the three per-kind sync
// cursors and the credential, each under a fixed string key.
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
