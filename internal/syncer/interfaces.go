package syncer

import (
	"context"

	"github.com/mrdjohnson/sukistudy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI is the slice of the API client the sync engine consumes: the
// first-page accessors per paginated kind, the page follower, and the
// profile fetch.
type RemoteAPI interface {
	// GetUser fetches the session user's profile.
	GetUser(ctx context.Context) (models.User, error)

	// GetSubjectsUpdatedAfter fetches the first subjects page, filtered by
	// the since cursor when non-empty.
	GetSubjectsUpdatedAfter(ctx context.Context, since string) (models.Collection, error)

	// GetAssignmentsUpdatedAfter fetches the first assignments page.
	GetAssignmentsUpdatedAfter(ctx context.Context, since string) (models.Collection, error)

	// GetStudyMaterialsUpdatedAfter fetches the first study-materials page.
	GetStudyMaterialsUpdatedAfter(ctx context.Context, since string) (models.Collection, error)

	// GetPage fetches a subsequent page via its absolute next-page URL.
	GetPage(ctx context.Context, pageURL string) (models.Collection, error)
}
