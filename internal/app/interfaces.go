package app

import (
	"context"

	"github.com/mrdjohnson/sukistudy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/study_api_mock.go -package=mock

// StudyAPI is the slice of the remote client the application facade drives
// directly: credential handling plus the interactive study operations. The
// paginated incremental pulls live behind the sync engine instead.
type StudyAPI interface {
	// SetToken installs the access token used on subsequent requests. An
	// empty token clears the credential.
	SetToken(token string)

	// GetUser fetches the profile of the token's owner. It doubles as the
	// credential check during login.
	GetUser(ctx context.Context) (models.User, error)

	// GetSummary fetches the current lesson/review availability summary.
	GetSummary(ctx context.Context) (models.Summary, error)

	// GetSubjectsByIDs fetches the given subjects across however many pages
	// the server spreads them over.
	GetSubjectsByIDs(ctx context.Context, ids []int64) ([]models.Subject, error)

	// GetSubjectsByLevels fetches every subject of the given levels.
	GetSubjectsByLevels(ctx context.Context, levels []int) ([]models.Subject, error)

	// StartAssignment moves an unlocked assignment into the lesson stage and
	// returns its updated state.
	StartAssignment(ctx context.Context, assignmentID int64) (models.Assignment, error)

	// CreateReview records a finished review and returns the resources the
	// server updated in response.
	CreateReview(ctx context.Context, outcome models.ReviewOutcome) (models.CreateReviewResponse, error)
}
