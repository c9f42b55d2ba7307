package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mrdjohnson/sukistudy/internal/api"
	"github.com/mrdjohnson/sukistudy/internal/config"
	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/internal/mock"
	"github.com/mrdjohnson/sukistudy/internal/store"
	"github.com/mrdjohnson/sukistudy/internal/syncer"
	"github.com/mrdjohnson/sukistudy/models"
)

func newTestApp(t *testing.T) (*App, *mock.MockStudyAPI, *mock.MockRemoteAPI, *store.Storages) {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.Storage{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	storages := store.NewStorages(db, logger.Nop())

	ctrl := gomock.NewController(t)
	studyAPI := mock.NewMockStudyAPI(ctrl)
	remote := mock.NewMockRemoteAPI(ctrl)

	engine := syncer.NewEngine(remote, storages, logger.Nop())
	a := NewApp(studyAPI, storages, engine, config.Sync{Interval: time.Hour}, logger.Nop())
	t.Cleanup(a.Close)

	return a, studyAPI, remote, storages
}

// allowBackgroundSync lets the sync job started by Login/RestoreSession run
// against empty remote collections.
func allowBackgroundSync(remote *mock.MockRemoteAPI) {
	empty := models.Collection{Object: "collection"}
	remote.EXPECT().GetSubjectsUpdatedAfter(gomock.Any(), gomock.Any()).Return(empty, nil).AnyTimes()
	remote.EXPECT().GetAssignmentsUpdatedAfter(gomock.Any(), gomock.Any()).Return(empty, nil).AnyTimes()
	remote.EXPECT().GetStudyMaterialsUpdatedAfter(gomock.Any(), gomock.Any()).Return(empty, nil).AnyTimes()
	remote.EXPECT().GetUser(gomock.Any()).Return(models.User{Username: "suki"}, nil).AnyTimes()
}

func TestApp_Login_StoresCredentialAndProfile(t *testing.T) {
	a, studyAPI, remote, storages := newTestApp(t)
	ctx := context.Background()

	allowBackgroundSync(remote)
	studyAPI.EXPECT().SetToken("tok-123")
	studyAPI.EXPECT().GetUser(gomock.Any()).Return(models.User{Username: "suki", Level: 7}, nil)

	user, err := a.Login(ctx, "  tok-123  ")
	require.NoError(t, err)
	assert.Equal(t, "suki", user.Username)

	token, err := storages.KV.Get(ctx, store.KeyAPIToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	stored, err := storages.Users.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Level)
}

func TestApp_Login_EmptyToken(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	_, err := a.Login(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestApp_Login_RejectedTokenRestoresPrevious(t *testing.T) {
	a, studyAPI, _, storages := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, storages.KV.Set(ctx, store.KeyAPIToken, "old-token"))

	gomock.InOrder(
		studyAPI.EXPECT().SetToken("new-token"),
		studyAPI.EXPECT().GetUser(gomock.Any()).Return(models.User{}, fmt.Errorf("GET /user: %w", api.ErrUnauthorized)),
		studyAPI.EXPECT().SetToken("old-token"),
	)

	_, err := a.Login(ctx, "new-token")
	require.ErrorIs(t, err, api.ErrUnauthorized)

	// the stored credential is untouched by the failed attempt
	token, err := storages.KV.Get(ctx, store.KeyAPIToken)
	require.NoError(t, err)
	assert.Equal(t, "old-token", token)
}

func TestApp_Logout_WipesEverything(t *testing.T) {
	a, studyAPI, _, storages := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, storages.KV.Set(ctx, store.KeyAPIToken, "tok"))
	require.NoError(t, storages.Subjects.Upsert(ctx, models.Subject{ID: 1, Kind: models.SubjectKindRadical, Slug: "ground"}))
	require.NoError(t, storages.Users.Upsert(ctx, models.User{Username: "suki"}))

	studyAPI.EXPECT().SetToken("")

	require.NoError(t, a.Logout(ctx))

	subjects, err := storages.Subjects.List(ctx, store.SubjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, subjects)

	_, err = storages.KV.Get(ctx, store.KeyAPIToken)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = storages.Users.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApp_RestoreSession(t *testing.T) {
	t.Run("no stored credential", func(t *testing.T) {
		a, _, _, _ := newTestApp(t)

		_, err := a.RestoreSession(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("resumes stored session", func(t *testing.T) {
		a, studyAPI, remote, storages := newTestApp(t)
		ctx := context.Background()

		require.NoError(t, storages.KV.Set(ctx, store.KeyAPIToken, "tok"))
		require.NoError(t, storages.Users.Upsert(ctx, models.User{Username: "suki", Level: 4}))

		allowBackgroundSync(remote)
		studyAPI.EXPECT().SetToken("tok")

		user, err := a.RestoreSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, "suki", user.Username)
	})
}

func TestApp_StartAssignment_MirrorsResult(t *testing.T) {
	a, studyAPI, _, storages := newTestApp(t)
	ctx := context.Background()

	startedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	started := models.Assignment{ID: 5, SubjectID: 2, SubjectKind: models.SubjectKindKanji, SRSStage: 1, StartedAt: &startedAt}
	studyAPI.EXPECT().StartAssignment(gomock.Any(), int64(5)).Return(started, nil)

	got, err := a.StartAssignment(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SRSStage)

	mirrored, err := storages.Assignments.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), mirrored.SubjectID)
	require.NotNil(t, mirrored.StartedAt)
}

func TestApp_SubmitReview_MirrorsUpdatedAssignment(t *testing.T) {
	a, studyAPI, _, storages := newTestApp(t)
	ctx := context.Background()

	outcome := models.ReviewOutcome{AssignmentID: 5, IncorrectMeaningAnswers: 1}

	var resp models.CreateReviewResponse
	resp.ID = 99
	resp.Object = "review"
	resp.ResourcesUpdated.Assignment = models.Resource{
		ID:     5,
		Object: "assignment",
		Data:   []byte(`{"subject_id": 2, "subject_type": "kanji", "srs_stage": 2, "available_at": "2026-03-02T12:00:00Z"}`),
	}
	studyAPI.EXPECT().CreateReview(gomock.Any(), outcome).Return(resp, nil)

	updated, err := a.SubmitReview(ctx, outcome)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.SRSStage)

	mirrored, err := storages.Assignments.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, mirrored.SRSStage)
	require.NotNil(t, mirrored.AvailableAt)
}

func TestApp_FetchSubjectsByIDs(t *testing.T) {
	a, studyAPI, _, storages := newTestApp(t)
	ctx := context.Background()

	fetched := []models.Subject{
		{ID: 1, Kind: models.SubjectKindRadical, Level: 1, Slug: "ground"},
		{ID: 2, Kind: models.SubjectKindKanji, Level: 1, Slug: "one"},
	}
	studyAPI.EXPECT().GetSubjectsByIDs(gomock.Any(), []int64{1, 2}).Return(fetched, nil)

	subjects, err := a.FetchSubjectsByIDs(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, subjects, 2)

	mirrored, err := storages.Subjects.List(ctx, store.SubjectFilter{})
	require.NoError(t, err)
	assert.Len(t, mirrored, 2)

	// nil ids short-circuits without a remote call
	subjects, err = a.FetchSubjectsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, subjects)
}

func TestApp_Summary(t *testing.T) {
	a, studyAPI, _, _ := newTestApp(t)

	next := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	studyAPI.EXPECT().GetSummary(gomock.Any()).Return(models.Summary{NextReviewsAt: &next}, nil)

	summary, err := a.Summary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary.NextReviewsAt)
	assert.True(t, summary.NextReviewsAt.Equal(next))
}
