package syncer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mrdjohnson/sukistudy/models"
)

func TestJob_StartRunsImmediateSync(t *testing.T) {
	engine, remote, storages := newTestEngine(t)
	storeCredential(t, storages)

	remote.EXPECT().GetSubjectsUpdatedAfter(gomock.Any(), gomock.Any()).Return(emptyPage(), nil).AnyTimes()
	remote.EXPECT().GetAssignmentsUpdatedAfter(gomock.Any(), gomock.Any()).Return(emptyPage(), nil).AnyTimes()
	remote.EXPECT().GetStudyMaterialsUpdatedAfter(gomock.Any(), gomock.Any()).Return(emptyPage(), nil).AnyTimes()
	remote.EXPECT().GetUser(gomock.Any()).Return(models.User{Username: "suki"}, nil).AnyTimes()

	job := NewJob(engine)
	job.Start(context.Background(), time.Hour)
	defer job.Stop()

	// the first sync runs right away, not an interval later
	require.Eventually(t, func() bool {
		return !engine.LastSyncedAt().IsZero()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestJob_StopWaitsForGoroutineExit(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	job := NewJob(engine)
	job.Start(context.Background(), time.Hour)
	job.Stop()

	// idempotent and safe without a running job
	job.Stop()
}

func TestJob_RestartReplacesPreviousJob(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	// with no stored credential every cycle is a no-op, so only the
	// start/stop lifecycle is exercised here
	job := NewJob(engine)
	ctx := context.Background()
	job.Start(ctx, time.Hour)
	job.Start(ctx, time.Hour)
	job.Stop()

	assert.True(t, engine.LastSyncedAt().IsZero())
}
