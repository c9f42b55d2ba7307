package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdjohnson/sukistudy/models"
)

func TestStorages_ClearAll(t *testing.T) {
	st := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, st.Subjects.Upsert(ctx, testSubject(1, 1, models.SubjectKindRadical)))
	require.NoError(t, st.Assignments.Upsert(ctx, models.Assignment{ID: 1, SubjectID: 1, SRSStage: 1}))
	require.NoError(t, st.StudyMaterials.Upsert(ctx, models.StudyMaterial{ID: 1, SubjectID: 1, MeaningNote: "n"}))
	require.NoError(t, st.Users.Upsert(ctx, models.User{Username: "crabigator", Level: 3}))
	require.NoError(t, st.KV.Set(ctx, KeySubjectsCursor, "2024-03-01T00:00:00Z"))
	require.NoError(t, st.KV.Set(ctx, KeyAssignmentsCursor, "2024-03-01T00:00:00Z"))
	require.NoError(t, st.KV.Set(ctx, KeyStudyMaterialsCursor, "2024-03-01T00:00:00Z"))

	require.NoError(t, st.ClearAll(ctx))

	subjects, err := st.Subjects.List(ctx, SubjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, subjects)

	assignments, err := st.Assignments.List(ctx, AssignmentFilter{})
	require.NoError(t, err)
	assert.Empty(t, assignments)

	materials, err := st.StudyMaterials.List(ctx, StudyMaterialFilter{})
	require.NoError(t, err)
	assert.Empty(t, materials)

	_, err = st.Users.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, key := range []string{KeySubjectsCursor, KeyAssignmentsCursor, KeyStudyMaterialsCursor} {
		_, err = st.KV.Get(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound, "cursor %s should be absent", key)
	}
}

func TestUserRepository_SingletonOverwrite(t *testing.T) {
	st := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, st.Users.Upsert(ctx, models.User{Username: "old", Level: 1}))
	require.NoError(t, st.Users.Upsert(ctx, models.User{Username: "new", Level: 2}))

	got, err := st.Users.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LocalUserID, got.ID)
	assert.Equal(t, "new", got.Username)
	assert.Equal(t, 2, got.Level)
}

func TestStudyMaterialRepository_RoundTrip(t *testing.T) {
	st := newTestStorages(t)
	ctx := context.Background()

	m := models.StudyMaterial{
		ID:              3,
		SubjectID:       30,
		MeaningNote:     "remember the radical",
		MeaningSynonyms: []string{"alt meaning"},
	}
	require.NoError(t, st.StudyMaterials.Upsert(ctx, m))

	got, err := st.StudyMaterials.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, m.MeaningNote, got.MeaningNote)
	assert.Equal(t, m.MeaningSynonyms, got.MeaningSynonyms)

	bySubject, err := st.StudyMaterials.List(ctx, StudyMaterialFilter{SubjectIDs: []int64{30}})
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
}
