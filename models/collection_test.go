package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectsFromCollection(t *testing.T) {
	raw := `{
		"object": "collection",
		"url": "https://api.wanikani.com/v2/subjects",
		"pages": {"per_page": 1000, "next_url": "https://api.wanikani.com/v2/subjects?page_after_id=1000"},
		"total_count": 2,
		"data": [
			{
				"id": 1,
				"object": "radical",
				"data_updated_at": "2026-02-01T10:00:00Z",
				"data": {
					"level": 1,
					"slug": "ground",
					"characters": "一",
					"meanings": [{"meaning": "Ground", "primary": true}],
					"meaning_mnemonic": "the ground"
				}
			},
			{
				"id": 440,
				"object": "kanji",
				"data_updated_at": "2026-02-02T10:00:00Z",
				"data": {
					"level": 1,
					"slug": "one",
					"characters": "一",
					"meanings": [{"meaning": "One", "primary": true}],
					"readings": [{"reading": "いち", "primary": true, "accepted_answer": true}],
					"component_subject_ids": [1],
					"pronunciation_audios": [{"url": "https://cdn.test/audio/1.mp3"}]
				}
			}
		]
	}`

	var col Collection
	require.NoError(t, json.Unmarshal([]byte(raw), &col))
	assert.Equal(t, 2, col.TotalCount)
	assert.NotEmpty(t, col.Pages.NextURL)

	subjects, err := SubjectsFromCollection(col)
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	radical := subjects[0]
	assert.Equal(t, SubjectKindRadical, radical.Kind)
	assert.Equal(t, "Ground", radical.PrimaryMeaning())
	assert.Equal(t, time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC), radical.DataUpdatedAt)

	// the kind travels in the envelope, not the payload
	kanji := subjects[1]
	assert.Equal(t, SubjectKindKanji, kanji.Kind)
	assert.Equal(t, []int64{1}, kanji.ComponentSubjectIDs)
	assert.Equal(t, []string{"https://cdn.test/audio/1.mp3"}, kanji.AudioURLs)
	require.Len(t, kanji.Readings, 1)
	assert.Equal(t, "いち", kanji.Readings[0].Reading)
}

func TestAssignmentFromResource(t *testing.T) {
	r := Resource{
		ID:            80463006,
		Object:        "assignment",
		DataUpdatedAt: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
		Data: []byte(`{
			"subject_id": 440,
			"subject_type": "kanji",
			"srs_stage": 4,
			"unlocked_at": "2026-01-01T10:00:00Z",
			"started_at": "2026-01-02T10:00:00Z",
			"available_at": "2026-02-04T10:00:00Z",
			"burned_at": null
		}`),
	}

	a, err := AssignmentFromResource(r)
	require.NoError(t, err)
	assert.Equal(t, int64(80463006), a.ID)
	assert.Equal(t, int64(440), a.SubjectID)
	assert.Equal(t, SubjectKindKanji, a.SubjectKind)
	assert.Equal(t, 4, a.SRSStage)
	require.NotNil(t, a.AvailableAt)
	assert.Nil(t, a.BurnedAt)
}

func TestAssignment_ReviewableAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Second), now.Add(time.Second)

	assert.True(t, Assignment{AvailableAt: &past}.ReviewableAt(now))
	assert.False(t, Assignment{AvailableAt: &future}.ReviewableAt(now))
	assert.False(t, Assignment{}.ReviewableAt(now), "unscheduled is never reviewable")
}

func TestUserFromResource(t *testing.T) {
	r := Resource{
		Object: "user",
		Data:   []byte(`{"username": "suki", "level": 7, "started_at": "2025-06-01T00:00:00Z"}`),
	}

	u, err := UserFromResource(r)
	require.NoError(t, err)
	assert.Equal(t, LocalUserID, u.ID)
	assert.Equal(t, "suki", u.Username)
	assert.Equal(t, 7, u.Level)
	require.NotNil(t, u.StartedAt)
}

func TestStudyMaterialFromResource_BadPayload(t *testing.T) {
	_, err := StudyMaterialFromResource(Resource{ID: 1, Data: []byte(`{"subject_id": "nope"}`)})
	assert.Error(t, err)
}
