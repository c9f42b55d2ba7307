package models

import "time"

// SRS stage bounds as defined by the remote spaced-repetition schedule.
// Stage 0 means the subject's lesson has not been completed yet.
const (
	SRSStageMin = 0
	SRSStageMax = 9
)

// Assignment is the user's progress record for exactly one subject. There is
// at most one assignment per subject per user.
//
// AvailableAt is nil while the assignment is not yet actionable (lesson not
// taken, or the subject is burned). For ordering purposes a nil AvailableAt
// sorts after every concrete timestamp.
type Assignment struct {
	ID            int64       `json:"id"`
	SubjectID     int64       `json:"subject_id"`
	SubjectKind   SubjectKind `json:"subject_type"`
	SRSStage      int         `json:"srs_stage"`
	UnlockedAt    *time.Time  `json:"unlocked_at,omitempty"`
	StartedAt     *time.Time  `json:"started_at,omitempty"`
	AvailableAt   *time.Time  `json:"available_at,omitempty"`
	BurnedAt      *time.Time  `json:"burned_at,omitempty"`
	DataUpdatedAt time.Time   `json:"data_updated_at"`
}

// ReviewableAt reports whether the assignment is actionable at the given
// instant. A nil AvailableAt is treated as infinitely far in the future.
func (a Assignment) ReviewableAt(now time.Time) bool {
	return a.AvailableAt != nil && a.AvailableAt.Before(now)
}
