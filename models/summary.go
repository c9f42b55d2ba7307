package models

import "time"

// SummaryEntry is one upcoming lesson or review batch in the progress
// summary: the subjects that become actionable at AvailableAt.
type SummaryEntry struct {
	AvailableAt time.Time `json:"available_at"`
	SubjectIDs  []int64   `json:"subject_ids"`
}

// Summary is the remote progress summary: what is available for lessons and
// reviews right now and in the near future. It is fetched on demand and not
// mirrored locally; the reactive queries derive the same information from
// assignments.
type Summary struct {
	Lessons       []SummaryEntry `json:"lessons"`
	Reviews       []SummaryEntry `json:"reviews"`
	NextReviewsAt *time.Time     `json:"next_reviews_at"`
}
