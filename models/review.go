package models

import "encoding/json"

// ReviewOutcome is the payload of the "submit a review" write action. The
// incorrect-answer counters are per answer category; both are zero for a
// review answered correctly on the first try.
type ReviewOutcome struct {
	AssignmentID            int64 `json:"assignment_id"`
	IncorrectMeaningAnswers int   `json:"incorrect_meaning_answers"`
	IncorrectReadingAnswers int   `json:"incorrect_reading_answers"`
}

// CreateReviewRequest wraps a review outcome in the envelope the write
// endpoint expects.
type CreateReviewRequest struct {
	Review ReviewOutcome `json:"review"`
}

// CreateReviewResponse is the write endpoint's response. ResourcesUpdated
// carries the assignment as mutated by the review, which callers upsert
// locally so the mirror reflects the new SRS stage without waiting for the
// next sync cycle.
type CreateReviewResponse struct {
	ID               int64           `json:"id"`
	Object           string          `json:"object"`
	Data             json.RawMessage `json:"data"`
	ResourcesUpdated struct {
		Assignment Resource `json:"assignment"`
	} `json:"resources_updated"`
}
