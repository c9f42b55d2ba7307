package models

import "time"

// StudyMaterial holds the user's own annotations for one subject: free-form
// notes and extra accepted meanings. At most one record exists per subject.
type StudyMaterial struct {
	ID              int64     `json:"id"`
	SubjectID       int64     `json:"subject_id"`
	MeaningNote     string    `json:"meaning_note,omitempty"`
	ReadingNote     string    `json:"reading_note,omitempty"`
	MeaningSynonyms []string  `json:"meaning_synonyms,omitempty"`
	DataUpdatedAt   time.Time `json:"data_updated_at"`
}
