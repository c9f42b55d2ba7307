package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resource is the envelope the remote API wraps every single record in. The
// record kind travels in Object and the record payload in Data; the payload
// shape depends on the kind, so it is kept raw until the caller decodes it.
type Resource struct {
	ID            int64           `json:"id"`
	Object        string          `json:"object"`
	URL           string          `json:"url"`
	DataUpdatedAt time.Time       `json:"data_updated_at"`
	Data          json.RawMessage `json:"data"`
}

// Pages carries the pagination cursors of a collection response. NextURL is
// an absolute URL; an empty NextURL means the last page has been reached.
type Pages struct {
	PerPage     int    `json:"per_page"`
	NextURL     string `json:"next_url"`
	PreviousURL string `json:"previous_url"`
}

// Collection is the envelope of every paginated list response.
type Collection struct {
	Object        string     `json:"object"`
	URL           string     `json:"url"`
	Pages         Pages      `json:"pages"`
	TotalCount    int        `json:"total_count"`
	DataUpdatedAt *time.Time `json:"data_updated_at"`
	Data          []Resource `json:"data"`
}

// subjectData is the wire payload of a subject resource. The subject kind is
// not part of the payload; it is the envelope's Object field.
type subjectData struct {
	Level               int       `json:"level"`
	Slug                string    `json:"slug"`
	Characters          string    `json:"characters"`
	Meanings            []Meaning `json:"meanings"`
	Readings            []Reading `json:"readings"`
	MeaningMnemonic     string    `json:"meaning_mnemonic"`
	ReadingMnemonic     string    `json:"reading_mnemonic"`
	ComponentSubjectIDs []int64   `json:"component_subject_ids"`
	PronunciationAudios []struct {
		URL string `json:"url"`
	} `json:"pronunciation_audios"`
}

// SubjectFromResource decodes a subject out of its resource envelope.
func SubjectFromResource(r Resource) (Subject, error) {
	var d subjectData
	if err := json.Unmarshal(r.Data, &d); err != nil {
		return Subject{}, fmt.Errorf("decode subject %d: %w", r.ID, err)
	}

	s := Subject{
		ID:                  r.ID,
		Kind:                SubjectKind(r.Object),
		Level:               d.Level,
		Slug:                d.Slug,
		Characters:          d.Characters,
		Meanings:            d.Meanings,
		Readings:            d.Readings,
		MeaningMnemonic:     d.MeaningMnemonic,
		ReadingMnemonic:     d.ReadingMnemonic,
		ComponentSubjectIDs: d.ComponentSubjectIDs,
		DataUpdatedAt:       r.DataUpdatedAt,
	}
	for _, a := range d.PronunciationAudios {
		s.AudioURLs = append(s.AudioURLs, a.URL)
	}

	return s, nil
}

// SubjectsFromCollection decodes every resource of a subjects page.
func SubjectsFromCollection(col Collection) ([]Subject, error) {
	subjects := make([]Subject, 0, len(col.Data))
	for _, r := range col.Data {
		s, err := SubjectFromResource(r)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

type assignmentData struct {
	SubjectID   int64      `json:"subject_id"`
	SubjectType string     `json:"subject_type"`
	SRSStage    int        `json:"srs_stage"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
	StartedAt   *time.Time `json:"started_at"`
	AvailableAt *time.Time `json:"available_at"`
	BurnedAt    *time.Time `json:"burned_at"`
}

// AssignmentFromResource decodes an assignment out of its resource envelope.
func AssignmentFromResource(r Resource) (Assignment, error) {
	var d assignmentData
	if err := json.Unmarshal(r.Data, &d); err != nil {
		return Assignment{}, fmt.Errorf("decode assignment %d: %w", r.ID, err)
	}

	return Assignment{
		ID:            r.ID,
		SubjectID:     d.SubjectID,
		SubjectKind:   SubjectKind(d.SubjectType),
		SRSStage:      d.SRSStage,
		UnlockedAt:    d.UnlockedAt,
		StartedAt:     d.StartedAt,
		AvailableAt:   d.AvailableAt,
		BurnedAt:      d.BurnedAt,
		DataUpdatedAt: r.DataUpdatedAt,
	}, nil
}

// AssignmentsFromCollection decodes every resource of an assignments page.
func AssignmentsFromCollection(col Collection) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(col.Data))
	for _, r := range col.Data {
		a, err := AssignmentFromResource(r)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

type studyMaterialData struct {
	SubjectID       int64    `json:"subject_id"`
	MeaningNote     string   `json:"meaning_note"`
	ReadingNote     string   `json:"reading_note"`
	MeaningSynonyms []string `json:"meaning_synonyms"`
}

// StudyMaterialFromResource decodes a study material out of its envelope.
func StudyMaterialFromResource(r Resource) (StudyMaterial, error) {
	var d studyMaterialData
	if err := json.Unmarshal(r.Data, &d); err != nil {
		return StudyMaterial{}, fmt.Errorf("decode study material %d: %w", r.ID, err)
	}

	return StudyMaterial{
		ID:              r.ID,
		SubjectID:       d.SubjectID,
		MeaningNote:     d.MeaningNote,
		ReadingNote:     d.ReadingNote,
		MeaningSynonyms: d.MeaningSynonyms,
		DataUpdatedAt:   r.DataUpdatedAt,
	}, nil
}

// StudyMaterialsFromCollection decodes every resource of a study-materials page.
func StudyMaterialsFromCollection(col Collection) ([]StudyMaterial, error) {
	materials := make([]StudyMaterial, 0, len(col.Data))
	for _, r := range col.Data {
		m, err := StudyMaterialFromResource(r)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}

type userData struct {
	Username  string     `json:"username"`
	Level     int        `json:"level"`
	StartedAt *time.Time `json:"started_at"`
}

// UserFromResource decodes the session user's profile. The returned user is
// keyed by [LocalUserID] since the API carries no numeric id for this
// resource.
func UserFromResource(r Resource) (User, error) {
	var d userData
	if err := json.Unmarshal(r.Data, &d); err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}

	return User{
		ID:        LocalUserID,
		Username:  d.Username,
		Level:     d.Level,
		StartedAt: d.StartedAt,
	}, nil
}
