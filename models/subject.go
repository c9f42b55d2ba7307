package models

import "time"

// SubjectKind enumerates the closed set of subject kinds delivered by the
// remote API. The kind arrives as the resource envelope's "object" field,
// not as part of the subject payload itself.
type SubjectKind string

const (
	SubjectKindRadical    SubjectKind = "radical"
	SubjectKindKanji      SubjectKind = "kanji"
	SubjectKindVocabulary SubjectKind = "vocabulary"
)

// Meaning is one accepted meaning of a subject.
type Meaning struct {
	Meaning string `json:"meaning"`
	Primary bool   `json:"primary"`
}

// Reading is one accepted reading of a subject. Radicals carry no readings.
type Reading struct {
	Reading string `json:"reading"`
	Primary bool   `json:"primary"`
}

// Subject is a learnable unit mirrored from the remote service. Subjects are
// immutable once synced: the server never partially patches them, so local
// updates are always whole-record replaces.
//
// ComponentSubjectIDs reference the subjects this one is composed of (kanji
// reference radicals, vocabulary reference kanji). The relationship is a
// shared graph, not a tree: one component may appear under many parents.
type Subject struct {
	ID                  int64       `json:"id"`
	Kind                SubjectKind `json:"kind"`
	Level               int         `json:"level"`
	Slug                string      `json:"slug"`
	Characters          string      `json:"characters"`
	Meanings            []Meaning   `json:"meanings"`
	Readings            []Reading   `json:"readings,omitempty"`
	MeaningMnemonic     string      `json:"meaning_mnemonic"`
	ReadingMnemonic     string      `json:"reading_mnemonic,omitempty"`
	ComponentSubjectIDs []int64     `json:"component_subject_ids,omitempty"`
	AudioURLs           []string    `json:"audio_urls,omitempty"`
	DataUpdatedAt       time.Time   `json:"data_updated_at"`
}

// PrimaryMeaning returns the subject's primary meaning, or the first meaning
// if none is flagged primary, or "" for a subject with no meanings.
func (s Subject) PrimaryMeaning() string {
	for _, m := range s.Meanings {
		if m.Primary {
			return m.Meaning
		}
	}
	if len(s.Meanings) > 0 {
		return s.Meanings[0].Meaning
	}
	return ""
}
