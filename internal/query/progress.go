package query

import (
	"context"
	"sort"
	"time"

	"github.com/mrdjohnson/sukistudy/internal/store"
	"github.com/mrdjohnson/sukistudy/models"
)

// SubjectProgress is an assignment joined to its subject. Reviewable is
// derived from the assignment's availability at computation time.
type SubjectProgress struct {
	Subject    models.Subject
	Assignment models.Assignment
	Reviewable bool
}

// allSubjectsWithProgress joins every mirrored assignment to its subject.
// Assignments whose subject has not been mirrored yet are omitted rather
// than surfaced as an error; the next subjects sync resolves them. Rows come
// back in assignment id order.
func allSubjectsWithProgress(ctx context.Context, storages *store.Storages, now time.Time) ([]SubjectProgress, error) {
	return joinProgress(ctx, storages, store.AssignmentFilter{}, now)
}

// learnedSubjectsWithProgress narrows the join to assignments past SRS stage
// zero and orders it soonest-reviewable first: ascending by available-at
// with unscheduled assignments last, then a stable second pass floats the
// already-reviewable rows to the front.
func learnedSubjectsWithProgress(ctx context.Context, storages *store.Storages, now time.Time) ([]SubjectProgress, error) {
	minStage := models.SRSStageMin + 1
	rows, err := joinProgress(ctx, storages, store.AssignmentFilter{MinSRSStage: &minStage}, now)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Assignment.AvailableAt, rows[j].Assignment.AvailableAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Reviewable && !rows[j].Reviewable
	})

	return rows, nil
}

func joinProgress(ctx context.Context, storages *store.Storages, filter store.AssignmentFilter, now time.Time) ([]SubjectProgress, error) {
	assignments, err := storages.Assignments.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []SubjectProgress{}, nil
	}

	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.SubjectID)
	}
	subjects, err := storages.Subjects.List(ctx, store.SubjectFilter{IDs: ids})
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Subject, len(subjects))
	for _, s := range subjects {
		byID[s.ID] = s
	}

	rows := make([]SubjectProgress, 0, len(assignments))
	for _, a := range assignments {
		subject, ok := byID[a.SubjectID]
		if !ok {
			continue
		}
		rows = append(rows, SubjectProgress{
			Subject:    subject,
			Assignment: a,
			Reviewable: a.ReviewableAt(now),
		})
	}
	return rows, nil
}
