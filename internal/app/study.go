package app

import (
	"context"
	"fmt"

	"github.com/mrdjohnson/sukistudy/models"
)

// StartAssignment moves an assignment into the lesson stage on the server
// and mirrors the returned state locally, so the derived views pick the
// change up without waiting for the next sync cycle.
func (a *App) StartAssignment(ctx context.Context, assignmentID int64) (models.Assignment, error) {
	started, err := a.api.StartAssignment(ctx, assignmentID)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("start assignment %d: %w", assignmentID, err)
	}

	if err = a.storages.Assignments.Upsert(ctx, started); err != nil {
		return models.Assignment{}, fmt.Errorf("mirror started assignment: %w", err)
	}

	return started, nil
}

// SubmitReview records a finished review on the server. The server answers
// with the assignment's post-review state, which is mirrored immediately.
func (a *App) SubmitReview(ctx context.Context, outcome models.ReviewOutcome) (models.Assignment, error) {
	resp, err := a.api.CreateReview(ctx, outcome)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("submit review for assignment %d: %w", outcome.AssignmentID, err)
	}

	updated, err := models.AssignmentFromResource(resp.ResourcesUpdated.Assignment)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("decode updated assignment: %w", err)
	}

	if err = a.storages.Assignments.Upsert(ctx, updated); err != nil {
		return models.Assignment{}, fmt.Errorf("mirror reviewed assignment: %w", err)
	}

	return updated, nil
}

// FetchSubjectsByIDs pulls specific subjects from the server and mirrors
// them, for resolving component subjects the incremental sync has not
// delivered yet.
func (a *App) FetchSubjectsByIDs(ctx context.Context, ids []int64) ([]models.Subject, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	subjects, err := a.api.GetSubjectsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch subjects by ids: %w", err)
	}

	if err = a.storages.Subjects.Upsert(ctx, subjects...); err != nil {
		return nil, fmt.Errorf("mirror fetched subjects: %w", err)
	}

	return subjects, nil
}

// FetchSubjectsByLevels pulls every subject of the given levels and mirrors
// them.
func (a *App) FetchSubjectsByLevels(ctx context.Context, levels []int) ([]models.Subject, error) {
	if len(levels) == 0 {
		return nil, nil
	}

	subjects, err := a.api.GetSubjectsByLevels(ctx, levels)
	if err != nil {
		return nil, fmt.Errorf("fetch subjects by levels: %w", err)
	}

	if err = a.storages.Subjects.Upsert(ctx, subjects...); err != nil {
		return nil, fmt.Errorf("mirror fetched subjects: %w", err)
	}

	return subjects, nil
}

// Summary fetches the current lesson/review availability summary straight
// from the server; it is not mirrored.
func (a *App) Summary(ctx context.Context) (models.Summary, error) {
	return a.api.GetSummary(ctx)
}
