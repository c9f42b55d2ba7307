package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mrdjohnson/sukistudy/models"
)

// Typed accessors for the endpoints the rest of the application needs. All
// of them funnel through [Client.do] and therefore share the rate budget and
// the retry behavior.

// GetUser fetches the session user's profile.
func (c *Client) GetUser(ctx context.Context) (models.User, error) {
	body, err := c.Request(ctx, "/user")
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}

	var r models.Resource
	if err := json.Unmarshal(body, &r); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return models.UserFromResource(r)
}

// GetSummary fetches the progress summary: upcoming lesson and review
// batches with their availability times.
func (c *Client) GetSummary(ctx context.Context) (models.Summary, error) {
	body, err := c.Request(ctx, "/summary")
	if err != nil {
		return models.Summary{}, fmt.Errorf("get summary: %w", err)
	}

	var r models.Resource
	if err := json.Unmarshal(body, &r); err != nil {
		return models.Summary{}, fmt.Errorf("decode summary response: %w", err)
	}

	var s models.Summary
	if err := json.Unmarshal(r.Data, &s); err != nil {
		return models.Summary{}, fmt.Errorf("decode summary data: %w", err)
	}

	return s, nil
}

// GetSubjectsUpdatedAfter fetches the first subjects page. since is the
// persisted cursor in RFC 3339 form; when empty the request is unfiltered
// and the remote returns the full collection (first run).
func (c *Client) GetSubjectsUpdatedAfter(ctx context.Context, since string) (models.Collection, error) {
	return c.getCollection(ctx, "/subjects", updatedAfterParams(since))
}

// GetAssignmentsUpdatedAfter fetches the first assignments page, filtered by
// the since cursor when present.
func (c *Client) GetAssignmentsUpdatedAfter(ctx context.Context, since string) (models.Collection, error) {
	return c.getCollection(ctx, "/assignments", updatedAfterParams(since))
}

// GetStudyMaterialsUpdatedAfter fetches the first study-materials page,
// filtered by the since cursor when present.
func (c *Client) GetStudyMaterialsUpdatedAfter(ctx context.Context, since string) (models.Collection, error) {
	return c.getCollection(ctx, "/study_materials", updatedAfterParams(since))
}

// GetPage fetches a subsequent collection page via the absolute next-page
// URL embedded in the previous response.
func (c *Client) GetPage(ctx context.Context, pageURL string) (models.Collection, error) {
	return c.getCollection(ctx, pageURL, nil)
}

// GetSubjectsByIDs fetches the given subjects directly from the remote,
// following pagination until the batch is complete. Used by UI screens that
// need subjects not guaranteed to be in the local mirror yet.
func (c *Client) GetSubjectsByIDs(ctx context.Context, ids []int64) ([]models.Subject, error) {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	params := url.Values{"ids": []string{strings.Join(parts, ",")}}

	return c.collectSubjects(ctx, params)
}

// GetSubjectsByLevels fetches all subjects of the given levels directly from
// the remote, following pagination.
func (c *Client) GetSubjectsByLevels(ctx context.Context, levels []int) ([]models.Subject, error) {
	parts := make([]string, 0, len(levels))
	for _, lvl := range levels {
		parts = append(parts, strconv.Itoa(lvl))
	}
	params := url.Values{"levels": []string{strings.Join(parts, ",")}}

	return c.collectSubjects(ctx, params)
}

// StartAssignment marks the assignment's subject as started ("begin learning
// a subject"). The remote moves the assignment to SRS stage 1 and returns
// the updated record.
func (c *Client) StartAssignment(ctx context.Context, assignmentID int64) (models.Assignment, error) {
	endpoint := fmt.Sprintf("/assignments/%d/start", assignmentID)
	body, err := c.do(ctx, http.MethodPut, endpoint, struct{}{})
	if err != nil {
		return models.Assignment{}, fmt.Errorf("start assignment %d: %w", assignmentID, err)
	}

	var r models.Resource
	if err := json.Unmarshal(body, &r); err != nil {
		return models.Assignment{}, fmt.Errorf("decode start assignment response: %w", err)
	}

	return models.AssignmentFromResource(r)
}

// CreateReview submits a review outcome. The response carries the mutated
// assignment under resources_updated; callers use it for an optimistic local
// upsert.
func (c *Client) CreateReview(ctx context.Context, outcome models.ReviewOutcome) (models.CreateReviewResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/reviews", models.CreateReviewRequest{Review: outcome})
	if err != nil {
		return models.CreateReviewResponse{}, fmt.Errorf("create review for assignment %d: %w", outcome.AssignmentID, err)
	}

	var resp models.CreateReviewResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.CreateReviewResponse{}, fmt.Errorf("decode create review response: %w", err)
	}

	return resp, nil
}

func (c *Client) getCollection(ctx context.Context, endpointOrFullURL string, params url.Values) (models.Collection, error) {
	requestURL := endpointOrFullURL
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	body, err := c.Request(ctx, requestURL)
	if err != nil {
		return models.Collection{}, err
	}

	var col models.Collection
	if err := json.Unmarshal(body, &col); err != nil {
		return models.Collection{}, fmt.Errorf("decode collection from %s: %w", endpointOrFullURL, err)
	}

	return col, nil
}

// collectSubjects fetches /subjects with params and follows next-page URLs
// until the collection is exhausted.
func (c *Client) collectSubjects(ctx context.Context, params url.Values) ([]models.Subject, error) {
	var all []models.Subject

	col, err := c.getCollection(ctx, "/subjects", params)
	if err != nil {
		return nil, fmt.Errorf("get subjects: %w", err)
	}

	for {
		subjects, err := models.SubjectsFromCollection(col)
		if err != nil {
			return nil, err
		}
		all = append(all, subjects...)

		if col.Pages.NextURL == "" || len(col.Data) == 0 {
			return all, nil
		}

		col, err = c.GetPage(ctx, col.Pages.NextURL)
		if err != nil {
			return nil, fmt.Errorf("get subjects page: %w", err)
		}
	}
}

func updatedAfterParams(since string) url.Values {
	if since == "" {
		return nil
	}
	return url.Values{"updated_after": []string{since}}
}
