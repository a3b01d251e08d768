package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewPage(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.get(t, "/review")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := readDocument(t, resp)
	assert.Equal(t, "Pending Review (3)", doc.Find(`[data-tab="pending"]`).Text())
	assert.Equal(t, 3, doc.Find("#pending-list [data-review]").Length())
	assert.Equal(t, 2, doc.Find("#history-list [data-correction]").Length())
	assert.Contains(t, doc.Find("#review-panel").Text(), "Click on any pending review")

	first := doc.Find("#pending-list [data-review]").First()
	assert.Equal(t, "Alex Johnson", first.Find("h3").Text())
	assert.Equal(t, "68%", first.Find("dd.text-destructive").Text())
}

func TestReviewPanel_DefaultRepCount(t *testing.T) {
	ts := setupTestServer(t)

	pending, err := ts.App.ReviewRepo.ListPending(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, pending)

	for _, review := range pending {
		t.Run(review.Name, func(t *testing.T) {
			resp := ts.get(t, "/review/pending/"+review.ID)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			doc := readDocument(t, resp)
			selected, _ := doc.Find(".review-panel").Attr("data-selected")
			assert.Equal(t, review.ID, selected)

			value, ok := doc.Find("input#correctedReps").Attr("value")
			require.True(t, ok)
			assert.Equal(t, strconv.Itoa(review.AIReps), value)
		})
	}
}

func TestReviewPanel_Unknown(t *testing.T) {
	ts := setupTestServer(t)

	assert.Equal(t, http.StatusNotFound, ts.get(t, "/review/pending/42").StatusCode)
}

func TestReviewActions(t *testing.T) {
	ts := setupTestServer(t)

	approve := ts.postForm(t, "/review/pending/1/approve", nil, true)
	require.Equal(t, http.StatusOK, approve.StatusCode)
	assert.Contains(t, readBody(t, approve), "Analysis approved and sent to user!")

	correct := ts.postForm(t, "/review/pending/2/correct", url.Values{"correctedReps": {"20"}, "notes": {"missed two"}}, true)
	require.Equal(t, http.StatusOK, correct.StatusCode)
	assert.Contains(t, readBody(t, correct), "Correction saved! User has been notified.")

	assert.Equal(t, http.StatusNotFound, ts.postForm(t, "/review/pending/9/approve", nil, true).StatusCode)
	assert.Equal(t, http.StatusNotFound, ts.postForm(t, "/review/pending/9/correct", nil, true).StatusCode)
}

func TestReviewActions_DoNotPersist(t *testing.T) {
	ts := setupTestServer(t)

	ts.postForm(t, "/review/pending/2/correct", url.Values{"correctedReps": {"99"}}, true)
	ts.postForm(t, "/review/pending/2/approve", nil, true)

	review, err := ts.App.ReviewRepo.GetPending(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 18, review.AIReps)

	pending, err := ts.App.ReviewRepo.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}
