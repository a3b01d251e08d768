package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsPage(t *testing.T) {
	ts := setupTestServer(t)
	sess := createSession(ts)

	resp := ts.get(t, "/results/"+sess.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := readDocument(t, resp)
	assert.Contains(t, doc.Find("h1").Text(), "Alex")
	assert.Equal(t, "You completed 15 Push-ups!", doc.Find("#summary").Text())
	assert.Equal(t, "Great", doc.Find("#badge").Text())
	assert.Equal(t, "15", doc.Find("#reps").Text())
	assert.Equal(t, "87/100", doc.Find("#form-score").Text())
	assert.True(t, doc.Find("#form-score").HasClass("text-success"))
	assert.Equal(t, "92%", doc.Find("#confidence").Text())

	assert.Equal(t, 4, doc.Find(".breakdown li").Length())
	assert.Equal(t, 3, doc.Find("#strengths li").Length())
	assert.Equal(t, 2, doc.Find("#improvements li").Length())
	assert.Equal(t, 2, doc.Find("#next-steps li").Length())
	assert.True(t, strings.HasPrefix(doc.Find("#strengths li").First().Text(), "Great job keeping your back straight!"))
}

func TestResultsPage_RendersIdentically(t *testing.T) {
	ts := setupTestServer(t)
	sess := createSession(ts)

	first := readBody(t, ts.get(t, "/results/"+sess.ID))
	second := readBody(t, ts.get(t, "/results/"+sess.ID))
	assert.Equal(t, first, second)
}

func TestResultsPage_UnknownSession(t *testing.T) {
	ts := setupTestServer(t)

	assert.Equal(t, http.StatusNotFound, ts.get(t, "/results/unknown").StatusCode)
}

func TestShareResults(t *testing.T) {
	ts := setupTestServer(t)
	sess := createSession(ts)

	resp := ts.postForm(t, "/results/"+sess.ID+"/share", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Results copied to clipboard!")

	missing := ts.postForm(t, "/results/unknown/share", nil, true)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
