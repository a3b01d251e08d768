package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.get(t, "/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", readBody(t, resp))
}

func TestHomePage(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := readDocument(t, resp)
	assert.Equal(t, 5, doc.Find(".chips .chip").Length())
	assert.Equal(t, "Push-ups", doc.Find(".chips .chip").First().Text())
	assert.Equal(t, 1, doc.Find(`a[href="/upload"]`).Length())
}

func TestStaticAssets(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/static/app.js", "/static/app.css"} {
		resp := ts.get(t, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
