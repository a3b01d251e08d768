package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kdimtricp/repcheck/internal/analysis"
	"github.com/kdimtricp/repcheck/internal/database"
	"github.com/kdimtricp/repcheck/internal/session"
	"github.com/kdimtricp/repcheck/internal/storage"
	"github.com/kdimtricp/repcheck/web"
)

type testServer struct {
	Server    *httptest.Server
	App       *App
	UploadDir string
	Client    *http.Client
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tempDir := t.TempDir()
	uploadDir := filepath.Join(tempDir, "uploads")

	localStorage, err := storage.NewLocalStorage(uploadDir)
	require.NoError(t, err)

	db, err := database.NewDB(database.Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(tempDir, "test.db"),
	})
	require.NoError(t, err)

	templates, err := web.Load()
	require.NoError(t, err)

	app := &App{
		Storage:       localStorage,
		DB:            db,
		ResultRepo:    database.NewResultRepository(db),
		ReviewRepo:    database.NewReviewRepository(db),
		Sessions:      session.NewStore(),
		Templates:     templates,
		Logger:        zap.NewNop(),
		MaxUploadSize: 10 * 1024 * 1024,
		Analysis: analysis.Config{
			TickInterval:    time.Millisecond,
			CompletionDelay: 5 * time.Millisecond,
		},
		PreviewTTL: time.Hour,
	}

	server := httptest.NewServer(NewRouter(app))
	t.Cleanup(func() {
		server.Close()
		db.Close()
	})

	return &testServer{
		Server:    server,
		App:       app,
		UploadDir: uploadDir,
		Client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := ts.Client.Get(ts.Server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (ts *testServer) postForm(t *testing.T, path string, values url.Values, htmx bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (ts *testServer) postFile(t *testing.T, filename, contentType string, content []byte) *http.Response {
	t.Helper()
	body, formType := createMultipartFile(t, filename, contentType, content)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/upload/preview", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", formType)
	req.Header.Set("HX-Request", "true")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func createMultipartFile(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="video"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func readDocument(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
