package api

import (
	"bytes"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kdimtricp/repcheck/internal/analysis"
	"github.com/kdimtricp/repcheck/internal/database"
	"github.com/kdimtricp/repcheck/internal/models"
	"github.com/kdimtricp/repcheck/internal/session"
	"github.com/kdimtricp/repcheck/internal/storage"
	"github.com/kdimtricp/repcheck/web"
)

type App struct {
	Storage       storage.Storage
	DB            *database.DB
	ResultRepo    *database.ResultRepository
	ReviewRepo    *database.ReviewRepository
	Sessions      *session.Store
	Templates     *web.Templates
	Logger        *zap.Logger
	MaxUploadSize int64
	Analysis      analysis.Config
	PreviewTTL    time.Duration
}

func (app *App) log() *zap.Logger {
	if app.Logger == nil {
		return zap.NewNop()
	}
	return app.Logger
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (app *App) HomeHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Exercises []models.Exercise
	}{
		Exercises: models.Exercises,
	}

	app.renderPage(w, "index", data)
}

type notice struct {
	Kind    string
	Message string
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func (app *App) renderPage(w http.ResponseWriter, page string, data interface{}) {
	var buf bytes.Buffer
	if err := app.Templates.Render(&buf, page, data); err != nil {
		app.log().Error("rendering page", zap.String("page", page), zap.Error(err))
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (app *App) renderPartial(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := app.Templates.RenderPartial(&buf, name, data); err != nil {
		app.log().Error("rendering partial", zap.String("partial", name), zap.Error(err))
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError answers with a transient notice. The notice always lands in
// #notice, whatever element issued the request.
func (app *App) renderError(w http.ResponseWriter, message string) {
	app.renderErrorStatus(w, http.StatusBadRequest, message)
}

func (app *App) renderErrorStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("HX-Retarget", "#notice")
	w.Header().Set("HX-Reswap", "innerHTML")
	app.renderPartial(w, status, "notice", notice{Kind: "error", Message: message})
}

func (app *App) renderSuccess(w http.ResponseWriter, message string) {
	app.renderPartial(w, http.StatusOK, "notice", notice{Kind: "success", Message: message})
}
