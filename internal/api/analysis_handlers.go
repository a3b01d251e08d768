package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kdimtricp/repcheck/internal/analysis"
	"github.com/kdimtricp/repcheck/internal/models"
)

func (app *App) AnalysisPageHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := app.Sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Session    models.Session
		Snapshot   analysis.Snapshot
		Milestones []analysis.Milestone
	}{
		Session:    sess,
		Snapshot:   analysis.New(app.Analysis).Snapshot(),
		Milestones: analysis.Milestones(0),
	}

	app.renderPage(w, "analysis", data)
}

// AnalysisStreamHandler runs one progress simulation for the lifetime of
// the request and streams it as server-sent events. A client that goes
// away cancels the simulation.
func (app *App) AnalysisStreamHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := app.Sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	cfg := app.Analysis
	cfg.RedirectURL = "/results/" + sess.ID
	sim := analysis.New(cfg)

	logger := app.log().With(zap.String("session", sess.ID))
	logger.Debug("analysis started")

	completed := false
	for update := range sim.Start(r.Context()) {
		data, err := json.Marshal(update.Data)
		if err != nil {
			logger.Error("marshaling update", zap.Error(err))
			continue
		}

		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", update.Type, data)
		flusher.Flush()

		if update.Type == analysis.UpdateComplete {
			completed = true
		}
	}

	if completed {
		logger.Info("analysis complete")
	} else {
		logger.Info("analysis cancelled", zap.Int("progress", sim.Snapshot().Progress))
	}
}
