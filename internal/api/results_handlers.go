package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kdimtricp/repcheck/internal/models"
)

func (app *App) ResultsPageHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := app.Sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	result, err := app.ResultRepo.DefaultResult(r.Context())
	if err != nil {
		app.log().Error("loading result", zap.String("session", sess.ID), zap.Error(err))
		http.Error(w, "Error loading results", http.StatusInternalServerError)
		return
	}

	data := struct {
		Session models.Session
		Result  *models.Result
	}{
		Session: sess,
		Result:  result,
	}

	app.renderPage(w, "results", data)
}

func (app *App) ShareResultsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := app.Sessions.Get(chi.URLParam(r, "id")); !ok {
		http.NotFound(w, r)
		return
	}

	app.renderSuccess(w, "Results copied to clipboard!")
}
