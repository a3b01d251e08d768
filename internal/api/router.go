package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kdimtricp/repcheck/web"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(app.log()))
	r.Use(middleware.Recoverer)

	r.Get("/", app.HomeHandler)
	r.Get("/ping", PingHandler)
	r.Handle("/static/*", http.StripPrefix("/static", web.Static()))

	r.Get("/upload", app.UploadPageHandler)
	r.Post("/upload", app.UploadHandler)
	r.Post("/upload/preview", app.PreviewHandler)
	r.Get("/media/{name}", app.MediaHandler)

	r.Get("/analysis/{id}", app.AnalysisPageHandler)
	r.Get("/analysis/{id}/stream", app.AnalysisStreamHandler)

	r.Get("/results/{id}", app.ResultsPageHandler)
	r.Post("/results/{id}/share", app.ShareResultsHandler)

	r.Get("/review", app.ReviewPageHandler)
	r.Get("/review/pending/{reviewID}", app.ReviewPanelHandler)
	r.Post("/review/pending/{reviewID}/approve", app.ApproveReviewHandler)
	r.Post("/review/pending/{reviewID}/correct", app.CorrectReviewHandler)

	return r
}
