package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kdimtricp/repcheck/internal/database"
	"github.com/kdimtricp/repcheck/internal/models"
)

func (app *App) ReviewPageHandler(w http.ResponseWriter, r *http.Request) {
	pending, err := app.ReviewRepo.ListPending(r.Context())
	if err != nil {
		app.log().Error("listing pending reviews", zap.Error(err))
		http.Error(w, "Error loading reviews", http.StatusInternalServerError)
		return
	}

	corrections, err := app.ReviewRepo.ListCorrections(r.Context())
	if err != nil {
		app.log().Error("listing corrections", zap.Error(err))
		http.Error(w, "Error loading reviews", http.StatusInternalServerError)
		return
	}

	data := struct {
		Pending     []models.PendingReview
		Corrections []models.Correction
	}{
		Pending:     pending,
		Corrections: corrections,
	}

	app.renderPage(w, "review", data)
}

// ReviewPanelHandler renders the side panel for the selected entry.
func (app *App) ReviewPanelHandler(w http.ResponseWriter, r *http.Request) {
	review, ok := app.pendingReview(w, r)
	if !ok {
		return
	}

	app.renderPartial(w, http.StatusOK, "review-panel", review)
}

// Approve and correct only acknowledge; nothing is recorded.

func (app *App) ApproveReviewHandler(w http.ResponseWriter, r *http.Request) {
	review, ok := app.pendingReview(w, r)
	if !ok {
		return
	}

	app.log().Info("review approved", zap.String("review", review.ID))
	app.renderSuccess(w, "Analysis approved and sent to user!")
}

func (app *App) CorrectReviewHandler(w http.ResponseWriter, r *http.Request) {
	review, ok := app.pendingReview(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	app.log().Info("review corrected",
		zap.String("review", review.ID),
		zap.Int("ai_reps", review.AIReps),
		zap.String("corrected_reps", r.FormValue("correctedReps")))
	app.renderSuccess(w, "Correction saved! User has been notified.")
}

func (app *App) pendingReview(w http.ResponseWriter, r *http.Request) (*models.PendingReview, bool) {
	review, err := app.ReviewRepo.GetPending(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		app.log().Error("loading pending review", zap.Error(err))
		http.Error(w, "Error loading review", http.StatusInternalServerError)
		return nil, false
	}
	return review, true
}
