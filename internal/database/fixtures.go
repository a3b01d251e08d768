package database

import (
	"context"
	"fmt"

	"github.com/kdimtricp/repcheck/internal/models"
)

// DefaultResultID names the single scoring payload every session shows.
const DefaultResultID = "default"

var fixtureResult = models.Result{
	Reps:       15,
	FormScore:  87,
	Confidence: 0.92,
	Breakdown: []models.BreakdownScore{
		{Key: "alignment", Label: "Alignment", Score: 92},
		{Key: "rangeOfMotion", Label: "Range of Motion", Score: 88},
		{Key: "stability", Label: "Stability", Score: 84},
		{Key: "tempo", Label: "Tempo", Score: 86},
	},
	Feedback: models.Feedback{
		Strengths: []string{
			"Great job keeping your back straight! 💪",
			"Excellent depth on your squats! 🎯",
			"Consistent tempo throughout the set! ⏱️",
		},
		Improvements: []string{
			"Try to keep your knees aligned with your toes for better form",
			"Consider slowing down slightly to maintain control",
		},
		NextSteps: []string{
			"Challenge yourself with 3 more reps next time!",
			"Try adding a 2-second hold at the bottom of each squat",
		},
	},
}

var fixturePending = []models.PendingReview{
	{
		ID:          "1",
		Name:        "Alex Johnson",
		Exercise:    "Push-ups",
		SubmittedAt: "2 mins ago",
		AIReps:      12,
		AIFormScore: 76,
		Confidence:  0.68,
		Reason:      "Low confidence - inconsistent pose detection",
	},
	{
		ID:          "2",
		Name:        "Sarah Chen",
		Exercise:    "Squats",
		SubmittedAt: "5 mins ago",
		AIReps:      18,
		AIFormScore: 82,
		Confidence:  0.74,
		Reason:      "Partial occlusion detected",
	},
	{
		ID:          "3",
		Name:        "Mike Rodriguez",
		Exercise:    "Jumping Jacks",
		SubmittedAt: "8 mins ago",
		AIReps:      20,
		AIFormScore: 71,
		Confidence:  0.63,
		Reason:      "Low confidence - lighting issues",
	},
}

var fixtureCorrections = []models.Correction{
	{
		ID:            "4",
		Name:          "Emma Wilson",
		Exercise:      "Burpees",
		AIReps:        10,
		CorrectedReps: 12,
		Reviewer:      "Coach Taylor",
		ReviewedAt:    "15 mins ago",
	},
	{
		ID:            "5",
		Name:          "James Lee",
		Exercise:      "Lunges",
		AIReps:        14,
		CorrectedReps: 14,
		Reviewer:      "Coach Smith",
		ReviewedAt:    "23 mins ago",
	},
}

func (db *DB) seed(ctx context.Context) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exec := func(query string, args ...interface{}) error {
		if _, err := tx.ExecContext(ctx, db.rebind(query), args...); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
		return nil
	}

	r := fixtureResult
	if err := exec(`INSERT INTO mock_results (id, reps, form_score, confidence)
		VALUES (?, ?, ?, ?) ON CONFLICT DO NOTHING`,
		DefaultResultID, r.Reps, r.FormScore, r.Confidence); err != nil {
		return err
	}

	for i, b := range r.Breakdown {
		if err := exec(`INSERT INTO mock_result_breakdown (result_id, score_key, label, score, sort_order)
			VALUES (?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
			DefaultResultID, b.Key, b.Label, b.Score, i); err != nil {
			return err
		}
	}

	feedback := map[models.FeedbackKind][]string{
		models.FeedbackStrength:    r.Feedback.Strengths,
		models.FeedbackImprovement: r.Feedback.Improvements,
		models.FeedbackNextStep:    r.Feedback.NextSteps,
	}
	for kind, items := range feedback {
		for i, text := range items {
			if err := exec(`INSERT INTO mock_result_feedback (result_id, kind, sort_order, body)
				VALUES (?, ?, ?, ?) ON CONFLICT DO NOTHING`,
				DefaultResultID, string(kind), i, text); err != nil {
				return err
			}
		}
	}

	for i, p := range fixturePending {
		if err := exec(`INSERT INTO pending_reviews
			(id, sort_order, name, exercise, submitted_at, ai_reps, ai_form_score, confidence, reason)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
			p.ID, i, p.Name, p.Exercise, p.SubmittedAt, p.AIReps, p.AIFormScore, p.Confidence, p.Reason); err != nil {
			return err
		}
	}

	for i, c := range fixtureCorrections {
		if err := exec(`INSERT INTO corrections
			(id, sort_order, name, exercise, ai_reps, corrected_reps, reviewer, reviewed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
			c.ID, i, c.Name, c.Exercise, c.AIReps, c.CorrectedReps, c.Reviewer, c.ReviewedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
