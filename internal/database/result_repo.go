package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kdimtricp/repcheck/internal/models"
)

type ResultRepository struct {
	db *DB
}

func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetResult(ctx context.Context, id string) (*models.Result, error) {
	var result models.Result
	err := r.db.conn.QueryRowContext(ctx,
		r.db.rebind(`SELECT reps, form_score, confidence FROM mock_results WHERE id = ?`), id).
		Scan(&result.Reps, &result.FormScore, &result.Confidence)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	rows, err := r.db.conn.QueryContext(ctx,
		r.db.rebind(`SELECT score_key, label, score FROM mock_result_breakdown
			WHERE result_id = ? ORDER BY sort_order`), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get breakdown: %w", err)
	}
	for rows.Next() {
		var b models.BreakdownScore
		if err := rows.Scan(&b.Key, &b.Label, &b.Score); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan breakdown: %w", err)
		}
		result.Breakdown = append(result.Breakdown, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get breakdown: %w", err)
	}

	rows, err = r.db.conn.QueryContext(ctx,
		r.db.rebind(`SELECT kind, body FROM mock_result_feedback
			WHERE result_id = ? ORDER BY kind, sort_order`), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, body string
		if err := rows.Scan(&kind, &body); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		switch models.FeedbackKind(kind) {
		case models.FeedbackStrength:
			result.Feedback.Strengths = append(result.Feedback.Strengths, body)
		case models.FeedbackImprovement:
			result.Feedback.Improvements = append(result.Feedback.Improvements, body)
		case models.FeedbackNextStep:
			result.Feedback.NextSteps = append(result.Feedback.NextSteps, body)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return &result, nil
}

// DefaultResult is the scoring payload shown for every analysed session.
func (r *ResultRepository) DefaultResult(ctx context.Context) (*models.Result, error) {
	return r.GetResult(ctx, DefaultResultID)
}
