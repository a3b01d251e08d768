package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kdimtricp/repcheck/internal/models"
)

type ReviewRepository struct {
	db *DB
}

func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const pendingColumns = `id, name, exercise, submitted_at, ai_reps, ai_form_score, confidence, reason`

func scanPending(row interface{ Scan(...interface{}) error }, p *models.PendingReview) error {
	return row.Scan(&p.ID, &p.Name, &p.Exercise, &p.SubmittedAt, &p.AIReps, &p.AIFormScore, &p.Confidence, &p.Reason)
}

func (r *ReviewRepository) ListPending(ctx context.Context) ([]models.PendingReview, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT `+pendingColumns+` FROM pending_reviews ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.PendingReview
	for rows.Next() {
		var p models.PendingReview
		if err := scanPending(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan pending review: %w", err)
		}
		reviews = append(reviews, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) GetPending(ctx context.Context, id string) (*models.PendingReview, error) {
	var p models.PendingReview
	row := r.db.conn.QueryRowContext(ctx,
		r.db.rebind(`SELECT `+pendingColumns+` FROM pending_reviews WHERE id = ?`), id)
	if err := scanPending(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending review: %w", err)
	}
	return &p, nil
}

func (r *ReviewRepository) ListCorrections(ctx context.Context) ([]models.Correction, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT id, name, exercise, ai_reps, corrected_reps, reviewer, reviewed_at
		FROM corrections ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	defer rows.Close()

	var corrections []models.Correction
	for rows.Next() {
		var c models.Correction
		if err := rows.Scan(&c.ID, &c.Name, &c.Exercise, &c.AIReps, &c.CorrectedReps, &c.Reviewer, &c.ReviewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		corrections = append(corrections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	return corrections, nil
}
