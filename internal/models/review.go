package models

import "math"

// PendingReview is an analysis flagged for human verification.
type PendingReview struct {
	ID          string
	Name        string
	Exercise    string
	SubmittedAt string
	AIReps      int
	AIFormScore int
	Confidence  float64
	Reason      string
}

// Correction is a past reviewer decision shown in the history tab.
type Correction struct {
	ID            string
	Name          string
	Exercise      string
	AIReps        int
	CorrectedReps int
	Reviewer      string
	ReviewedAt    string
}

func (p PendingReview) ConfidenceColor() string {
	return ConfidenceColor(p.Confidence)
}

func (p PendingReview) ConfidencePercent() int {
	return Percent(p.Confidence)
}

func (c Correction) Changed() bool {
	return c.AIReps != c.CorrectedReps
}

// ConfidenceColor maps a 0..1 confidence onto the UI colour scale.
func ConfidenceColor(confidence float64) string {
	switch {
	case confidence >= 0.85:
		return "success"
	case confidence >= 0.70:
		return "warning"
	default:
		return "destructive"
	}
}

func Percent(f float64) int {
	return int(math.Round(f * 100))
}
