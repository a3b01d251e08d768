package models

// Result is the scoring payload shown on the results screen.
type Result struct {
	Reps       int
	FormScore  int
	Confidence float64
	Breakdown  []BreakdownScore
	Feedback   Feedback
}

type BreakdownScore struct {
	Key   string
	Label string
	Score int
}

type Feedback struct {
	Strengths    []string
	Improvements []string
	NextSteps    []string
}

type FeedbackKind string

const (
	FeedbackStrength    FeedbackKind = "strength"
	FeedbackImprovement FeedbackKind = "improvement"
	FeedbackNextStep    FeedbackKind = "next_step"
)

type Badge struct {
	Label   string
	Variant string
}

// ScoreColor maps a 0..100 score onto the UI colour scale.
func ScoreColor(score int) string {
	switch {
	case score >= 85:
		return "success"
	case score >= 70:
		return "warning"
	default:
		return "destructive"
	}
}

func ScoreBadge(score int) Badge {
	switch {
	case score >= 90:
		return Badge{Label: "Excellent", Variant: "default"}
	case score >= 80:
		return Badge{Label: "Great", Variant: "secondary"}
	case score >= 70:
		return Badge{Label: "Good", Variant: "secondary"}
	default:
		return Badge{Label: "Needs Work", Variant: "outline"}
	}
}

func (r Result) Badge() Badge {
	return ScoreBadge(r.FormScore)
}

func (r Result) ScoreColor() string {
	return ScoreColor(r.FormScore)
}

func (r Result) ConfidencePercent() int {
	return Percent(r.Confidence)
}
