package analysis

// Step is a named phase of the analysis with its cumulative threshold.
type Step struct {
	Label     string
	Icon      string
	Threshold int
}

var Steps = []Step{
	{Label: "Uploading video", Icon: "activity", Threshold: 15},
	{Label: "Extracting frames", Icon: "activity", Threshold: 20},
	{Label: "Detecting pose", Icon: "brain", Threshold: 35},
	{Label: "Counting reps", Icon: "activity", Threshold: 50},
	{Label: "Analyzing form", Icon: "brain", Threshold: 70},
	{Label: "Generating feedback", Icon: "check", Threshold: 90},
	{Label: "Complete", Icon: "check", Threshold: 100},
}

// StepIndex returns the active step for progress: the first step whose
// threshold exceeds it, or the last step once every threshold is reached.
func StepIndex(progress int) int {
	for i, s := range Steps {
		if progress < s.Threshold {
			return i
		}
	}
	return len(Steps) - 1
}

// Milestone is a step annotated for rendering against a progress value.
type Milestone struct {
	Step
	Index    int
	Complete bool
	Current  bool
}

func Milestones(progress int) []Milestone {
	current := StepIndex(progress)
	out := make([]Milestone, len(Steps))
	for i, s := range Steps {
		out[i] = Milestone{
			Step:     s,
			Index:    i,
			Complete: progress >= s.Threshold,
			Current:  i == current,
		}
	}
	return out
}
