package models

type Exercise string

const (
	ExercisePushups      Exercise = "pushups"
	ExerciseSquats       Exercise = "squats"
	ExerciseJumpingJacks Exercise = "jumpingjacks"
	ExerciseBurpees      Exercise = "burpees"
	ExerciseLunges       Exercise = "lunges"
)

// Exercises is the fixed set offered by the upload form, in display order.
var Exercises = []Exercise{
	ExercisePushups,
	ExerciseSquats,
	ExerciseJumpingJacks,
	ExerciseBurpees,
	ExerciseLunges,
}

var exerciseLabels = map[Exercise]string{
	ExercisePushups:      "Push-ups",
	ExerciseSquats:       "Squats",
	ExerciseJumpingJacks: "Jumping Jacks",
	ExerciseBurpees:      "Burpees",
	ExerciseLunges:       "Lunges",
}

// ParseExercise returns the exercise for a form value. Unknown values
// report false and are treated as unset.
func ParseExercise(value string) (Exercise, bool) {
	e := Exercise(value)
	_, ok := exerciseLabels[e]
	return e, ok
}

func (e Exercise) Valid() bool {
	_, ok := exerciseLabels[e]
	return ok
}

func (e Exercise) Label() string {
	if label, ok := exerciseLabels[e]; ok {
		return label
	}
	return string(e)
}
