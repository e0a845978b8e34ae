package domain

// Mode selects which engine family serves generated content.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeModel  Mode = "model"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeManual, ModeModel:
		return true
	}
	return false
}

// Difficulty grades content for learners.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ExerciseType identifies one of the supported exercise formats.
type ExerciseType string

const (
	ExerciseTypeMultipleChoice     ExerciseType = "multiple_choice"
	ExerciseTypeFillInBlank        ExerciseType = "fill_in_blank"
	ExerciseTypeMatching           ExerciseType = "matching"
	ExerciseTypeTrueFalse          ExerciseType = "true_false"
	ExerciseTypeSentenceCompletion ExerciseType = "sentence_completion"
)

func (t ExerciseType) String() string { return string(t) }

func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseTypeMultipleChoice, ExerciseTypeFillInBlank, ExerciseTypeMatching,
		ExerciseTypeTrueFalse, ExerciseTypeSentenceCompletion:
		return true
	}
	return false
}

// AllExerciseTypes returns every supported exercise type, in declaration order.
func AllExerciseTypes() []ExerciseType {
	return []ExerciseType{
		ExerciseTypeMultipleChoice,
		ExerciseTypeFillInBlank,
		ExerciseTypeMatching,
		ExerciseTypeTrueFalse,
		ExerciseTypeSentenceCompletion,
	}
}

// DistractorOrigin records how a distractor set was sourced.
type DistractorOrigin string

const (
	DistractorOriginCurated     DistractorOrigin = "curated"
	DistractorOriginMixed       DistractorOrigin = "mixed"
	DistractorOriginSynthesized DistractorOrigin = "synthesized"
)

func (o DistractorOrigin) String() string { return string(o) }

func (o DistractorOrigin) IsValid() bool {
	switch o {
	case DistractorOriginCurated, DistractorOriginMixed, DistractorOriginSynthesized:
		return true
	}
	return false
}

// HealthState is the three-state data health signal reported by the loader.
type HealthState string

const (
	HealthStateError   HealthState = "error"
	HealthStateWarning HealthState = "warning"
	HealthStateHealthy HealthState = "healthy"
)

func (s HealthState) String() string { return string(s) }

func (s HealthState) IsValid() bool {
	switch s {
	case HealthStateError, HealthStateWarning, HealthStateHealthy:
		return true
	}
	return false
}
