package coach

import "github.com/abhisek/stratiz/internal/course"

// Exercise names a free-text exercise the coach can review.
type Exercise string

const (
	ExerciseBlueOcean Exercise = "blue-ocean"
	ExerciseStory     Exercise = "adaptation-story"
)

// Verdict grades a submission.
type Verdict string

const (
	VerdictStrong  Verdict = "strong"
	VerdictPartial Verdict = "partial"
	VerdictWeak    Verdict = "weak"
)

// Input is one submission for review. Industry and Grid are used for the
// Blue Ocean exercise, Story for the adaptation story.
type Input struct {
	Exercise Exercise
	Industry course.BlueOceanIndustry
	Grid     course.Grid
	Story    course.Story
}

// Feedback is the coach's structured review.
type Feedback struct {
	Exercise  Exercise
	Verdict   Verdict
	Strengths []string
	Gaps      []string
	NextStep  string
}

// Outcome is a finished review: either Feedback or Err is set.
type Outcome struct {
	Feedback *Feedback
	Err      error
}
