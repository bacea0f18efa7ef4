package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/stratiz/internal/course"
)

const systemPrompt = `You are a concise coach for a university course on competitive strategy. You review short learner exercises and answer with structured feedback. Be specific to what the learner wrote and never invent content they did not write.`

func buildUserMessage(in Input) (string, error) {
	var b strings.Builder

	switch in.Exercise {
	case ExerciseBlueOcean:
		summary, err := course.SummarizeBlueOcean(in.Industry, in.Grid)
		if err != nil {
			return "", err
		}
		b.WriteString("Exercise: Blue Ocean ERRC grid (eliminate, reduce, raise, create).\n")
		b.WriteString(summary.String())
		b.WriteString(`
Instructions:
Judge whether the four actions together break the value-cost trade-off for this industry:
1. Do the eliminate and reduce actions lower cost for factors buyers do not value?
2. Do the raise and create actions lift buyer value in ways rivals do not offer?
3. Is the resulting value curve distinct from the industry's current one?
Mark empty cells as gaps.`)

	case ExerciseStory:
		b.WriteString("Exercise: dynamic capabilities adaptation story (sense, seize, reconfigure).\n")
		for _, l := range course.SummarizeStory(in.Story) {
			fmt.Fprintf(&b, "  %s: %s\n", l.Label, l.Text)
		}
		b.WriteString(`
Instructions:
Judge whether the story follows one opportunity or threat through all three phases:
1. Sensing names a concrete signal from the environment.
2. Seizing commits resources to a response.
3. Reconfiguring changes assets, structure or routines to sustain it.
Mark missing phases as gaps.`)

	default:
		return "", fmt.Errorf("%w: exercise %q", course.ErrUnknownKey, in.Exercise)
	}

	return b.String(), nil
}
