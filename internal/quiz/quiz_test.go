package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stratiz/internal/course"
)

func TestDefaultBank(t *testing.T) {
	b := Default()
	require.Equal(t, 10, b.Len())

	it, err := b.Item("q_ff_1")
	require.NoError(t, err)
	assert.Equal(t, course.TopicFiveForces, it.Topic)
	assert.Equal(t, "Bottled water", it.CorrectAnswer())

	_, err = b.Item("q_nope")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestIsCorrectIndependentOfReveal(t *testing.T) {
	for _, it := range Default().Items() {
		for i := -1; i <= len(it.Options); i++ {
			want := i == it.CorrectIndex
			assert.Equal(t, want, it.IsCorrect(i), "%s option %d", it.ID, i)

			for _, revealed := range []bool{false, true} {
				fb := FeedbackFor(it, i, revealed)
				assert.Equal(t, revealed, fb.Shown)
				if revealed {
					assert.Equal(t, want, fb.Correct, "%s option %d", it.ID, i)
				}
			}
		}
	}
}

func TestFeedbackFor(t *testing.T) {
	it, err := Default().Item("q_vs_2")
	require.NoError(t, err)

	assert.Equal(t, Feedback{}, FeedbackFor(it, 0, false))
	assert.Equal(t, Feedback{Shown: true, Correct: true, Message: "Correct!"}, FeedbackFor(it, 1, true))
	assert.Equal(t, "Not quite – correct answer: Focused differentiation", FeedbackFor(it, 2, true).Message)
}

func TestCheck(t *testing.T) {
	it := Item{ID: "x", Options: []string{"a", "b"}, CorrectIndex: 1}

	ok, err := it.Check(1)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, i := range []int{-1, 2} {
		_, err := it.Check(i)
		assert.ErrorIs(t, err, course.ErrContract)
	}
}

func TestForTopics(t *testing.T) {
	items := Default().ForTopics(course.TopicPESTEL)
	require.Len(t, items, 2)
	assert.Equal(t, "q_pe_1", items[0].ID)
	assert.Equal(t, "q_pe_2", items[1].ID)
}

func TestParseRejectsBadBank(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate id",
			yaml: `
items:
  - {id: a, topic: vrio, question: q, options: [x, y], correct: 0}
  - {id: a, topic: vrio, question: q, options: [x, y], correct: 1}
`,
			want: "duplicate id",
		},
		{
			name: "correct out of range",
			yaml: `
items:
  - {id: a, topic: vrio, question: q, options: [x, y], correct: 2}
`,
			want: "out of range",
		},
		{
			name: "one option",
			yaml: `
items:
  - {id: a, topic: vrio, question: q, options: [x], correct: 0}
`,
			want: "at least 2 options",
		},
		{
			name: "unknown topic",
			yaml: `
items:
  - {id: a, topic: swot, question: q, options: [x, y], correct: 0}
`,
			want: "unknown topic",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
