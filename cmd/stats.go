package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stratiz/internal/course"
)

func newStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quiz accuracy per topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			repo := s.EventRepo()
			sessions, err := repo.SessionCount(ctx)
			if err != nil {
				return fmt.Errorf("count sessions: %w", err)
			}
			topics, err := repo.AccuracyByTopic(ctx)
			if err != nil {
				return fmt.Errorf("query accuracy: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sessions: %d\n\n", sessions)
			if len(topics) == 0 {
				fmt.Fprintln(out, "No quiz answers recorded yet.")
				return nil
			}

			fmt.Fprintf(out, "%-36s  %8s  %7s  %8s\n", "Topic", "Answered", "Correct", "Accuracy")
			fmt.Fprintln(out, strings.Repeat("─", 66))
			var answered, correct int
			for _, t := range topics {
				fmt.Fprintf(out, "%-36s  %8d  %7d  %7.0f%%\n",
					truncate(course.Topic(t.Topic).Title(), 36), t.Answered, t.Correct, t.Ratio()*100)
				answered += t.Answered
				correct += t.Correct
			}
			fmt.Fprintln(out, strings.Repeat("─", 66))
			ratio := 0.0
			if answered > 0 {
				ratio = float64(correct) / float64(answered) * 100
			}
			fmt.Fprintf(out, "%-36s  %8d  %7d  %7.0f%%\n", "TOTAL", answered, correct, ratio)
			return nil
		},
	}
}
