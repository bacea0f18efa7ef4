package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/quiz"
)

func newQuizCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "quiz",
		Short: "Browse and check the quiz bank",
	}
	c.AddCommand(newQuizListCmd(), newQuizCheckCmd())
	return c
}

func newQuizListCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "List quiz questions (optionally for one topic)",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := quiz.Default()
			items := bank.Items()
			if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
				t, err := course.ParseTopic(topic)
				if err != nil {
					return err
				}
				items = bank.ForTopics(t)
			}

			out := cmd.OutOrStdout()
			for _, it := range items {
				fmt.Fprintf(out, "%-10s  %-16s  %s\n", it.ID, it.Topic, it.Question)
				for i, opt := range it.Options {
					fmt.Fprintf(out, "%30d) %s\n", i+1, opt)
				}
			}
			fmt.Fprintf(out, "\n%d questions\n", len(items))
			return nil
		},
	}
	c.Flags().StringP("topic", "t", "", "Only list questions for this topic")
	return c
}

func newQuizCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id> <option>",
		Short: "Check an answer; options are numbered from 1 as in quiz list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := quiz.Default().Item(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid option %q: %w", args[1], err)
			}
			if _, err := it.Check(n - 1); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), quiz.FeedbackFor(it, n-1, true).Message)
			return nil
		},
	}
}
