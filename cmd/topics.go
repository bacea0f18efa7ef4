package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stratiz/internal/course"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "List topics with their dimensions and allowed values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topics := course.AllTopics()
			if len(args) == 1 {
				t, err := course.ParseTopic(args[0])
				if err != nil {
					return err
				}
				topics = []course.Topic{t}
			}

			out := cmd.OutOrStdout()
			for i, t := range topics {
				dims, err := course.Dimensions(t)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%-18s %s\n", t, t.Title())
				for _, d := range dims {
					fmt.Fprintf(out, "  %-16s %-7s %s\n", d.Name, d.Kind, describeDimension(d))
				}
			}
			return nil
		},
	}
}

func describeDimension(d course.DimensionSpec) string {
	var s string
	switch d.Kind {
	case course.KindChoice, course.KindMulti:
		s = strings.Join(d.Values, " | ")
	case course.KindNumber:
		s = fmt.Sprintf("%d..%d", d.Range.Min, d.Range.Max)
	case course.KindBool:
		s = "true | false"
	case course.KindText:
		s = "free text"
	}
	if d.Default != "" {
		s += fmt.Sprintf(" (default %s)", d.Default)
	}
	if d.Optional {
		s += " (optional)"
	}
	return s
}
