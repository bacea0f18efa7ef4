package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stratiz/internal/course"
)

func newEvalCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "eval <topic> [dimension=value ...]",
		Short: "Run the rule evaluator for a topic",
		Long: `Evaluate one topic from the command line.

Dimensions left out take the topic defaults unless --strict is set.
Run "stratiz topics" for the dimensions and allowed values of each topic.`,
		Example: `  stratiz eval five-forces industry=airlines
  stratiz eval value-stick supplier-cost=30 cost=50 price=80 wtp=120 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	c.Flags().Bool("json", false, "Print the result as JSON")
	c.Flags().Bool("strict", false, "Require every dimension instead of filling defaults")
	return c
}

func runEval(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	strict, _ := cmd.Flags().GetBool("strict")

	topic, err := course.ParseTopic(args[0])
	if err != nil {
		return err
	}
	sel, err := parseSelection(args[1:])
	if err != nil {
		return err
	}
	if !strict {
		if sel, err = course.WithDefaults(topic, sel); err != nil {
			return err
		}
	}

	res, err := course.Evaluate(topic, sel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printResult(out, res)
	return nil
}

// parseSelection reads dimension=value pairs.
func parseSelection(pairs []string) (course.Selection, error) {
	sel := course.Selection{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid argument %q: want dimension=value", p)
		}
		sel[k] = strings.TrimSpace(v)
	}
	return sel, nil
}

func printResult(w io.Writer, res course.Result) {
	fmt.Fprintln(w, res.Topic.Title())
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%s\n", res.Label)
	if res.Explanation != "" {
		fmt.Fprintf(w, "\n%s\n", res.Explanation)
	}
	if len(res.Rows) > 0 {
		width := 0
		for _, r := range res.Rows {
			width = max(width, len(r.Name))
		}
		fmt.Fprintln(w)
		for _, r := range res.Rows {
			fmt.Fprintf(w, "  %-*s  %s\n", width, r.Name, r.Value)
		}
	}
	if res.Rule != "" {
		fmt.Fprintf(w, "\nrule: %s\n", res.Rule)
	}
}
