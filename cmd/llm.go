package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/stratiz/internal/llm"
	"github.com/abhisek/stratiz/internal/store"
)

func newLLMCmd(rt *runtime) *cobra.Command {
	c := &cobra.Command{
		Use:   "llm",
		Short: "Inspect recorded coach requests",
	}
	c.AddCommand(newLLMListCmd(rt), newLLMViewCmd(rt), newLLMStatsCmd(rt))
	return c
}

func newLLMListCmd(rt *runtime) *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "List recent LLM events",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			purpose, _ := cmd.Flags().GetString("purpose")

			s, err := rt.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-19s  %-18s  %-28s  %-6s  %-6s  %-7s  %s\n",
				"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
			fmt.Fprintln(out, strings.Repeat("─", 104))

			for _, e := range events {
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				fmt.Fprintf(out, "%-5d  %-19s  %-18s  %-28s  %-6d  %-6d  %-7d  %s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					truncate(e.Purpose, 18),
					truncate(e.Model, 28),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					ok,
				)
			}
			return nil
		},
	}
	c.Flags().IntP("limit", "n", 20, "Number of events to show")
	c.Flags().StringP("purpose", "p", "", "Filter by purpose (coach-blue-ocean, coach-story)")
	return c
}

func newLLMViewCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "View the full request and response of an LLM event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid ID %q: %w", args[0], err)
			}

			s, err := rt.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			printLLMEvent(cmd.OutOrStdout(), e)
			return nil
		},
	}
}

func printLLMEvent(out io.Writer, e *store.LLMEvent) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(out, "ID:        %d\n", e.ID)
	fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(out, "Model:     %s\n", e.Model)
	fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(out, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
	fmt.Fprintf(out, "Success:   %v\n", e.Success)
	if e.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
	}

	for _, part := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, part.title)
		fmt.Fprintln(out, sep)
		if part.body == "" {
			fmt.Fprintln(out, "(not captured)")
			continue
		}
		fmt.Fprintln(out, part.body)
	}
}

func newLLMStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated LLM token usage and estimated cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			stats, err := s.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			fmt.Fprintln(out, "Usage by Purpose")
			fmt.Fprintln(out, strings.Repeat("─", 72))
			fmt.Fprintf(out, "%-18s  %6s  %10s  %10s  %10s  %8s\n",
				"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			fmt.Fprintln(out, strings.Repeat("─", 72))

			var calls, in, outTokens int
			for _, st := range stats {
				fmt.Fprintf(out, "%-18s  %6d  %10d  %10d  %10d  %8d\n",
					truncate(st.Purpose, 18), st.Calls, st.InputTokens, st.OutputTokens,
					st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
				calls += st.Calls
				in += st.InputTokens
				outTokens += st.OutputTokens
			}
			fmt.Fprintln(out, strings.Repeat("─", 72))
			fmt.Fprintf(out, "%-18s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, outTokens, in+outTokens)

			models, err := s.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			printCosts(out, models)
			return nil
		},
	}
}

func printCosts(out io.Writer, models []store.LLMModelUsage) {
	if len(models) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Estimated Cost (USD)")
	fmt.Fprintln(out, strings.Repeat("─", 72))
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(out, strings.Repeat("─", 72))

	var total float64
	var unknown []string
	for _, mu := range models {
		cost := llm.LookupCost(mu.Model)
		if cost == nil {
			unknown = append(unknown, mu.Model)
			fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
			continue
		}
		c := cost.Cost(mu.InputTokens, mu.OutputTokens)
		total += c
		fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
	}

	fmt.Fprintln(out, strings.Repeat("─", 72))
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unknown) > 0 {
		fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
