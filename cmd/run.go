package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/app"
	"github.com/abhisek/stratiz/internal/coach"
	"github.com/abhisek/stratiz/internal/llm"
)

// launchTUI is replaced in tests, which have no terminal.
var launchTUI = app.Run

// runApp opens the store, builds the optional coach and launches the TUI.
// Neither a database nor an LLM provider is required to take the course.
func (rt *runtime) runApp(cmd *cobra.Command) error {
	opts := app.Options{Log: rt.log}
	opts.SkipIntro, _ = cmd.Flags().GetBool("skip-intro")

	var recorder llm.EventRecorder
	if noDB, _ := cmd.Flags().GetBool("no-db"); !noDB {
		st, err := rt.openStore(cmd)
		if err != nil {
			rt.log.Warn("progress will not be saved", zap.Error(err))
			fmt.Fprintln(os.Stderr, "Progress will not be saved:", err)
		} else {
			defer st.Close()
			opts.Events = st.EventRepo()
			recorder = opts.Events
		}
	}

	if rt.cfg.LLM.Enabled() {
		provider, err := llm.NewProvider(cmd.Context(), rt.cfg.LLM, recorder, rt.log)
		if err != nil {
			rt.log.Warn("llm provider unavailable", zap.Error(err))
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The strategy coach will be unavailable.")
		} else {
			opts.Coach = coach.NewService(provider, coach.ConfigFor(rt.cfg.LLM.Timeout), rt.log)
		}
	}

	return launchTUI(opts)
}
