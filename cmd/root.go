package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/config"
	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/logger"
	"github.com/abhisek/stratiz/internal/store"
)

// runtime is what PersistentPreRunE prepares for every subcommand.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
}

// tuiAnnotation marks commands that hand the terminal to the TUI; their
// logs go to a file instead of stderr.
const tuiAnnotation = "tui"

// NewRootCmd builds the stratiz command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "stratiz",
		Short: "Competitive strategy course in your terminal",
		Long: "Stratiz walks through the classic competitive strategy frameworks " +
			"(PESTEL, Five Forces, the value stick, generic strategies, Blue Ocean, VRIO and " +
			"dynamic capabilities) as interactive exercises with inline quizzes.",
		Annotations:   map[string]string{tuiAnnotation: "true"},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runApp(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a stratiz.yaml config file")
	flags.String("db", "", "Path to SQLite database file (overrides STRATIZ_DB)")
	flags.Bool("no-db", false, "Run without recording progress")
	flags.BoolP("verbose", "v", false, "Log at debug level")
	root.Flags().Bool("skip-intro", false, "Go straight to the course menu")

	root.AddCommand(
		newPlayCmd(rt),
		newEvalCmd(),
		newTopicsCmd(),
		newQuizCmd(),
		newStatsCmd(rt),
		newLLMCmd(rt),
		newResetCmd(rt),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	course.MustValidate()

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	logFile := ""
	if cmd.Annotations[tuiAnnotation] == "true" {
		if logFile = cfg.LogFile; logFile == "" {
			if logFile, err = logger.DefaultFile(); err != nil {
				return err
			}
		}
	}
	log, err := logger.New(cfg.LogLevel, logFile)
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.log = log
	if cfg.Discovered {
		log.Debug("llm provider discovered from environment", zap.String("provider", cfg.LLM.Provider))
	}
	return nil
}

// dbPath resolves the database path: --db, then the db config key
// (STRATIZ_DB), then the default XDG path.
func (rt *runtime) dbPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" && rt.cfg != nil {
		p = rt.cfg.DB
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for commands that cannot work without it.
func (rt *runtime) openStore(cmd *cobra.Command) (*store.Store, error) {
	if noDB, _ := cmd.Flags().GetBool("no-db"); noDB {
		return nil, fmt.Errorf("this command needs the database; drop --no-db")
	}
	path, err := rt.dbPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	rt.log.Debug("opened database", zap.String("path", path))
	return s, nil
}
