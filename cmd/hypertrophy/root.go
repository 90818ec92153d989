// ABOUTME: Root Cobra command for hypertrophy CLI.
// ABOUTME: Builds config, logging, storage, and the session controller via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/hypertrophy/internal/config"
	"github.com/harperreed/hypertrophy/internal/logging"
	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// skipStoreAnnotation marks commands that manage storage themselves.
const skipStoreAnnotation = "hypertrophy/skip-store"

var (
	flagBackend string
	flagDataDir string
	flagProgram string

	cfg       *config.Config
	store     storage.Store
	states    *storage.StateStore
	ctrl      *session.Controller
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "hypertrophy",
	Short: "Progressive-overload workout tracker",
	Long: `Hypertrophy walks you through a multi-week strength program and works out
what to lift each session.

THE PROGRAM:

  A 12-week program rotating through days A, B, and C. Every exercise is
  done for 3 sets. Weeks 1-2 focus on form at base weight (10 reps); from
  week 3 the target weight goes up 2.5 kg per week (11 reps). Finishing
  day C starts the next week.

  Exercises track one of three things:
    weight   load lifted (dumbbell squat, press, row...)
    reps     repetitions of a bodyweight move (push-ups)
    time     seconds held (plank)

QUICK START:

  $ hypertrophy status              # Week, day, and today's targets
  $ hypertrophy workout             # Run today's workout interactively
  $ hypertrophy history             # Completed workouts
  $ hypertrophy targets --week 6    # Look ahead

SETTINGS:

  $ hypertrophy user --unit lbs              # Switch units
  $ hypertrophy exercise base-weight 1 16    # Adjust a starting weight

MCP INTEGRATION:

  Run 'hypertrophy mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "hypertrophy": { "command": "hypertrophy", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  State is stored in SQLite at ~/.local/share/hypertrophy/hypertrophy.db by
  default. Choose another backend (badger, charm, memory) in
  ~/.config/hypertrophy/config.json or with HYPERTROPHY_BACKEND.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagProgram != "" {
			cfg.ProgramFile = flagProgram
		}

		logCloser = logging.Setup(cfg.LoggerParams())

		if cmd.Annotations[skipStoreAnnotation] == "true" {
			return nil
		}
		return openController()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeAll()
	},
}

// openController opens the configured store and builds the controller over
// the persisted state.
func openController() error {
	scheme, err := cfg.LoadScheme()
	if err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}

	store, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	states = storage.NewStateStore(store, logrus.StandardLogger())
	ctrl = session.New(states.Load(), states,
		session.WithScheme(scheme),
		session.WithLogger(logrus.StandardLogger()),
	)
	return nil
}

func closeAll() error {
	var err error
	if store != nil {
		err = store.Close()
		store = nil
	}
	states = nil
	ctrl = nil
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, badger, charm, memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/hypertrophy)")
	rootCmd.PersistentFlags().StringVar(&flagProgram, "program", "", "program file (.yaml or .toml)")
}
