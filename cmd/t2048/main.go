// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list                 - List available variants
//	t2048 play [variant]       - Play a variant (menu if none given)
//	t2048 menu                 - Pick a variant and board size interactively
//	t2048 serve                - Start SSH server for remote play
//	t2048 replays              - List recorded rounds
//	t2048 replays show <id>    - Replay a recorded round
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set replay database path (default: ~/.t2048/replays.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys. Equal tiles merge and add to your score.
Reach 2048 to win, or play the overflow variant where going past 2048 ends
the round.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant and size picker
  serve    - Start SSH server for remote play
  replays  - Browse and replay recorded rounds

Examples:
  t2048 play
  t2048 play classic --size 5
  t2048 serve --ssh :2222
  t2048 replays show 12`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
}

// setup loads the config, lets explicit flags override it and applies the
// result to the game defaults.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})

	appConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		appConfig.Timing.TickRate = flagFPS
	}
	if flags.Changed("db") {
		appConfig.Storage.DBPath = flagDBPath
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	t2048.SetBoardSize(appConfig.Board.Size)
	t2048.SetNotifyDelay(appConfig.Timing.NotifyDelayMS)
	t2048.SetDefaultVariant(appConfig.Rules.VariantID())

	logger.Debug("config loaded",
		"size", appConfig.Board.Size,
		"policy", appConfig.Rules.Policy,
		"tick_rate", appConfig.Timing.TickRate,
		"db", appConfig.Storage.DBPath,
	)
	return nil
}

// openStore opens the replay database. Play continues without it, so a
// failure is only logged.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open replay database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
