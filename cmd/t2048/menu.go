package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and board size interactively",
	Long: `Start in interactive menu mode.

Use Up/Down to pick a variant, Left/Right to pick the board size and Enter
to play. Tab opens the replay browser. Leaving a game returns to the menu.

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./replays.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsReplays {
			goBack, err := tui.RunReplayBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("replay browser failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.VariantID)
		if err != nil {
			logger.Error("cannot start variant", "variant", menuResult.VariantID, "error", err)
			continue
		}
		if sized, ok := game.(*t2048.Game); ok {
			if err := sized.SetSize(menuResult.Size); err != nil {
				logger.Error("invalid board size", "size", menuResult.Size, "error", err)
				continue
			}
		}

		// A fixed --seed applies to the first game only
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, tui.SaverFor(store), logger, cfg); err != nil {
			logger.Error("game failed", "error", err)
		}
		cfg.Seed = 0
	}
}
