package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  P/Enter        - Play / play again
  Space/Up/W     - Flap
  Left/A         - Dash back
  Right/D        - Dash forward
  Q/Esc          - Quit (menu and end screen)
  Ctrl+C         - Quit at any time
  Ctrl+S         - Save a text screenshot

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy play --log-level debug --log-file ./flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: flappy needs an interactive terminal")
		os.Exit(1)
	}

	logger, closer, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		logger.Error("could not load config", "path", flagConfig, "error", err)
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		if w < cfg.Screen.Width || h < cfg.Screen.Height {
			logger.Warn("terminal smaller than playfield",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"playfield", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height))
		}
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rcfg := core.DefaultConfig()
	rcfg.TickRate = flagFPS
	rcfg.Seed = seed
	logger.Info("starting", "seed", seed, "fps", rcfg.TickRate)

	game := flappy.New(cfg, rand.New(rand.NewSource(seed)))
	if runErr := tui.Run(game, logger, rcfg); runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("exited", "score", game.Score())
}
