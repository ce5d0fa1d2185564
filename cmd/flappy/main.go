// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                   - Play the game
//	flappy play              - Play the game
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game rules YAML (default: XDG config, then ./configs, then built-in)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Log file (default: XDG state dir)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Dragon - fly through the walls in your terminal",
	Long: `Flappy Dragon is a terminal take on Flappy Bird.
Flap to stay in the air, pass through the gaps and score a point for
every wall you clear. The gaps get narrower as your score grows.

Examples:
  flappy
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy config --defaults`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: XDG state dir)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
