// blockfall is a falling-block puzzle prototype with window, terminal and
// SSH frontends.
//
// Usage:
//
//	blockfall play               - Play in a desktop window
//	blockfall play -f terminal   - Play in the terminal
//	blockfall serve              - Start SSH server for remote play
//	blockfall history            - Show recorded play sessions
//	blockfall frontends          - List available frontends
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search, then embedded)
//	--seed <value>     - Set RNG seed for a reproducible piece sequence
//	--speed <preset>   - Drop speed: slow, normal, fast
//	--db <path>        - Set database path (default: ~/.blockfall/history.db)
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/blockfall/internal/platform/tui"
	_ "github.com/vovakirdan/blockfall/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagSpeed    string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle prototype",
	Long: `Blockfall drops one cell at a time onto a 10x20 playfield.
Move it with the arrow keys, clear the board with Delete, quit with Escape.

Available commands:
  play       - Play a game (window or terminal)
  serve      - Start SSH server for remote play
  history    - View recorded play sessions
  frontends  - List available frontends

Examples:
  blockfall play
  blockfall play --frontend terminal --speed fast
  blockfall serve --ssh :2222
  blockfall history --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(frontendsCmd)
}
