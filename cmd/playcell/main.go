// playcell runs per-cell animation programs in the terminal.
//
// Usage:
//
//	playcell list              - List available programs
//	playcell run <program>     - Run a program
//	playcell menu              - Pick a program interactively
//	playcell state             - Inspect persisted runner state
//	playcell serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>     - Target frame rate (default: 30)
//	--db <path>      - State database path (default: ~/.playcell/state.db)
//	--config <path>  - Settings YAML path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import programs to register them
	_ "github.com/vovakirdan/playcell/internal/programs/fire"
	_ "github.com/vovakirdan/playcell/internal/programs/plasma"
	_ "github.com/vovakirdan/playcell/internal/programs/ripple"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "playcell",
	Short: "playcell - per-cell animations in your terminal",
	Long: `playcell drives small programs - pure functions of cell coordinate and
time - once per cell per frame over the terminal character grid.

Available commands:
  list     - Show all available programs
  run      - Run a specific program
  menu     - Interactive program picker
  state    - Inspect or clear persisted runner state
  serve    - Start SSH server for remote sessions

Examples:
  playcell list
  playcell run plasma
  playcell run ripple --fps 60
  playcell run plasma --once --renderer plain
  playcell serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Target frame rate (0 = default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.playcell/state.db", "Path to state database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(serveCmd)
}
