package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playcell/internal/config"
	"github.com/vovakirdan/playcell/internal/metrics"
	"github.com/vovakirdan/playcell/internal/platform/tui"
	"github.com/vovakirdan/playcell/internal/registry"
	"github.com/vovakirdan/playcell/internal/render"
	"github.com/vovakirdan/playcell/internal/runner"
	"github.com/vovakirdan/playcell/internal/storage"
)

var (
	flagRenderer    string
	flagOnce        bool
	flagCols        int
	flagRows        int
	flagRestore     bool
	flagAllowSelect bool
)

var runCmd = &cobra.Command{
	Use:   "run <program>",
	Short: "Run a program",
	Long: `Run the specified program in the terminal.

Controls:
  Mouse      - Programs may react to pointer position and clicks
  Q/Esc      - Quit

Examples:
  playcell run plasma
  playcell run ripple --fps 60
  playcell run fire --rows 20
  playcell run plasma --once --renderer plain --cols 80 --rows 24 > frame.txt
  playcell run plasma --restore`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Renderer: text, plain (default: text)")
	runCmd.Flags().BoolVar(&flagOnce, "once", false, "Render a single frame and exit")
	runCmd.Flags().IntVar(&flagCols, "cols", 0, "Pin grid width (0 = follow terminal)")
	runCmd.Flags().IntVar(&flagRows, "rows", 0, "Pin grid height (0 = follow terminal)")
	runCmd.Flags().BoolVar(&flagRestore, "restore", false, "Restore and persist runner state across runs")
	runCmd.Flags().BoolVar(&flagAllowSelect, "allow-select", false, "Keep terminal text selection working (disables mouse input)")
}

// callerSettings assembles the caller layer: the settings file overlaid with
// command-line flags.
func callerSettings() (runner.Settings, error) {
	set, err := config.Load(flagConfig)
	if err != nil {
		return runner.Settings{}, err
	}
	return runner.MergeSettings(set, runner.Settings{
		FPS:          flagFPS,
		Cols:         flagCols,
		Rows:         flagRows,
		Once:         flagOnce,
		Renderer:     flagRenderer,
		RestoreState: flagRestore,
		AllowSelect:  flagAllowSelect,
	}), nil
}

func runRun(cmd *cobra.Command, args []string) {
	programID := args[0]

	if !registry.Exists(programID) {
		fmt.Fprintf(os.Stderr, "Error: unknown program %q\n", programID)
		fmt.Fprintln(os.Stderr, "Run 'playcell list' to see available programs.")
		os.Exit(1)
	}

	caller, err := callerSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prog, err := registry.Create(programID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating program: %v\n", err)
		os.Exit(1)
	}

	// The program's exported settings are consulted before the runner is
	// built, so they can steer renderer selection and persistence.
	effective := caller
	if prog.Settings != nil {
		effective = runner.MergeSettings(caller, *prog.Settings)
	}

	// Fatal configuration error: no measurable surface, no loop. A pinned
	// grid is the exception: it needs no probe, so piped output works.
	m := metrics.Default()
	var cols, rows int
	probe, err := metrics.NewProbe(os.Stdout)
	if err == nil {
		m = probe.Metrics()
		cols, rows = probe.Size()
	} else if effective.Cols <= 0 || effective.Rows <= 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open state storage only when the caller opted in.
	var store runner.StateStore
	var db *storage.Store
	if effective.RestoreState {
		db, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open state database: %v\n", err)
			// Continue without persistence - the program still runs
		} else {
			store = db
		}
	}

	run, err := runner.New(prog, caller, runner.Options{
		Metrics:     m,
		SurfaceCols: cols,
		SurfaceRows: rows,
		Renderer:    render.New(render.ParseKind(effective.Renderer)),
		Store:       store,
		StateKey:    programID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var runErr error
	if run.Settings().Once {
		// Single-shot: one frame straight to stdout, no TUI.
		run.Frame(time.Now())
		fmt.Println(run.Output())
	} else {
		runErr = tui.Run(run)
	}

	if db != nil {
		db.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
}
