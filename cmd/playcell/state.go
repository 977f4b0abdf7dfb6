package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playcell/internal/storage"
)

var flagClear bool

var stateCmd = &cobra.Command{
	Use:   "state [program]",
	Short: "Inspect or clear persisted runner state",
	Long: `Shows the persisted continuation records written by 'run --restore'.

Examples:
  playcell state              # list all records
  playcell state plasma       # show one record
  playcell state plasma --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runState,
}

func init() {
	stateCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the record for the given program")
}

func runState(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 && flagClear {
		if err := store.ClearState(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared state for %q.\n", args[0])
		return
	}

	if len(args) == 1 {
		st, err := store.LoadState(args[0])
		if err != nil {
			fmt.Printf("No state stored for %q.\n", args[0])
			return
		}
		fmt.Printf("%s: time=%.0fms frame=%d cycle=%d fps=%.1f\n",
			args[0], st.Time, st.Frame, st.Cycle, st.FPS)
		return
	}

	entries, err := store.ListStates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No state stored.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s: time=%.0fms frame=%d cycle=%d fps=%.1f (updated %s)\n",
			e.Key, e.State.Time, e.State.Frame, e.State.Cycle, e.State.FPS,
			e.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}
