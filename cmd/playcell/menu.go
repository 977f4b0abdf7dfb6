package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playcell/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a program interactively",
	Long:  `Shows an interactive picker and runs the chosen program.`,
	Run:   runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	choice, err := tui.RunMenu()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if choice == "" {
		return
	}
	runRun(cmd, []string{choice})
}
