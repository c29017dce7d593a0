package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tone-memory/internal/tone"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Show the notes hidden under the cards",
	Long: `Print the eight notes used by the deck and the frequency each one plays at.

Examples:
  tonememory notes`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printNotes(os.Stdout)
	},
}

func printNotes(w io.Writer) {
	fmt.Fprintln(w, "NOTE   FREQUENCY")
	for _, n := range tone.Notes() {
		fmt.Fprintf(w, "%-6s %7.2f Hz\n", n, tone.MustFrequency(n))
	}
}
