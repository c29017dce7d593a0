package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tone-memory/internal/platform/tui"
	"github.com/vovakirdan/tone-memory/internal/scene"
	"github.com/vovakirdan/tone-memory/internal/storage"
)

var (
	flagScoresBoard  int
	flagScoresLimit  int
	flagScoresPlain  bool
	flagScoresClear  bool
	flagScoresRecent bool
	flagScoresID     string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View best times",
	Long: `Show the fastest cleared games for a board size.

On a terminal this opens an interactive scoreboard (Tab switches boards).
When stdout is not a terminal, or with --plain, the table is printed as text.

Examples:
  tonememory scores
  tonememory scores --board 36
  tonememory scores --plain | head
  tonememory scores --board 16 --clear
  tonememory scores --recent --limit 20
  tonememory scores --id <id from --recent>`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresBoard, "board", scene.BoardSmall, "Board size: 16 or 36")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Rows to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print plain text even on a terminal")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the saved results for --board")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest games on every board, any outcome")
	scoresCmd.Flags().StringVar(&flagScoresID, "id", "", "Show a single game by its id")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagScoresBoard != scene.BoardSmall && flagScoresBoard != scene.BoardLarge {
		return fmt.Errorf("invalid --board %d (want %d or %d)", flagScoresBoard, scene.BoardSmall, scene.BoardLarge)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(flagScoresBoard); err != nil {
			return err
		}
		fmt.Printf("Cleared results for the %d-card board.\n", flagScoresBoard)
		return nil
	}

	switch {
	case flagScoresID != "":
		return printResult(os.Stdout, store, flagScoresID)
	case flagScoresRecent:
		return printRecent(os.Stdout, store, flagScoresLimit)
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, flagScoresBoard, width, height)
	}

	return printScores(os.Stdout, store, flagScoresBoard, flagScoresLimit)
}

// printScores writes the best times for board as plain text.
func printScores(w io.Writer, store *storage.Store, board, limit int) error {
	results, err := store.BestTimes(board, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(board)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best times, %d cards\n", board)
	fmt.Fprintln(w, tui.FormatStats(stats))
	if len(results) == 0 {
		fmt.Fprintln(w, "No cleared games yet.")
		return nil
	}
	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "%2d. %6.1fs  limit %3ds  %-12s %s\n",
			i+1, r.Elapsed.Seconds(), r.TimeLimit, player, humanize.Time(r.CreatedAt))
	}
	return nil
}

// printRecent writes the latest games across both boards, newest first.
func printRecent(w io.Writer, store *storage.Store, limit int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s  %2d cards  %-9s %2d/%-2d  %6.1fs  %s\n",
			r.ID, r.BoardSize, r.Outcome, r.Matches, r.Pairs, r.Elapsed.Seconds(), humanize.Time(r.CreatedAt))
	}
	return nil
}

// printResult writes every field of one game.
func printResult(w io.Writer, store *storage.Store, id string) error {
	r, err := store.ResultByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no game with id %q", id)
	}

	player := r.Player
	if player == "" {
		player = "local"
	}
	fmt.Fprintf(w, "ID:       %s\n", r.ID)
	fmt.Fprintf(w, "Player:   %s\n", player)
	fmt.Fprintf(w, "Board:    %d cards\n", r.BoardSize)
	fmt.Fprintf(w, "Outcome:  %s\n", r.Outcome)
	fmt.Fprintf(w, "Matches:  %d/%d\n", r.Matches, r.Pairs)
	fmt.Fprintf(w, "Time:     %.1fs of %ds\n", r.Elapsed.Seconds(), r.TimeLimit)
	fmt.Fprintf(w, "Played:   %s (%s)\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), humanize.Time(r.CreatedAt))
	return nil
}
