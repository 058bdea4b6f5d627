package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagHistoryPlain    bool
	flagHistoryLimit    int
	flagHistoryFrontend string
	flagHistoryClear    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded play sessions",
	Long: `Browse the sessions recorded in the history database.

In a terminal this opens an interactive table (tab switches frontend).
With --plain, or when stdout is not a terminal, prints a static table.

Examples:
  blockfall history
  blockfall history --plain --limit 5
  blockfall history --frontend ssh --plain
  blockfall history --clear --frontend terminal`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a static table instead of the interactive view")
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of sessions to print with --plain")
	historyCmd.Flags().StringVar(&flagHistoryFrontend, "frontend", "", "Only show sessions of this frontend")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded sessions (honors --frontend)")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearSessions(flagHistoryFrontend)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d session(s).\n", n)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if flagHistoryPlain || !term.IsTerminal(fd) {
		return printHistory(store)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	return tui.RunHistory(store, historyFrontends(), width, height)
}

func printHistory(store *storage.Store) error {
	recs, err := store.RecentSessions(flagHistoryFrontend, flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println("Run 'blockfall play' to start one.")
		return nil
	}

	totals, err := store.Totals()
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderHistoryTable(recs))
	fmt.Println(tui.FormatTotals(totals))
	return nil
}

// historyFrontends lists every name sessions can be recorded under.
func historyFrontends() []string {
	names := []string{tui.SSHFrontend}
	for _, f := range registry.List() {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
