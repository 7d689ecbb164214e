package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ruminaider/pickset/internal/commands"
	"github.com/ruminaider/pickset/internal/paths"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List option sets in the sets directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := paths.SetsDir()
		sets, err := commands.ListSets(dir, slog.Default().With("cmd", "list"))
		if err != nil {
			return err
		}
		printSets(os.Stdout, dir, sets)
		return nil
	},
}

func printSets(w io.Writer, dir string, sets []commands.SetInfo) {
	if len(sets) == 0 {
		fmt.Fprintf(w, "No option sets in %s.\n", dir)
		fmt.Fprintln(w, "Run 'pickset new <name>' to create one.")
		return
	}
	for _, s := range sets {
		if s.Err != nil {
			fmt.Fprintf(w, "  ⚠️  %s: %v\n", s.Name, s.Err)
			continue
		}
		policy := s.Policy
		if policy == "" {
			policy = "single"
		}
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "  %s  %s  [%s, %d options]\n", s.Name, title, policy, s.Options)
	}
}
