package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ruminaider/pickset/internal/commands"
	"github.com/ruminaider/pickset/internal/paths"
	"github.com/spf13/cobra"
)

var (
	togglePolicy  string
	toggleRequire bool
	toggleSelect  []string
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <set> <id>...",
	Short: "Replay toggles against an option set and print each selection",
	Long: `Starts from the set's selection (or --select) and toggles each id in
turn, printing what every step added, removed and left selected.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.Resolve(paths.SetsDir(), args[0])
		result, err := commands.Replay(path, commands.Overrides{
			Mode:     togglePolicy,
			Require:  toggleRequire,
			Selected: toggleSelect,
		}, args[1:], slog.Default().With("cmd", "toggle"))
		if err != nil {
			return err
		}
		printReplayResult(os.Stdout, result)
		return nil
	},
}

func init() {
	addOverrideFlags(toggleCmd, &togglePolicy, &toggleRequire, &toggleSelect)
}

func printReplayResult(w io.Writer, result *commands.ReplayResult) {
	fmt.Fprintf(w, "start: %s\n", formatIDs(result.Initial))
	for i, step := range result.Steps {
		var changes []string
		for _, id := range step.Added {
			changes = append(changes, "+"+id)
		}
		for _, id := range step.Removed {
			changes = append(changes, "-"+id)
		}
		if len(changes) == 0 {
			changes = append(changes, "no change")
		}
		fmt.Fprintf(w, "%d. %s: %s → %s\n", i+1, step.ID, strings.Join(changes, " "), formatIDs(step.Selected))
	}

	if result.Satisfied {
		fmt.Fprintln(w, "Selection can be confirmed.")
	} else {
		fmt.Fprintf(w, "Selection cannot be confirmed: %s\n", result.Prompt.Message)
	}
}

func formatIDs(ids []string) string {
	if len(ids) == 0 {
		return "{}"
	}
	return "{" + strings.Join(ids, ", ") + "}"
}
