package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ruminaider/pickset/internal/commands"
	"github.com/ruminaider/pickset/internal/paths"
	"github.com/spf13/cobra"
)

var (
	checkPolicy  string
	checkRequire bool
	checkSelect  []string
)

var checkCmd = &cobra.Command{
	Use:   "check <set>",
	Short: "Validate an option set and show whether its selection can be confirmed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.Resolve(paths.SetsDir(), args[0])
		result, err := commands.Check(path, commands.Overrides{
			Mode:     checkPolicy,
			Require:  checkRequire,
			Selected: checkSelect,
		}, slog.Default().With("cmd", "check"))
		if err != nil {
			return err
		}
		printCheckResult(os.Stdout, result)
		return nil
	},
}

func init() {
	addOverrideFlags(checkCmd, &checkPolicy, &checkRequire, &checkSelect)
}

// printCheckResult displays the layout, the selection and whether it would
// be accepted.
func printCheckResult(w io.Writer, result *commands.CheckResult) {
	fmt.Fprintf(w, "%s (%s)\n\n", result.Title, result.Policy)

	for i, sec := range result.Sections {
		title := sec.Title
		if title == "" {
			title = fmt.Sprintf("Section %d", i+1)
		}
		fmt.Fprintln(w, strings.ToUpper(title))
		if len(sec.Options) == 0 {
			fmt.Fprintln(w, "  (empty)")
		}
		for _, opt := range sec.Options {
			mark := " "
			if slices.Contains(result.Selected, opt.ID) {
				mark = "✓"
			}
			line := fmt.Sprintf("  %s %s  %s", mark, opt.ID, opt.Title)
			if opt.Detail != "" {
				line += " · " + opt.Detail
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	if len(result.Unreferenced) > 0 {
		fmt.Fprintf(w, "HIDDEN (not in any section): %s\n\n", strings.Join(result.Unreferenced, ", "))
	}

	if result.Satisfied {
		fmt.Fprintln(w, "Selection can be confirmed.")
	} else {
		fmt.Fprintf(w, "Selection cannot be confirmed: %s\n", result.Prompt.Message)
	}
}
