package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/pickset/cmd/pickset/tui"
	"github.com/ruminaider/pickset/internal/commands"
	"github.com/ruminaider/pickset/internal/paths"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	pickPolicy  string
	pickRequire bool
	pickSelect  []string
	pickForm    bool
	pickOutput  string
)

var pickCmd = &cobra.Command{
	Use:   "pick <set>",
	Short: "Pick options interactively and print the result",
	Long: `Presents an option set and prints the confirmed selection.

<set> is a path to a YAML file or the name of a set in the sets directory
($PICKSET_DIR or ~/.pickset/sets). Cancelling exits with an error and
prints nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func init() {
	addOverrideFlags(pickCmd, &pickPolicy, &pickRequire, &pickSelect)
	pickCmd.Flags().BoolVar(&pickForm, "form", false, "Use a plain form instead of the full-screen picker")
	pickCmd.Flags().StringVarP(&pickOutput, "output", "o", "text", "Output format: text or yaml")
}

// addOverrideFlags registers the policy override flags shared by pick,
// check and toggle.
func addOverrideFlags(cmd *cobra.Command, policy *string, require *bool, sel *[]string) {
	cmd.Flags().StringVar(policy, "policy", "", "Override the selection policy (single, single-sectioned, multiple, multiple-sectioned)")
	cmd.Flags().BoolVar(require, "require", false, "Require a selection before confirming")
	cmd.Flags().StringSliceVar(sel, "select", nil, "Start with these option ids selected")
}

func runPick(cmd *cobra.Command, args []string) error {
	if pickOutput != "text" && pickOutput != "yaml" {
		return fmt.Errorf("unknown output format %q", pickOutput)
	}

	path := paths.Resolve(paths.SetsDir(), args[0])
	logger := slog.Default().With("cmd", "pick")
	loaded, err := commands.Open(path, commands.Overrides{
		Mode:     pickPolicy,
		Require:  pickRequire,
		Selected: pickSelect,
	}, logger)
	if err != nil {
		return err
	}

	// TTY guard: there is nobody to pick when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !term.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("pick needs a terminal; use 'pickset check' or 'pickset toggle' in scripts")
	}

	var outcome tui.Outcome
	if pickForm {
		outcome, err = runForm(loaded)
	} else {
		outcome, err = runPicker(loaded)
	}
	if err != nil {
		return err
	}
	if !outcome.Confirmed {
		logger.Debug("selection cancelled", "set", path)
		return huh.ErrUserAborted
	}

	return writeSelection(os.Stdout, pickOutput, loaded, outcome.Selected)
}

func runPicker(loaded *commands.Loaded) (tui.Outcome, error) {
	model := tui.NewModel(loaded.Title(), loaded.State, nil)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return tui.Outcome{}, err
	}
	return finalModel.(tui.Model).Outcome(), nil
}

// pickedOption is one entry of the yaml output.
type pickedOption struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Section string `yaml:"section,omitempty"`
}

type pickResult struct {
	Set      string         `yaml:"set"`
	Policy   string         `yaml:"policy"`
	Selected []pickedOption `yaml:"selected"`
}

// writeSelection prints ids one per line, or a yaml document with titles
// and section names.
func writeSelection(w io.Writer, format string, loaded *commands.Loaded, selected []string) error {
	if format == "text" {
		for _, id := range selected {
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
		}
		return nil
	}

	idx := loaded.State.Index()
	result := pickResult{
		Set:      loaded.Title(),
		Policy:   loaded.Policy.String(),
		Selected: []pickedOption{},
	}
	for _, id := range selected {
		label, _ := idx.Label(id)
		po := pickedOption{ID: id, Title: label.Title}
		if pos, ok := idx.PositionOf(id); ok {
			po.Section = idx.TitleOf(pos.Section)
		}
		result.Selected = append(result.Selected, po)
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling selection: %w", err)
	}
	_, err = w.Write(data)
	return err
}
