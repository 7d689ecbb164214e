package commands

import (
	"log/slog"

	"github.com/ruminaider/pickset/internal/selection"
)

// CheckSection is one section of a checked option set.
type CheckSection struct {
	Title   string
	Options []selection.Option[string]
}

type CheckResult struct {
	Title        string
	Policy       selection.Policy
	Sections     []CheckSection
	Unreferenced []string
	Selected     []string
	Satisfied    bool
	Prompt       selection.Prompt
}

// Check validates the option set at path and reports whether its seed (or
// o.Selected) would be allowed to dismiss.
func Check(path string, o Overrides, logger *slog.Logger) (*CheckResult, error) {
	l, err := Open(path, o, logger)
	if err != nil {
		return nil, err
	}
	idx := l.State.Index()

	result := &CheckResult{
		Title:        l.Title(),
		Policy:       l.Policy,
		Unreferenced: idx.Unreferenced(),
		Selected:     l.State.Ordered(),
		Satisfied:    l.State.Satisfied(),
		Prompt:       l.State.Problem(),
	}
	for s := 0; s < idx.SectionCount(); s++ {
		sec := CheckSection{Title: idx.TitleOf(s)}
		for r := 0; r < idx.RowCount(s); r++ {
			if opt, ok := idx.OptionAt(s, r); ok {
				sec.Options = append(sec.Options, opt)
			}
		}
		result.Sections = append(result.Sections, sec)
	}
	return result, nil
}
