package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/pickset/cmd/pickset/tui"
	"github.com/ruminaider/pickset/internal/commands"
	"github.com/ruminaider/pickset/internal/selection"
)

// formSection is one field of the fallback form: a Select when the scope is
// exclusive, a MultiSelect otherwise.
type formSection struct {
	title  string
	ids    []string
	labels []string
	single bool
	limit  int // MultiSelect limit, 0 for none
	one    string
	many   []string
}

// picked returns the ids chosen in this section.
func (fs *formSection) picked() []string {
	if fs.single {
		if fs.one == "" {
			return nil
		}
		return []string{fs.one}
	}
	return fs.many
}

// buildFormSections lays the state out as form fields. An exclusive total
// limit collapses everything into one Select; sectioned policies get one
// field per non-empty section.
func buildFormSections(title string, state *selection.State[string]) []*formSection {
	pol := state.Policy()
	idx := state.Index()

	var sections []*formSection
	if !pol.Mode.Sectioned() || !pol.AllowsMultiple() {
		fs := &formSection{title: title, single: !pol.AllowsMultiple(), limit: pol.Max}
		for s := 0; s < idx.SectionCount(); s++ {
			appendOptions(fs, idx, s)
		}
		sections = append(sections, fs)
	} else {
		for s := 0; s < idx.SectionCount(); s++ {
			if idx.RowCount(s) == 0 {
				continue
			}
			name := idx.TitleOf(s)
			if name == "" {
				name = fmt.Sprintf("%s (%d)", title, s+1)
			}
			fs := &formSection{title: name, single: pol.Exclusive(), limit: pol.SectionMax}
			appendOptions(fs, idx, s)
			sections = append(sections, fs)
		}
	}

	for _, fs := range sections {
		for _, id := range fs.ids {
			if !state.IsSelected(id) {
				continue
			}
			if fs.single {
				fs.one = id
			} else {
				fs.many = append(fs.many, id)
			}
		}
	}
	return sections
}

func appendOptions(fs *formSection, idx *selection.Index[string], section int) {
	for r := 0; r < idx.RowCount(section); r++ {
		opt, ok := idx.OptionAt(section, r)
		if !ok {
			continue
		}
		label := opt.Title
		if opt.Detail != "" {
			label += " (" + opt.Detail + ")"
		}
		fs.ids = append(fs.ids, opt.ID)
		fs.labels = append(fs.labels, label)
	}
}

// field builds the huh field bound to fs.
func (fs *formSection) field() huh.Field {
	if fs.single {
		options := []huh.Option[string]{huh.NewOption("(none)", "")}
		for i, id := range fs.ids {
			options = append(options, huh.NewOption(fs.labels[i], id))
		}
		return huh.NewSelect[string]().
			Title(fs.title).
			Options(options...).
			Value(&fs.one)
	}

	options := make([]huh.Option[string], len(fs.ids))
	for i, id := range fs.ids {
		options[i] = huh.NewOption(fs.labels[i], id)
	}
	ms := huh.NewMultiSelect[string]().
		Title(fs.title).
		Description("Space to toggle, Enter to confirm").
		Options(options...).
		Value(&fs.many)
	if fs.limit > 0 {
		ms = ms.Limit(fs.limit)
	}
	return ms
}

// applyForm replaces the selection with what the form holds and tries to
// dismiss. The state's policy still has the last word on limits.
func applyForm(session *selection.Session[string], sections []*formSection) (selection.Prompt, bool, error) {
	var ids []string
	for _, fs := range sections {
		ids = append(ids, fs.picked()...)
	}
	if err := session.State().Reset(ids...); err != nil {
		return selection.Prompt{}, false, err
	}
	prompt, ok := session.Dismiss()
	return prompt, ok, nil
}

// runForm asks with huh forms until the selection can be confirmed or the
// user aborts.
func runForm(loaded *commands.Loaded) (tui.Outcome, error) {
	var outcome tui.Outcome
	session := selection.NewSession(loaded.State, selection.CompletionFuncs[string]{
		OnConfirm: func(sel []string) { outcome = tui.Outcome{Confirmed: true, Selected: sel} },
		OnCancel:  func(prev []string) { outcome = tui.Outcome{Selected: prev} },
	})
	session.Title = loaded.Title()

	for !session.Done() {
		sections := buildFormSections(loaded.Title(), session.State())
		fields := make([]huh.Field, len(sections))
		for i, fs := range sections {
			fields[i] = fs.field()
		}

		err := huh.NewForm(huh.NewGroup(fields...)).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			session.Cancel()
			break
		}
		if err != nil {
			return tui.Outcome{}, err
		}

		prompt, ok, err := applyForm(session, sections)
		if err != nil {
			return tui.Outcome{}, err
		}
		if !ok && !prompt.IsZero() {
			fmt.Fprintf(os.Stderr, "%s\n\n", prompt.Message)
		}
	}
	return outcome, nil
}
