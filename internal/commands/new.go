package commands

import (
	"fmt"
	"os"

	"github.com/ruminaider/pickset/internal/optionset"
	"github.com/ruminaider/pickset/internal/paths"
)

// DemoSet returns a two-section starter set.
func DemoSet() optionset.File {
	return optionset.File{
		Title:             "Choose an option",
		Policy:            "single-sectioned",
		RequiresSelection: true,
		Options: map[string]optionset.Option{
			"OA": {Title: "Option A"},
			"OB": {Title: "Option B", Detail: "Extras"},
			"OC": {Title: "Option C"},
			"CA": {Title: "Choice A", Detail: "Extras"},
			"CB": {Title: "Choice B"},
			"CC": {Title: "Choice C"},
		},
		Order:         [][]string{{"OA", "OB", "OC"}, {"CA", "CB", "CC"}},
		SectionTitles: []string{"Options", "Choices"},
	}
}

// CreateSet writes f as a named set in dir and returns its path. It refuses
// to overwrite an existing set.
func CreateSet(dir, name string, f optionset.File) (string, error) {
	path := paths.SetFile(dir, name)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("option set %q already exists at %s", name, path)
	}

	data, err := optionset.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("marshaling option set: %w", err)
	}
	if _, err := optionset.Parse(data); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating sets directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing option set: %w", err)
	}
	return path, nil
}
