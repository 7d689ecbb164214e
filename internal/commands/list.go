package commands

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ruminaider/pickset/internal/optionset"
	"github.com/ruminaider/pickset/internal/paths"
)

// SetInfo describes one option-set file in the sets directory.
type SetInfo struct {
	Name    string
	Path    string
	Title   string
	Policy  string
	Options int
	Err     error // set when the file does not parse
}

// ListSets returns the option sets in dir sorted by name. A missing
// directory yields an empty list.
func ListSets(dir string, logger *slog.Logger) ([]SetInfo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sets []SetInfo
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != paths.Ext {
			continue
		}
		info := SetInfo{
			Name: strings.TrimSuffix(e.Name(), paths.Ext),
			Path: filepath.Join(dir, e.Name()),
		}
		f, err := optionset.Load(info.Path)
		if err != nil {
			logger.Debug("skipping unreadable option set", "path", info.Path, "err", err)
			info.Err = err
		} else {
			info.Title = f.Title
			info.Policy = f.Policy
			info.Options = len(f.Options)
		}
		sets = append(sets, info)
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}
