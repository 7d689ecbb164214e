package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvDir overrides the sets directory.
const EnvDir = "PICKSET_DIR"

// Ext is the option-set file extension.
const Ext = ".yaml"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// BaseDir returns ~/.pickset.
func BaseDir() string {
	return filepath.Join(home(), ".pickset")
}

// SetsDir returns $PICKSET_DIR, or ~/.pickset/sets.
func SetsDir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return filepath.Join(BaseDir(), "sets")
}

// SetFile returns the file for a named set in dir.
func SetFile(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

// Resolve maps a command-line argument to an option-set file. Anything that
// looks like a path (has a separator or an extension) or exists on disk is
// used as-is; otherwise it is a set name inside dir.
func Resolve(dir, arg string) string {
	if strings.ContainsRune(arg, filepath.Separator) || filepath.Ext(arg) != "" {
		return arg
	}
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	return SetFile(dir, arg)
}
