package optionset_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/pickset/internal/optionset"
	"github.com/ruminaider/pickset/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadDemo(t *testing.T) {
	f, err := optionset.Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Choose an option", f.Title)
	assert.Len(t, f.Options, 6)
	assert.Equal(t, "Extras", f.Options["OB"].Detail)
	assert.Equal(t, []string{"OB"}, f.Selected)

	p, err := f.SelectionPolicy()
	require.NoError(t, err)
	assert.Equal(t, selection.SingleSectioned, p.Mode)
	assert.True(t, p.RequiresSelection)

	idx, err := f.Index(quiet)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.SectionCount())
	assert.Equal(t, "Choices", idx.TitleOf(1))
	id, ok := idx.IDAt(1, 2)
	require.True(t, ok)
	assert.Equal(t, "CC", id)
}

func TestLoad_Missing(t *testing.T) {
	_, err := optionset.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_DefaultsToSingle(t *testing.T) {
	f, err := optionset.Parse([]byte("options:\n  b: {title: Bee}\n  a: {title: Ay}\n"))
	require.NoError(t, err)

	p, err := f.SelectionPolicy()
	require.NoError(t, err)
	assert.Equal(t, selection.Single, p.Mode)
	assert.False(t, p.RequiresSelection)

	idx, err := f.Index(quiet)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, idx.IDs(), "no order sorts by id")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "options: [unclosed"},
		{"no options", "title: empty\n"},
		{"bad policy", "policy: several\noptions:\n  a: {title: A}\n"},
		{"bad limits", "policy: multiple\nmin: 3\nmax: 1\noptions:\n  a: {title: A}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := optionset.Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestIndex_LayoutErrors(t *testing.T) {
	f, err := optionset.Parse([]byte("options:\n  a: {title: A}\norder:\n  - [a, z]\n"))
	require.NoError(t, err)
	_, err = f.Index(quiet)
	assert.ErrorIs(t, err, selection.ErrUnknownOption)

	f, err = optionset.Parse([]byte("options:\n  a: {title: A}\n  b: {title: B}\norder:\n  - [a]\n  - [b, a]\n"))
	require.NoError(t, err)
	_, err = f.Index(quiet)
	assert.ErrorIs(t, err, selection.ErrDuplicateOption)
}

func TestState_SeedAndOverride(t *testing.T) {
	f, err := optionset.Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	p, err := f.SelectionPolicy()
	require.NoError(t, err)

	s, err := f.State(quiet, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"OB"}, s.Selected())

	s, err = f.State(quiet, p, "OA", "CC")
	require.NoError(t, err)
	assert.Equal(t, []string{"OA", "CC"}, s.Selected())

	_, err = f.State(quiet, p, "missing")
	assert.ErrorIs(t, err, selection.ErrUnknownOption)
}

func TestMarshal_RoundTrip(t *testing.T) {
	f, err := optionset.Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	data, err := optionset.Marshal(f)
	require.NoError(t, err)
	got, err := optionset.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}
