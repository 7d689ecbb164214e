package selection_test

import (
	"bytes"
	"cmp"
	"log/slog"
	"testing"

	"github.com/ruminaider/pickset/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoLabels() map[string]selection.Label {
	return map[string]selection.Label{
		"OA": {Title: "Option A"},
		"OB": {Title: "Option B", Detail: "Extras"},
		"OC": {Title: "Option C"},
		"CA": {Title: "Choice A", Detail: "Extras"},
		"CB": {Title: "Choice B"},
		"CC": {Title: "Choice C"},
	}
}

// demoIndex mirrors the two-section demo layout: Options then Choices.
func demoIndex(t *testing.T) *selection.Index[string] {
	t.Helper()
	idx, err := selection.Build(selection.IndexConfig[string]{
		Options:       demoLabels(),
		Order:         [][]string{{"OA", "OB", "OC"}, {"CA", "CB", "CC"}},
		SectionTitles: []string{"Options", "Choices"},
	})
	require.NoError(t, err)
	return idx
}

func TestBuild_RoundTripsPositions(t *testing.T) {
	idx := demoIndex(t)

	for _, id := range idx.IDs() {
		pos, ok := idx.PositionOf(id)
		require.True(t, ok, id)
		got, ok := idx.IDAt(pos.Section, pos.Row)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}

	for s := 0; s < idx.SectionCount(); s++ {
		for r := 0; r < idx.RowCount(s); r++ {
			id, ok := idx.IDAt(s, r)
			require.True(t, ok)
			pos, ok := idx.PositionOf(id)
			require.True(t, ok)
			assert.Equal(t, selection.Position{Section: s, Row: r}, pos)
		}
	}
}

func TestBuild_Layout(t *testing.T) {
	idx := demoIndex(t)

	assert.Equal(t, 2, idx.SectionCount())
	assert.Equal(t, 3, idx.RowCount(0))
	assert.Equal(t, 3, idx.RowCount(1))
	assert.Equal(t, "Options", idx.TitleOf(0))
	assert.Equal(t, "Choices", idx.TitleOf(1))
	assert.Equal(t, 6, idx.Len())
	assert.Equal(t, []string{"OA", "OB", "OC", "CA", "CB", "CC"}, idx.IDs())

	opt, ok := idx.OptionAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, selection.Option[string]{ID: "CA", Title: "Choice A", Detail: "Extras"}, opt)

	label, ok := idx.Label("OB")
	require.True(t, ok)
	assert.Equal(t, "Extras", label.Detail)
}

func TestBuild_DuplicateAcrossSections(t *testing.T) {
	_, err := selection.Build(selection.IndexConfig[string]{
		Options: demoLabels(),
		Order:   [][]string{{"OA", "OB"}, {"CA", "OA"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrDuplicateOption)

	var cfgErr *selection.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "OA", cfgErr.ID)
	assert.Equal(t, 1, cfgErr.Section)
}

func TestBuild_DuplicateWithinSection(t *testing.T) {
	_, err := selection.Build(selection.IndexConfig[string]{
		Options: demoLabels(),
		Order:   [][]string{{"OA", "OA"}},
	})
	assert.ErrorIs(t, err, selection.ErrDuplicateOption)
}

func TestBuild_OrderReferencesUnknownOption(t *testing.T) {
	_, err := selection.Build(selection.IndexConfig[string]{
		Options: demoLabels(),
		Order:   [][]string{{"OA", "ZZ"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrUnknownOption)
	assert.Contains(t, err.Error(), "ZZ")
}

func TestBuild_TitleCountMismatch(t *testing.T) {
	_, err := selection.Build(selection.IndexConfig[string]{
		Options:       demoLabels(),
		Order:         [][]string{{"OA"}, {"CA"}},
		SectionTitles: []string{"Only one"},
	})
	assert.ErrorIs(t, err, selection.ErrTitleCount)
}

func TestBuild_DerivedOrderNeedsCompare(t *testing.T) {
	_, err := selection.Build(selection.IndexConfig[string]{Options: demoLabels()})
	assert.ErrorIs(t, err, selection.ErrNoOrdering)
}

func TestBuild_DerivedOrderSortsWithCompare(t *testing.T) {
	idx, err := selection.Build(selection.IndexConfig[string]{
		Options: demoLabels(),
		Compare: cmp.Compare[string],
	})
	require.NoError(t, err)

	assert.Equal(t, 1, idx.SectionCount())
	assert.Equal(t, "", idx.TitleOf(0))
	assert.Equal(t, []string{"CA", "CB", "CC", "OA", "OB", "OC"}, idx.IDs())
}

func TestBuild_IntIDs(t *testing.T) {
	idx, err := selection.Build(selection.IndexConfig[int]{
		Options: map[int]selection.Label{3: {Title: "three"}, 1: {Title: "one"}, 2: {Title: "two"}},
		Compare: func(a, b int) int { return b - a },
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, idx.IDs())
}

func TestBuild_UnreferencedOptionsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	idx, err := selection.Build(selection.IndexConfig[string]{
		Options: demoLabels(),
		Order:   [][]string{{"OA", "OB"}},
		Compare: cmp.Compare[string],
		Logger:  logger,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CA", "CB", "CC", "OC"}, idx.Unreferenced())
	assert.False(t, idx.Contains("CA"))
	_, ok := idx.PositionOf("CA")
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "count=4")
}

func TestBuild_EmptySectionAllowed(t *testing.T) {
	idx, err := selection.Build(selection.IndexConfig[string]{
		Options: demoLabels(),
		Order:   [][]string{{"OA"}, {}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.SectionCount())
	assert.Equal(t, 0, idx.RowCount(1))
}

func TestIndex_OutOfRangeLookups(t *testing.T) {
	idx := demoIndex(t)

	cases := []struct {
		name         string
		section, row int
	}{
		{"negative section", -1, 0},
		{"negative row", 0, -1},
		{"section past end", 2, 0},
		{"row past end", 0, 3},
		{"both past end", 99, 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				id, ok := idx.IDAt(tc.section, tc.row)
				assert.False(t, ok)
				assert.Empty(t, id)

				_, ok = idx.OptionAt(tc.section, tc.row)
				assert.False(t, ok)
			})
		})
	}

	assert.Equal(t, 0, idx.RowCount(-1))
	assert.Equal(t, 0, idx.RowCount(5))
	assert.Equal(t, "", idx.TitleOf(5))

	_, ok := idx.PositionOf("nope")
	assert.False(t, ok)
}

func TestIndex_SectionsIsACopy(t *testing.T) {
	idx := demoIndex(t)
	secs := idx.Sections()
	secs[0].IDs[0] = "mutated"
	secs[0].Title = "mutated"

	id, _ := idx.IDAt(0, 0)
	assert.Equal(t, "OA", id)
	assert.Equal(t, "Options", idx.TitleOf(0))
}
