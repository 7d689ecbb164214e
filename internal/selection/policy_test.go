package selection_test

import (
	"testing"

	"github.com/ruminaider/pickset/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode_RoundTrip(t *testing.T) {
	for _, mode := range []selection.Mode{selection.Single, selection.SingleSectioned, selection.Multiple, selection.MultipleSectioned} {
		got, err := selection.ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := selection.ParseMode("several")
	assert.ErrorIs(t, err, selection.ErrInvalidPolicy)
	assert.Equal(t, "mode(9)", selection.Mode(9).String())
}

func TestPolicy_Validate(t *testing.T) {
	cases := []struct {
		name    string
		policy  selection.Policy
		wantErr bool
	}{
		{"single", selection.NewPolicy(selection.Single, true), false},
		{"unknown mode", selection.Policy{Mode: selection.Mode(42)}, true},
		{"negative max", selection.Policy{Mode: selection.Multiple, Max: -2}, true},
		{"min above max", selection.Policy{Mode: selection.Multiple, Min: 3, Max: 2}, true},
		{"min above single", selection.Policy{Mode: selection.Single, Min: 2}, true},
		{"section min above section max", selection.Policy{Mode: selection.SingleSectioned, SectionMin: 2}, true},
		{"limits fit", selection.Policy{Mode: selection.MultipleSectioned, Min: 2, Max: 4, SectionMax: 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.policy.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, selection.ErrInvalidPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicy_AllowsMultiple(t *testing.T) {
	assert.False(t, selection.NewPolicy(selection.Single, false).AllowsMultiple())
	assert.True(t, selection.NewPolicy(selection.SingleSectioned, false).AllowsMultiple())
	assert.True(t, selection.NewPolicy(selection.Multiple, false).AllowsMultiple())
	assert.False(t, selection.Policy{Mode: selection.Multiple, Max: 1}.AllowsMultiple())
}

func TestPolicy_Exclusive(t *testing.T) {
	assert.True(t, selection.NewPolicy(selection.Single, false).Exclusive())
	assert.True(t, selection.NewPolicy(selection.SingleSectioned, false).Exclusive())
	assert.False(t, selection.NewPolicy(selection.Multiple, false).Exclusive())
	assert.False(t, selection.NewPolicy(selection.MultipleSectioned, false).Exclusive())
	assert.True(t, selection.Policy{Mode: selection.MultipleSectioned, SectionMax: 1}.Exclusive())
	assert.False(t, selection.Policy{Mode: selection.SingleSectioned, SectionMax: 2}.Exclusive())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "single", selection.NewPolicy(selection.Single, false).String())
	assert.Equal(t, "multiple-sectioned, required", selection.NewPolicy(selection.MultipleSectioned, false).Required().String())
	assert.Equal(t, "multiple, max 3, required", selection.Policy{Mode: selection.Multiple, Max: 3, RequiresSelection: true}.String())
}
