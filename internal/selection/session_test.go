package selection_test

import (
	"testing"

	"github.com/ruminaider/pickset/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures completion signals.
type recorder struct {
	confirmed [][]string
	cancelled [][]string
}

func (r *recorder) Confirm(selected []string) { r.confirmed = append(r.confirmed, selected) }
func (r *recorder) Cancel(previous []string)  { r.cancelled = append(r.cancelled, previous) }

func TestSession_DismissBlockedUntilSatisfied(t *testing.T) {
	idx := demoIndex(t)
	state, err := selection.NewState(idx, selection.NewPolicy(selection.SingleSectioned, true))
	require.NoError(t, err)
	rec := &recorder{}
	sess := selection.NewSession[string](state, rec)
	sess.Title = "Choose an option"

	prompt, ok := sess.Dismiss()
	assert.False(t, ok)
	assert.Equal(t, "Choose an option", prompt.Title)
	assert.Equal(t, "Please make a selection for Options, Choices.", prompt.Message)
	assert.Equal(t, "OK", prompt.Button)
	assert.Empty(t, rec.confirmed)
	assert.False(t, sess.Done())

	_, err = sess.Toggle("CB")
	require.NoError(t, err)
	prompt, ok = sess.Dismiss()
	assert.False(t, ok)
	assert.Equal(t, "Please make a selection for Options.", prompt.Message)

	_, err = sess.Toggle("OA")
	require.NoError(t, err)
	prompt, ok = sess.Dismiss()
	assert.True(t, ok)
	assert.True(t, prompt.IsZero())
	require.Len(t, rec.confirmed, 1)
	assert.Equal(t, []string{"OA", "CB"}, rec.confirmed[0])
	assert.True(t, sess.Done())
}

func TestSession_CancelSkipsCheck(t *testing.T) {
	idx := demoIndex(t)
	state, err := selection.NewState(idx, selection.NewPolicy(selection.Single, true), "OB")
	require.NoError(t, err)
	rec := &recorder{}
	sess := selection.NewSession[string](state, rec)

	_, err = sess.Toggle("OB")
	require.NoError(t, err)
	assert.True(t, sess.Dirty())

	sess.Cancel()
	require.Len(t, rec.cancelled, 1)
	assert.Equal(t, []string{"OB"}, rec.cancelled[0])
	assert.Empty(t, rec.confirmed)
}

func TestSession_FiresOnce(t *testing.T) {
	idx := demoIndex(t)
	state, err := selection.NewState(idx, selection.NewPolicy(selection.Multiple, false))
	require.NoError(t, err)
	rec := &recorder{}
	sess := selection.NewSession[string](state, rec)

	_, ok := sess.Dismiss()
	require.True(t, ok)

	_, ok = sess.Dismiss()
	assert.False(t, ok)
	sess.Cancel()
	_, err = sess.Toggle("OA")
	assert.ErrorIs(t, err, selection.ErrFinished)

	assert.Len(t, rec.confirmed, 1)
	assert.Empty(t, rec.cancelled)
}

func TestSession_CompletionFuncs(t *testing.T) {
	idx := demoIndex(t)
	state, err := selection.NewState(idx, selection.NewPolicy(selection.Multiple, false), "CA")
	require.NoError(t, err)

	var got []string
	sess := selection.NewSession[string](state, selection.CompletionFuncs[string]{
		OnCancel: func(previous []string) { got = previous },
	})
	assert.False(t, sess.Dirty())
	_, err = sess.Toggle("OA")
	require.NoError(t, err)
	sess.Cancel()
	assert.Equal(t, []string{"CA"}, got)
}

func TestSession_NilCompletion(t *testing.T) {
	idx := demoIndex(t)
	state, err := selection.NewState(idx, selection.NewPolicy(selection.Multiple, false))
	require.NoError(t, err)
	sess := selection.NewSession[string](state, nil)

	assert.NotPanics(t, func() {
		_, ok := sess.Dismiss()
		assert.True(t, ok)
	})
}

func TestProblem_Messages(t *testing.T) {
	cases := []struct {
		name   string
		policy selection.Policy
		seed   []string
		want   string
	}{
		{"satisfied", selection.NewPolicy(selection.Single, true), []string{"A"}, ""},
		{"not required", selection.NewPolicy(selection.Single, false), nil, ""},
		{"flat empty", selection.NewPolicy(selection.Multiple, true), nil, "Please make a selection."},
		{"flat one short", selection.Policy{Mode: selection.Multiple, RequiresSelection: true, Min: 2}, []string{"A"}, "Please select another choice."},
		{"flat many short", selection.Policy{Mode: selection.Multiple, RequiresSelection: true, Min: 3}, nil, "Please select another 3 choices."},
		{"untitled sections", selection.NewPolicy(selection.MultipleSectioned, true), []string{"C"}, "Please make a selection for Section 1."},
		{"section minimum", selection.Policy{Mode: selection.MultipleSectioned, RequiresSelection: true, SectionMin: 2}, []string{"A", "B", "C"}, "Please select at least 2 for Section 2."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := selection.NewState(abcdIndex(t), tc.policy, tc.seed...)
			require.NoError(t, err)
			p := s.Problem()
			assert.Equal(t, tc.want, p.Message)
			assert.Equal(t, tc.want == "", p.IsZero())
		})
	}
}
