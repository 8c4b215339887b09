package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, StateList, s.CurrentState.Get())
	assert.Equal(t, SinglePane, s.CurrentLayout.Get())
	assert.True(t, s.UseDualPane.Get())
	assert.Equal(t, 5, s.SplitterLocation.Get())
	assert.True(t, s.ShowFilterBar.Get())
	assert.False(t, s.FilterIsActive.Get())
	assert.Empty(t, s.LastBrowsedModelID.Get())
	assert.False(t, s.ShowDiagnostics.Get())
}

func TestSet_NotifiesOnlyOnChange(t *testing.T) {
	s := New()
	var calls []string
	s.LastBrowsedModelID.OnChange(func(prev, cur string) {
		calls = append(calls, prev+"->"+cur)
	})

	assert.True(t, s.LastBrowsedModelID.Set("42"))
	assert.False(t, s.LastBrowsedModelID.Set("42"))
	assert.True(t, s.LastBrowsedModelID.Set(""))

	assert.Equal(t, []string{"->42", "42->"}, calls)
}

func TestSet_NestedDeliveryIsOrdered(t *testing.T) {
	s := New()
	var order []string
	s.CurrentLayout.OnChange(func(_, cur Layout) {
		order = append(order, "layout:"+string(cur))
		s.CurrentState.Set(StateHelp)
		order = append(order, "layout:done")
	})
	s.CurrentState.OnChange(func(_, cur AppState) {
		order = append(order, "state:"+string(cur))
	})

	s.CurrentLayout.Set(DualPane)

	assert.Equal(t, []string{"layout:dualPane", "state:help", "layout:done"}, order)
}

func TestOnChange_Unsubscribe(t *testing.T) {
	s := New()
	n := 0
	off := s.FilterStar.OnChange(func(_, _ bool) { n++ })
	require.Equal(t, 1, s.FilterStar.Subscribers())

	s.FilterStar.Set(true)
	off()
	s.FilterStar.Set(false)

	assert.Equal(t, 1, n)
	assert.Zero(t, s.FilterStar.Subscribers())
}

func TestSplitterLocation_Normalizes(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-3, 5}, {0, 5}, {1, 1}, {5, 5}, {9, 9}, {10, 5}, {42, 5},
	}
	for _, c := range cases {
		s := New()
		s.SplitterLocation.Set(c.in)
		assert.Equal(t, c.want, s.SplitterLocation.Get(), "input %d", c.in)
	}
}

func TestSplitterLocation_OutOfRangeIsNoOpWhenAlreadyDefault(t *testing.T) {
	s := New()
	n := 0
	s.SplitterLocation.OnChange(func(_, _ int) { n++ })
	assert.False(t, s.SplitterLocation.Set(99))
	assert.Zero(t, n)
}

func TestClampSplitter_FractionsSumToTen(t *testing.T) {
	for v := -20; v <= 20; v++ {
		got := ClampSplitter(v)
		if 0 < v && v < 10 {
			assert.Equal(t, v, got)
		} else {
			assert.Equal(t, 5, got)
		}
		assert.Equal(t, 10, got+(10-got))
	}
}

func TestParseAppState(t *testing.T) {
	for _, tok := range []string{"list", "browseEdit", "add", "globalOptions", "help"} {
		st, ok := ParseAppState(tok)
		assert.True(t, ok, tok)
		assert.Equal(t, AppState(tok), st)
	}
	_, ok := ParseAppState("options")
	assert.False(t, ok)
	_, ok = ParseAppState("")
	assert.False(t, ok)
}
