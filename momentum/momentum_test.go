package momentum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/costgrid"
	"github.com/katalvlaran/heatpath/momentum"
)

// grid3x3 has distinct costs so each transition can be identified by cost.
//
//	1 2 3
//	4 5 6
//	7 8 9
func grid3x3(t *testing.T) *costgrid.Grid[uint8] {
	t.Helper()
	g, err := costgrid.ParseString("123\n456\n789\n")
	require.NoError(t, err)
	return g
}

func at(r, c int) costgrid.Coordinate { return costgrid.Coordinate{Row: r, Col: c} }

// byDir indexes transitions by heading for order-independent assertions.
func byDir(ts []momentum.Transition) map[momentum.Direction]momentum.Transition {
	m := make(map[momentum.Direction]momentum.Transition, len(ts))
	for _, tr := range ts {
		m[tr.State.Dir] = tr
	}
	return m
}

func TestDirection_Reverse(t *testing.T) {
	for _, d := range momentum.Directions {
		assert.NotEqual(t, d, d.Reverse())
		assert.Equal(t, d, d.Reverse().Reverse())
		dr, dc := d.Delta()
		rr, rc := d.Reverse().Delta()
		assert.Equal(t, 0, dr+rr)
		assert.Equal(t, 0, dc+rc)
	}
	assert.Equal(t, momentum.NoDirection, momentum.NoDirection.Reverse())
	assert.NotContains(t, momentum.Directions[:], momentum.NoDirection)
}

func TestRules_Validate(t *testing.T) {
	cases := []struct {
		name  string
		rules momentum.Rules
		err   error
	}{
		{"Default", momentum.DefaultRules(), nil},
		{"Ultra", momentum.Rules{MaxRun: 10, MinRun: 4}, nil},
		{"MinEqualsMax", momentum.Rules{MaxRun: 2, MinRun: 2}, nil},
		{"ZeroMax", momentum.Rules{MaxRun: 0}, momentum.ErrBadMaxRun},
		{"NegativeMin", momentum.Rules{MaxRun: 3, MinRun: -1}, momentum.ErrBadMinRun},
		{"MinAboveMax", momentum.Rules{MaxRun: 3, MinRun: 4}, momentum.ErrBadMinRun},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rules.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSuccessors_OriginCorner: the origin may leave in any direction, but a
// corner only has two in-bounds neighbors.
func TestSuccessors_OriginCorner(t *testing.T) {
	g := grid3x3(t)
	ts, err := momentum.Successors(g, momentum.Origin(at(0, 0)), momentum.DefaultRules())
	require.NoError(t, err)
	require.Len(t, ts, 2)

	m := byDir(ts)
	assert.Equal(t, momentum.Transition{State: momentum.State{Pos: at(1, 0), Dir: momentum.South, Run: 1}, Cost: 4}, m[momentum.South])
	assert.Equal(t, momentum.Transition{State: momentum.State{Pos: at(0, 1), Dir: momentum.East, Run: 1}, Cost: 2}, m[momentum.East])
}

// TestSuccessors_OriginCenter: from the middle of the grid all four headings are open.
func TestSuccessors_OriginCenter(t *testing.T) {
	g := grid3x3(t)
	ts, err := momentum.Successors(g, momentum.Origin(at(1, 1)), momentum.Rules{MaxRun: 1})
	require.NoError(t, err)
	require.Len(t, ts, 4)
	for _, tr := range ts {
		assert.Equal(t, 1, tr.State.Run)
	}
}

// TestSuccessors_NoReverse: after moving East the crucible may not go West.
func TestSuccessors_NoReverse(t *testing.T) {
	g := grid3x3(t)
	s := momentum.State{Pos: at(1, 1), Dir: momentum.East, Run: 1}
	ts, err := momentum.Successors(g, s, momentum.DefaultRules())
	require.NoError(t, err)

	m := byDir(ts)
	require.Len(t, m, 3)
	assert.NotContains(t, m, momentum.West)
	assert.Equal(t, 2, m[momentum.East].State.Run, "straight move increments run")
	assert.Equal(t, 1, m[momentum.North].State.Run, "turn resets run")
	assert.Equal(t, 1, m[momentum.South].State.Run, "turn resets run")
	assert.Equal(t, uint64(6), m[momentum.East].Cost)
	assert.Equal(t, uint64(2), m[momentum.North].Cost)
	assert.Equal(t, uint64(8), m[momentum.South].Cost)
}

// TestSuccessors_RunCap: at Run == MaxRun going straight is illegal.
func TestSuccessors_RunCap(t *testing.T) {
	g := grid3x3(t)
	s := momentum.State{Pos: at(1, 1), Dir: momentum.South, Run: 3}
	ts, err := momentum.Successors(g, s, momentum.DefaultRules())
	require.NoError(t, err)

	m := byDir(ts)
	assert.Len(t, m, 2)
	assert.Contains(t, m, momentum.West)
	assert.Contains(t, m, momentum.East)
}

// TestSuccessors_MinRun: below MinRun only straight moves are legal.
func TestSuccessors_MinRun(t *testing.T) {
	g := grid3x3(t)
	rules := momentum.Rules{MaxRun: 10, MinRun: 2}

	s := momentum.State{Pos: at(1, 0), Dir: momentum.East, Run: 1}
	ts, err := momentum.Successors(g, s, rules)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, momentum.State{Pos: at(1, 1), Dir: momentum.East, Run: 2}, ts[0].State)

	s = momentum.State{Pos: at(1, 1), Dir: momentum.East, Run: 2}
	ts, err = momentum.Successors(g, s, rules)
	require.NoError(t, err)
	assert.Len(t, ts, 3)

	assert.False(t, rules.CanStop(momentum.State{Pos: at(1, 1), Dir: momentum.East, Run: 1}))
	assert.True(t, rules.CanStop(momentum.State{Pos: at(1, 1), Dir: momentum.East, Run: 2}))
	assert.True(t, rules.CanStop(momentum.Origin(at(0, 0))))
}

// TestSuccessors_EdgeNoWrap: a state on the east edge heading East has no
// straight successor.
func TestSuccessors_EdgeNoWrap(t *testing.T) {
	g := grid3x3(t)
	s := momentum.State{Pos: at(0, 2), Dir: momentum.East, Run: 1}
	ts, err := momentum.Successors(g, s, momentum.DefaultRules())
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.Equal(t, momentum.South, ts[0].State.Dir)
	for _, tr := range ts {
		assert.True(t, g.InBounds(tr.State.Pos))
	}
}

// TestSuccessors_SingleRow mirrors the unreachable scenario: in a 1×4 row with
// MaxRun 1 the first East move is a dead end.
func TestSuccessors_SingleRow(t *testing.T) {
	g, err := costgrid.ParseString("1111")
	require.NoError(t, err)
	rules := momentum.Rules{MaxRun: 1}

	ts, err := momentum.Successors(g, momentum.Origin(at(0, 0)), rules)
	require.NoError(t, err)
	require.Len(t, ts, 1)

	ts, err = momentum.Successors(g, ts[0].State, rules)
	require.NoError(t, err)
	assert.Empty(t, ts)
}

// TestSuccessors_Pure: calling twice on the same input yields the same output.
func TestSuccessors_Pure(t *testing.T) {
	g := grid3x3(t)
	s := momentum.State{Pos: at(1, 1), Dir: momentum.North, Run: 2}
	a, err := momentum.Successors(g, s, momentum.DefaultRules())
	require.NoError(t, err)
	b, err := momentum.Successors(g, s, momentum.DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "(0,0) -×0", momentum.Origin(at(0, 0)).String())
	assert.Equal(t, "(2,1) W×3", momentum.State{Pos: at(2, 1), Dir: momentum.West, Run: 3}.String())
}
