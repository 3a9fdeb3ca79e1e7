package momentum

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heatpath/costgrid"
)

// Sentinel errors for rule validation.
var (
	// ErrBadMaxRun indicates MaxRun < 1; no move at all would be legal.
	ErrBadMaxRun = errors.New("momentum: MaxRun must be at least 1")
	// ErrBadMinRun indicates MinRun < 0 or MinRun > MaxRun.
	ErrBadMinRun = errors.New("momentum: MinRun must be within [0, MaxRun]")
)

// Direction is the heading of a single move.
type Direction uint8

const (
	// NoDirection is the heading of the origin pseudo-state only.
	NoDirection Direction = iota
	North
	South
	West
	East
)

// Directions lists the four real headings in the order Successors tries them.
var Directions = [4]Direction{North, South, West, East}

// Reverse returns the opposite heading. NoDirection has no opposite and is
// returned unchanged.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	}
	return NoDirection
}

// Delta returns the (row, col) offset of one step along d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case West:
		return "W"
	case East:
		return "E"
	}
	return "-"
}

// State is where the crucible is, which way it last moved, and how many
// consecutive moves it has made that way.
type State struct {
	Pos costgrid.Coordinate
	Dir Direction
	Run int
}

// Origin returns the start pseudo-state at c.
func Origin(c costgrid.Coordinate) State {
	return State{Pos: c, Dir: NoDirection}
}

// IsOrigin reports whether s is the start pseudo-state.
func (s State) IsOrigin() bool {
	return s.Dir == NoDirection
}

func (s State) String() string {
	return fmt.Sprintf("%v %v×%d", s.Pos, s.Dir, s.Run)
}

// Rules bounds straight runs.
type Rules struct {
	MaxRun int // moves along one heading before a turn is forced
	MinRun int // moves along one heading required before turning or stopping; 0 disables
}

// DefaultRules returns the classic crucible rules: MaxRun 3, MinRun 0.
func DefaultRules() Rules {
	return Rules{MaxRun: 3, MinRun: 0}
}

// Validate reports ErrBadMaxRun or ErrBadMinRun for unusable rules.
func (r Rules) Validate() error {
	if r.MaxRun < 1 {
		return fmt.Errorf("%w (got %d)", ErrBadMaxRun, r.MaxRun)
	}
	if r.MinRun < 0 || r.MinRun > r.MaxRun {
		return fmt.Errorf("%w (got %d, MaxRun %d)", ErrBadMinRun, r.MinRun, r.MaxRun)
	}
	return nil
}

// CanStop reports whether a route may end in state s.
func (r Rules) CanStop(s State) bool {
	return s.IsOrigin() || s.Run >= r.MinRun
}

// Transition is a legal next state and the cost of the cell it enters.
type Transition struct {
	State State
	Cost  uint64
}
