package momentum

import "github.com/katalvlaran/heatpath/costgrid"

// Successors enumerates the legal moves out of s on g under rules r,
// each paired with the cost of the cell it enters. At most three
// transitions are returned (four from the origin); edge cells yield fewer.
//
// Successors does not validate r; callers validate once up front.
// An error is only possible if g reports a cell it just declared in bounds
// as out of bounds, and is passed through unchanged.
func Successors[C costgrid.Cost](g *costgrid.Grid[C], s State, r Rules) ([]Transition, error) {
	out := make([]Transition, 0, 4)
	back := s.Dir.Reverse()
	for _, d := range Directions {
		next, ok := r.advance(s, d, back)
		if !ok {
			continue
		}
		if !g.InBounds(next.Pos) {
			continue
		}
		cost, err := g.Cost(next.Pos)
		if err != nil {
			return nil, err
		}
		out = append(out, Transition{State: next, Cost: uint64(cost)})
	}

	return out, nil
}

// advance applies the turn/straight/reverse rules for a move along d.
// back is s.Dir.Reverse(), hoisted out of the loop.
func (r Rules) advance(s State, d, back Direction) (State, bool) {
	dRow, dCol := d.Delta()
	pos := s.Pos.Step(dRow, dCol)
	switch {
	case s.IsOrigin():
		return State{Pos: pos, Dir: d, Run: 1}, true
	case d == back:
		return State{}, false
	case d == s.Dir:
		if s.Run >= r.MaxRun {
			return State{}, false
		}
		return State{Pos: pos, Dir: d, Run: s.Run + 1}, true
	default:
		if s.Run < r.MinRun {
			return State{}, false
		}
		return State{Pos: pos, Dir: d, Run: 1}, true
	}
}
