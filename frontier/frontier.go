package frontier

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/heatpath/costgrid"
	"github.com/katalvlaran/heatpath/momentum"
)

// Entry is a reached state and the cumulative cost of reaching it.
type Entry struct {
	State momentum.State
	Cost  uint64
}

func (e Entry) String() string {
	return fmt.Sprintf("%v @%d", e.State, e.Cost)
}

// Dominates reports whether a is at least as useful as b when there is no
// minimum run. Both entries are assumed to sit on the same cell; positions
// are not compared.
func Dominates(a, b Entry) bool {
	return DominatesWithin(a, b, 0)
}

// DominatesWithin is Dominates under a minimum run of minRun. A shorter run
// below minRun cannot turn yet, so it only dominates an equal run.
func DominatesWithin(a, b Entry, minRun int) bool {
	if a.Cost > b.Cost || a.State.Dir != b.State.Dir || a.State.Run > b.State.Run {
		return false
	}
	return a.State.Run == b.State.Run || a.State.Run >= minRun
}

// Store maps every cell of a rows×cols grid to its non-dominated entries.
// cells is row-major, like costgrid.Grid.
type Store struct {
	rows, cols int
	minRun     int
	cells      [][]Entry
	live       int
}

// New returns an empty Store for a rows×cols grid that compares entries with
// DominatesWithin(·, ·, minRun).
func New(rows, cols, minRun int) *Store {
	return &Store{
		rows:   rows,
		cols:   cols,
		minRun: minRun,
		cells:  make([][]Entry, rows*cols),
	}
}

// Dominates is DominatesWithin using the store's minimum run.
func (s *Store) Dominates(a, b Entry) bool {
	return DominatesWithin(a, b, s.minRun)
}

// TryAdmit stores e unless an entry already at e.State.Pos dominates it.
// On admission every stored entry that e dominates is evicted.
// Returns true iff e was admitted; the caller should then expand it.
// Entries whose position lies outside the store are never admitted.
func (s *Store) TryAdmit(e Entry) bool {
	i, ok := s.index(e.State.Pos)
	if !ok {
		return false
	}
	set := s.cells[i]
	if slices.ContainsFunc(set, func(old Entry) bool { return s.Dominates(old, e) }) {
		return false
	}
	before := len(set)
	set = slices.DeleteFunc(set, func(old Entry) bool { return s.Dominates(e, old) })
	set = append(set, e)
	s.cells[i] = set
	s.live += len(set) - before

	return true
}

// MinCostAt returns the cheapest cumulative cost stored at c, or false if
// nothing has reached c.
func (s *Store) MinCostAt(c costgrid.Coordinate) (uint64, bool) {
	return s.MinCostWhere(c, nil)
}

// MinCostWhere is MinCostAt restricted to entries whose state satisfies keep.
// A nil keep accepts every entry.
func (s *Store) MinCostWhere(c costgrid.Coordinate, keep func(momentum.State) bool) (uint64, bool) {
	i, ok := s.index(c)
	if !ok {
		return 0, false
	}
	var (
		best  uint64
		found bool
	)
	for _, e := range s.cells[i] {
		if keep != nil && !keep(e.State) {
			continue
		}
		if !found || e.Cost < best {
			best, found = e.Cost, true
		}
	}
	return best, found
}

// Entries returns a copy of the entries stored at c, in admission order.
func (s *Store) Entries(c costgrid.Coordinate) []Entry {
	i, ok := s.index(c)
	if !ok {
		return nil
	}
	return slices.Clone(s.cells[i])
}

// Len returns the number of live entries across all cells.
func (s *Store) Len() int { return s.live }

// Census returns the number of live entries per cell as a rows×cols matrix.
func (s *Store) Census() [][]int {
	out := make([][]int, s.rows)
	for r := range out {
		out[r] = make([]int, s.cols)
		for c := range out[r] {
			out[r][c] = len(s.cells[r*s.cols+c])
		}
	}
	return out
}

// String renders the census, one grid row per line.
func (s *Store) String() string {
	var b strings.Builder
	for _, row := range s.Census() {
		for c, n := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", n)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *Store) index(c costgrid.Coordinate) (int, bool) {
	if c.Row < 0 || c.Row >= s.rows || c.Col < 0 || c.Col >= s.cols {
		return 0, false
	}
	return c.Row*s.cols + c.Col, true
}
