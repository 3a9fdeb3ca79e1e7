package wavefront

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/heatpath/costgrid"
	"github.com/katalvlaran/heatpath/frontier"
	"github.com/katalvlaran/heatpath/momentum"
)

// Engine answers one momentum-constrained route query over a fixed grid.
// It is not safe for concurrent use; the grid may be shared.
type Engine[C costgrid.Cost] struct {
	grid       *costgrid.Grid[C]
	opts       Options
	start, end costgrid.Coordinate
	phase      Phase
	store      *frontier.Store
}

// New validates g and opts and returns an Idle engine.
// Returns ErrNilGrid, ErrOptionViolation (wrapping the momentum rule error),
// or costgrid.ErrOutOfBounds for a start or end cell outside g.
func New[C costgrid.Cost](g *costgrid.Grid[C], opts ...Option) (*Engine[C], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := o.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	e := &Engine[C]{grid: g, opts: o, start: g.Start(), end: g.End()}
	if o.Start != nil {
		e.start = *o.Start
	}
	if o.End != nil {
		e.end = *o.End
	}
	for _, c := range []costgrid.Coordinate{e.start, e.end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", costgrid.ErrOutOfBounds, c, g.Rows(), g.Cols())
		}
	}

	return e, nil
}

// Phase reports the lifecycle stage.
func (e *Engine[C]) Phase() Phase { return e.phase }

// Frontier returns the store built by the last Run, or nil before the first.
func (e *Engine[C]) Frontier() *frontier.Store { return e.store }

// Run relaxes a fresh frontier to its fixed point and reads the answer at the
// end cell. An unreachable end is reported as Result.Found == false with a nil
// error; the error return is reserved for cancellation, internal faults, and
// ErrCostOverflow when the only routes found exceed the uint64 cost range.
func (e *Engine[C]) Run() (*Result, error) {
	w := &walker[C]{
		grid:  e.grid,
		opts:  e.opts,
		end:   e.end,
		store: frontier.New(e.grid.Rows(), e.grid.Cols(), e.opts.Rules.MinRun),
		res:   &Result{},
	}
	e.store = w.store
	e.phase = Expanding

	if err := w.loop(e.start); err != nil {
		e.phase = Idle
		return nil, err
	}
	e.phase = Done

	if !w.res.Exhausted {
		w.res.Cost, w.res.Found = w.store.MinCostWhere(e.end, e.opts.Rules.CanStop)
		if !w.res.Found && w.overflows > 0 {
			return nil, fmt.Errorf("%w: %d candidates dropped", ErrCostOverflow, w.overflows)
		}
	}
	e.opts.Logger.Debug("wavefront done",
		slog.Int("passes", w.res.Passes),
		slog.Int("admitted", w.res.Admitted),
		slog.Int("live", w.store.Len()),
		slog.Bool("found", w.res.Found),
		slog.Uint64("cost", w.res.Cost))

	return w.res, nil
}

// Route is New followed by Run.
func Route[C costgrid.Cost](g *costgrid.Grid[C], opts ...Option) (*Result, error) {
	e, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// walker holds the mutable state of a single Run.
type walker[C costgrid.Cost] struct {
	grid  *costgrid.Grid[C]
	opts  Options
	end   costgrid.Coordinate
	store *frontier.Store
	res   *Result

	// overflows counts candidates dropped because their cost wrapped.
	overflows int
}

// loop seeds the frontier with the origin and runs passes until one admits
// nothing, the pass budget runs out, or the context is cancelled.
// A start on the end cell needs no pass at all.
func (w *walker[C]) loop(start costgrid.Coordinate) error {
	origin := frontier.Entry{State: momentum.Origin(start)}
	w.admit(origin)
	if start == w.end {
		return nil
	}
	work := []frontier.Entry{origin}

	for len(work) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		if w.opts.MaxPasses > 0 && w.res.Passes >= w.opts.MaxPasses {
			w.res.Exhausted = true
			w.opts.Logger.Debug("wavefront pass budget exhausted", slog.Int("passes", w.res.Passes))
			return nil
		}

		next, err := w.pass(work)
		if err != nil {
			return err
		}
		w.res.Passes++
		w.opts.Logger.Debug("wavefront pass",
			slog.Int("pass", w.res.Passes),
			slog.Int("worklist", len(work)),
			slog.Int("admitted", len(next)),
			slog.Int("live", w.store.Len()))
		w.opts.OnPass(w.res.Passes, len(next))
		work = next
	}
	return nil
}

// pass expands every entry of work once and returns the admitted successors.
// Entries that may stop on the end cell are terminal and are not expanded.
// A successor whose cost wraps past math.MaxUint64 is dropped: no route
// through it is representable.
func (w *walker[C]) pass(work []frontier.Entry) ([]frontier.Entry, error) {
	var next []frontier.Entry
	for _, cur := range work {
		if err := w.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if cur.State.Pos == w.end && w.opts.Rules.CanStop(cur.State) {
			continue
		}
		steps, err := momentum.Successors(w.grid, cur.State, w.opts.Rules)
		if err != nil {
			return nil, fmt.Errorf("wavefront: expanding %v: %w", cur.State, err)
		}
		for _, st := range steps {
			sum := cur.Cost + st.Cost
			if sum < cur.Cost {
				w.overflows++
				continue
			}
			cand := frontier.Entry{State: st.State, Cost: sum}
			if w.admit(cand) {
				next = append(next, cand)
			}
		}
	}
	return next, nil
}

// admit offers e to the store and fires OnAdmit on success.
func (w *walker[C]) admit(e frontier.Entry) bool {
	if !w.store.TryAdmit(e) {
		return false
	}
	w.res.Admitted++
	w.opts.OnAdmit(e)
	return true
}
