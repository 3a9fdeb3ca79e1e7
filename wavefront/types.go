package wavefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/heatpath/costgrid"
	"github.com/katalvlaran/heatpath/frontier"
	"github.com/katalvlaran/heatpath/momentum"
)

// Sentinel errors for wavefront execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("wavefront: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wavefront: invalid option supplied")

	// ErrNoPath reports that no route satisfies the momentum rules.
	// Run never returns it; see Result.Err.
	ErrNoPath = errors.New("wavefront: no path found")

	// ErrCostOverflow reports that every route to the end cell costs more
	// than a uint64 can hold.
	ErrCostOverflow = errors.New("wavefront: cumulative cost overflows uint64")
)

// Phase is the engine lifecycle stage.
type Phase int

const (
	// Idle: constructed, or between runs.
	Idle Phase = iota
	// Expanding: a Run is relaxing the frontier.
	Expanding
	// Done: the last Run reached its fixed point (or pass budget).
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Expanding:
		return "expanding"
	case Done:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Option configures the engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for a route query.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Rules are the momentum constraints.
	Rules momentum.Rules

	// Start and End override the grid's corner cells when set.
	Start, End *costgrid.Coordinate

	// MaxPasses, if > 0, stops after that many passes; the result then
	// reports Found == false and Exhausted == true.
	MaxPasses int

	// Logger receives Debug records per pass.
	Logger *slog.Logger

	// OnPass is called after each pass with its 1-based number and the size
	// of the work-list it produced.
	OnPass func(pass, next int)

	// OnAdmit is called for every admitted entry.
	OnAdmit func(e frontier.Entry)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - momentum.DefaultRules() (MaxRun 3, MinRun 0)
//   - corner start and end
//   - no pass limit
//   - a logger that discards everything
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Rules:   momentum.DefaultRules(),
		Logger:  slog.New(discardHandler{}),
		OnPass:  func(int, int) {},
		OnAdmit: func(frontier.Entry) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRun sets the maximum number of consecutive straight moves.
// n < 1 is recorded as ErrOptionViolation.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.Rules.MaxRun = n
	}
}

// WithMinRun sets the number of straight moves required before a turn or a
// stop. 0 disables the requirement.
func WithMinRun(n int) Option {
	return func(o *Options) {
		o.Rules.MinRun = n
	}
}

// WithRules replaces both run bounds.
func WithRules(r momentum.Rules) Option {
	return func(o *Options) {
		o.Rules = r
	}
}

// WithStart sets the start cell. Defaults to the top-left corner.
func WithStart(c costgrid.Coordinate) Option {
	return func(o *Options) {
		o.Start = &c
	}
}

// WithEnd sets the end cell. Defaults to the bottom-right corner.
func WithEnd(c costgrid.Coordinate) Option {
	return func(o *Options) {
		o.End = &c
	}
}

// WithMaxPasses bounds the number of relaxation passes.
//
//	n > 0: at most n passes
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithLogger routes per-pass Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPass registers a callback run after each pass.
func WithOnPass(fn func(pass, next int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithOnAdmit registers a callback run for every admitted entry.
func WithOnAdmit(fn func(e frontier.Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdmit = fn
		}
	}
}

// Result is the outcome of one Run.
//
//   - Cost:      minimal cumulative cost at the end cell; 0 when !Found.
//   - Found:     false means no route exists under the rules (or the pass
//     budget ran out first, see Exhausted).
//   - Passes:    relaxation passes performed.
//   - Admitted:  entries admitted to the frontier, origin included.
//   - Exhausted: the MaxPasses budget stopped the search early.
type Result struct {
	Cost      uint64
	Found     bool
	Passes    int
	Admitted  int
	Exhausted bool
}

// Err returns nil for a found route and ErrNoPath otherwise.
func (r *Result) Err() error {
	if r.Found {
		return nil
	}
	if r.Exhausted {
		return fmt.Errorf("%w: pass budget exhausted after %d passes", ErrNoPath, r.Passes)
	}
	return ErrNoPath
}

// discardHandler drops every record. slog.DiscardHandler only exists from Go 1.24.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
