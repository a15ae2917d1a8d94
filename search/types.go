package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dankoo97/Sokoban/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrNilBoard is returned when a nil board pointer is passed.
	ErrNilBoard = errors.New("search: board is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value with no engine.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the fringe policy and ordering cost of a run.
type Algorithm int

const (
	// BFS expands in first-in-first-out order (uninformed, shortest paths).
	BFS Algorithm = iota
	// DFS expands in last-in-first-out order (uninformed, deep dives).
	DFS
	// GreedyBest expands by heuristic estimate alone (f = h).
	GreedyBest
	// AStar expands by path cost plus estimate (f = g + h).
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "Breadth First Search"
	case DFS:
		return "Depth First Search"
	case GreedyBest:
		return "Greedy Best Search"
	case AStar:
		return "A*"
	default:
		return "Unknown"
	}
}

// informed reports whether the algorithm orders its fringe by cost.
func (a Algorithm) informed() bool {
	return a == GreedyBest || a == AStar
}

// Outcome is the terminal condition of a run. Exhausted and
// FringeBoundExceeded are expected results carrying full statistics, not
// errors: "no solution found" is a reportable finding.
type Outcome int

const (
	// Solved means the goal test passed and a path was reconstructed.
	Solved Outcome = iota
	// Exhausted means the fringe emptied without reaching the goal.
	Exhausted
	// FringeBoundExceeded means a push would have overrun MaxFringe.
	FringeBoundExceeded
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "Solved"
	case Exhausted:
		return "Exhausted"
	case FringeBoundExceeded:
		return "FringeBoundExceeded"
	default:
		return "Unknown"
	}
}

// Options holds the parameters of one search run.
type Options struct {
	// Heuristics are composed by summation, in order. Ignored by BFS/DFS.
	Heuristics []heuristic.Kind

	// Bidirectional runs a backward engine from the goal alongside the
	// forward engine and splices paths at the first meeting state.
	Bidirectional bool

	// MaxFringe bounds the open-node count (combined across directions for
	// bidirectional runs). 0 disables the bound. A push that would exceed
	// it terminates the run with FringeBoundExceeded.
	MaxFringe int

	// Ctx allows cancellation; checked once per expansion step.
	Ctx context.Context

	// Verbose logs run milestones through Logger.
	Verbose bool

	// Logger receives run logs when Verbose is set. Defaults lazily to a
	// fresh logrus logger.
	Logger *logrus.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures a run via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with background context, no heuristics,
// unidirectional search, and no fringe bound.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithHeuristics selects the evaluators, composed by summation in the
// given order.
func WithHeuristics(kinds ...heuristic.Kind) Option {
	return func(o *Options) {
		o.Heuristics = append(o.Heuristics, kinds...)
	}
}

// WithBidirectional enables meet-in-the-middle search.
func WithBidirectional() Option {
	return func(o *Options) {
		o.Bidirectional = true
	}
}

// WithMaxFringe bounds the open-node count.
//
//	n > 0: bound to n nodes
//	n == 0: explicit no bound
//	n < 0: invalid option -> ErrOptionViolation
func WithMaxFringe(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFringe cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxFringe = n
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

// WithVerbose enables run logging.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// WithLogger routes verbose output to a caller-owned logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Spec is one algorithm request, as handed over by the presentation layer.
type Spec struct {
	Algorithm Algorithm
	Options   []Option
}
