package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dankoo97/Sokoban/board"
	"github.com/dankoo97/Sokoban/fringe"
	"github.com/dankoo97/Sokoban/heuristic"
)

// Run executes one search over b with the given algorithm and options and
// returns its Result. Exhausted and FringeBoundExceeded are outcomes, not
// errors; the error return covers invalid input (ErrNilBoard,
// ErrUnknownAlgorithm, ErrOptionViolation, unknown heuristic kinds) and
// context cancellation.
func Run(b *board.Board, algo Algorithm, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if algo < BFS || algo > AStar {
		return nil, ErrUnknownAlgorithm
	}

	names := make([]string, len(o.Heuristics))
	for i, k := range o.Heuristics {
		names[i] = k.String()
	}
	stats := Stats{
		Algorithm:        algo.String(),
		Heuristics:       names,
		Bidirectional:    o.Bidirectional,
		UpperBoundStates: upperBoundStates(b),
	}

	log := runLogger(&o)
	if log != nil {
		log.WithFields(logrus.Fields{
			"algorithm":     algo.String(),
			"heuristics":    names,
			"bidirectional": o.Bidirectional,
			"maxFringe":     o.MaxFringe,
		}).Info("search started")
	}

	// One bound is shared by every fringe of the run, so a bidirectional
	// search is limited on the combined open-node count, same as a
	// unidirectional one.
	bound := fringe.NewBound(o.MaxFringe)

	forwardHeur, err := composeHeuristics(o.Heuristics, b, b.StorageSet())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		outcome Outcome
		path    []board.Direction
		runErr  error
	)
	if o.Bidirectional {
		// Backward engines pull instead of push and chase the initial box
		// layout. IsStuck is dropped: a pulled box is never wedged by the
		// pull, so corner detection only poisons the backward estimate.
		backKinds := withoutIsStuck(o.Heuristics)
		backHeur, herr := composeHeuristics(backKinds, b, b.InitialState().Boxes)
		if herr != nil {
			return nil, herr
		}
		c := &coordinator{
			b:   b,
			fwd: newEngine(b, algo, forwardHeur, newFringe(algo, bound), false, &stats),
			bwd: newEngine(b, algo, backHeur, newFringe(algo, bound), true, &stats),
		}
		outcome, path, runErr = c.run(o.Ctx)
	} else {
		e := newEngine(b, algo, forwardHeur, newFringe(algo, bound), false, &stats)
		outcome, path, runErr = e.runToEnd(o.Ctx)
	}

	stats.finalize(start, len(path), outcome == Solved)
	if runErr != nil {
		return nil, runErr
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"outcome":      outcome.String(),
			"uniqueStates": stats.UniqueStates,
			"maxFringe":    stats.MaxFringe,
			"pathLength":   stats.PathLength,
			"elapsed":      stats.Elapsed,
		}).Info("search finished")
	}

	return &Result{Outcome: outcome, Path: path, Stats: stats}, nil
}

// runToEnd is the unidirectional loop: seed, then expand until the goal
// test passes, the fringe drains, or the bound trips.
func (e *engine) runToEnd(ctx context.Context) (Outcome, []board.Direction, error) {
	if err := e.push(e.board.InitialState(), nil, 0); err != nil {
		return FringeBoundExceeded, nil, nil
	}
	e.observeFringe(e.fr.Len())

	for {
		select {
		case <-ctx.Done():
			return Exhausted, nil, ctx.Err()
		default:
		}

		n, ok := e.step()
		if !ok {
			return Exhausted, nil, nil
		}
		if e.board.IsGoal(n.State) {
			return Solved, forwardPath(n), nil
		}
		if err := e.expand(n); err != nil {
			if errors.Is(err, fringe.ErrBoundExceeded) {
				return FringeBoundExceeded, nil, nil
			}
			return Exhausted, nil, err
		}
		e.observeFringe(e.fr.Len())
	}
}

// RunAll executes every requested search concurrently - they share nothing
// mutable beyond the read-only board - and returns the results in request
// order. A failed request leaves a nil slot; all failures are joined into
// the returned error.
func RunAll(b *board.Board, specs []Spec) ([]*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	results := make([]*Result, len(specs))
	errs := make([]error, len(specs))

	var wg sync.WaitGroup
	for i, sp := range specs {
		wg.Add(1)
		go func(i int, sp Spec) {
			defer wg.Done()
			results[i], errs[i] = Run(b, sp.Algorithm, sp.Options...)
		}(i, sp)
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// composeHeuristics builds the ordered evaluators and sums them; nil when
// none are selected.
func composeHeuristics(kinds []heuristic.Kind, b *board.Board, targets []board.Coord) (heuristic.Heuristic, error) {
	if len(kinds) == 0 {
		return nil, nil
	}
	sum := make(heuristic.Sum, 0, len(kinds))
	for _, k := range kinds {
		h, err := heuristic.New(k, b, targets)
		if err != nil {
			return nil, err
		}
		sum = append(sum, h)
	}
	return sum, nil
}

func withoutIsStuck(kinds []heuristic.Kind) []heuristic.Kind {
	out := make([]heuristic.Kind, 0, len(kinds))
	for _, k := range kinds {
		if k != heuristic.IsStuck {
			out = append(out, k)
		}
	}
	return out
}

// newFringe maps the algorithm to its fringe policy.
func newFringe(algo Algorithm, bound *fringe.Bound) fringe.Fringe {
	switch algo {
	case BFS:
		return fringe.NewFIFO(bound)
	case DFS:
		return fringe.NewLIFO(bound)
	default:
		return fringe.NewPriority(bound)
	}
}

func runLogger(o *Options) *logrus.Logger {
	if !o.Verbose {
		return nil
	}
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.New()
}
