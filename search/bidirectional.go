package search

import (
	"context"
	"errors"

	"github.com/dankoo97/Sokoban/board"
	"github.com/dankoo97/Sokoban/fringe"
)

// coordinator runs a forward engine from the start state and a backward
// engine from the goal configurations in strict round-robin alternation on
// a single goroutine: one forward expansion, meeting check, one backward
// expansion, meeting check. The fixed interleaving keeps results
// deterministic without any synchronization.
//
// A meeting is the first state expanded by one side that the other side
// has already expanded. The reported path splices the forward moves
// (start to meeting state) with the backward chain (meeting state to
// goal). The spliced path is NOT guaranteed to be globally shortest: the
// first meeting is an artifact of interleaving, not of combined cost.
// This imprecision is intentional, documented behavior - do not "fix" it
// by continuing past the first meeting.
type coordinator struct {
	b        *board.Board
	fwd, bwd *engine
}

// run executes rounds until a meeting, exhaustion of either side, or a
// fringe-bound overrun. Either side running dry without a meeting ends the
// whole run as Exhausted; the surviving side's partial progress is
// reported only through the shared statistics.
func (c *coordinator) run(ctx context.Context) (Outcome, []board.Direction, error) {
	initial := c.b.InitialState()
	if c.b.IsGoal(initial) {
		return Solved, nil, nil
	}

	if err := c.fwd.push(initial, nil, 0); err != nil {
		return FringeBoundExceeded, nil, nil
	}
	// Seed the backward fringe one pull behind every reachable goal
	// configuration; the goal node itself becomes the seed's parent so
	// path reconstruction runs through it.
	for _, sd := range c.b.GoalSeeds() {
		goal := &fringe.Node{State: sd.Goal}
		if err := c.bwd.push(sd.Pre, goal, sd.Dir); err != nil {
			return FringeBoundExceeded, nil, nil
		}
	}
	c.fwd.observeFringe(c.fwd.fr.Len() + c.bwd.fr.Len())

	for {
		select {
		case <-ctx.Done():
			return Exhausted, nil, ctx.Err()
		default:
		}

		// Forward half-round.
		fn, ok := c.fwd.step()
		if !ok {
			return Exhausted, nil, nil
		}
		if bn, met := c.bwd.visited[fn.State.Key()]; met {
			return Solved, splice(fn, bn), nil
		}
		if err := c.fwd.expand(fn); err != nil {
			if errors.Is(err, fringe.ErrBoundExceeded) {
				return FringeBoundExceeded, nil, nil
			}
			return Exhausted, nil, err
		}

		// Backward half-round.
		bn, ok := c.bwd.step()
		if !ok {
			return Exhausted, nil, nil
		}
		if fn, met := c.fwd.visited[bn.State.Key()]; met {
			return Solved, splice(fn, bn), nil
		}
		if err := c.bwd.expand(bn); err != nil {
			if errors.Is(err, fringe.ErrBoundExceeded) {
				return FringeBoundExceeded, nil, nil
			}
			return Exhausted, nil, err
		}

		c.fwd.observeFringe(c.fwd.fr.Len() + c.bwd.fr.Len())
	}
}

// splice joins the two half-paths at the meeting state: forward moves from
// the start to the meeting, then the backward chain from the meeting to
// the goal.
func splice(fn, bn *fringe.Node) []board.Direction {
	return append(forwardPath(fn), backwardPath(bn)...)
}
