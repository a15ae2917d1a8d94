package search

import (
	"github.com/dankoo97/Sokoban/board"
	"github.com/dankoo97/Sokoban/fringe"
	"github.com/dankoo97/Sokoban/heuristic"
)

// engine drives one direction of exploration: it owns a fringe, a visited
// set, and a share of the run statistics. The run state machine is
// Initialized -> Running -> {Solved, Exhausted, FringeBoundExceeded};
// engines are strictly single-goroutine because expansion order is part of
// the documented behavior.
type engine struct {
	board    *board.Board
	algo     Algorithm
	heur     heuristic.Heuristic // nil when no heuristics selected
	fr       fringe.Fringe
	backward bool
	visited  map[string]*fringe.Node // state key -> expanded node (cheapest g)
	stats    *Stats
}

func newEngine(b *board.Board, algo Algorithm, heur heuristic.Heuristic, fr fringe.Fringe, backward bool, stats *Stats) *engine {
	return &engine{
		board:    b,
		algo:     algo,
		heur:     heur,
		fr:       fr,
		backward: backward,
		visited:  make(map[string]*fringe.Node),
		stats:    stats,
	}
}

// push wraps s in a node and offers it to the fringe. Heuristics are
// evaluated at push time; GreedyBest orders by h alone, AStar by g+h.
// Unit step cost: every move costs 1.
func (e *engine) push(s board.State, parent *fringe.Node, dir board.Direction) error {
	n := &fringe.Node{State: s, Parent: parent, Dir: dir}
	if parent != nil {
		n.G = parent.G + 1
	}
	if e.algo.informed() {
		if e.heur != nil {
			n.H = e.heur.Evaluate(s, e.board)
		}
		if e.algo == GreedyBest {
			n.Priority = n.H
		} else {
			n.Priority = n.F()
		}
	}
	return e.fr.Push(n)
}

// step pops until it finds a state not yet expanded at an equal-or-better
// cost, marks it visited, and returns it. Stale entries (rediscoveries
// that were undercut before being popped) are discarded silently. A state
// counts toward UniqueStates only on its first expansion, so duplicate
// move sequences reaching the same configuration are never double-counted.
func (e *engine) step() (*fringe.Node, bool) {
	for {
		n, ok := e.fr.Pop()
		if !ok {
			return nil, false
		}
		key := n.State.Key()
		prev, seen := e.visited[key]
		if seen && prev.G <= n.G {
			continue
		}
		if !seen {
			e.stats.UniqueStates++
		}
		e.visited[key] = n
		return n, true
	}
}

// expand generates every legal transition of n (pulls when running
// backward) and pushes those not already expanded at an equal-or-better
// cost. Re-pushing a cheaper rediscovery is required for A*/Greedy
// correctness when duplicate states carry different costs.
func (e *engine) expand(n *fringe.Node) error {
	var moves []board.Move
	if e.backward {
		moves = e.board.Predecessors(n.State)
	} else {
		moves = e.board.Successors(n.State)
	}
	for _, mv := range moves {
		if prev, seen := e.visited[mv.State.Key()]; seen && prev.G <= n.G+1 {
			continue
		}
		if err := e.push(mv.State, n, mv.Dir); err != nil {
			return err
		}
	}
	return nil
}

// observeFringe folds the current open-node count into MaxFringe.
func (e *engine) observeFringe(size int) {
	if size > e.stats.MaxFringe {
		e.stats.MaxFringe = size
	}
}

// forwardPath reconstructs the move sequence from the search root to n by
// following parent links, reversed into root-to-n order.
func forwardPath(n *fringe.Node) []board.Direction {
	var path []board.Direction
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		path = append(path, cur.Dir)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// backwardPath reconstructs the move sequence from n's state to the goal a
// backward engine grew from. Each backward node's Dir is already the
// forward move toward its parent, so the walk needs no reversal.
func backwardPath(n *fringe.Node) []board.Direction {
	var path []board.Direction
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		path = append(path, cur.Dir)
	}
	return path
}
