// Package fringe provides the open-node containers used by the search
// engine: FIFO for breadth-first, LIFO for depth-first, and a min-heap
// keyed on node priority for greedy-best-first and A*. All three honor an
// optional shared size bound that fails closed.
package fringe

import (
	"errors"

	"github.com/dankoo97/Sokoban/board"
)

// ErrBoundExceeded is returned by Push when accepting the node would grow
// the (possibly shared) fringe beyond its configured bound. The search
// treats this as a terminal outcome, not a fault.
var ErrBoundExceeded = errors.New("fringe: size bound exceeded")

// Node wraps a State with its search bookkeeping. Parent links point back
// toward the node that introduced the state and are only ever read for
// path reconstruction; they are never mutated after creation.
type Node struct {
	State    board.State
	Dir      board.Direction // move that produced this node; meaningless when Parent is nil
	Parent   *Node
	G        int // path cost from the search root
	H        int // heuristic estimate, 0 when unused
	Priority int // ordering key for the priority policy
	seq      uint64
}

// F returns the A* ordering cost g + h.
func (n *Node) F() int { return n.G + n.H }

// Fringe is the open-node container. Pop order depends on the policy of
// the concrete implementation; Pop reports false when empty.
type Fringe interface {
	Push(n *Node) error
	Pop() (*Node, bool)
	Len() int
}

// Bound is a size budget that one or more fringes draw from. A nil *Bound
// means unbounded. Sharing one Bound between the forward and backward
// fringes of a bidirectional run bounds their combined size, matching the
// single-fringe semantics of a unidirectional run.
//
// Bound is not safe for concurrent use; the engines that share one must
// alternate on a single goroutine or synchronize externally.
type Bound struct {
	max, cur int
}

// NewBound returns a budget of max nodes. max <= 0 returns nil (unbounded).
func NewBound(max int) *Bound {
	if max <= 0 {
		return nil
	}
	return &Bound{max: max}
}

func (b *Bound) acquire() error {
	if b == nil {
		return nil
	}
	if b.cur+1 > b.max {
		return ErrBoundExceeded
	}
	b.cur++
	return nil
}

func (b *Bound) release() {
	if b != nil {
		b.cur--
	}
}

// NewFIFO returns a first-in-first-out fringe (breadth-first expansion).
func NewFIFO(bound *Bound) Fringe { return &fifo{bound: bound} }

type fifo struct {
	items []*Node
	bound *Bound
}

func (f *fifo) Push(n *Node) error {
	if err := f.bound.acquire(); err != nil {
		return err
	}
	f.items = append(f.items, n)
	return nil
}

func (f *fifo) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[0]
	f.items = f.items[1:]
	f.bound.release()
	return n, true
}

func (f *fifo) Len() int { return len(f.items) }

// NewLIFO returns a last-in-first-out fringe (depth-first expansion).
func NewLIFO(bound *Bound) Fringe { return &lifo{bound: bound} }

type lifo struct {
	items []*Node
	bound *Bound
}

func (f *lifo) Push(n *Node) error {
	if err := f.bound.acquire(); err != nil {
		return err
	}
	f.items = append(f.items, n)
	return nil
}

func (f *lifo) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	f.bound.release()
	return n, true
}

func (f *lifo) Len() int { return len(f.items) }
