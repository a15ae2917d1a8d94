package heuristic

import (
	"github.com/dankoo97/Sokoban/board"
)

// isStuck flags deadlocked states: a box wedged into a corner formed by
// two perpendicular walls can never be pushed again, so unless it already
// sits on storage the whole state is irrecoverable and gets StuckValue.
// Layered additively on top of distance heuristics, the sentinel pushes
// dead states to the back of any priority fringe.
//
// Stuck-ness of a cell depends only on the static walls and storage, so
// verdicts are memoized per cell across the run.
type isStuck struct {
	verdict map[board.Coord]bool // box cell -> cornered
}

// NewIsStuck returns the corner-deadlock detector.
func NewIsStuck() Heuristic {
	return &isStuck{verdict: make(map[board.Coord]bool)}
}

func (h *isStuck) Name() string { return IsStuck.String() }

func (h *isStuck) Evaluate(s board.State, b *board.Board) int {
	for _, bx := range s.Boxes {
		stuck, ok := h.verdict[bx]
		if !ok {
			stuck = cornered(bx, b)
			h.verdict[bx] = stuck
		}
		if stuck {
			return StuckValue
		}
	}
	return 0
}

// cornered reports whether a box at c is wedged between a vertical and a
// horizontal wall while off storage.
func cornered(c board.Coord, b *board.Board) bool {
	if b.IsStorage(c) {
		return false
	}
	vertical := b.IsWall(c.Add(board.Up)) || b.IsWall(c.Add(board.Down))
	horizontal := b.IsWall(c.Add(board.Left)) || b.IsWall(c.Add(board.Right))
	return vertical && horizontal
}
