package heuristic

import (
	"github.com/dankoo97/Sokoban/board"
)

// manhattan sums, for every box, the Manhattan distance to its nearest
// target cell. Nearest-neighbor per box is not matching-consistent: two
// boxes may both claim the same target. MinMatch is the globally
// consistent (and costlier) alternative.
type manhattan struct {
	targets []board.Coord
	nearest map[board.Coord]int // box cell -> distance to nearest target
}

// NewManhattan returns the nearest-target distance evaluator. Targets are
// fixed for the life of the evaluator, so per-cell minima are memoized.
func NewManhattan(targets []board.Coord) Heuristic {
	return &manhattan{
		targets: targets,
		nearest: make(map[board.Coord]int),
	}
}

func (h *manhattan) Name() string { return Manhattan.String() }

func (h *manhattan) Evaluate(s board.State, _ *board.Board) int {
	total := 0
	for _, bx := range s.Boxes {
		d, ok := h.nearest[bx]
		if !ok {
			d = nearestDistance(bx, h.targets)
			h.nearest[bx] = d
		}
		total += d
	}
	return total
}

// toBox measures the player's Manhattan distance to the nearest box, less
// one so that standing next to a box costs nothing. It guides the player
// toward work without valuing box placement at all.
type toBox struct{}

// NewToBox returns the player-to-nearest-box evaluator.
func NewToBox() Heuristic { return toBox{} }

func (toBox) Name() string { return ToBox.String() }

func (toBox) Evaluate(s board.State, _ *board.Board) int {
	if len(s.Boxes) == 0 {
		return 0
	}
	d := nearestDistance(s.Player, s.Boxes) - 1
	if d < 0 {
		return 0
	}
	return d
}

func nearestDistance(from board.Coord, to []board.Coord) int {
	best := -1
	for _, t := range to {
		if d := from.Manhattan(t); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
