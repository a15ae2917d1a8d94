package heuristic

import (
	"math"

	"github.com/dankoo97/Sokoban/board"
)

// minMatch assigns each box to a distinct target cell so that the total
// Manhattan travel distance is minimal, via the Hungarian algorithm with
// Jonker-Volgenant row/column potentials. It dominates the nearest-target
// Manhattan evaluator in accuracy (the matching is a bijection, so no two
// boxes claim the same target) at O(n³) cost per distinct box placement.
//
// The optimum depends only on the box placement, never on the player, so
// results are memoized per BoxKey.
type minMatch struct {
	targets []board.Coord
	solved  map[string]int // BoxKey -> optimal assignment cost
}

// NewMinMatch returns the minimum-cost assignment evaluator. The matching
// routine is self-contained; no external numeric library is involved.
func NewMinMatch(targets []board.Coord) Heuristic {
	return &minMatch{
		targets: targets,
		solved:  make(map[string]int),
	}
}

func (h *minMatch) Name() string { return MinMatch.String() }

func (h *minMatch) Evaluate(s board.State, _ *board.Board) int {
	if len(s.Boxes) == 0 {
		return 0
	}
	key := s.BoxKey()
	if v, ok := h.solved[key]; ok {
		return v
	}

	cost := make([][]int, len(s.Boxes))
	for i, bx := range s.Boxes {
		row := make([]int, len(h.targets))
		for j, t := range h.targets {
			row[j] = bx.Manhattan(t)
		}
		cost[i] = row
	}

	v := assign(cost)
	h.solved[key] = v
	return v
}

// assign solves the square assignment problem for a non-negative cost
// matrix and returns the minimal total cost. Standard O(n³) Hungarian
// formulation: rows are introduced one at a time, each triggering an
// augmenting-path search over columns while maintaining dual potentials
// u (rows) and v (columns) so that reduced costs stay non-negative.
func assign(cost [][]int) int {
	n := len(cost)
	u := make([]int, n+1)
	v := make([]int, n+1)
	match := make([]int, n+1) // match[j] = row assigned to column j, 0 = free
	way := make([]int, n+1)   // way[j] = previous column on the alternating path

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]int, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.MaxInt
		}

		// Grow the alternating tree until a free column is found.
		for {
			used[j0] = true
			i0, delta, j1 := match[j0], math.MaxInt, 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Flip the alternating path to extend the matching by one.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	total := 0
	for j := 1; j <= n; j++ {
		if match[j] != 0 {
			total += cost[match[j]-1][j-1]
		}
	}
	return total
}
