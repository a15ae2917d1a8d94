package search

import (
	"math/big"
	"time"

	"github.com/dankoo97/Sokoban/board"
)

// Stats is the per-run statistics record handed to the presentation layer
// alongside the outcome and path.
type Stats struct {
	// Solved mirrors Outcome == Solved.
	Solved bool

	// UniqueStates counts distinct states expanded; duplicate rediscoveries
	// of a (player, boxes) configuration are never double-counted.
	UniqueStates int

	// UpperBoundStates is the theoretical maximum of distinct states given
	// the interior cell count and the number of boxes plus the player.
	UpperBoundStates *big.Int

	// MaxFringe is the largest open-node count observed (combined across
	// directions for bidirectional runs).
	MaxFringe int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// PathLength is the number of moves in the solution, 0 when unsolved.
	PathLength int

	// Algorithm and Heuristics name the configuration, for comparison output.
	Algorithm  string
	Heuristics []string

	// Bidirectional records whether a backward engine participated.
	Bidirectional bool

	// AvgPerState is Elapsed divided by UniqueStates.
	AvgPerState time.Duration
}

// upperBoundStates computes (s+1) * C(interior, s+1), where s is the
// number of storage cells and interior is the inner cell count of a
// width x height grid: the number of ways to place the boxes and the
// player on interior cells, times the choice of which occupied cell holds
// the player. Kept as a big.Int since the binomial explodes quickly.
func upperBoundStates(b *board.Board) *big.Int {
	w, h := b.Dimensions()
	interior := int64((w - 2) * (h - 2))
	if interior < 0 {
		interior = 0
	}
	occupied := int64(b.NumBoxes() + 1)

	bound := new(big.Int)
	if occupied > interior {
		return bound
	}
	bound.Binomial(interior, occupied)
	return bound.Mul(bound, big.NewInt(occupied))
}

// finalize fills the derived fields once the run has ended.
func (st *Stats) finalize(start time.Time, pathLen int, solved bool) {
	st.Elapsed = time.Since(start)
	st.Solved = solved
	st.PathLength = pathLen
	if st.UniqueStates > 0 {
		st.AvgPerState = st.Elapsed / time.Duration(st.UniqueStates)
	}
}

// Result is the terminal report of one run: the outcome, the move
// sequence (empty unless Solved), and the statistics record.
type Result struct {
	Outcome Outcome
	Path    []board.Direction
	Stats   Stats
}
