package heuristic_test

import (
	"testing"

	"github.com/dankoo97/Sokoban/board"
	"github.com/dankoo97/Sokoban/heuristic"
)

func benchState(n int) (board.State, []board.Coord) {
	boxes := make([]board.Coord, n)
	targets := make([]board.Coord, n)
	for i := 0; i < n; i++ {
		boxes[i] = board.Coord{Row: i, Col: 2 * i}
		targets[i] = board.Coord{Row: 2 * i, Col: i}
	}
	return board.State{Boxes: boxes}, targets
}

// BenchmarkManhattan_10Boxes measures the memoized nearest-target sum.
func BenchmarkManhattan_10Boxes(b *testing.B) {
	s, targets := benchState(10)
	h := heuristic.NewManhattan(targets)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Evaluate(s, nil)
	}
}

// BenchmarkMinMatch_10Boxes measures a cold assignment solve per iteration
// by constructing a fresh evaluator each time (memoization would otherwise
// reduce the loop to a map lookup).
func BenchmarkMinMatch_10Boxes(b *testing.B) {
	s, targets := benchState(10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heuristic.NewMinMatch(targets)
		_ = h.Evaluate(s, nil)
	}
}
