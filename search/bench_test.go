package search_test

import (
	"testing"

	"github.com/dankoo97/Sokoban/board"
	"github.com/dankoo97/Sokoban/heuristic"
	"github.com/dankoo97/Sokoban/search"
)

// warehouse is a 7x7 room with two boxes; large enough to make the fringe
// policies diverge, small enough to keep BFS tractable per iteration.
const warehouse = "OOOOOOO\n" +
	"OR    O\n" +
	"O B B O\n" +
	"O     O\n" +
	"O S S O\n" +
	"O     O\n" +
	"OOOOOOO"

func benchBoard(b *testing.B) *board.Board {
	bd, err := board.Parse(warehouse)
	if err != nil {
		b.Fatal(err)
	}
	return bd
}

// BenchmarkRun_BFS measures uninformed breadth-first search.
func BenchmarkRun_BFS(b *testing.B) {
	bd := benchBoard(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(bd, search.BFS)
	}
}

// BenchmarkRun_AStar measures A* with the full heuristic stack.
func BenchmarkRun_AStar(b *testing.B) {
	bd := benchBoard(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(bd, search.AStar,
			search.WithHeuristics(heuristic.IsStuck, heuristic.Manhattan, heuristic.MinMatch))
	}
}

// BenchmarkRun_GreedyBest measures greedy best-first on the same level.
func BenchmarkRun_GreedyBest(b *testing.B) {
	bd := benchBoard(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(bd, search.GreedyBest,
			search.WithHeuristics(heuristic.Manhattan, heuristic.ToBox))
	}
}

// BenchmarkRun_Bidirectional measures the meet-in-the-middle coordinator.
func BenchmarkRun_Bidirectional(b *testing.B) {
	bd := benchBoard(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Run(bd, search.BFS, search.WithBidirectional())
	}
}
