// Package search runs Sokoban state-space searches and reports outcomes,
// move sequences, and exploration statistics.
//
// What
//
//   - Run: one search over an immutable board with a chosen Algorithm
//     (BFS, DFS, GreedyBest, AStar) and functional options.
//   - RunAll: any number of configurations raced concurrently over the same
//     board, one goroutine each, results in request order.
//   - Bidirectional mode: a backward engine grows from the goal
//     configurations using pull transitions and meets the forward engine in
//     the middle; the two half-paths are spliced at the meeting state.
//
// Run state machine
//
//	Initialized -> Running -> {Solved, Exhausted, FringeBoundExceeded}
//
// Exhausted and FringeBoundExceeded are outcomes, not errors: "no solution
// found" is a reportable finding carrying full statistics. The error return
// of Run covers invalid input and context cancellation only.
//
// Determinism
//
//	A single run is strictly single-goroutine. Expansion follows the fixed
//	direction order of the board package, priority ties break by insertion
//	sequence, and the bidirectional coordinator alternates forward-then-
//	backward in a fixed round-robin. Two runs of the same configuration on
//	the same board explore identically.
//
// Caveats
//
//   - Heuristics compose by summation and may overestimate; A* is only
//     optimal when the composite stays admissible (plain Manhattan is).
//   - Bidirectional paths are valid but not guaranteed shortest; the first
//     meeting is an artifact of the interleaving. Intentional, documented.
//
// Errors
//
//   - ErrNilBoard, ErrUnknownAlgorithm, ErrOptionViolation from Run/RunAll.
package search
