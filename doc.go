// Package sokoban is a state-space search toolkit for the Sokoban puzzle:
// parse a level, pick an algorithm and a heuristic stack, and get back a
// move sequence plus the full exploration statistics.
//
// 🚀 What is Sokoban?
//
//	A warehouse keeper (R) pushes boxes (B) onto storage cells (S) inside
//	a walled grid (O). Boxes can only be pushed, never pulled, so one
//	careless shove into a corner loses the game. Solving a level is a
//	search over (player, boxes) configurations.
//
// ✨ What the module provides:
//
//   - Algorithms – BFS, DFS, Greedy Best-First and A*, each behind one
//     call: search.Run(board, algorithm, options...)
//   - Heuristics – Manhattan distance, corner-deadlock detection,
//     player-to-box distance, and exact minimum-cost box/target matching,
//     freely composed by summation
//   - Bidirectional search – a backward engine pulls boxes away from the
//     goal configurations and meets the forward engine in the middle
//   - Statistics – unique states, fringe high-water mark, theoretical
//     state-count upper bound, timing, and path length for every run
//   - Concurrency – search.RunAll races any number of configurations over
//     one immutable board, each on its own goroutine
//
// Everything is organized under four subpackages:
//
//	board/     — grid model, textual level format, push & pull move rules
//	heuristic/ — the evaluator kinds and their composition
//	fringe/    — FIFO, LIFO & priority open-node containers with a shared size bound
//	search/    — the engines, the bidirectional coordinator, options, statistics
//
// Quick ASCII example:
//
//	OOOOOO
//	ORB SO
//	OOOOOO
//
//	R pushes B right twice: Solved in 2 moves.
//
// See the package examples for runnable versions of this level.
//
//	go get github.com/dankoo97/Sokoban
package sokoban
