// Package heuristic provides the pluggable state evaluators that guide
// greedy-best-first and A* searches over the Sokoban state space.
//
// What
//
//   - Manhattan: per box, distance to its nearest target cell (cheap,
//     not matching-consistent).
//   - IsStuck: corner-deadlock detector returning the StuckValue sentinel
//     for irrecoverable states, 0 otherwise.
//   - ToBox: player's distance to the nearest box, guiding player movement
//     independently of box placement.
//   - MinMatch: exact minimum-cost box-to-target assignment (Hungarian
//     algorithm, self-contained O(n³) routine), the globally consistent
//     upgrade over Manhattan.
//   - Sum: ordered composition by addition. Adding estimates can
//     overestimate the true remaining cost, so composite heuristics may
//     lose admissibility - that is the intended composition rule.
//
// Evaluators implement the single capability interface
//
//	Evaluate(state, board) -> non-negative int
//
// and are constructed per search direction: forward searches target the
// storage set, backward searches target the initial box placement. All
// evaluators are referentially transparent for a fixed board; several
// memoize internally (per-cell distances, per-cell corner verdicts,
// per-placement matchings) since the board never changes within a run.
package heuristic
