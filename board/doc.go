// Package board models the static Sokoban grid and the dynamic search
// state on top of it.
//
// What
//
//   - Board: immutable walls, storage cells, and dimensions, built once per
//     run via New or Parse and shared read-only across searches.
//   - State: player position + sorted box positions, with a canonical Key
//     for deduplication. States are values; transitions allocate.
//   - Forward transitions (Apply, Successors): the player walks or pushes a
//     box one cell.
//   - Backward transitions (Predecessors): the explicit inverse relation,
//     pulling boxes toward the player's vacated cell. Push and pull have
//     different legality conditions, so this is a distinct rule rather than
//     forward logic with swapped labels.
//   - GoalSeeds: enumeration of terminal configurations for backward search.
//
// Grid format
//
//	'O' wall, 'S' storage, 'B' box, 'R' player, ' ' floor.
//	Cells outside the grid count as walls, so borders are implicit.
//
// Determinism
//
//	Successors and Predecessors iterate Directions in a fixed order
//	(Up, Down, Left, Right), and box slices stay sorted row-major, so any
//	traversal built on this package is reproducible for a fixed input.
//
// Complexity (n = number of boxes)
//
//   - Apply / one transition: O(n) (one sorted-slice clone)
//   - Key: O(n)
//   - HasBox: O(log n)
//
// Errors
//
//   - ErrInvalidGrid and its wrapped family (ErrEmptyGrid, ErrNoPlayer,
//     ErrCountMismatch, ErrOutOfBounds, ErrCellConflict) from New/Parse.
package board
