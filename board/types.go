package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction. All of them unwrap to
// ErrInvalidGrid so callers can match the whole family with errors.Is.
var (
	// ErrInvalidGrid is the umbrella error for any structurally malformed grid.
	ErrInvalidGrid = errors.New("board: invalid grid")

	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)

	// ErrNoPlayer indicates no player position was supplied or parsed.
	ErrNoPlayer = fmt.Errorf("%w: no player position", ErrInvalidGrid)

	// ErrCountMismatch indicates the number of boxes differs from the number
	// of storage cells.
	ErrCountMismatch = fmt.Errorf("%w: box and storage counts differ", ErrInvalidGrid)

	// ErrOutOfBounds indicates an entity lies outside the grid dimensions.
	ErrOutOfBounds = fmt.Errorf("%w: entity outside grid bounds", ErrInvalidGrid)

	// ErrCellConflict indicates an entity sits on a wall cell or two boxes
	// share a cell.
	ErrCellConflict = fmt.Errorf("%w: conflicting cell occupancy", ErrInvalidGrid)
)

// Grid characters accepted by Parse and produced by Render.
const (
	CharWall    = 'O'
	CharStorage = 'S'
	CharBox     = 'B'
	CharPlayer  = 'R'
	CharFloor   = ' '
)

// Coord identifies a cell by row and column, top-left origin.
type Coord struct {
	Row, Col int
}

// Add returns the coordinate one step away in direction d.
func (c Coord) Add(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Sub returns the coordinate one step away against direction d.
func (c Coord) Sub(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row - dr, Col: c.Col - dc}
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Less orders coordinates row-major. Used to keep box slices canonical.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal player moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in their fixed expansion order.
// Successor generation iterates this slice, which makes every search
// deterministic for a fixed input.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the row/column offset of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}
