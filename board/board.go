package board

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Board is the immutable description of the static puzzle layout: walls,
// storage cells, and dimensions, plus the initial player and box placement.
// It is constructed once per run and safe to share across concurrent
// searches by reference.
type Board struct {
	width, height int
	walls         map[Coord]struct{}
	storage       map[Coord]struct{}
	player        Coord
	boxes         []Coord // sorted row-major
}

// New validates and builds a Board. Inputs are deep-copied so the Board
// cannot be mutated through the caller's slices.
//
// Validation (in order):
//  1. width and height must be positive (ErrEmptyGrid).
//  2. player, boxes, storage, and walls must lie inside the grid (ErrOutOfBounds).
//  3. box and storage counts must match (ErrCountMismatch).
//  4. player and boxes must not sit on walls; boxes must be distinct (ErrCellConflict).
func New(player Coord, boxes, storage, walls []Coord, width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	b := &Board{
		width:   width,
		height:  height,
		walls:   make(map[Coord]struct{}, len(walls)),
		storage: make(map[Coord]struct{}, len(storage)),
		player:  player,
		boxes:   slices.Clone(boxes),
	}
	slices.SortFunc(b.boxes, func(a, c Coord) int {
		if a == c {
			return 0
		}
		if a.Less(c) {
			return -1
		}
		return 1
	})

	if !b.InBounds(player) {
		return nil, ErrOutOfBounds
	}
	for _, w := range walls {
		if !b.InBounds(w) {
			return nil, ErrOutOfBounds
		}
		b.walls[w] = struct{}{}
	}
	for _, s := range storage {
		if !b.InBounds(s) {
			return nil, ErrOutOfBounds
		}
		if _, wall := b.walls[s]; wall {
			return nil, ErrCellConflict
		}
		b.storage[s] = struct{}{}
	}
	if len(b.boxes) != len(b.storage) {
		return nil, ErrCountMismatch
	}
	if _, wall := b.walls[player]; wall {
		return nil, ErrCellConflict
	}
	for i, bx := range b.boxes {
		if !b.InBounds(bx) {
			return nil, ErrOutOfBounds
		}
		if _, wall := b.walls[bx]; wall {
			return nil, ErrCellConflict
		}
		if i > 0 && bx == b.boxes[i-1] {
			return nil, ErrCellConflict
		}
	}

	return b, nil
}

// Parse builds a Board from a textual grid: 'O' wall, 'S' storage, 'B' box,
// 'R' player, space floor. Rows may have uneven lengths; missing trailing
// cells are floor. When the grid carries one more box than storage cells,
// the player's starting cell is treated as storage (the player stands on
// the spot a box must eventually fill).
func Parse(text string) (*Board, error) {
	var (
		player    Coord
		hasPlayer bool
		boxes     []Coord
		storage   []Coord
		walls     []Coord
		width     int
	)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for row, line := range lines {
		if len(line) > width {
			width = len(line)
		}
		for col, ch := range line {
			c := Coord{Row: row, Col: col}
			switch byte(ch) {
			case CharPlayer:
				player = c
				hasPlayer = true
			case CharBox:
				boxes = append(boxes, c)
			case CharStorage:
				storage = append(storage, c)
			case CharWall:
				walls = append(walls, c)
			}
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	if !hasPlayer {
		return nil, ErrNoPlayer
	}
	if len(boxes) == len(storage)+1 {
		storage = append(storage, player)
	}

	return New(player, boxes, storage, walls, width, len(lines))
}

// Dimensions returns the grid width and height.
func (b *Board) Dimensions() (width, height int) {
	return b.width, b.height
}

// InBounds reports whether c lies within the grid.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// IsWall reports whether c is a wall. Cells outside the grid count as
// walls, so an explicit wall border is not required.
func (b *Board) IsWall(c Coord) bool {
	if !b.InBounds(c) {
		return true
	}
	_, ok := b.walls[c]
	return ok
}

// IsStorage reports whether c is a storage cell.
func (b *Board) IsStorage(c Coord) bool {
	_, ok := b.storage[c]
	return ok
}

// StorageSet returns the storage cells sorted row-major.
func (b *Board) StorageSet() []Coord {
	set := maps.Keys(b.storage)
	slices.SortFunc(set, func(a, c Coord) int {
		if a == c {
			return 0
		}
		if a.Less(c) {
			return -1
		}
		return 1
	})
	return set
}

// NumBoxes returns the number of boxes (equal to the number of storage cells).
func (b *Board) NumBoxes() int {
	return len(b.boxes)
}

// InitialState returns the starting search state.
func (b *Board) InitialState() State {
	return State{Player: b.player, Boxes: slices.Clone(b.boxes)}
}

// Render draws the board with the given state overlaid, one row per line.
// The player wins over boxes, boxes over storage, storage over walls.
func (b *Board) Render(s State) string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			c := Coord{Row: row, Col: col}
			switch {
			case c == s.Player:
				sb.WriteByte(CharPlayer)
			case s.HasBox(c):
				sb.WriteByte(CharBox)
			case b.IsStorage(c):
				sb.WriteByte(CharStorage)
			case b.IsWall(c):
				sb.WriteByte(CharWall)
			default:
				sb.WriteByte(CharFloor)
			}
		}
		if row < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String renders the initial state.
func (b *Board) String() string {
	return b.Render(b.InitialState())
}
