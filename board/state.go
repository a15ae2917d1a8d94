package board

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// State is one node of the search space: the player position plus the set
// of box positions. Boxes are kept sorted row-major so that Key is
// canonical; equality and deduplication depend only on the player and the
// boxes, never on the path taken to reach them.
//
// States are values. Transitions allocate a new State and never mutate the
// parent, so a State handed to a fringe or visited set stays stable.
type State struct {
	Player Coord
	Boxes  []Coord // sorted row-major
}

// Move pairs a resulting State with the forward direction that produces it.
// For backward (pull) generation, Dir is still the forward move: applying
// Dir to the produced predecessor state yields the state it was derived from.
type Move struct {
	Dir   Direction
	State State
}

// Key returns the canonical identity of the state, suitable as a map key.
func (s State) Key() string {
	var sb strings.Builder
	sb.Grow(8 * (len(s.Boxes) + 1))
	sb.WriteString(strconv.Itoa(s.Player.Row))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(s.Player.Col))
	sb.WriteByte('|')
	sb.WriteString(s.BoxKey())
	return sb.String()
}

// BoxKey returns the canonical identity of the box placement alone,
// independent of the player. Heuristics that depend only on boxes memoize
// on this key.
func (s State) BoxKey() string {
	var sb strings.Builder
	sb.Grow(8 * len(s.Boxes))
	for i, b := range s.Boxes {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(b.Row))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(b.Col))
	}
	return sb.String()
}

// Equal reports whether two states have the same player and box placement.
func (s State) Equal(o State) bool {
	return s.Player == o.Player && slices.Equal(s.Boxes, o.Boxes)
}

// HasBox reports whether a box occupies c. O(log n) on the sorted slice.
func (s State) HasBox(c Coord) bool {
	_, found := slices.BinarySearchFunc(s.Boxes, c, compareCoord)
	return found
}

func compareCoord(a, c Coord) int {
	if a == c {
		return 0
	}
	if a.Less(c) {
		return -1
	}
	return 1
}

// withBoxMoved returns a copy of the box slice with from replaced by to,
// keeping the slice sorted.
func (s State) withBoxMoved(from, to Coord) []Coord {
	i, _ := slices.BinarySearchFunc(s.Boxes, from, compareCoord)
	boxes := slices.Delete(slices.Clone(s.Boxes), i, i+1)
	j, _ := slices.BinarySearchFunc(boxes, to, compareCoord)
	return slices.Insert(boxes, j, to)
}

// Apply attempts the forward move d from state s: the player steps onto the
// destination cell, pushing a box ahead of it when one is present. It
// returns the resulting state and true, or the zero State and false when
// the move is illegal (an illegal move is not an error, it simply produces
// no transition).
func (b *Board) Apply(s State, d Direction) (State, bool) {
	dest := s.Player.Add(d)
	if b.IsWall(dest) {
		return State{}, false
	}
	if !s.HasBox(dest) {
		return State{Player: dest, Boxes: s.Boxes}, true
	}
	boxDest := dest.Add(d)
	if b.IsWall(boxDest) || s.HasBox(boxDest) {
		return State{}, false
	}
	return State{Player: dest, Boxes: s.withBoxMoved(dest, boxDest)}, true
}

// Successors generates every legal forward transition of s, in the fixed
// order of Directions.
func (b *Board) Successors(s State) []Move {
	moves := make([]Move, 0, len(Directions))
	for _, d := range Directions {
		if next, ok := b.Apply(s, d); ok {
			moves = append(moves, Move{Dir: d, State: next})
		}
	}
	return moves
}

// Predecessors generates every state that could have produced s through a
// single forward move, using the explicit inverse (pull) rule rather than
// a relabeled forward rule: the admissibility conditions differ. For a
// candidate forward direction d, the player must have stood one cell
// behind its current position, and that cell must be free of walls and
// boxes. If a box sits directly ahead of the player, the forward move may
// have been the push that put it there, so a second predecessor with the
// box pulled back onto the player's cell is generated as well.
//
// Each Move's Dir is the forward direction: b.Apply(pred, Dir) reaches a
// state equal to s. The inverse is a relation, not a function - a push
// cannot be distinguished from a plain walk by looking at s alone, which
// is why both variants are produced.
func (b *Board) Predecessors(s State) []Move {
	moves := make([]Move, 0, 2*len(Directions))
	for _, d := range Directions {
		prev := s.Player.Sub(d)
		if b.IsWall(prev) || s.HasBox(prev) {
			continue
		}
		ahead := s.Player.Add(d)
		if s.HasBox(ahead) {
			// Undo a push of d: the box ahead came from the player's cell.
			moves = append(moves, Move{Dir: d, State: State{Player: prev, Boxes: s.withBoxMoved(ahead, s.Player)}})
		}
		moves = append(moves, Move{Dir: d, State: State{Player: prev, Boxes: s.Boxes}})
	}
	return moves
}

// IsGoal reports whether every storage cell is covered by a box. Box and
// storage counts match by construction, so coverage implies equality of
// the two sets.
func (b *Board) IsGoal(s State) bool {
	for _, bx := range s.Boxes {
		if !b.IsStorage(bx) {
			return false
		}
	}
	return true
}

// Seed is one entry point for backward search: Goal is a terminal state
// (boxes covering storage, player where the final push left it) and Pre is
// its predecessor one pull back, reached from Goal by undoing a final push
// in direction Dir. Backward engines start from Pre with Goal as its
// parent, mirroring how the forward engine starts from the initial state.
type Seed struct {
	Goal State
	Pre  State
	Dir  Direction
}

// GoalSeeds enumerates the terminal configurations a backward search can
// grow from. For each storage cell that a final push could have filled,
// and each direction that push could have come from, the player's final
// and prior cells must both be free floor; otherwise no legal last move
// exists for that combination.
func (b *Board) GoalSeeds() []Seed {
	goalBoxes := b.StorageSet()
	goal := State{Boxes: goalBoxes}

	seeds := make([]Seed, 0, 4*len(goalBoxes))
	for _, bx := range goalBoxes {
		for _, d := range Directions {
			playerEnd := bx.Sub(d)
			playerStart := playerEnd.Sub(d)
			if b.IsWall(playerEnd) || b.IsWall(playerStart) ||
				goal.HasBox(playerEnd) || goal.HasBox(playerStart) {
				continue
			}
			final := State{Player: playerEnd, Boxes: goalBoxes}
			pre := State{Player: playerStart, Boxes: final.withBoxMoved(bx, playerEnd)}
			seeds = append(seeds, Seed{Goal: final, Pre: pre, Dir: d})
		}
	}
	return seeds
}
