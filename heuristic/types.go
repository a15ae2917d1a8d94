package heuristic

import (
	"errors"
	"strings"

	"github.com/dankoo97/Sokoban/board"
)

// StuckValue is the sentinel returned by IsStuck for irrecoverable states.
// It is large enough to dominate any realistic distance sum while staying
// far from integer overflow when several heuristics are added together.
const StuckValue = 9999999

// ErrUnknownKind is returned when a Kind has no registered evaluator.
var ErrUnknownKind = errors.New("heuristic: unknown heuristic kind")

// Kind selects one of the built-in evaluators.
type Kind int

const (
	// Manhattan sums, per box, the distance to its nearest target cell.
	Manhattan Kind = iota
	// IsStuck detects boxes cornered by two perpendicular walls.
	IsStuck
	// ToBox measures the player's distance to the nearest box.
	ToBox
	// MinMatch solves the box-to-target assignment problem exactly.
	MinMatch
)

func (k Kind) String() string {
	switch k {
	case Manhattan:
		return "Manhattan Distance"
	case IsStuck:
		return "Prevent Stuck Boxes"
	case ToBox:
		return "Distance to Nearest Box"
	case MinMatch:
		return "Minimum Matching"
	default:
		return "Unknown"
	}
}

// Heuristic estimates the remaining cost of a state. Evaluate must return
// a non-negative value and be referentially transparent for a fixed board;
// implementations may memoize internally since the board never changes
// within a run.
type Heuristic interface {
	// Name identifies the evaluator in statistics output.
	Name() string
	// Evaluate returns the estimate for s on b.
	Evaluate(s board.State, b *board.Board) int
}

// New constructs the evaluator for kind k. The targets are the cells boxes
// should reach: the storage set for forward search, or the initial box
// placement when searching backward from the goal.
func New(k Kind, b *board.Board, targets []board.Coord) (Heuristic, error) {
	switch k {
	case Manhattan:
		return NewManhattan(targets), nil
	case IsStuck:
		return NewIsStuck(), nil
	case ToBox:
		return NewToBox(), nil
	case MinMatch:
		return NewMinMatch(targets), nil
	default:
		return nil, ErrUnknownKind
	}
}

// Sum composes evaluators by adding their estimates. Summation (rather
// than taking the maximum) can overestimate and break admissibility; that
// is the designed composition rule, inherited by every algorithm that
// accepts more than one heuristic.
type Sum []Heuristic

// Name joins the component names in order.
func (h Sum) Name() string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}

// Evaluate returns the sum of all component estimates.
func (h Sum) Evaluate(s board.State, b *board.Board) int {
	total := 0
	for _, c := range h {
		total += c.Evaluate(s, b)
	}
	return total
}
