package search_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankoo97/Sokoban/board"
	"github.com/dankoo97/Sokoban/heuristic"
	"github.com/dankoo97/Sokoban/search"
)

// corridor: one push right solves it in two moves.
const corridor = "OOOOOO\n" +
	"ORB SO\n" +
	"OOOOOO"

// room: one box, optimal solution is five moves.
const room = "OOOOOO\n" +
	"OR   O\n" +
	"O B  O\n" +
	"O  S O\n" +
	"OOOOOO"

// sealed: the box sits in a walled pocket the player cannot enter, so no
// sequence of moves reaches the goal.
const sealed = "RS OBO"

func mustParse(t *testing.T, grid string) *board.Board {
	t.Helper()
	b, err := board.Parse(grid)
	require.NoError(t, err)
	return b
}

// replay applies the path move by move and requires that it is legal and
// ends on the goal.
func replay(t *testing.T, b *board.Board, path []board.Direction) {
	t.Helper()
	s := b.InitialState()
	for i, d := range path {
		next, ok := b.Apply(s, d)
		require.True(t, ok, "move %d (%s) must be legal", i, d)
		s = next
	}
	assert.True(t, b.IsGoal(s), "path must end on the goal")
}

func TestRun_CorridorAllAlgorithms(t *testing.T) {
	b := mustParse(t, corridor)

	for _, algo := range []search.Algorithm{search.BFS, search.DFS, search.GreedyBest, search.AStar} {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := search.Run(b, algo,
				search.WithHeuristics(heuristic.Manhattan))
			require.NoError(t, err)

			assert.Equal(t, search.Solved, res.Outcome)
			assert.Len(t, res.Path, 2)
			replay(t, b, res.Path)

			assert.True(t, res.Stats.Solved)
			assert.Equal(t, 2, res.Stats.PathLength)
			assert.Equal(t, algo.String(), res.Stats.Algorithm)
			assert.Positive(t, res.Stats.UniqueStates)
			assert.Positive(t, res.Stats.MaxFringe)
		})
	}
}

func TestRun_BFSMatchesAStarLength(t *testing.T) {
	b := mustParse(t, room)

	bfs, err := search.Run(b, search.BFS)
	require.NoError(t, err)
	require.Equal(t, search.Solved, bfs.Outcome)
	replay(t, b, bfs.Path)
	assert.Len(t, bfs.Path, 5)

	// Manhattan is admissible on its own, so A* stays optimal.
	astar, err := search.Run(b, search.AStar,
		search.WithHeuristics(heuristic.Manhattan))
	require.NoError(t, err)
	require.Equal(t, search.Solved, astar.Outcome)
	replay(t, b, astar.Path)
	assert.Len(t, astar.Path, len(bfs.Path))
}

func TestRun_StuckAwareAStar(t *testing.T) {
	b := mustParse(t, room)
	res, err := search.Run(b, search.AStar,
		search.WithHeuristics(heuristic.IsStuck, heuristic.Manhattan, heuristic.ToBox))
	require.NoError(t, err)
	require.Equal(t, search.Solved, res.Outcome)
	replay(t, b, res.Path)
	assert.Equal(t,
		[]string{"Prevent Stuck Boxes", "Manhattan Distance", "Distance to Nearest Box"},
		res.Stats.Heuristics)
}

func TestRun_Exhausted(t *testing.T) {
	b := mustParse(t, sealed)

	for _, algo := range []search.Algorithm{search.BFS, search.DFS, search.GreedyBest, search.AStar} {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := search.Run(b, algo,
				search.WithHeuristics(heuristic.Manhattan))
			require.NoError(t, err)
			assert.Equal(t, search.Exhausted, res.Outcome)
			assert.Empty(t, res.Path)
			assert.False(t, res.Stats.Solved)
			assert.Positive(t, res.Stats.UniqueStates,
				"an exhausted run still reports the states it explored")
		})
	}
}

// On the sealed level the box never moves, so the reachable space is
// exactly the three player positions. Walking back and forth rediscovers
// them endlessly; the visited set counts each once.
func TestRun_DeduplicatesRediscoveries(t *testing.T) {
	b := mustParse(t, sealed)
	res, err := search.Run(b, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
	assert.Equal(t, 3, res.Stats.UniqueStates)
}

func TestRun_FringeBoundExceeded(t *testing.T) {
	b := mustParse(t, corridor)
	res, err := search.Run(b, search.BFS, search.WithMaxFringe(1))
	require.NoError(t, err)
	assert.Equal(t, search.FringeBoundExceeded, res.Outcome)
	assert.Empty(t, res.Path)
	assert.LessOrEqual(t, res.Stats.MaxFringe, 1)
}

func TestRun_Bidirectional(t *testing.T) {
	b := mustParse(t, corridor)
	res, err := search.Run(b, search.BFS, search.WithBidirectional())
	require.NoError(t, err)

	require.Equal(t, search.Solved, res.Outcome)
	// Spliced paths are valid but not guaranteed shortest; replay is the
	// contract, length is not.
	replay(t, b, res.Path)
	assert.True(t, res.Stats.Bidirectional)
}

func TestRun_BidirectionalRoom(t *testing.T) {
	b := mustParse(t, room)
	res, err := search.Run(b, search.AStar,
		search.WithBidirectional(),
		search.WithHeuristics(heuristic.IsStuck, heuristic.Manhattan))
	require.NoError(t, err)
	require.Equal(t, search.Solved, res.Outcome)
	replay(t, b, res.Path)
}

func TestRun_BidirectionalExhausted(t *testing.T) {
	b := mustParse(t, sealed)
	res, err := search.Run(b, search.BFS, search.WithBidirectional())
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
}

func TestRun_Deterministic(t *testing.T) {
	b := mustParse(t, room)

	first, err := search.Run(b, search.GreedyBest,
		search.WithHeuristics(heuristic.Manhattan, heuristic.ToBox))
	require.NoError(t, err)
	second, err := search.Run(b, search.GreedyBest,
		search.WithHeuristics(heuristic.Manhattan, heuristic.ToBox))
	require.NoError(t, err)

	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Stats.UniqueStates, second.Stats.UniqueStates)
	assert.Equal(t, first.Stats.MaxFringe, second.Stats.MaxFringe)
}

func TestRun_UpperBoundStates(t *testing.T) {
	b := mustParse(t, corridor)
	res, err := search.Run(b, search.BFS)
	require.NoError(t, err)

	// 6x3 grid: 4 interior cells, box plus player occupy 2 of them:
	// C(4,2) * 2 = 12.
	assert.Equal(t, "12", res.Stats.UpperBoundStates.String())
}

func TestRun_InputErrors(t *testing.T) {
	b := mustParse(t, corridor)

	_, err := search.Run(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrNilBoard)

	_, err = search.Run(b, search.Algorithm(42))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.Run(b, search.BFS, search.WithMaxFringe(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Run(b, search.AStar,
		search.WithHeuristics(heuristic.Kind(42)))
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)
}

func TestRun_ContextCancelled(t *testing.T) {
	b := mustParse(t, room)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(b, search.BFS, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_VerboseLogging(t *testing.T) {
	b := mustParse(t, corridor)
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	res, err := search.Run(b, search.BFS,
		search.WithVerbose(), search.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, search.Solved, res.Outcome)
}

func TestRunAll_OrderAndErrors(t *testing.T) {
	b := mustParse(t, corridor)

	specs := []search.Spec{
		{Algorithm: search.BFS},
		{Algorithm: search.AStar,
			Options: []search.Option{search.WithHeuristics(heuristic.Manhattan)}},
		{Algorithm: search.BFS,
			Options: []search.Option{search.WithMaxFringe(-1)}},
		{Algorithm: search.DFS},
	}

	results, err := search.RunAll(b, specs)
	require.Len(t, results, 4)

	assert.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Nil(t, results[2], "a failed request leaves a nil slot")

	for _, i := range []int{0, 1, 3} {
		require.NotNil(t, results[i])
		assert.Equal(t, search.Solved, results[i].Outcome)
		assert.Equal(t, specs[i].Algorithm.String(), results[i].Stats.Algorithm)
	}
}

func TestRunAll_NilBoard(t *testing.T) {
	_, err := search.RunAll(nil, []search.Spec{{Algorithm: search.BFS}})
	assert.ErrorIs(t, err, search.ErrNilBoard)
}
