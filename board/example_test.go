package board_test

import (
	"fmt"

	"github.com/dankoo97/Sokoban/board"
)

// Parse a level, inspect the initial state, and render it back.
func ExampleParse() {
	b, err := board.Parse("OOOOOO\n" +
		"ORB SO\n" +
		"OOOOOO")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	s := b.InitialState()
	fmt.Println("player:", s.Player)
	fmt.Println("boxes:", s.Boxes)
	fmt.Println(b)
	// Output:
	// player: (1,1)
	// boxes: [(1,2)]
	// OOOOOO
	// ORB SO
	// OOOOOO
}

// Apply pushes the box when the player walks into it.
func ExampleBoard_Apply() {
	b, _ := board.Parse("RB S")

	s, ok := b.Apply(b.InitialState(), board.Right)
	fmt.Println(ok, s.Player, s.Boxes)

	s, ok = b.Apply(s, board.Right)
	fmt.Println(ok, b.IsGoal(s))
	// Output:
	// true (0,1) [(0,2)]
	// true true
}
