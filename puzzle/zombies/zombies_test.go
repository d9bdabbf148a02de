package zombies

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crossing/puzzle"
	"crossing/searcher"
)

func TestClassicInstance(t *testing.T) {
	for _, mode := range []searcher.Mode{searcher.DepthFirst, searcher.BreadthFirst} {
		t.Run(mode.String(), func(t *testing.T) {
			plan, _ := searcher.New(mode).Search(Default())

			require.NotNil(t, plan)
			for i, step := range plan.Steps {
				require.True(t, step.State.(State).Safe(), "step %d leaves humans outnumbered", i)
			}

			final := plan.Steps[len(plan.Steps)-1].State.(State)
			require.True(t, final.Left.IsEmpty())
			require.Equal(t, BankState{Humans: 3, Zombies: 3}, final.Right)
		})
	}
}

func TestClassicShortestPlan(t *testing.T) {
	// Three of each with a two-seat boat takes eleven crossings; breadth-first
	// finds a plan of exactly that length.
	plan, _ := searcher.New(searcher.BreadthFirst).Search(Default())

	require.NotNil(t, plan)
	require.Equal(t, 11, plan.Len())
}

func TestFourOfEachIsUnsolvable(t *testing.T) {
	for _, mode := range []searcher.Mode{searcher.DepthFirst, searcher.BreadthFirst} {
		t.Run(mode.String(), func(t *testing.T) {
			plan, _ := searcher.New(mode).Search(New(4, 4, 2))

			require.Nil(t, plan)
		})
	}
}

func TestLegalMovesKeepBanksSafe(t *testing.T) {
	for _, m := range Default().LegalMoves() {
		next := Default().Play(m).(State)
		require.True(t, next.Safe(), "move %s must leave both banks safe", m)
	}
}

func TestZombiesCanRow(t *testing.T) {
	s := State{
		Left:     BankState{Zombies: 2},
		Right:    BankState{Humans: 3, Zombies: 1},
		Boat:     puzzle.Left,
		Capacity: 2,
	}

	moves := s.LegalMoves()

	require.NotEmpty(t, moves, "a bank of zombies still sails")
	for _, m := range moves {
		require.Zero(t, m.(Move).Humans)
	}
}

func TestBankSafety(t *testing.T) {
	require.True(t, BankState{Zombies: 3}.Safe(), "a bank without humans is always safe")
	require.True(t, BankState{Humans: 2, Zombies: 2}.Safe())
	require.False(t, BankState{Humans: 1, Zombies: 2}.Safe())
}

func TestHashDistinguishesBoatSide(t *testing.T) {
	a := Default()
	b := a
	b.Boat = puzzle.Right

	require.NotEqual(t, a.Hash(), b.Hash())
}
