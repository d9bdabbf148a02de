package wolfgoat

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
				require.True(t, step.State.(State).Safe(), "step %d leaves something eaten", i)
			}

			final := plan.Steps[len(plan.Steps)-1].State.(State)
			require.True(t, final.Left.IsEmpty())
			require.Equal(t, BankState{Farmers: 1, Wolves: 1, Goats: 1, Cabbages: 1}, final.Right)
		})
	}
}

func TestClassicShortestPlan(t *testing.T) {
	// The classic puzzle needs seven crossings; breadth-first finds a plan of
	// that length (though the engine makes no optimality promise in general).
	plan, _ := searcher.New(searcher.BreadthFirst).Search(Default())

	require.NotNil(t, plan)
	require.Equal(t, 7, plan.Len())
}

func TestBoatTooSmall(t *testing.T) {
	// With capacity one the farmer can never carry cargo, and even crossing
	// alone would leave the whole flock unattended.
	initial := New(1, 1, 1, 1, 1)

	require.Empty(t, initial.LegalMoves())

	for _, mode := range []searcher.Mode{searcher.DepthFirst, searcher.BreadthFirst} {
		plan, _ := searcher.New(mode).Search(initial)
		require.Nil(t, plan)
	}
}

func TestFirstMoveTakesTheGoat(t *testing.T) {
	moves := Default().LegalMoves()

	require.Len(t, moves, 1)
	move := moves[0].(Move)
	require.Equal(t, 1, move.Farmers)
	require.Equal(t, 1, move.Goats)
	require.Zero(t, move.Wolves)
	require.Zero(t, move.Cabbages)
}

func TestMovesNeedAFarmer(t *testing.T) {
	// Plenty of room in the boat, but nothing may cross without a farmer.
	stranded := State{
		Left:     BankState{Goats: 1},
		Right:    BankState{Farmers: 1},
		Boat:     puzzle.Left,
		Capacity: 3,
	}
	require.Empty(t, stranded.LegalMoves(), "the goat cannot row itself across")

	for _, m := range New(2, 1, 1, 1, 2).LegalMoves() {
		require.Positive(t, m.(Move).Farmers)
	}
}

func TestBankSafety(t *testing.T) {
	require.False(t, BankState{Wolves: 1, Goats: 1}.Safe())
	require.False(t, BankState{Goats: 1, Cabbages: 1}.Safe())
	require.True(t, BankState{Wolves: 1, Cabbages: 1}.Safe())
	require.True(t, BankState{Farmers: 1, Wolves: 1, Goats: 1, Cabbages: 1}.Safe())
	require.True(t, BankState{}.Safe())
}

func TestHashDistinguishesBoatSide(t *testing.T) {
	a := Default()
	b := a
	b.Boat = puzzle.Right

	require.NotEqual(t, a.Hash(), b.Hash())
}
