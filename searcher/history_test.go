package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryBacktrack(t *testing.T) {
	g := &graph{expansions: map[string]int{}}
	state := func(id string) mockState { return mockState{g: g, id: id} }

	arena := &history{}
	root := arena.addRoot(state("a"))
	b := arena.add(root, mockMove{to: "b", cost: 2}, state("b"))
	// a sibling branch that must not appear in the plan
	arena.add(root, mockMove{to: "x", cost: 9}, state("x"))
	c := arena.add(b, mockMove{to: "c", cost: 3}, state("c"))

	plan := arena.backtrack(c)

	require.Equal(t, []string{"a", "b", "c"}, planIDs(t, plan))
	require.Nil(t, plan.Steps[0].Move)
	require.Equal(t, []int{0, 2, 5}, []int{plan.Steps[0].Cost, plan.Steps[1].Cost, plan.Steps[2].Cost})
	require.Equal(t, 2, plan.Len())
	require.Equal(t, 5, plan.TotalCost())
}

func TestHistoryBacktrackRoot(t *testing.T) {
	g := &graph{expansions: map[string]int{}}

	arena := &history{}
	root := arena.addRoot(mockState{g: g, id: "a"})

	plan := arena.backtrack(root)

	require.Len(t, plan.Steps, 1)
	require.Nil(t, plan.Steps[0].Move)
	require.Zero(t, plan.TotalCost())
}
