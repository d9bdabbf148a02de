package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"crossing/puzzle/wolfgoat"
	"crossing/puzzle/zombies"
	"crossing/searcher"
)

func TestRunRendersPlan(t *testing.T) {
	var buf bytes.Buffer
	e := New(zombies.Default(), searcher.New(searcher.BreadthFirst), &buf)
	e.Profile = termenv.Ascii

	plan, metric := e.Run()

	require.NotNil(t, plan)
	require.True(t, metric.Solved)

	out := buf.String()
	require.Contains(t, out, "Solution in 11 moves:")
	require.Contains(t, out, "cross forward")
	require.Contains(t, out, "return")
	// one line per state plus one per move
	indented := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ") {
			indented++
		}
	}
	require.Equal(t, plan.Len()*2+1, indented)
}

func TestRunReportsNoSolution(t *testing.T) {
	var buf bytes.Buffer
	e := New(wolfgoat.New(1, 1, 1, 1, 1), searcher.New(searcher.DepthFirst), &buf)
	e.Profile = termenv.Ascii

	plan, metric := e.Run()

	require.Nil(t, plan)
	require.False(t, metric.Solved)
	require.Equal(t, "No solution found.\n", buf.String())
}
