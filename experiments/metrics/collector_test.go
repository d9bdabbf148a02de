package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("bfs")
	c.AddGenerated()
	c.AddGenerated()
	c.AddExpanded()
	c.AddDuplicate()
	c.ObserveFrontier(2)
	c.ObserveFrontier(1)
	c.SetOutcome(true, 3, 15)

	metric := c.Complete()

	require.Equal(t, "bfs", metric.Mode)
	require.Equal(t, 2, metric.Generated)
	require.Equal(t, 1, metric.Expanded)
	require.Equal(t, 1, metric.Duplicates)
	require.Equal(t, 2, metric.MaxFrontier)
	require.True(t, metric.Solved)
	require.Equal(t, 3, metric.PlanLen)
	require.Equal(t, 15, metric.PlanCost)
	require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0))
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("dfs")
	c.AddExpanded()
	c.SetOutcome(true, 1, 1)

	require.Equal(t, SearchMetric{}, c.Complete())
}
