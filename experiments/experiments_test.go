package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sweepYAML = `
scenarios:
  - name: classic torch
    puzzle: bridge
    times: [1, 2, 5, 8]
    capacity: 2
    torch: 15
  - name: short torch
    puzzle: bridge
    times: [1, 2, 5, 8]
    capacity: 2
    torch: 14
  - name: classic zombies
    puzzle: humans-and-zombies
    humans: 3
    zombies: 3
    capacity: 2
`

func writeSweepFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sweepYAML), 0644))
	return path
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(writeSweepFile(t))

	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	require.Equal(t, "classic torch", scenarios[0].Name)
	require.Equal(t, []int{1, 2, 5, 8}, scenarios[0].Times)
	require.Equal(t, 3, scenarios[2].Humans)
}

func TestLoadScenariosRejectsUnknownPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: x\n    puzzle: towers-of-hanoi\n"), 0644))

	_, err := LoadScenarios(path)

	require.ErrorContains(t, err, "unknown puzzle")
}

func TestRunSolvesEachScenarioUnderBothModes(t *testing.T) {
	scenarios, err := LoadScenarios(writeSweepFile(t))
	require.NoError(t, err)

	records, err := Run(scenarios, 2)

	require.NoError(t, err)
	require.Len(t, records, 6)

	// records are ordered: scenario by scenario, dfs before bfs
	require.Equal(t, 0, records[0].Scenario)
	require.Equal(t, "dfs", records[0].Mode)
	require.Equal(t, "bfs", records[1].Mode)

	require.True(t, records[0].Solved, "torch 15 is solvable under dfs")
	require.True(t, records[1].Solved, "torch 15 is solvable under bfs")
	require.False(t, records[2].Solved, "torch 14 is unsolvable")
	require.False(t, records[3].Solved, "torch 14 is unsolvable")
	require.True(t, records[4].Solved)
	require.Equal(t, 11, records[5].PlanLen, "bfs finds the eleven-move zombie plan")
}

func TestRandomScenariosAreValidAndReproducible(t *testing.T) {
	first := RandomScenarios(20, 7)
	second := RandomScenarios(20, 7)

	require.Equal(t, first, second)
	for _, s := range first {
		_, err := s.InitialState()
		require.NoError(t, err, "scenario %q must be constructible", s.Name)
	}
}

func TestWriteProducesCSV(t *testing.T) {
	scenarios, err := LoadScenarios(writeSweepFile(t))
	require.NoError(t, err)
	records, err := Run(scenarios, 1)
	require.NoError(t, err)

	dir, err := Write(t.TempDir(), scenarios, records)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "solves.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7) // header + 6 records
	require.Equal(t, "scenario", rows[0][0])

	_, err = os.Stat(filepath.Join(dir, "scenarios.csv"))
	require.NoError(t, err)
}
