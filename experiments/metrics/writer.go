package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ScenarioRecord identifies one puzzle configuration in a sweep.
type ScenarioRecord struct {
	ID     int
	Name   string
	Puzzle string
	Params string
}

// SolveRecord is one search run over a scenario.
type SolveRecord struct {
	Scenario int // ScenarioRecord.ID
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subdirectory under baseDir to hold the
// sweep's CSV files.
func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05Z")
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

// Dir returns the directory the writer outputs to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteScenarios(scenarios []ScenarioRecord) error {
	path := filepath.Join(w.baseDir, "scenarios.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scenarios file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "name", "puzzle", "params"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write scenarios header: %w", err)
	}

	for _, s := range scenarios {
		row := []string{
			strconv.Itoa(s.ID),
			s.Name,
			s.Puzzle,
			s.Params,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write scenario row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteSolves(records []SolveRecord) error {
	path := filepath.Join(w.baseDir, "solves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create solves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"scenario", "mode", "solved", "plan_len", "plan_cost",
		"expanded", "generated", "duplicates", "max_frontier", "duration_ns",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write solves header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Scenario),
			r.Mode,
			strconv.FormatBool(r.Solved),
			strconv.Itoa(r.PlanLen),
			strconv.Itoa(r.PlanCost),
			strconv.Itoa(r.Expanded),
			strconv.Itoa(r.Generated),
			strconv.Itoa(r.Duplicates),
			strconv.Itoa(r.MaxFrontier),
			strconv.FormatInt(r.Duration.Nanoseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write solve row: %w", err)
		}
	}
	return nil
}
