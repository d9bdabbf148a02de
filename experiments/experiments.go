// Package experiments runs batches of puzzle configurations through the
// searcher under both frontier modes and records how each search behaved.
package experiments

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"crossing/experiments/metrics"
	"crossing/puzzle"
	"crossing/puzzle/bridge"
	"crossing/puzzle/wolfgoat"
	"crossing/puzzle/zombies"
	"crossing/searcher"
)

// Scenario is one puzzle configuration in a sweep. Only the fields relevant
// to the named puzzle are used.
type Scenario struct {
	Name     string `yaml:"name"`
	Puzzle   string `yaml:"puzzle"` // bridge, wolf-goat-cabbage or humans-and-zombies
	Times    []int  `yaml:"times,omitempty"`
	Torch    int    `yaml:"torch,omitempty"`
	Capacity int    `yaml:"capacity,omitempty"` // bridge or boat capacity
	Farmers  int    `yaml:"farmers,omitempty"`
	Wolves   int    `yaml:"wolves,omitempty"`
	Goats    int    `yaml:"goats,omitempty"`
	Cabbages int    `yaml:"cabbages,omitempty"`
	Humans   int    `yaml:"humans,omitempty"`
	Zombies  int    `yaml:"zombies,omitempty"`
}

// InitialState builds the scenario's starting state.
func (s Scenario) InitialState() (puzzle.State, error) {
	switch s.Puzzle {
	case "bridge":
		if len(s.Times) == 0 || s.Capacity <= 0 {
			return nil, fmt.Errorf("scenario %q: bridge needs times and capacity", s.Name)
		}
		return bridge.New(s.Times, s.Capacity, s.Torch), nil
	case "wolf-goat-cabbage":
		if s.Farmers <= 0 || s.Capacity <= 0 {
			return nil, fmt.Errorf("scenario %q: wolf-goat-cabbage needs farmers and capacity", s.Name)
		}
		return wolfgoat.New(s.Farmers, s.Wolves, s.Goats, s.Cabbages, s.Capacity), nil
	case "humans-and-zombies":
		if s.Humans+s.Zombies <= 0 || s.Capacity <= 0 {
			return nil, fmt.Errorf("scenario %q: humans-and-zombies needs people and capacity", s.Name)
		}
		return zombies.New(s.Humans, s.Zombies, s.Capacity), nil
	default:
		return nil, fmt.Errorf("scenario %q: unknown puzzle %q", s.Name, s.Puzzle)
	}
}

// Params renders the scenario's parameters for the scenarios CSV.
func (s Scenario) Params() string {
	switch s.Puzzle {
	case "bridge":
		return fmt.Sprintf("times=%v capacity=%d torch=%d", s.Times, s.Capacity, s.Torch)
	case "wolf-goat-cabbage":
		return fmt.Sprintf("farmers=%d wolves=%d goats=%d cabbages=%d capacity=%d",
			s.Farmers, s.Wolves, s.Goats, s.Cabbages, s.Capacity)
	case "humans-and-zombies":
		return fmt.Sprintf("humans=%d zombies=%d capacity=%d", s.Humans, s.Zombies, s.Capacity)
	default:
		return ""
	}
}

// LoadScenarios reads a YAML sweep file of the form:
//
//	scenarios:
//	  - name: classic torch
//	    puzzle: bridge
//	    times: [1, 2, 5, 8]
//	    capacity: 2
//	    torch: 15
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s contains no scenarios", path)
	}

	for _, s := range file.Scenarios {
		if _, err := s.InitialState(); err != nil {
			return nil, err
		}
	}
	return file.Scenarios, nil
}

// RandomScenarios samples n configurations across the three puzzles. Many of
// them are unsolvable; that is the point of the sweep.
func RandomScenarios(n int, seed uint64) []Scenario {
	rng := rand.New(rand.NewSource(seed))

	scenarios := make([]Scenario, 0, n)
	for i := 0; i < n; i++ {
		var s Scenario
		switch rng.Intn(3) {
		case 0:
			times := make([]int, 2+rng.Intn(4))
			budget := 0
			for j := range times {
				times[j] = 1 + rng.Intn(10)
				budget += times[j]
			}
			s = Scenario{
				Puzzle:   "bridge",
				Times:    times,
				Capacity: 2 + rng.Intn(2),
				Torch:    1 + rng.Intn(2*budget),
			}
		case 1:
			s = Scenario{
				Puzzle:   "wolf-goat-cabbage",
				Farmers:  1,
				Wolves:   1 + rng.Intn(2),
				Goats:    1 + rng.Intn(2),
				Cabbages: 1 + rng.Intn(2),
				Capacity: 1 + rng.Intn(3),
			}
		default:
			s = Scenario{
				Puzzle:   "humans-and-zombies",
				Humans:   1 + rng.Intn(5),
				Zombies:  1 + rng.Intn(5),
				Capacity: 1 + rng.Intn(3),
			}
		}
		s.Name = fmt.Sprintf("random-%d", i)
		scenarios = append(scenarios, s)
	}
	return scenarios
}

// Run solves every scenario under both modes, spreading the searches over
// the given number of goroutines. Each search owns its state, so the workers
// share nothing but the job queue. Records come back in a fixed order:
// scenarios in input order, dfs before bfs.
func Run(scenarios []Scenario, goroutines int) ([]metrics.SolveRecord, error) {
	if goroutines <= 0 {
		goroutines = 1
	}

	type job struct {
		index    int
		scenario int
		mode     searcher.Mode
		initial  puzzle.State
	}

	modes := []searcher.Mode{searcher.DepthFirst, searcher.BreadthFirst}
	jobs := make([]job, 0, len(scenarios)*len(modes))
	for i, s := range scenarios {
		initial, err := s.InitialState()
		if err != nil {
			return nil, err
		}
		for _, mode := range modes {
			jobs = append(jobs, job{index: len(jobs), scenario: i, mode: mode, initial: initial})
		}
	}

	task := make(chan job, len(jobs))
	for _, j := range jobs {
		task <- j
	}
	close(task)

	records := make([]metrics.SolveRecord, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range task {
				s := searcher.New(j.mode, searcher.WithMetrics(metrics.NewCollector()))
				_, metric := s.Search(j.initial)
				records[j.index] = metrics.SolveRecord{Scenario: j.scenario, SearchMetric: metric}
			}
		}()
	}
	wg.Wait()

	log.Info().Int("scenarios", len(scenarios)).Int("runs", len(jobs)).Msg("sweep complete")
	return records, nil
}

// Write stores the sweep's scenarios and records as CSV under baseDir and
// returns the directory written to.
func Write(baseDir string, scenarios []Scenario, records []metrics.SolveRecord) (string, error) {
	w, err := metrics.NewWriter(baseDir)
	if err != nil {
		return "", err
	}

	scenarioRecords := make([]metrics.ScenarioRecord, len(scenarios))
	for i, s := range scenarios {
		scenarioRecords[i] = metrics.ScenarioRecord{ID: i, Name: s.Name, Puzzle: s.Puzzle, Params: s.Params()}
	}
	if err := w.WriteScenarios(scenarioRecords); err != nil {
		return "", err
	}
	if err := w.WriteSolves(records); err != nil {
		return "", err
	}
	return w.Dir(), nil
}
