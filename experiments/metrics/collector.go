package metrics

import (
	"time"
)

// SearchMetric describes a single search run.
type SearchMetric struct {
	Mode        string
	Expanded    int // states goal-tested
	Generated   int // nodes admitted to the frontier
	Duplicates  int // states discarded as already visited
	MaxFrontier int
	Solved      bool
	PlanLen     int // number of moves in the plan, 0 if unsolved
	PlanCost    int // elapsed time at the final step, 0 if unsolved
	Duration    time.Duration
}

type Collector interface {
	Start(mode string)
	AddExpanded()
	AddGenerated()
	AddDuplicate()
	ObserveFrontier(size int)
	SetOutcome(solved bool, planLen, planCost int)
	Complete() SearchMetric
}

type collector struct {
	mode        string
	startTime   time.Time
	expanded    int
	generated   int
	duplicates  int
	maxFrontier int
	solved      bool
	planLen     int
	planCost    int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(mode string) {
	c.startTime = time.Now()
	c.mode = mode
}

func (c *collector) AddExpanded() {
	c.expanded++
}

func (c *collector) AddGenerated() {
	c.generated++
}

func (c *collector) AddDuplicate() {
	c.duplicates++
}

func (c *collector) ObserveFrontier(size int) {
	if size > c.maxFrontier {
		c.maxFrontier = size
	}
}

func (c *collector) SetOutcome(solved bool, planLen, planCost int) {
	c.solved = solved
	c.planLen = planLen
	c.planCost = planCost
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Mode:        c.mode,
		Expanded:    c.expanded,
		Generated:   c.generated,
		Duplicates:  c.duplicates,
		MaxFrontier: c.maxFrontier,
		Solved:      c.solved,
		PlanLen:     c.planLen,
		PlanCost:    c.planCost,
		Duration:    time.Since(c.startTime),
	}
}

// dummyCollector is the default when the caller does not care about metrics.
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(string)              {}
func (dummyCollector) AddExpanded()              {}
func (dummyCollector) AddGenerated()             {}
func (dummyCollector) AddDuplicate()             {}
func (dummyCollector) ObserveFrontier(int)       {}
func (dummyCollector) SetOutcome(bool, int, int) {}
func (dummyCollector) Complete() SearchMetric    { return SearchMetric{} }
