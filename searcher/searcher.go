package searcher

import (
	"crossing/experiments/metrics"
	"crossing/puzzle"

	"github.com/rs/zerolog/log"
)

type Option func(*Searcher)

// WithMaxExpansions caps the number of expanded states. The state spaces
// here are small enough that searches always terminate on their own; the cap
// is a safety valve for misbehaving puzzle definitions.
func WithMaxExpansions(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.maxExpansions = n
		}
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(s *Searcher) {
		if c != nil {
			s.metrics = c
		}
	}
}

// Searcher traverses the implicit state graph of a puzzle. Each Search call
// owns its own frontier, visited set and node arena; concurrent calls on
// distinct Searcher values share nothing.
type Searcher struct {
	mode          Mode
	maxExpansions int
	metrics       metrics.Collector
}

func New(mode Mode, options ...Option) *Searcher {
	s := &Searcher{
		mode:    mode,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Mode() Mode {
	return s.mode
}

// Search looks for a plan from the initial state to a goal state. A nil plan
// means no solution exists for this configuration, which is a normal outcome
// rather than an error. The first goal discovered along the configured
// traversal order is returned; it is not necessarily the cheapest.
func (s *Searcher) Search(initial puzzle.State) (*Plan, metrics.SearchMetric) {
	s.metrics.Start(s.mode.String())

	arena := &history{}
	fringe := newFrontier(s.mode)
	visited := make(map[puzzle.StateHash]struct{})

	fringe.push(arena.addRoot(initial))
	s.metrics.AddGenerated()

	expanded := 0
	for {
		s.metrics.ObserveFrontier(fringe.len())
		id, ok := fringe.pop()
		if !ok {
			break
		}
		n := arena.nodes[id]

		// A state can be admitted to the frontier more than once before its
		// first expansion; only the first pop is processed.
		hash := n.state.Hash()
		if _, seen := visited[hash]; seen {
			s.metrics.AddDuplicate()
			continue
		}
		visited[hash] = struct{}{}

		log.Debug().Int("node", id).Int("cost", n.cost).Stringer("state", n.state).Msg("exploring state")
		s.metrics.AddExpanded()
		expanded++

		if n.state.IsGoal() {
			plan := arena.backtrack(id)
			log.Debug().Int("moves", plan.Len()).Int("cost", plan.TotalCost()).Msg("goal reached")
			s.metrics.SetOutcome(true, plan.Len(), plan.TotalCost())
			return plan, s.metrics.Complete()
		}

		if s.maxExpansions > 0 && expanded >= s.maxExpansions {
			log.Warn().Int("expanded", expanded).Msg("expansion cap reached, aborting search")
			break
		}

		moves := n.state.LegalMoves()
		if len(moves) == 0 {
			log.Debug().Int("node", id).Msg("dead end")
			continue
		}
		for _, move := range moves {
			next := n.state.Play(move)
			if _, seen := visited[next.Hash()]; seen {
				s.metrics.AddDuplicate()
				continue
			}
			fringe.push(arena.add(id, move, next))
			s.metrics.AddGenerated()
		}
	}

	s.metrics.SetOutcome(false, 0, 0)
	return nil, s.metrics.Complete()
}
