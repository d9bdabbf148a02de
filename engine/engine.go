// Package engine drives one search over a puzzle and renders the outcome
// for a terminal.
package engine

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"crossing/experiments/metrics"
	"crossing/puzzle"
	"crossing/searcher"
)

type Engine struct {
	Initial  puzzle.State
	Searcher *searcher.Searcher
	Out      io.Writer
	Profile  termenv.Profile
}

func New(initial puzzle.State, s *searcher.Searcher, out io.Writer) *Engine {
	return &Engine{
		Initial:  initial,
		Searcher: s,
		Out:      out,
		Profile:  termenv.ColorProfile(),
	}
}

// Run searches for a plan and writes it step by step, moves highlighted and
// states plain. A nil plan is reported as "No solution found."
func (e *Engine) Run() (*searcher.Plan, metrics.SearchMetric) {
	log.Info().Stringer("mode", e.Searcher.Mode()).Stringer("initial", e.Initial).Msg("starting search")

	plan, metric := e.Searcher.Search(e.Initial)
	if plan == nil {
		log.Info().Int("expanded", metric.Expanded).Msg("search exhausted the state space")
		fmt.Fprintln(e.Out, "No solution found.")
		return nil, metric
	}

	log.Info().Int("moves", plan.Len()).Int("cost", plan.TotalCost()).Msg("plan found")

	fmt.Fprintf(e.Out, "\nSolution in %d moves:\n\n", plan.Len())
	for _, step := range plan.Steps {
		if step.Move != nil {
			move := termenv.String(step.Move.String()).Foreground(e.Profile.Color("3"))
			fmt.Fprintf(e.Out, "  %s\n", move)
		}
		fmt.Fprintf(e.Out, "  %s\n", step.State)
	}
	return plan, metric
}
