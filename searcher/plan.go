package searcher

import "crossing/puzzle"

// Step pairs a state with the move that reached it. The first step of a plan
// carries the initial state, a nil Move and cost 0.
type Step struct {
	State puzzle.State
	Move  puzzle.Move
	Cost  int // cumulative time after the move
}

// Plan is the ordered solution path from the initial state to a goal state.
// It is immutable once returned.
type Plan struct {
	Steps []Step
}

// Len returns the number of moves in the plan.
func (p *Plan) Len() int {
	if len(p.Steps) == 0 {
		return 0
	}
	return len(p.Steps) - 1
}

// TotalCost returns the elapsed time at the final step.
func (p *Plan) TotalCost() int {
	if len(p.Steps) == 0 {
		return 0
	}
	return p.Steps[len(p.Steps)-1].Cost
}
