package searcher

import "crossing/puzzle"

// node wraps a state in the search tree. The move is the one that produced
// the state from its parent; cost is the cumulative time along the path.
type node struct {
	parent int // arena index; the root points at itself
	move   puzzle.Move
	state  puzzle.State
	cost   int
}

// history is the arena of every node created during one search. Parent links
// are arena indices rather than pointers, so the whole tree is released in
// one piece when the search returns and nothing internal escapes to callers.
type history struct {
	nodes []node
}

func (h *history) addRoot(state puzzle.State) int {
	h.nodes = append(h.nodes, node{parent: 0, state: state})
	return 0
}

func (h *history) add(parent int, move puzzle.Move, state puzzle.State) int {
	id := len(h.nodes)
	h.nodes = append(h.nodes, node{
		parent: parent,
		move:   move,
		state:  state,
		cost:   h.nodes[parent].cost + move.Cost(),
	})
	return id
}

// backtrack walks parent links from the given node to the root and returns
// the path in start-to-goal order, flattened to states and moves.
func (h *history) backtrack(id int) *Plan {
	var steps []Step
	for {
		n := h.nodes[id]
		steps = append(steps, Step{State: n.state, Move: n.move, Cost: n.cost})
		if id == n.parent {
			break
		}
		id = n.parent
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &Plan{Steps: steps}
}
