package puzzle

import "fmt"

// Bank identifies a side of the river.
type Bank int

const (
	Left Bank = iota
	Right
)

// Opposite returns the other side of the river.
func (b Bank) Opposite() Bank {
	if b == Left {
		return Right
	}
	return Left
}

func (b Bank) String() string {
	if b == Left {
		return "left"
	}
	return "right"
}

// StateHash uniquely identifies a state configuration. Two states that are
// semantically identical (same configuration, ignoring how they were reached)
// must produce the same hash, otherwise cycle detection cannot terminate.
type StateHash uint64

// Move describes one legal transition between two states: who travels, in
// which direction, and how much time it costs.
type Move interface {
	fmt.Stringer
	// Cost is the time the move takes. Row-boat puzzles cost 1 per crossing,
	// the bridge costs the walking time of the slowest person on it.
	Cost() int
}

// State is an immutable snapshot of a puzzle world. Operations on State
// always return a new copy; the searcher never mutates one.
type State interface {
	fmt.Stringer
	// LegalMoves returns every move allowed from this state, in a fixed
	// deterministic order. Domain safety rules are enforced here: forbidden
	// loadings are simply absent from the result, and a dead end returns
	// an empty slice.
	LegalMoves() []Move
	// Play applies a move returned by LegalMoves and returns the resulting
	// state.
	Play(Move) State
	// IsGoal reports whether this state satisfies the win condition.
	IsGoal() bool
	// Hash returns the canonical identity of this state.
	Hash() StateHash
}
