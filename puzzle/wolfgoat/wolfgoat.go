// Package wolfgoat implements the wolf-goat-cabbage puzzle: a farmer must
// ferry a wolf, a goat and a cabbage across a river in a small boat. Left
// unattended, the wolf eats the goat and the goat eats the cabbage. The
// counts of each participant and the boat capacity are configurable.
package wolfgoat

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"crossing/puzzle"
)

// BankState counts the participants on one river bank.
type BankState struct {
	Farmers  int
	Wolves   int
	Goats    int
	Cabbages int
}

func (b BankState) IsEmpty() bool {
	return b.Farmers+b.Wolves+b.Goats+b.Cabbages == 0
}

// Safe reports whether nothing on this bank gets eaten: wolf and goat, or
// goat and cabbage, may only share a bank when a farmer is present.
func (b BankState) Safe() bool {
	if b.Farmers > 0 {
		return true
	}
	if b.Wolves > 0 && b.Goats > 0 {
		return false
	}
	if b.Goats > 0 && b.Cabbages > 0 {
		return false
	}
	return true
}

// State is an immutable snapshot of the puzzle.
type State struct {
	Left     BankState
	Right    BankState
	Boat     puzzle.Bank
	Capacity int
}

// Move ferries a loading across the river, away from From. Every crossing
// needs at least one farmer to steer the boat.
type Move struct {
	Farmers  int
	Wolves   int
	Goats    int
	Cabbages int
	From     puzzle.Bank
}

// New creates the starting state with everything on the left bank.
func New(farmers, wolves, goats, cabbages, capacity int) State {
	return State{
		Left:     BankState{Farmers: farmers, Wolves: wolves, Goats: goats, Cabbages: cabbages},
		Boat:     puzzle.Left,
		Capacity: capacity,
	}
}

// Default is the classic instance: one of each, boat capacity two.
func Default() State {
	return New(1, 1, 1, 1, 2)
}

func (s State) hereThere() (BankState, BankState) {
	if s.Boat == puzzle.Left {
		return s.Left, s.Right
	}
	return s.Right, s.Left
}

// Safe reports whether neither bank is in a forbidden configuration.
func (s State) Safe() bool {
	return s.Left.Safe() && s.Right.Safe()
}

// LegalMoves enumerates every loading of the boat that fits its capacity,
// carries a farmer to steer, and leaves both banks safe after the crossing.
func (s State) LegalMoves() []puzzle.Move {
	here, there := s.hereThere()

	var moves []puzzle.Move
	for f := 0; f <= min(here.Farmers, s.Capacity); f++ {
		for w := 0; f+w <= s.Capacity && w <= here.Wolves; w++ {
			for g := 0; f+w+g <= s.Capacity && g <= here.Goats; g++ {
				for c := 0; f+w+g+c <= s.Capacity && c <= here.Cabbages; c++ {
					move := Move{Farmers: f, Wolves: w, Goats: g, Cabbages: c, From: s.Boat}
					if move.applicable(here, there) {
						moves = append(moves, move)
					}
				}
			}
		}
	}
	return moves
}

func (m Move) applicable(here, there BankState) bool {
	// Someone must steer the boat.
	if m.Farmers == 0 {
		return false
	}

	newHere := BankState{
		Farmers:  here.Farmers - m.Farmers,
		Wolves:   here.Wolves - m.Wolves,
		Goats:    here.Goats - m.Goats,
		Cabbages: here.Cabbages - m.Cabbages,
	}
	newThere := BankState{
		Farmers:  there.Farmers + m.Farmers,
		Wolves:   there.Wolves + m.Wolves,
		Goats:    there.Goats + m.Goats,
		Cabbages: there.Cabbages + m.Cabbages,
	}
	return newHere.Safe() && newThere.Safe()
}

// Play applies the loading and sends the boat to the other bank.
func (s State) Play(m puzzle.Move) puzzle.State {
	move := m.(Move)

	next := s
	from, to := &next.Left, &next.Right
	if s.Boat == puzzle.Right {
		from, to = to, from
	}
	from.Farmers -= move.Farmers
	from.Wolves -= move.Wolves
	from.Goats -= move.Goats
	from.Cabbages -= move.Cabbages
	to.Farmers += move.Farmers
	to.Wolves += move.Wolves
	to.Goats += move.Goats
	to.Cabbages += move.Cabbages
	next.Boat = s.Boat.Opposite()
	return next
}

// IsGoal reports whether everything has reached the right bank.
func (s State) IsGoal() bool {
	return s.Left.IsEmpty()
}

// Hash covers the left bank counts and the boat position; the right bank is
// implied by the totals.
func (s State) Hash() puzzle.StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.Left.Farmers))
	binary.Write(hasher, binary.LittleEndian, int64(s.Left.Wolves))
	binary.Write(hasher, binary.LittleEndian, int64(s.Left.Goats))
	binary.Write(hasher, binary.LittleEndian, int64(s.Left.Cabbages))
	binary.Write(hasher, binary.LittleEndian, int64(s.Boat))
	return puzzle.StateHash(hasher.Sum64())
}

func (s State) String() string {
	return fmt.Sprintf("left bank: %s; right bank: %s (boat %s)",
		describe(s.Left.Farmers, s.Left.Wolves, s.Left.Goats, s.Left.Cabbages),
		describe(s.Right.Farmers, s.Right.Wolves, s.Right.Goats, s.Right.Cabbages),
		s.Boat)
}

// describe renders counts as a readable list, e.g. "farmer, wolf and goat".
func describe(farmers, wolves, goats, cabbages int) string {
	var parts []string
	add := func(n int, singular, plural string) {
		if n == 1 {
			parts = append(parts, singular)
		} else if n > 1 {
			parts = append(parts, fmt.Sprintf("%d %s", n, plural))
		}
	}
	add(farmers, "farmer", "farmers")
	add(wolves, "wolf", "wolves")
	add(goats, "goat", "goats")
	add(cabbages, "cabbage", "cabbages")

	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

// Cost is one crossing.
func (m Move) Cost() int {
	return 1
}

func (m Move) String() string {
	cargo := describe(m.Farmers, m.Wolves, m.Goats, m.Cabbages)
	if m.From == puzzle.Left {
		return fmt.Sprintf("→ %s cross forward", cargo)
	}
	return fmt.Sprintf("← %s return", cargo)
}
