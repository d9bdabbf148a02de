// Package zombies implements the humans-and-zombies puzzle (a retelling of
// missionaries-and-cannibals): equal groups of humans and zombies must cross
// a river by boat, and on no bank may the zombies ever outnumber the humans
// present there.
package zombies

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"crossing/puzzle"
)

// BankState counts the humans and zombies on one river bank.
type BankState struct {
	Humans  int
	Zombies int
}

func (b BankState) IsEmpty() bool {
	return b.Humans+b.Zombies == 0
}

// Safe reports whether the humans on this bank survive: they must not be
// outnumbered by zombies, unless there are no humans at all.
func (b BankState) Safe() bool {
	return b.Humans == 0 || b.Zombies <= b.Humans
}

// State is an immutable snapshot of the puzzle.
type State struct {
	Left     BankState
	Right    BankState
	Boat     puzzle.Bank
	Capacity int
}

// Move ferries a loading across the river, away from From. Anyone can row,
// so a boat full of zombies is a legal crossing.
type Move struct {
	Humans  int
	Zombies int
	From    puzzle.Bank
}

// New creates the starting state with everyone on the left bank.
func New(humans, zombies, capacity int) State {
	return State{
		Left:     BankState{Humans: humans, Zombies: zombies},
		Boat:     puzzle.Left,
		Capacity: capacity,
	}
}

// Default is the classic instance: three humans, three zombies, boat
// capacity two.
func Default() State {
	return New(3, 3, 2)
}

func (s State) hereThere() (BankState, BankState) {
	if s.Boat == puzzle.Left {
		return s.Left, s.Right
	}
	return s.Right, s.Left
}

// Safe reports whether neither bank has humans outnumbered.
func (s State) Safe() bool {
	return s.Left.Safe() && s.Right.Safe()
}

// LegalMoves enumerates every non-empty loading of the boat that fits its
// capacity and leaves both banks safe after the crossing.
func (s State) LegalMoves() []puzzle.Move {
	here, there := s.hereThere()

	var moves []puzzle.Move
	for z := 0; z <= min(here.Zombies, s.Capacity); z++ {
		for h := 0; h+z <= s.Capacity && h <= here.Humans; h++ {
			if h+z == 0 {
				continue
			}
			move := Move{Humans: h, Zombies: z, From: s.Boat}
			if move.applicable(here, there) {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

func (m Move) applicable(here, there BankState) bool {
	newHere := BankState{Humans: here.Humans - m.Humans, Zombies: here.Zombies - m.Zombies}
	newThere := BankState{Humans: there.Humans + m.Humans, Zombies: there.Zombies + m.Zombies}
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
	from.Humans -= move.Humans
	from.Zombies -= move.Zombies
	to.Humans += move.Humans
	to.Zombies += move.Zombies
	next.Boat = s.Boat.Opposite()
	return next
}

// IsGoal reports whether everyone has reached the right bank.
func (s State) IsGoal() bool {
	return s.Left.IsEmpty()
}

// Hash covers the left bank counts and the boat position; the right bank is
// implied by the totals.
func (s State) Hash() puzzle.StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.Left.Humans))
	binary.Write(hasher, binary.LittleEndian, int64(s.Left.Zombies))
	binary.Write(hasher, binary.LittleEndian, int64(s.Boat))
	return puzzle.StateHash(hasher.Sum64())
}

func (s State) String() string {
	return fmt.Sprintf("left bank: %s; right bank: %s (boat %s)",
		describe(s.Left.Humans, s.Left.Zombies),
		describe(s.Right.Humans, s.Right.Zombies),
		s.Boat)
}

func describe(humans, zombies int) string {
	var parts []string
	add := func(n int, singular, plural string) {
		if n == 1 {
			parts = append(parts, singular)
		} else if n > 1 {
			parts = append(parts, fmt.Sprintf("%d %s", n, plural))
		}
	}
	add(humans, "1 human", "humans")
	add(zombies, "1 zombie", "zombies")

	if len(parts) == 0 {
		return "nobody"
	}
	return strings.Join(parts, " and ")
}

// Cost is one crossing.
func (m Move) Cost() int {
	return 1
}

func (m Move) String() string {
	cargo := describe(m.Humans, m.Zombies)
	if m.From == puzzle.Left {
		return fmt.Sprintf("→ %s cross forward", cargo)
	}
	return fmt.Sprintf("← %s return", cargo)
}
