// Package bridge implements the bridge-and-torch puzzle: a group of people
// with different walking speeds must cross a bridge at night. The bridge
// holds a limited number of people at once, every crossing needs the torch,
// and the torch only burns for so long. A group walks at the pace of its
// slowest member.
package bridge

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"crossing/puzzle"
)

// Torch tracks which side the torch is on and how long it will still burn.
type Torch struct {
	Side      puzzle.Bank
	Remaining int
}

// State is an immutable snapshot of the puzzle. Both banks hold walking
// times in ascending order so that equal configurations hash equally.
type State struct {
	Left     []int
	Right    []int
	Torch    Torch
	Capacity int
	Elapsed  int
}

// Move sends a group of people across the bridge, away from From. The group
// is a multiset of walking times in ascending order.
type Move struct {
	People []int
	From   puzzle.Bank
}

// New creates the starting state: everyone on the left bank with the torch.
func New(times []int, capacity, torch int) State {
	left := slices.Clone(times)
	slices.Sort(left)
	return State{
		Left:     left,
		Torch:    Torch{Side: puzzle.Left, Remaining: torch},
		Capacity: capacity,
	}
}

// Default is the classic instance: walkers of 1, 2, 5 and 8 minutes, a
// bridge that holds two, and a torch that burns for 15 minutes.
func Default() State {
	return New([]int{1, 2, 5, 8}, 2, 15)
}

func (s State) here() []int {
	if s.Torch.Side == puzzle.Left {
		return s.Left
	}
	return s.Right
}

// LegalMoves enumerates every distinct group of 1..Capacity people on the
// torch's side whose slowest member does not outlast the torch. Groups with
// identical walking times are emitted once.
func (s State) LegalMoves() []puzzle.Move {
	side := s.here()

	var moves []puzzle.Move
	seen := make(map[string]struct{})
	for size := 1; size <= s.Capacity && size <= len(side); size++ {
		combinations(len(side), size, func(idx []int) {
			people := make([]int, size)
			for i, j := range idx {
				people[i] = side[j]
			}
			key := fmt.Sprint(people)
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}

			move := Move{People: people, From: s.Torch.Side}
			if move.Cost() <= s.Torch.Remaining {
				moves = append(moves, move)
			}
		})
	}
	return moves
}

// combinations calls fn with every k-subset of [0,n), in lexicographic
// order. fn must not retain idx.
func combinations(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	var walk func(pos, next int)
	walk = func(pos, next int) {
		if pos == k {
			fn(idx)
			return
		}
		for i := next; i < n; i++ {
			idx[pos] = i
			walk(pos+1, i+1)
		}
	}
	walk(0, 0)
}

// Play moves the group to the opposite bank, advances the clock and burns
// the torch by the group's walking time.
func (s State) Play(m puzzle.Move) puzzle.State {
	move := m.(Move)

	here := slices.Clone(s.here())
	var there []int
	if s.Torch.Side == puzzle.Left {
		there = slices.Clone(s.Right)
	} else {
		there = slices.Clone(s.Left)
	}

	for _, p := range move.People {
		i := slices.Index(here, p)
		here = slices.Delete(here, i, i+1)
		there = append(there, p)
	}
	slices.Sort(there)

	cost := move.Cost()
	next := State{
		Torch:    Torch{Side: s.Torch.Side.Opposite(), Remaining: s.Torch.Remaining - cost},
		Capacity: s.Capacity,
		Elapsed:  s.Elapsed + cost,
	}
	if s.Torch.Side == puzzle.Left {
		next.Left, next.Right = here, there
	} else {
		next.Left, next.Right = there, here
	}
	return next
}

// IsGoal reports whether everyone has reached the right bank.
func (s State) IsGoal() bool {
	return len(s.Left) == 0
}

// Hash covers the left bank and the torch. The torch's remaining time stands
// in for the elapsed time, so two paths reaching the same configuration at
// the same cost collapse into one state.
func (s State) Hash() puzzle.StateHash {
	hasher := fnv.New64a()
	for _, t := range s.Left {
		binary.Write(hasher, binary.LittleEndian, int64(t))
	}
	binary.Write(hasher, binary.LittleEndian, int64(s.Torch.Side))
	binary.Write(hasher, binary.LittleEndian, int64(s.Torch.Remaining))
	return puzzle.StateHash(hasher.Sum64())
}

func (s State) String() string {
	return fmt.Sprintf("At %s: %s on the left, %s on the right",
		minutes(s.Elapsed), bank(s.Left), bank(s.Right))
}

func bank(people []int) string {
	if len(people) == 0 {
		return "nobody"
	}
	return group(people)
}

func group(people []int) string {
	parts := make([]string, len(people))
	for i, t := range people {
		parts[i] = fmt.Sprintf("<%d>", t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func minutes(n int) string {
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}

// Cost is the walking time of the slowest person in the group.
func (m Move) Cost() int {
	max := 0
	for _, t := range m.People {
		if t > max {
			max = t
		}
	}
	return max
}

func (m Move) String() string {
	if m.From == puzzle.Left {
		return fmt.Sprintf("→ %s cross forward, taking %s", group(m.People), minutes(m.Cost()))
	}
	verb := "return"
	if len(m.People) == 1 {
		verb = "returns"
	}
	return fmt.Sprintf("← %s %s, taking %s", group(m.People), verb, minutes(m.Cost()))
}
