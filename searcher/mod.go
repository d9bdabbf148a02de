package searcher

import "fmt"

// Mode selects the frontier discipline. New nodes are always pushed at the
// tail; the end they are popped from is what distinguishes the two modes.
type Mode int

const (
	// DepthFirst pops the most recently added node (LIFO).
	DepthFirst Mode = iota
	// BreadthFirst pops the earliest added node (FIFO).
	BreadthFirst
)

func (m Mode) String() string {
	switch m {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a CLI-style mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("unknown search mode %q (want dfs or bfs)", s)
	}
}
