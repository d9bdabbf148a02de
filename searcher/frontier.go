package searcher

// frontier holds the arena indices of discovered but unexpanded nodes.
type frontier struct {
	mode  Mode
	items []int
}

func newFrontier(mode Mode) *frontier {
	return &frontier{mode: mode}
}

func (f *frontier) push(id int) {
	f.items = append(f.items, id)
}

func (f *frontier) pop() (int, bool) {
	if len(f.items) == 0 {
		return 0, false
	}
	if f.mode == DepthFirst {
		id := f.items[len(f.items)-1]
		f.items = f.items[:len(f.items)-1]
		return id, true
	}
	id := f.items[0]
	f.items = f.items[1:]
	return id, true
}

func (f *frontier) len() int {
	return len(f.items)
}
