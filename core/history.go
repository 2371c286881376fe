// SPDX-License-Identifier: MIT
// File: history.go
// Role: Bounded undo/redo ring and the Graph methods driving it.
// Model:
//   - buf holds up to cap commands starting at index start; size of them are
//     valid and the first pos are applied.
//   - Push drops the redo branch (entries past pos), evicts the oldest entry
//     when full, then appends.
//   - Undo steps pos back and reverts that command; Redo re-applies the
//     command at pos and steps forward.
// Invariants:
//   - 0 ≤ pos ≤ size ≤ cap.
//   - CanUndo ⇔ pos > 0; CanRedo ⇔ pos < size.

package core

// History is a fixed-capacity command ring.
type History struct {
	buf   []Command
	start int
	size  int
	pos   int
}

// NewHistory returns an empty history holding up to capacity commands.
// Panics with ErrBadCapacity if capacity < 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		panic(ErrBadCapacity)
	}

	return &History{buf: make([]Command, capacity)}
}

// Push records c as the newest applied command.
//
// Complexity: O(k) for k discarded redo entries, O(1) otherwise.
func (h *History) Push(c Command) {
	for i := h.pos; i < h.size; i++ {
		h.buf[h.index(i)] = nil
	}
	h.size = h.pos
	if h.size == len(h.buf) {
		h.buf[h.start] = nil
		h.start = (h.start + 1) % len(h.buf)
		h.size--
		h.pos--
	}
	h.buf[h.index(h.size)] = c
	h.size++
	h.pos = h.size
}

// CanUndo reports whether an applied command remains.
func (h *History) CanUndo() bool { return h.pos > 0 }

// CanRedo reports whether an undone command can be re-applied.
func (h *History) CanRedo() bool { return h.pos < h.size }

// Len returns the number of recorded commands, applied or not.
func (h *History) Len() int { return h.size }

// Cap returns the ring capacity.
func (h *History) Cap() int { return len(h.buf) }

// Position returns how many recorded commands are currently applied.
func (h *History) Position() int { return h.pos }

// Clear drops every recorded command.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = nil
	}
	h.start, h.size, h.pos = 0, 0, 0
}

// Descriptions lists recorded commands from oldest to newest.
func (h *History) Descriptions() []string {
	out := make([]string, 0, h.size)
	for i := 0; i < h.size; i++ {
		out = append(out, h.buf[h.index(i)].Description())
	}

	return out
}

func (h *History) back() (Command, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.pos--

	return h.buf[h.index(h.pos)], true
}

func (h *History) forward() (Command, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	c := h.buf[h.index(h.pos)]
	h.pos++

	return c, true
}

func (h *History) index(i int) int { return (h.start + i) % len(h.buf) }

// record pushes c unless g keeps no history.
func (g *Graph) record(c Command) {
	if g.history != nil {
		g.history.Push(c)
	}
}

// AddHistoryUpdate records a command built by the caller, for edits applied
// through means other than the Graph mutators. The command is assumed to be
// already applied.
func (g *Graph) AddHistoryUpdate(c Command) {
	if c == nil {
		return
	}
	g.record(c)
}

// Undo reverts the most recent applied command and returns g. Without one
// it does nothing.
func (g *Graph) Undo() *Graph {
	if g.history == nil {
		return g
	}
	if c, ok := g.history.back(); ok {
		c.Undo(g)
	}

	return g
}

// Redo re-applies the most recently undone command and returns g.
func (g *Graph) Redo() *Graph {
	if g.history == nil {
		return g
	}
	if c, ok := g.history.forward(); ok {
		c.Redo(g)
	}

	return g
}

// CanUndo reports whether Undo would change anything.
func (g *Graph) CanUndo() bool { return g.history != nil && g.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (g *Graph) CanRedo() bool { return g.history != nil && g.history.CanRedo() }

// ClearEditHistory forgets every recorded command. The graph is unchanged.
func (g *Graph) ClearEditHistory() {
	if g.history != nil {
		g.history.Clear()
	}
}

// HistoryDescriptions lists recorded commands from oldest to newest.
func (g *Graph) HistoryDescriptions() []string {
	if g.history == nil {
		return nil
	}

	return g.history.Descriptions()
}
