package oplog

// History is the undo/redo stack owned by the document editor. Recording
// a new operation clears the redo stack; rapid interactive edits should
// be coalesced into a single Batch by the caller before recording.
type History struct {
	undo []Op
	redo []Op
}

func NewHistory() *History {
	return &History{}
}

// Record applies the operation and pushes it on the undo stack.
func (h *History) Record(s State, op Op) State {
	out := Apply(s, op)
	h.undo = append(h.undo, op)
	h.redo = h.redo[:0]
	return out
}

// Undo reverts the most recent operation. The state is returned unchanged
// when there is nothing to undo.
func (h *History) Undo(s State) State {
	if len(h.undo) == 0 {
		return s
	}
	op := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, op)
	return Apply(s, Invert(op))
}

// Redo re-applies the most recently undone operation.
func (h *History) Redo(s State) State {
	if len(h.redo) == 0 {
		return s
	}
	op := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, op)
	return Apply(s, op)
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the undo depth.
func (h *History) Len() int { return len(h.undo) }
