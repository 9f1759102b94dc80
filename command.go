package scenecmd

// Command is a reversible unit of editing work. Execute applies the
// change and Undo reverses it; the history re-applies an undone command
// by calling Execute again.
//
// Commands handle their own failures: a command that cannot apply
// no-ops and reports through slog, it never panics or returns an error
// to the history. A partially applied command stays on the history and
// undoes whatever subset it did apply.
type Command interface {
	Execute()
	Undo()

	// Description returns a human-readable label for history UI.
	Description() string
}

// DefaultMaxDepth is the history depth used until SetMaxDepth is called.
const DefaultMaxDepth = 100

// CommandHistory sequences executed commands for undo/redo. It keeps
// two stacks: executed commands and undone commands. Executing a new
// command clears the undone stack, so history is strictly linear, and
// undo/redo always operate in LIFO order.
//
// The save position tracks whether the current state differs from the
// last save, for dirty-state UI.
type CommandHistory struct {
	done   []Command
	undone []Command

	maxDepth int

	// position in the command sequence, and the position when the scene
	// was last saved
	current int
	saved   int
}

// NewCommandHistory creates an empty history with DefaultMaxDepth.
func NewCommandHistory() *CommandHistory {
	return &CommandHistory{maxDepth: DefaultMaxDepth}
}

// Execute runs the command immediately and retains it for undo.
// Executing a new command invalidates all previously undone commands.
// When the history exceeds its max depth the oldest command is evicted.
func (h *CommandHistory) Execute(cmd Command) {
	if cmd == nil {
		return
	}

	cmd.Execute()

	h.done = append(h.done, cmd)
	h.undone = h.undone[:0]
	h.current++

	for len(h.done) > h.maxDepth {
		h.done = h.done[1:]
		// The evicted command shifts every recorded position down one.
		if h.saved > 0 {
			h.saved--
		}
		h.current--
	}
}

// Undo reverses the most recent command. Returns false without side
// effects if there is nothing to undo.
func (h *CommandHistory) Undo() bool {
	n := len(h.done)
	if n == 0 {
		return false
	}

	cmd := h.done[n-1]
	h.done = h.done[:n-1]

	cmd.Undo()

	h.undone = append(h.undone, cmd)
	h.current--
	return true
}

// Redo re-applies the most recently undone command. Returns false
// without side effects if there is nothing to redo.
func (h *CommandHistory) Redo() bool {
	n := len(h.undone)
	if n == 0 {
		return false
	}

	cmd := h.undone[n-1]
	h.undone = h.undone[:n-1]

	cmd.Execute()

	h.done = append(h.done, cmd)
	h.current++
	return true
}

// CanUndo reports whether an executed command is available to undo.
func (h *CommandHistory) CanUndo() bool {
	return len(h.done) > 0
}

// CanRedo reports whether an undone command is available to redo.
func (h *CommandHistory) CanRedo() bool {
	return len(h.undone) > 0
}

// Clear drops all history and resets the save position.
func (h *CommandHistory) Clear() {
	h.done = nil
	h.undone = nil
	h.current = 0
	h.saved = 0
}

// IsDirty reports whether the current state differs from the state at
// the last MarkSaved call.
func (h *CommandHistory) IsDirty() bool {
	return h.current != h.saved
}

// MarkSaved records the current position as the saved state, resetting
// the dirty flag until the history changes again.
func (h *CommandHistory) MarkSaved() {
	h.saved = h.current
}

// SetMaxDepth sets the maximum number of retained commands. The oldest
// commands are evicted as new ones are executed.
func (h *CommandHistory) SetMaxDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	h.maxDepth = depth
}

// MaxDepth returns the maximum number of retained commands.
func (h *CommandHistory) MaxDepth() int {
	return h.maxDepth
}

// UndoCount returns the number of commands available to undo.
func (h *CommandHistory) UndoCount() int {
	return len(h.done)
}

// RedoCount returns the number of commands available to redo.
func (h *CommandHistory) RedoCount() int {
	return len(h.undone)
}
