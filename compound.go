package scenecmd

// CompoundCommand groups multiple sub-commands into a single undo/redo
// step, for operations that are logically one user action but consist of
// several atomic changes. Sub-commands execute in the order they were
// added and undo in reverse order.
type CompoundCommand struct {
	description string
	commands    []Command
}

// NewCompoundCommand creates an empty compound with a label for the
// history UI.
func NewCompoundCommand(description string) *CompoundCommand {
	return &CompoundCommand{description: description}
}

// Add appends a sub-command. Not legal after the compound has been
// pushed to a history.
func (c *CompoundCommand) Add(cmd Command) {
	if cmd != nil {
		c.commands = append(c.commands, cmd)
	}
}

// Len returns the number of sub-commands.
func (c *CompoundCommand) Len() int {
	return len(c.commands)
}

// Execute runs all sub-commands in order.
func (c *CompoundCommand) Execute() {
	for _, cmd := range c.commands {
		cmd.Execute()
	}
}

// Undo reverses all sub-commands in reverse order.
func (c *CompoundCommand) Undo() {
	for i := len(c.commands) - 1; i >= 0; i-- {
		c.commands[i].Undo()
	}
}

// Description implements Command.
func (c *CompoundCommand) Description() string {
	return c.description
}
