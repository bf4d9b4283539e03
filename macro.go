package remotecontrol

import (
	"context"
	"slices"
)

// MacroCommand groups an ordered sequence of commands into one reversible
// unit.
//
// Invoke forwards to every sub-command in declaration order. Reverse forwards
// in the opposite order.
type MacroCommand struct {
	name     string
	commands []Command
}

// NewMacroCommand creates a macro over cmds. Nil entries become the null
// command.
func NewMacroCommand(name string, cmds ...Command) *MacroCommand {
	m := &MacroCommand{
		name:     name,
		commands: make([]Command, 0, len(cmds)),
	}
	for _, cmd := range cmds {
		m.Add(cmd)
	}
	return m
}

// Invoke runs all sub-commands in order.
func (m *MacroCommand) Invoke(ctx context.Context) {
	for _, cmd := range m.commands {
		cmd.Invoke(ctx)
	}
}

// Reverse reverses all sub-commands in reverse order.
func (m *MacroCommand) Reverse(ctx context.Context) {
	for i := len(m.commands) - 1; i >= 0; i-- {
		m.commands[i].Reverse(ctx)
	}
}

// Name returns the macro's name, or "MacroCommand" when it has none.
func (m *MacroCommand) Name() string {
	if m.name != "" {
		return m.name
	}
	return "MacroCommand"
}

// Add appends a command to the macro.
func (m *MacroCommand) Add(cmd Command) {
	m.commands = append(m.commands, orNull(cmd))
}

// Len returns the number of sub-commands.
func (m *MacroCommand) Len() int {
	return len(m.commands)
}

// Commands returns a copy of the sub-commands in declaration order.
func (m *MacroCommand) Commands() []Command {
	return slices.Clone(m.commands)
}
