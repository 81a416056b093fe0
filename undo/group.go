package undo

// Group runs several commands as one history entry. Children execute in order and
// revert in reverse order.
type Group[C any] struct {
	label    string
	commands []Command[C]
}

// NewGroup creates a group with the given display label.
func NewGroup[C any](label string, commands ...Command[C]) *Group[C] {
	return &Group[C]{
		label:    label,
		commands: commands,
	}
}

// Add appends a command to the group. It must be called before the group is executed.
func (g *Group[C]) Add(cmd Command[C]) {
	g.commands = append(g.commands, cmd)
}

// Len returns the number of child commands.
func (g *Group[C]) Len() int {
	return len(g.commands)
}

func (g *Group[C]) Name(C) string {
	return g.label
}

func (g *Group[C]) Execute(ctx C) {
	for _, cmd := range g.commands {
		cmd.Execute(ctx)
	}
}

func (g *Group[C]) Revert(ctx C) {
	for i := len(g.commands) - 1; i >= 0; i-- {
		g.commands[i].Revert(ctx)
	}
}

func (g *Group[C]) Finalize(ctx C) {
	for _, cmd := range g.commands {
		cmd.Finalize(ctx)
	}
}
