package undo

import "time"

// History is an ordered log of executed commands with a cursor separating done commands
// (before the cursor) from undone ones (at or after the cursor).
type History[C any] struct {
	commands []Command[C]
	cursor   int
	limit    int
	stats    historyStatsInternal
}

// NewHistory creates an empty history. A positive limit caps the number of retained
// commands; the oldest command is finalized and dropped when the cap is exceeded.
func NewHistory[C any](limit int) *History[C] {
	if limit < 0 {
		limit = 0
	}
	return &History[C]{
		commands: make([]Command[C], 0),
		limit:    limit,
		stats:    newHistoryStatsInternal(),
	}
}

// Do discards every undone command, executes cmd and makes it the new top of the stack.
func (h *History[C]) Do(ctx C, cmd Command[C]) {
	h.truncate(ctx)

	h.execute(ctx, cmd)
	h.commands = append(h.commands, cmd)
	h.cursor++

	if h.limit > 0 && len(h.commands) > h.limit {
		h.commands[0].Finalize(ctx)
		h.commands[0] = nil
		h.commands = h.commands[1:]
		h.cursor--
		h.stats.evicted++
		h.stats.finalized++
	}
}

// Undo reverts the command just below the cursor. It returns false when there is
// nothing to undo.
func (h *History[C]) Undo(ctx C) bool {
	if h.cursor == 0 {
		return false
	}

	h.cursor--
	h.commands[h.cursor].Revert(ctx)
	h.stats.reverts++
	return true
}

// Redo re-executes the command at the cursor. It returns false when there is nothing
// to redo.
func (h *History[C]) Redo(ctx C) bool {
	if h.cursor == len(h.commands) {
		return false
	}

	h.execute(ctx, h.commands[h.cursor])
	h.cursor++
	h.stats.redos++
	return true
}

// Clear finalizes every stored command and empties the history.
func (h *History[C]) Clear(ctx C) {
	for i, cmd := range h.commands {
		cmd.Finalize(ctx)
		h.commands[i] = nil
		h.stats.finalized++
	}
	h.commands = h.commands[:0]
	h.cursor = 0
}

func (h *History[C]) truncate(ctx C) {
	if h.cursor == len(h.commands) {
		return
	}

	for i := h.cursor; i < len(h.commands); i++ {
		h.commands[i].Finalize(ctx)
		h.commands[i] = nil
		h.stats.truncated++
		h.stats.finalized++
	}
	h.commands = h.commands[:h.cursor]
}

func (h *History[C]) execute(ctx C, cmd Command[C]) {
	start := time.Now()
	cmd.Execute(ctx)
	h.stats.record(cmd.Name(ctx), time.Since(start))
}

// Len returns the number of stored commands, done and undone.
func (h *History[C]) Len() int {
	return len(h.commands)
}

// Cursor returns the number of done commands.
func (h *History[C]) Cursor() int {
	return h.cursor
}

// Limit returns the configured cap, 0 meaning unbounded.
func (h *History[C]) Limit() int {
	return h.limit
}

func (h *History[C]) CanUndo() bool {
	return h.cursor > 0
}

func (h *History[C]) CanRedo() bool {
	return h.cursor < len(h.commands)
}

// Top returns the most recently done command.
func (h *History[C]) Top() (Command[C], bool) {
	if h.cursor == 0 {
		return nil, false
	}
	return h.commands[h.cursor-1], true
}

// Next returns the command Redo would execute.
func (h *History[C]) Next() (Command[C], bool) {
	if h.cursor == len(h.commands) {
		return nil, false
	}
	return h.commands[h.cursor], true
}

// Entry describes one stored command for display.
type Entry struct {
	Name string
	Done bool
}

// Entries lists the stored commands from oldest to newest.
func (h *History[C]) Entries(ctx C) []Entry {
	entries := make([]Entry, len(h.commands))
	for i, cmd := range h.commands {
		entries[i] = Entry{
			Name: cmd.Name(ctx),
			Done: i < h.cursor,
		}
	}
	return entries
}
