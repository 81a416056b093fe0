// Package undo provides reversible commands and a cursor-based history to apply them.
//
// A Command mutates a context of type C only inside Execute and Revert. The context is
// passed on every call and must not be retained by the command. Commands address the
// data they touch through handles and capture whatever they need to undo themselves
// while executing.
package undo

// Command is a reversible unit of mutation against a context of type C.
//
// Execute followed by Revert must leave the context observationally identical to how it
// was before Execute, including any entities touched as a side effect. Both methods are
// infallible: a command that cannot resolve its targets has outlived them and panics.
type Command[C any] interface {
	// Name returns a short display label. It must not mutate the command or context.
	Name(ctx C) string
	Execute(ctx C)
	Revert(ctx C)
	// Finalize is called once when the command leaves the history for good.
	Finalize(ctx C)
}

// NoFinalize can be embedded by commands that hold no external resources.
type NoFinalize[C any] struct{}

func (NoFinalize[C]) Finalize(C) {}
