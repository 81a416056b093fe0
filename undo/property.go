package undo

// Field describes one editable value reached through a handle of type H.
// Get and Set are expected to panic if the handle does not resolve.
type Field[C any, H comparable, V any] struct {
	Label string
	Get   func(ctx C, h H) V
	Set   func(ctx C, h H, value V)
}

// Edit creates a command that sets the field behind h to value.
func (f *Field[C, H, V]) Edit(h H, value V) *Property[C, H, V] {
	return &Property[C, H, V]{
		field:  f,
		handle: h,
		value:  value,
	}
}

// Property is the command produced by Field.Edit. The previous value is read on every
// Execute, so redoing after an external change restores what was there at redo time.
type Property[C any, H comparable, V any] struct {
	field    *Field[C, H, V]
	handle   H
	value    V
	old      V
	executed bool
}

func (p *Property[C, H, V]) Name(C) string {
	return p.field.Label
}

func (p *Property[C, H, V]) Execute(ctx C) {
	p.old = p.field.Get(ctx, p.handle)
	p.field.Set(ctx, p.handle, p.value)
	p.executed = true
}

func (p *Property[C, H, V]) Revert(ctx C) {
	p.field.Set(ctx, p.handle, p.old)
}

func (p *Property[C, H, V]) Finalize(C) {}

// Handle returns the target handle.
func (p *Property[C, H, V]) Handle() H {
	return p.handle
}

// Value returns the value applied by Execute.
func (p *Property[C, H, V]) Value() V {
	return p.value
}

// Old returns the value captured by the last Execute. The second result is false if the
// command has never been executed.
func (p *Property[C, H, V]) Old() (V, bool) {
	return p.old, p.executed
}
