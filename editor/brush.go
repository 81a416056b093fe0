package editor

import "sync"

type BrushMode int

const (
	BrushRaise BrushMode = iota
	BrushLower
	BrushFlatten
	BrushDrawOnMask
)

func (m BrushMode) String() string {
	switch m {
	case BrushRaise:
		return "Raise"
	case BrushLower:
		return "Lower"
	case BrushFlatten:
		return "Flatten"
	case BrushDrawOnMask:
		return "DrawOnMask"
	default:
		return "Unknown"
	}
}

type BrushShape int

const (
	BrushCircle BrushShape = iota
	BrushRectangle
)

// BrushState is the terrain brush configuration. Layer and Alpha only apply to
// BrushDrawOnMask; Amount applies to BrushRaise and BrushLower.
type BrushState struct {
	Mode   BrushMode
	Shape  BrushShape
	Radius float32
	Width  float32
	Length float32
	Amount float32
	Layer  int
	Alpha  float32
}

// Brush is shared between the terrain panel and whatever applies strokes. All access goes
// through With or Snapshot.
type Brush struct {
	mu    sync.Mutex
	state BrushState
}

func NewBrush() *Brush {
	return &Brush{
		state: BrushState{
			Mode:   BrushRaise,
			Shape:  BrushCircle,
			Radius: 2,
			Width:  4,
			Length: 4,
			Amount: 0.1,
			Alpha:  1,
		},
	}
}

// With runs fn while holding the brush lock.
func (b *Brush) With(fn func(*BrushState)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.state)
}

// Snapshot returns a copy of the current state.
func (b *Brush) Snapshot() BrushState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
