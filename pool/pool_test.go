package pool_test

import (
	"fmt"
	"testing"

	"github.com/plus3/scenedit/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y float32
}

func TestHandleEncoding(t *testing.T) {
	tests := []struct {
		index      uint32
		generation uint32
	}{
		{0, 1},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d,gen=%d", tt.index, tt.generation), func(t *testing.T) {
			h := pool.NewHandle[Position](tt.index, tt.generation)
			assert.Equal(t, tt.index, h.Index())
			assert.Equal(t, tt.generation, h.Generation())
		})
	}
}

func TestNoneHandle(t *testing.T) {
	p := pool.New[Position]()
	p.Spawn(Position{X: 1})

	h := pool.None[Position]()
	assert.True(t, h.IsNone())
	assert.False(t, p.Has(h))
	assert.Equal(t, "Handle(none)", h.String())
}

func TestSpawnAndGet(t *testing.T) {
	p := pool.New[Position]()

	a := p.Spawn(Position{X: 1, Y: 2})
	b := p.Spawn(Position{X: 3, Y: 4})

	assert.NotEqual(t, a, b)
	assert.False(t, a.IsNone())
	assert.Equal(t, 2, p.Len())

	pos, ok := p.Get(a)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)

	p.At(b).X = 10
	assert.Equal(t, float32(10), p.At(b).X)
}

func TestFreeInvalidatesHandle(t *testing.T) {
	p := pool.New[Position]()
	h := p.Spawn(Position{X: 5})

	item, ok := p.Free(h)
	require.True(t, ok)
	assert.Equal(t, float32(5), item.X)
	assert.False(t, p.Has(h))
	assert.Equal(t, 0, p.Len())

	_, ok = p.Free(h)
	assert.False(t, ok, "double free must be a no-op")
}

func TestStaleHandleAfterReuse(t *testing.T) {
	p := pool.New[Position]()
	old := p.Spawn(Position{X: 1})
	p.Free(old)

	reused := p.Spawn(Position{X: 2})
	assert.Equal(t, old.Index(), reused.Index())
	assert.NotEqual(t, old.Generation(), reused.Generation())

	assert.False(t, p.Has(old))
	assert.True(t, p.Has(reused))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*pool.InvalidHandleError)
		require.True(t, ok)
		assert.Equal(t, "slot was reused", err.Reason)
	}()
	p.At(old)
}

func TestAtPanicsOutOfRange(t *testing.T) {
	p := pool.New[Position]()
	assert.PanicsWithError(t, "pool: invalid pool_test.Position handle 7:1: index out of range", func() {
		p.At(pool.NewHandle[Position](7, 1))
	})
}

func TestRestoreRevivesHandle(t *testing.T) {
	p := pool.New[Position]()
	a := p.Spawn(Position{X: 1})
	b := p.Spawn(Position{X: 2})

	item, _ := p.Free(a)
	p.Restore(a, item)

	assert.True(t, p.Has(a))
	assert.True(t, p.Has(b))
	assert.Equal(t, float32(1), p.At(a).X)
	assert.Equal(t, 2, p.Len())

	// The slot must not be handed out twice.
	c := p.Spawn(Position{X: 3})
	assert.NotEqual(t, a.Index(), c.Index())
}

func TestRestoreInStackOrder(t *testing.T) {
	p := pool.New[Position]()
	x := p.Spawn(Position{X: 1})

	// delete x, then spawn y into the same slot
	xVal, _ := p.Free(x)
	y := p.Spawn(Position{X: 2})
	require.Equal(t, x.Index(), y.Index())

	// undo both in reverse order
	yVal, _ := p.Free(y)
	p.Restore(x, xVal)
	assert.True(t, p.Has(x))
	assert.False(t, p.Has(y))

	// redo both
	p.Free(x)
	p.Restore(y, yVal)
	assert.True(t, p.Has(y))
	assert.False(t, p.Has(x))
}

func TestRestoreOccupiedPanics(t *testing.T) {
	p := pool.New[Position]()
	h := p.Spawn(Position{})
	assert.Panics(t, func() {
		p.Restore(h, Position{})
	})
}

func TestRestoreBeyondEnd(t *testing.T) {
	p := pool.New[Position]()
	h := pool.NewHandle[Position](130, 4)
	p.Restore(h, Position{X: 9})

	assert.Equal(t, float32(9), p.At(h).X)
	assert.Equal(t, 1, p.Len())

	// Skipped slots are available to Spawn.
	n := p.Spawn(Position{})
	assert.Less(t, n.Index(), uint32(130))
}

func TestAllIteratesInStorageOrder(t *testing.T) {
	p := pool.New[Position]()
	var handles []pool.Handle[Position]
	for i := 0; i < 200; i++ {
		handles = append(handles, p.Spawn(Position{X: float32(i)}))
	}
	p.Free(handles[3])
	p.Free(handles[150])

	var seen []float32
	for h, pos := range p.All() {
		assert.True(t, p.Has(h))
		seen = append(seen, pos.X)
	}

	assert.Len(t, seen, 198)
	assert.Equal(t, float32(0), seen[0])
	assert.Equal(t, float32(4), seen[3])
	assert.Equal(t, float32(199), seen[len(seen)-1])
}

func TestAllAllowsMutation(t *testing.T) {
	p := pool.New[Position]()
	a := p.Spawn(Position{X: 1})
	p.Spawn(Position{X: 2})

	for _, pos := range p.All() {
		pos.Y = 7
	}
	assert.Equal(t, float32(7), p.At(a).Y)
}

func TestClear(t *testing.T) {
	p := pool.New[Position]()
	a := p.Spawn(Position{})
	p.Spawn(Position{})

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has(a))
}

func BenchmarkSpawnFree(b *testing.B) {
	p := pool.New[Position]()
	for i := 0; i < b.N; i++ {
		h := p.Spawn(Position{X: 1})
		p.Free(h)
	}
}

func BenchmarkAt(b *testing.B) {
	p := pool.New[Position]()
	h := p.Spawn(Position{X: 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.At(h)
	}
}
