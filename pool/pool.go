package pool

import (
	"iter"
	"reflect"
)

const (
	blockSize = 64
)

// Pool stores values of type T in fixed-size blocks. A slot never moves once allocated,
// so pointers returned by At stay valid until the slot is freed, and handles stay valid
// across unrelated spawns and frees.
type Pool[T any] struct {
	blocks      [][blockSize]T
	filled      [][blockSize]bool
	generations [][blockSize]uint32
	freeSlots   []int
	nextIndex   int
	count       int
}

// New creates an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Spawn stores item in a free slot (or a new one) and returns its handle.
// Reusing a slot bumps its generation so that handles to the previous occupant go stale.
func (p *Pool[T]) Spawn(item T) Handle[T] {
	if len(p.freeSlots) > 0 {
		index := p.freeSlots[len(p.freeSlots)-1]
		p.freeSlots = p.freeSlots[:len(p.freeSlots)-1]

		blockIdx := index / blockSize
		slotIdx := index % blockSize

		gen := p.generations[blockIdx][slotIdx] + 1
		if gen == 0 {
			gen = 1
		}
		p.generations[blockIdx][slotIdx] = gen
		p.blocks[blockIdx][slotIdx] = item
		p.filled[blockIdx][slotIdx] = true
		p.count++
		return NewHandle[T](uint32(index), gen)
	}

	index := p.nextIndex
	p.nextIndex++
	p.grow(index)

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	p.generations[blockIdx][slotIdx] = 1
	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	p.count++
	return NewHandle[T](uint32(index), 1)
}

func (p *Pool[T]) grow(index int) {
	for index/blockSize >= len(p.blocks) {
		p.blocks = append(p.blocks, [blockSize]T{})
		p.filled = append(p.filled, [blockSize]bool{})
		p.generations = append(p.generations, [blockSize]uint32{})
	}
}

// Get resolves h. The second result is false if the slot is empty or was reused.
func (p *Pool[T]) Get(h Handle[T]) (*T, bool) {
	if h.IsNone() {
		return nil, false
	}

	index := int(h.Index())
	if index >= p.nextIndex {
		return nil, false
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	if !p.filled[blockIdx][slotIdx] || p.generations[blockIdx][slotIdx] != h.Generation() {
		return nil, false
	}

	return &p.blocks[blockIdx][slotIdx], true
}

// At resolves h and panics with *InvalidHandleError if it does not refer to a live slot.
func (p *Pool[T]) At(h Handle[T]) *T {
	item, ok := p.Get(h)
	if !ok {
		panic(p.invalid(h))
	}
	return item
}

// Has checks if h refers to a live slot.
func (p *Pool[T]) Has(h Handle[T]) bool {
	_, ok := p.Get(h)
	return ok
}

// Free empties the slot behind h and returns the value it held.
// Freeing a stale handle is a no-op that returns false.
func (p *Pool[T]) Free(h Handle[T]) (T, bool) {
	var zero T
	if !p.Has(h) {
		return zero, false
	}

	index := int(h.Index())
	blockIdx := index / blockSize
	slotIdx := index % blockSize

	item := p.blocks[blockIdx][slotIdx]
	p.blocks[blockIdx][slotIdx] = zero
	p.filled[blockIdx][slotIdx] = false
	p.freeSlots = append(p.freeSlots, index)
	p.count--
	return item, true
}

// Restore puts item back into the exact slot and generation named by h, so that h and
// every copy of it become valid again. The slot must be empty; Restore panics otherwise.
func (p *Pool[T]) Restore(h Handle[T], item T) {
	if h.IsNone() {
		panic(p.invalid(h))
	}

	index := int(h.Index())
	if index >= p.nextIndex {
		for i := p.nextIndex; i < index; i++ {
			p.freeSlots = append(p.freeSlots, i)
		}
		p.nextIndex = index + 1
		p.grow(index)
	} else {
		blockIdx := index / blockSize
		slotIdx := index % blockSize
		if p.filled[blockIdx][slotIdx] {
			err := p.invalid(h)
			err.Reason = "slot is occupied"
			panic(err)
		}
		for i, free := range p.freeSlots {
			if free == index {
				p.freeSlots = append(p.freeSlots[:i], p.freeSlots[i+1:]...)
				break
			}
		}
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	p.generations[blockIdx][slotIdx] = h.Generation()
	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	p.count++
}

// Len returns the number of live slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Clear frees every slot. Previously issued handles become invalid.
func (p *Pool[T]) Clear() {
	for h := range p.Handles() {
		p.Free(h)
	}
}

// All iterates live slots in storage order.
func (p *Pool[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := 0; i < p.nextIndex; i++ {
			blockIdx := i / blockSize
			slotIdx := i % blockSize

			if !p.filled[blockIdx][slotIdx] {
				continue
			}

			h := NewHandle[T](uint32(i), p.generations[blockIdx][slotIdx])
			if !yield(h, &p.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Handles iterates the handles of live slots in storage order.
func (p *Pool[T]) Handles() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for h := range p.All() {
			if !yield(h) {
				return
			}
		}
	}
}

func (p *Pool[T]) invalid(h Handle[T]) *InvalidHandleError {
	err := &InvalidHandleError{
		Type:       reflect.TypeFor[T]().String(),
		Index:      h.Index(),
		Generation: h.Generation(),
		Reason:     "slot is empty",
	}

	index := int(h.Index())
	switch {
	case h.IsNone():
		err.Reason = "none handle"
	case index >= p.nextIndex:
		err.Reason = "index out of range"
	default:
		blockIdx := index / blockSize
		slotIdx := index % blockSize
		if p.filled[blockIdx][slotIdx] && p.generations[blockIdx][slotIdx] != h.Generation() {
			err.Reason = "slot was reused"
		}
	}
	return err
}
