package ast

// Arena is an append-only store addressed by 1-based indices; index 0 is
// reserved as the invalid ID. A pass that rewrites the tree allocates new
// nodes instead of mutating borrowed ones, so a parent and its rewritten
// child can be live at the same time.
type Arena[T any] struct {
	data []T
}

// NewArena creates an *Arena[T] whose storage is preallocated to capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data))
}

// Get returns the element at index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the backing storage. Read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}
