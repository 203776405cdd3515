// internal/container/stack.go
//
// Fixed-capacity LIFO stack. Same full/empty policy as Queue:
// Push on a full stack is a reported no-op, Pop on an empty one fails.

package container

// Stack is a bounded stack of values of type T.
type Stack[T any] struct {
	items []T
	count int // next free slot; top is items[count-1]
}

// NewStack constructs an empty stack holding at most capacity elements.
// A non-positive capacity is treated as 1.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Stack[T]{items: make([]T, capacity)}
}

func (s *Stack[T]) IsFull() bool  { return s.count == len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return s.count == 0 }
func (s *Stack[T]) Len() int      { return s.count }
func (s *Stack[T]) Cap() int      { return len(s.items) }

// Push places v on top. Returns ErrContainerFull when at capacity.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrContainerFull
	}
	s.items[s.count] = v
	s.count++
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmptyContainer
	}
	s.count--
	v := s.items[s.count]
	s.items[s.count] = zero
	return v, nil
}

// At returns the element at depth d counted from the top (0 = top).
func (s *Stack[T]) At(d int) (T, bool) {
	var zero T
	if d < 0 || d >= s.count {
		return zero, false
	}
	return s.items[s.count-1-d], true
}

// Set replaces the element at depth d in place.
func (s *Stack[T]) Set(d int, v T) bool {
	if d < 0 || d >= s.count {
		return false
	}
	s.items[s.count-1-d] = v
	return true
}

// Items returns a copy of the contents, top first.
func (s *Stack[T]) Items() []T {
	out := make([]T, s.count)
	for d := range out {
		out[d] = s.items[s.count-1-d]
	}
	return out
}
