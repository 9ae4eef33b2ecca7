package dynamic

import "iter"

// Stack is a LIFO stack backed by an array. A stack is either growable, in
// which case a push onto a full stack doubles its capacity, or fixed, in which
// case such a push fails with ErrFull. The zero value is an empty fixed stack
// with capacity 0; use NewStack for a growable one.
type Stack[T any] struct {
	// buf is the backing buffer. Its length is the capacity. The top element
	// is buf[n-1].
	buf []T
	n   int
	// grow indicates that a push onto a full stack expands it.
	grow bool
}

// NewStack creates a growable stack holding vals, with the last of vals on
// top.
func NewStack[T any](vals ...T) *Stack[T] {
	s := &Stack[T]{grow: true}
	// A growable stack cannot fail to push.
	_ = s.PushAll(vals...)
	return s
}

// NewFixedStack creates a fixed stack with the given capacity, holding vals
// with the last of vals on top. If there are more values than the capacity,
// the error is ErrFull. Panics if capacity is negative.
func NewFixedStack[T any](capacity int, vals ...T) (*Stack[T], error) {
	if capacity < 0 {
		panic("dynamic: negative stack capacity")
	}
	if len(vals) > capacity {
		return nil, ErrFull
	}
	s := &Stack[T]{buf: make([]T, capacity)}
	s.n = copy(s.buf, vals)
	return s, nil
}

// SetGrowable sets whether pushing onto a full stack grows it.
func (s *Stack[T]) SetGrowable(grow bool) {
	s.grow = grow
}

// Growable returns whether pushing onto a full stack grows it.
func (s *Stack[T]) Growable() bool {
	return s.grow
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the number of elements the stack can hold before it is full.
func (s *Stack[T]) Cap() int {
	return len(s.buf)
}

// Push adds v to the top of the stack. If the stack is full and growable, its
// capacity doubles, to at least 4. If it is full and fixed, the error is
// ErrFull.
func (s *Stack[T]) Push(v T) error {
	if s.n == len(s.buf) {
		if !s.grow {
			return ErrFull
		}
		s.resize(max(2*len(s.buf), 4))
	}
	s.buf[s.n] = v
	s.n++
	return nil
}

// PushAll pushes each of vs in order. It stops at the first error.
func (s *Stack[T]) PushAll(vs ...T) error {
	for _, v := range vs {
		if err := s.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes and returns the top element. If the stack is empty, the error is
// ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.n == 0 {
		return zero, ErrEmpty
	}
	s.n--
	v := s.buf[s.n]
	s.buf[s.n] = zero
	return v, nil
}

// Peek returns the top element without removing it. If the stack is empty,
// the error is ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.buf[s.n-1], nil
}

// Clear empties the stack without releasing its buffer.
func (s *Stack[T]) Clear() {
	clear(s.buf[:s.n])
	s.n = 0
}

// Slice returns a copy of the elements of the stack, bottom first.
func (s *Stack[T]) Slice() []T {
	r := make([]T, s.n)
	copy(r, s.buf[:s.n])
	return r
}

// SetCapacity reallocates the stack to hold exactly c elements. If c is less
// than the number of elements on the stack, the error is ErrCapacity and the
// stack is unchanged.
func (s *Stack[T]) SetCapacity(c int) error {
	if c < s.n {
		return ErrCapacity
	}
	s.resize(c)
	return nil
}

// TrimExcess reallocates the stack to exactly its length, unless more than 90%
// of its capacity is in use.
func (s *Stack[T]) TrimExcess() {
	if len(s.buf) > 0 && float64(s.n)/float64(len(s.buf)) > 0.9 {
		return
	}
	s.resize(s.n)
}

// All returns an iterator over the elements of the stack from bottom to top.
// The stack must not be modified during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.buf[:s.n] {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Stack[T]) resize(c int) {
	buf := make([]T, c)
	copy(buf, s.buf[:s.n])
	s.buf = buf
}

// Contains reports whether v is on the stack.
func Contains[T comparable](s *Stack[T], v T) bool {
	for x := range s.All() {
		if x == v {
			return true
		}
	}
	return false
}
