// Package dynamic provides growable containers with explicit control over
// capacity: a circular-buffer FIFO Queue and an array-backed LIFO Stack.
//
// Both containers own a single contiguous backing buffer whose length is the
// container's capacity. Growth reallocates the buffer and copies the logical
// contents, so a sequence of n insertions costs O(n) in total. Neither
// container shrinks on its own; Stack.TrimExcess and Stack.SetCapacity are the
// only ways to release space.
//
// Containers are not safe for concurrent use.
package dynamic

import "errors"

var (
	// ErrEmpty indicates a Dequeue, Pop, or Peek on an empty container.
	ErrEmpty = errors.New("dynamic: container is empty")
	// ErrFull indicates a Push onto a full fixed-capacity stack.
	ErrFull = errors.New("dynamic: container is full")
	// ErrCapacity indicates a capacity smaller than the number of elements
	// already held.
	ErrCapacity = errors.New("dynamic: capacity is smaller than the element count")
)
