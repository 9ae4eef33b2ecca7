package dynamic

import "iter"

// Queue is a FIFO queue backed by a circular buffer. The zero value is an
// empty queue with capacity 0.
type Queue[T any] struct {
	// buf is the backing buffer. Its length is the capacity.
	buf []T
	// head is the index of the first element, tail is the index where the
	// next element is stored.
	head, tail int
	// n is the number of elements. Elements occupy [head, head+n) mod len(buf).
	n int
}

// NewQueue creates a queue holding vals, in order.
func NewQueue[T any](vals ...T) *Queue[T] {
	q := new(Queue[T])
	q.EnqueueAll(vals...)
	return q
}

// NewQueueSize creates an empty queue with capacity for n elements. Panics if
// n is negative.
func NewQueueSize[T any](n int) *Queue[T] {
	if n < 0 {
		panic("dynamic: negative queue capacity")
	}
	return &Queue[T]{buf: make([]T, n)}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// Cap returns the number of elements the queue can hold before it grows.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// Enqueue adds v to the tail of the queue, growing the buffer if it is full.
func (q *Queue[T]) Enqueue(v T) {
	if q.n == len(q.buf) {
		q.resize(max(2*len(q.buf), len(q.buf)+4))
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.n++
}

// EnqueueAll adds each of vs to the queue in order.
func (q *Queue[T]) EnqueueAll(vs ...T) {
	for _, v := range vs {
		q.Enqueue(v)
	}
}

// Dequeue removes and returns the element at the head of the queue. If the
// queue is empty, the error is ErrEmpty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.n == 0 {
		return zero, ErrEmpty
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return v, nil
}

// Peek returns the element at the head of the queue without removing it. If
// the queue is empty, the error is ErrEmpty.
func (q *Queue[T]) Peek() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.buf[q.head], nil
}

// Clear empties the queue in constant time without releasing its buffer.
// Cleared elements stay referenced by the buffer until they are overwritten.
func (q *Queue[T]) Clear() {
	q.head, q.tail, q.n = 0, 0, 0
}

// Clone returns a copy of the queue with its own buffer of the same capacity.
func (q *Queue[T]) Clone() *Queue[T] {
	r := &Queue[T]{buf: make([]T, len(q.buf))}
	r.n = q.copyTo(r.buf)
	r.tail = r.n % max(len(r.buf), 1)
	return r
}

// All returns an iterator over the elements of the queue from head to tail.
// The queue must not be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.n; i++ {
			if !yield(q.buf[(q.head+i)%len(q.buf)]) {
				return
			}
		}
	}
}

// resize reallocates the buffer to hold c elements, moving the logical
// contents to the start of the new buffer.
func (q *Queue[T]) resize(c int) {
	buf := make([]T, c)
	q.copyTo(buf)
	q.buf = buf
	q.head = 0
	q.tail = q.n % c
}

// copyTo copies the logical contents of q to the start of dst, which must be
// large enough to hold them, and returns the number of elements copied.
func (q *Queue[T]) copyTo(dst []T) int {
	if q.n == 0 {
		return 0
	}
	if q.head+q.n <= len(q.buf) {
		return copy(dst, q.buf[q.head:q.head+q.n])
	}
	// Wrapped: the segment from head to the end of the buffer comes first,
	// then the segment from the start of the buffer up to tail.
	k := copy(dst, q.buf[q.head:])
	return k + copy(dst[k:], q.buf[:q.tail])
}
