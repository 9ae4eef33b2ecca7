package dynamic_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/zephyrtronium/calculator/dynamic"
)

// StackSuite exercises Stack ordering, capacity modes, and trimming.
type StackSuite struct {
	suite.Suite
}

func TestStackSuite(t *testing.T) {
	suite.Run(t, new(StackSuite))
}

// TestPushPop verifies that a pop right after a push onto an empty stack
// returns the pushed value.
func (s *StackSuite) TestPushPop() {
	st := dynamic.NewStack[float64]()
	require.NoError(s.T(), st.Push(2.5))
	v, err := st.Pop()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.5, v)
	require.Equal(s.T(), 0, st.Len())
}

// TestGrowth checks doubling with a minimum of 4.
func (s *StackSuite) TestGrowth() {
	st := dynamic.NewStack[int]()
	require.Equal(s.T(), 0, st.Cap())
	var caps []int
	for i := 0; i < 17; i++ {
		require.NoError(s.T(), st.Push(i))
		if len(caps) == 0 || caps[len(caps)-1] != st.Cap() {
			caps = append(caps, st.Cap())
		}
	}
	require.Equal(s.T(), []int{4, 8, 16, 32}, caps)
	for want := 16; want >= 0; want-- {
		got, err := st.Pop()
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, got)
	}
}

// TestEmpty verifies that Pop and Peek report ErrEmpty.
func (s *StackSuite) TestEmpty() {
	st := dynamic.NewStack[int]()
	_, err := st.Pop()
	require.ErrorIs(s.T(), err, dynamic.ErrEmpty)
	_, err = st.Peek()
	require.ErrorIs(s.T(), err, dynamic.ErrEmpty)
}

// TestFixed verifies that a fixed stack refuses to grow until made growable.
func (s *StackSuite) TestFixed() {
	st, err := dynamic.NewFixedStack(2, "a", "b")
	require.NoError(s.T(), err)
	require.False(s.T(), st.Growable())
	require.ErrorIs(s.T(), st.Push("c"), dynamic.ErrFull)
	require.Equal(s.T(), []string{"a", "b"}, st.Slice())

	st.SetGrowable(true)
	require.NoError(s.T(), st.Push("c"))
	require.Equal(s.T(), 4, st.Cap())
	top, err := st.Peek()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "c", top)

	_, err = dynamic.NewFixedStack(1, 1, 2)
	require.ErrorIs(s.T(), err, dynamic.ErrFull)
}

// TestSetCapacity checks that shrinking below the length fails.
func (s *StackSuite) TestSetCapacity() {
	st := dynamic.NewStack(1, 2, 3)
	require.ErrorIs(s.T(), st.SetCapacity(2), dynamic.ErrCapacity)
	require.Equal(s.T(), []int{1, 2, 3}, st.Slice())
	require.NoError(s.T(), st.SetCapacity(3))
	require.Equal(s.T(), 3, st.Cap())
	require.NoError(s.T(), st.SetCapacity(10))
	require.Equal(s.T(), 10, st.Cap())
	require.Equal(s.T(), []int{1, 2, 3}, st.Slice())
}

// TestTrimExcess checks the 90% utilization threshold.
func (s *StackSuite) TestTrimExcess() {
	cases := []struct {
		name     string
		capacity int
		n        int
		want     int
	}{
		{"Empty", 8, 0, 0},
		{"Half", 8, 4, 4},
		{"Exactly90", 10, 9, 9},
		{"Above90", 20, 19, 20},
		{"Full", 4, 4, 4},
		{"ZeroCapacity", 0, 0, 0},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			st, err := dynamic.NewFixedStack[int](tc.capacity)
			require.NoError(s.T(), err)
			for i := 0; i < tc.n; i++ {
				require.NoError(s.T(), st.Push(i))
			}
			st.TrimExcess()
			require.Equal(s.T(), tc.want, st.Cap())
			require.Equal(s.T(), tc.n, st.Len())
		})
	}
}

// TestIteration checks that All and Slice see only the logical elements in
// bottom-to-top order, regardless of growth history.
func (s *StackSuite) TestIteration() {
	st := dynamic.NewStack[int]()
	for i := 0; i < 9; i++ {
		require.NoError(s.T(), st.Push(i))
	}
	for i := 0; i < 4; i++ {
		_, err := st.Pop()
		require.NoError(s.T(), err)
	}
	require.Equal(s.T(), 16, st.Cap())
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, slices.Collect(st.All()))
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, st.Slice())
	require.True(s.T(), dynamic.Contains(st, 4))
	require.False(s.T(), dynamic.Contains(st, 5), "popped values must not be found")
}

// TestRandomLIFO compares a stack against a slice under random operations.
func (s *StackSuite) TestRandomLIFO() {
	rng := rand.New(rand.NewSource(2))
	st := dynamic.NewStack[int]()
	var model []int
	for i := 0; i < 5000; i++ {
		if rng.Intn(3) > 0 {
			require.NoError(s.T(), st.Push(i))
			model = append(model, i)
			continue
		}
		got, err := st.Pop()
		if len(model) == 0 {
			require.ErrorIs(s.T(), err, dynamic.ErrEmpty)
			continue
		}
		require.NoError(s.T(), err)
		require.Equal(s.T(), model[len(model)-1], got)
		model = model[:len(model)-1]
	}
	require.Equal(s.T(), len(model), st.Len())
}

// TestClear verifies that Clear keeps the buffer.
func (s *StackSuite) TestClear() {
	st := dynamic.NewStack(1, 2, 3)
	st.Clear()
	require.Equal(s.T(), 0, st.Len())
	require.Equal(s.T(), 4, st.Cap())
	require.False(s.T(), dynamic.Contains(st, 1))
}

func TestZeroStackIsFixed(t *testing.T) {
	var st dynamic.Stack[int]
	require.ErrorIs(t, st.Push(1), dynamic.ErrFull)
}
