package esolang

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Stack is the interpreter's integer LIFO.
type Stack struct {
	s *arraystack.Stack
}

func NewStack(values ...int) *Stack {
	m := &Stack{s: arraystack.New()}
	for _, v := range values {
		m.Push(v)
	}
	return m
}

func (m *Stack) Push(v int) {
	m.s.Push(v)
}

func (m *Stack) Pop() (int, bool) {
	v, ok := m.s.Pop()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (m *Stack) Peek() (int, bool) {
	v, ok := m.s.Peek()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Pop2 pops b then a, so a was below b. Nothing is popped when fewer than
// two values are on the stack.
func (m *Stack) Pop2() (a int, b int, ok bool) {
	if m.Len() < 2 {
		return 0, 0, false
	}
	b, _ = m.Pop()
	a, _ = m.Pop()
	return a, b, true
}

func (m *Stack) Len() int {
	return m.s.Size()
}

// Values lists the stack bottom first.
func (m *Stack) Values() []int {
	top := m.s.Values()
	n := len(top)
	values := make([]int, n)
	for i, v := range top {
		values[n-1-i] = v.(int)
	}
	return values
}

// Roll rotates the top depth values by rolls positions; a positive roll
// buries the top value rolls deep. depth must be in (0, Len()].
func (m *Stack) Roll(depth, rolls int) bool {
	if depth <= 0 || depth > m.Len() {
		return false
	}

	// values[0] is the deepest of the rolled values.
	values := make([]int, depth)
	for i := depth - 1; i >= 0; i-- {
		values[i], _ = m.Pop()
	}

	rolls %= depth
	if rolls < 0 {
		rolls += depth
	}
	rolled := make([]int, depth)
	for i, v := range values {
		rolled[(i+rolls)%depth] = v
	}
	for _, v := range rolled {
		m.Push(v)
	}
	return true
}

// String lists the stack top first, separated by commas.
func (m *Stack) String() string {
	top := m.s.Values()
	ss := make([]string, 0, len(top))
	for _, v := range top {
		ss = append(ss, strconv.Itoa(v.(int)))
	}
	return strings.Join(ss, ",")
}
