package esolang

// InterpreterState is everything one run mutates. DP, CC and the stack live
// on the Machine so operations can reach them.
type InterpreterState struct {
	Run      RunID
	Position Position
	Steps    int
	State    State
	Machine  *Machine
}

func NewInterpreterState(m *Machine) *InterpreterState {
	return &InterpreterState{
		Run:      NewRunID(),
		Position: Position{0, 0},
		State:    StateNew,
		Machine:  m,
	}
}

func (m *InterpreterState) IsState(state State) bool {
	return m.State == state
}

func (m *InterpreterState) ChangeState(state State) bool {
	if m.State.IsTerminated() {
		return false
	}
	m.State = state
	return true
}

// Tick advances the step counter and reports whether limit has been hit.
func (m *InterpreterState) Tick(limit int) bool {
	m.Steps++
	return m.Steps >= limit
}

// Turn adopts the pointer state the navigator settled on.
func (m *InterpreterState) Turn(move Move) {
	m.Machine.DP = move.DP
	m.Machine.CC = move.CC
}

func (m *InterpreterState) MoveTo(pos Position) {
	m.Position = pos
}

func (m *InterpreterState) Result() Result {
	return Result{
		Run:      m.Run,
		State:    m.State,
		Steps:    m.Steps,
		Position: m.Position,
		DP:       m.Machine.DP,
		CC:       m.Machine.CC,
		Stack:    m.Machine.Stack.Values(),
	}
}

// Result summarises a finished run. Stack is listed bottom first.
type Result struct {
	Run      RunID
	State    State
	Steps    int
	Position Position
	DP       Direction
	CC       CodelChooser
	Stack    []int
}
