package esolang

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// ExecutorHandler applies one operation to the machine. Operations with too
// few operands leave the machine untouched and return nil; only output
// failures are reported.
type ExecutorHandler func(context.Context, *Machine, Instruction) error

type InstructionHandler struct {
	OpCode   OpCode
	Executor ExecutorHandler
}

type InstructionSet struct {
	handlers map[OpCode]InstructionHandler
	mu       sync.RWMutex
}

func NewInstructionSet() *InstructionSet {
	m := &InstructionSet{
		handlers: make(map[OpCode]InstructionHandler),
		mu:       sync.RWMutex{},
	}
	m.registerDefaults()
	return m
}

func (m *InstructionSet) Register(handler InstructionHandler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exist := m.handlers[handler.OpCode]
	if exist {
		return newErrorf("Instruction handler %s is already exist", handler.OpCode)
	}
	m.handlers[handler.OpCode] = handler
	return nil
}

func (m *InstructionSet) Unregister(handler InstructionHandler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exist := m.handlers[handler.OpCode]
	if exist {
		delete(m.handlers, handler.OpCode)
	}
	return nil
}

// GetExecutorHandler returns the handler for op. Unregistered opcodes,
// including OpCodeNone, resolve to a no-op.
func (m *InstructionSet) GetExecutorHandler(op OpCode) ExecutorHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.handlers[op]
	if ok {
		return v.Executor
	}
	return ExecuteNoOpInstruction
}

func (m *InstructionSet) OpCodes() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	opcodes := []string{}
	for opcode := range m.handlers {
		opcodes = append(opcodes, string(opcode))
	}
	sort.Strings(opcodes)
	return strings.Join(opcodes, ",")
}

func (m *InstructionSet) ClearDefaults() {
	for _, handler := range DefaultInstructionHandlers {
		_ = m.Unregister(handler)
	}
}

func (m *InstructionSet) registerDefaults() {
	for _, handler := range DefaultInstructionHandlers {
		_ = m.Register(handler)
	}
}

var DefaultInstructionHandlers = []InstructionHandler{
	{OpCode: OpCodePush, Executor: ExecutePushInstruction},
	{OpCode: OpCodePop, Executor: ExecutePopInstruction},
	{OpCode: OpCodeAdd, Executor: ExecuteArithmeticInstruction},
	{OpCode: OpCodeSubtract, Executor: ExecuteArithmeticInstruction},
	{OpCode: OpCodeMultiply, Executor: ExecuteArithmeticInstruction},
	{OpCode: OpCodeDivide, Executor: ExecuteArithmeticInstruction},
	{OpCode: OpCodeMod, Executor: ExecuteArithmeticInstruction},
	{OpCode: OpCodeGreater, Executor: ExecuteArithmeticInstruction},
	{OpCode: OpCodeNot, Executor: ExecuteNotInstruction},
	{OpCode: OpCodePointer, Executor: ExecutePointerInstruction},
	{OpCode: OpCodeSwitch, Executor: ExecuteSwitchInstruction},
	{OpCode: OpCodeDuplicate, Executor: ExecuteDuplicateInstruction},
	{OpCode: OpCodeRoll, Executor: ExecuteRollInstruction},
	{OpCode: OpCodeInNumber, Executor: ExecuteInputInstruction},
	{OpCode: OpCodeInChar, Executor: ExecuteInputInstruction},
	{OpCode: OpCodeOutNumber, Executor: ExecuteOutputInstruction},
	{OpCode: OpCodeOutChar, Executor: ExecuteOutputInstruction},
}

func ExecuteNoOpInstruction(ctx context.Context, m *Machine, in Instruction) error {
	return nil
}

func ExecutePushInstruction(ctx context.Context, m *Machine, in Instruction) error {
	m.Stack.Push(in.Operand())
	return nil
}

func ExecutePopInstruction(ctx context.Context, m *Machine, in Instruction) error {
	m.Stack.Pop()
	return nil
}

// ExecuteArithmeticInstruction pops b then a and pushes a op b. Division and
// modulo by zero consume both operands and push nothing.
func ExecuteArithmeticInstruction(ctx context.Context, m *Machine, in Instruction) error {
	a, b, ok := m.Stack.Pop2()
	if !ok {
		return nil
	}

	switch in.OpCode {
	case OpCodeAdd:
		m.Stack.Push(a + b)
	case OpCodeSubtract:
		m.Stack.Push(a - b)
	case OpCodeMultiply:
		m.Stack.Push(a * b)
	case OpCodeDivide:
		if b != 0 {
			m.Stack.Push(a / b)
		}
	case OpCodeMod:
		if b != 0 {
			m.Stack.Push(a % b)
		}
	case OpCodeGreater:
		if a > b {
			m.Stack.Push(1)
		} else {
			m.Stack.Push(0)
		}
	default:
		m.Stack.Push(a)
		m.Stack.Push(b)
	}
	return nil
}

func ExecuteNotInstruction(ctx context.Context, m *Machine, in Instruction) error {
	a, ok := m.Stack.Pop()
	if !ok {
		return nil
	}
	if a == 0 {
		m.Stack.Push(1)
	} else {
		m.Stack.Push(0)
	}
	return nil
}

// ExecutePointerInstruction turns DP clockwise n%4 times. Go's % truncates,
// so a negative n leaves DP where it is.
func ExecutePointerInstruction(ctx context.Context, m *Machine, in Instruction) error {
	n, ok := m.Stack.Pop()
	if !ok {
		return nil
	}
	m.DP = m.DP.Rotate(n % directionCount)
	return nil
}

func ExecuteSwitchInstruction(ctx context.Context, m *Machine, in Instruction) error {
	n, ok := m.Stack.Pop()
	if !ok {
		return nil
	}
	if n%2 == 1 {
		m.CC = m.CC.Toggle()
	}
	return nil
}

func ExecuteDuplicateInstruction(ctx context.Context, m *Machine, in Instruction) error {
	v, ok := m.Stack.Peek()
	if !ok {
		return nil
	}
	m.Stack.Push(v)
	return nil
}

// ExecuteRollInstruction pops rolls then depth. An out-of-range depth
// drops both popped values.
func ExecuteRollInstruction(ctx context.Context, m *Machine, in Instruction) error {
	depth, rolls, ok := m.Stack.Pop2()
	if !ok {
		return nil
	}
	m.Stack.Roll(depth, rolls)
	return nil
}

func ExecuteInputInstruction(ctx context.Context, m *Machine, in Instruction) error {
	var (
		v  int
		ok bool
	)
	switch in.OpCode {
	case OpCodeInNumber:
		v, ok = m.ReadNumber()
	case OpCodeInChar:
		v, ok = m.ReadChar()
	}
	if ok {
		m.Stack.Push(v)
	}
	return nil
}

func ExecuteOutputInstruction(ctx context.Context, m *Machine, in Instruction) error {
	v, ok := m.Stack.Pop()
	if !ok {
		return nil
	}
	switch in.OpCode {
	case OpCodeOutNumber:
		return wrapError(m.WriteNumber(v), "Write number %d", v)
	case OpCodeOutChar:
		return wrapError(m.WriteChar(v), "Write char %d", v)
	}
	return nil
}
