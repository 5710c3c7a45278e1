package esolang

import (
	"context"

	"github.com/sirupsen/logrus"
)

var (
	errBlocked   = newError("Blocked")
	errStepLimit = newError("Step limit reached")
)

type Processor interface {
	Process(context.Context) error
}

// BlockProcessor walks a Program block by block: find the current block,
// navigate out of it, execute the transition, move on.
type BlockProcessor struct {
	InstructionSet *InstructionSet
	Program        *Program
	Locator        BlockLocator
	State          *InterpreterState
	StepLimit      int

	log      runLogger
	tracer   *logrus.Logger
	recorder *TraceRecorder
}

func NewBlockProcessor(p *Program, is *InstructionSet, l BlockLocator, s *InterpreterState, stepLimit int) *BlockProcessor {
	return &BlockProcessor{
		InstructionSet: is,
		Program:        p,
		Locator:        l,
		State:          s,
		StepLimit:      stepLimit,
		log:            newRunLogger(nil).WithRun(s.Run).WithProgram(p.Path),
	}
}

func (m *BlockProcessor) Process(ctx context.Context) error {
	m.State.ChangeState(StateRunning)
	metrics.AddRunningProgram()

	err := m.Loop(ctx)

	metrics.RemoveRunningProgram(m.State.State)
	return err
}

func (m *BlockProcessor) Loop(ctx context.Context) (err error) {
	var (
		current ColorBlock
		move    Move
		in      Instruction
	)

	for {
		if err = ctx.Err(); err != nil {
			break
		}

		if m.State.Tick(m.StepLimit) {
			err = errStepLimit
			break
		}
		metrics.Step()

		current = m.Current()

		move, err = m.Next(current)
		if err != nil {
			break
		}

		in = NewInstruction(current, m.Locator.Find(move.To))
		err = m.Execute(ctx, in)
		if err != nil {
			break
		}

		m.State.MoveTo(move.To)

		err = m.afterStep(in)
		if err != nil {
			break
		}
	}

	return m.Finish(err)
}

func (m *BlockProcessor) Current() ColorBlock {
	return m.Locator.Find(m.State.Position)
}

// Next navigates out of current and adopts the resulting pointer state,
// which may have turned even when the program is blocked.
func (m *BlockProcessor) Next(current ColorBlock) (Move, error) {
	move := Navigate(m.Program, current, m.State.Machine.DP, m.State.Machine.CC)
	m.State.Turn(move)
	if move.Blocked {
		return move, errBlocked
	}
	return move, nil
}

// Execute runs one transition. Output failures are logged and skipped like
// any other malformed operation.
func (m *BlockProcessor) Execute(ctx context.Context, in Instruction) error {
	if in.IsNoOp() {
		return nil
	}

	if m.tracer != nil {
		m.tracer.WithField("run", m.State.Run.String()).Debugf(
			"  Command: %s (blockSize: %d, hue: %d, light: %d)",
			in.OpCode, in.Operand(), in.HueDelta, in.LightnessDelta)
	}

	executor := m.InstructionSet.GetExecutorHandler(in.OpCode)
	err := executor(ctx, m.State.Machine, in)
	metrics.ExecuteInstruction(in)
	if err != nil {
		m.log.WithStep(m.State.Steps).Logger().Warnf("Execute %s, %v", in.OpCode, err)
	}
	return nil
}

func (m *BlockProcessor) afterStep(in Instruction) error {
	pos := m.State.Position
	color := m.Program.At(pos)
	stack := m.State.Machine.Stack

	if m.tracer != nil {
		m.tracer.WithField("run", m.State.Run.String()).Debugf(
			"Step %d: Pos(%d,%d) Color:%s Stack:[%s]",
			m.State.Steps, pos.X, pos.Y, color, stack)
	}

	if m.recorder == nil {
		return nil
	}
	return m.recorder.WriteStep(TraceStep{
		Step:      m.State.Steps,
		X:         pos.X,
		Y:         pos.Y,
		Color:     color.String(),
		OpCode:    in.OpCode.String(),
		BlockSize: in.Operand(),
		DP:        m.State.Machine.DP.String(),
		CC:        m.State.Machine.CC.String(),
		Stack:     stack.Values(),
	})
}

func (m *BlockProcessor) Finish(exitErr error) error {
	log := m.log.WithStep(m.State.Steps).Logger()

	switch {
	case exitErr == errBlocked:
		m.State.ChangeState(StateBlocked)
		log.Debugf("Blocked after %d navigation attempts", MaxNavigationAttempts)
		return nil
	case exitErr == errStepLimit:
		m.State.ChangeState(StateStepLimit)
		log.Warnf("Execution terminated after %d steps to prevent infinite loop.", m.StepLimit)
		return nil
	case exitErr == context.Canceled || exitErr == context.DeadlineExceeded:
		m.State.ChangeState(StateCanceled)
		return wrapError(ErrCanceled, "At step %d, %v", m.State.Steps, exitErr)
	}

	m.State.ChangeState(StateExit)
	return exitErr
}
