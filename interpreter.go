package esolang

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Interpreter runs one Piet program image.
type Interpreter struct {
	Program        *Program
	InstructionSet *InstructionSet

	codelSize  int
	debug      bool
	stepLimit  int
	blockCache bool
	in         io.Reader
	out        io.Writer
	diag       io.Writer
	prompt     io.Writer
	trace      io.Writer
	logger     *logrus.Logger
}

// New loads the program image at path. Invalid options and unreadable
// images fail here, before any execution state exists.
func New(path string, options ...Option) (*Interpreter, error) {
	m := newInterpreter(options...)
	if err := m.validate(); err != nil {
		return nil, err
	}

	p, err := LoadProgram(path, m.codelSize)
	if err != nil {
		return nil, err
	}
	m.Program = p

	return m, nil
}

// NewFromProgram wraps an already sampled Program.
func NewFromProgram(p *Program, options ...Option) (*Interpreter, error) {
	m := newInterpreter(options...)
	if err := m.validate(); err != nil {
		return nil, err
	}
	if p == nil || p.Size() == 0 {
		return nil, ErrEmptyProgram
	}
	m.Program = p
	return m, nil
}

func newInterpreter(options ...Option) *Interpreter {
	m := &Interpreter{
		codelSize:  DefaultCodelSize,
		stepLimit:  DefaultStepLimit,
		blockCache: true,
		in:         os.Stdin,
		out:        os.Stdout,
		diag:       os.Stderr,
	}

	for _, o := range options {
		o(m)
	}

	if m.InstructionSet == nil {
		m.InstructionSet = NewInstructionSet()
	}
	if m.logger == nil {
		m.logger = stdLogger
	}
	return m
}

func (m *Interpreter) validate() error {
	if m.codelSize < 1 {
		return wrapError(ErrCodelSize, "Got %d", m.codelSize)
	}
	if m.stepLimit < 1 {
		return wrapError(ErrStepLimit, "Got %d", m.stepLimit)
	}
	return nil
}

// Run executes the program until it is blocked, hits the step limit or
// ctx is done. Blocked and step-limit endings are not errors; inspect
// Result.State to tell them apart.
func (m *Interpreter) Run(ctx context.Context) (Result, error) {
	machine := NewMachine(m.in, m.out)
	if m.prompt != nil {
		machine.SetPrompt(m.prompt)
	}
	state := NewInterpreterState(machine)

	var locator BlockLocator = floodFillLocator{p: m.Program}
	if m.blockCache {
		locator = NewBlockCache(m.Program)
	}

	processor := NewBlockProcessor(m.Program, m.InstructionSet, locator, state, m.stepLimit)
	processor.log = newRunLogger(m.logger).WithRun(state.Run).WithProgram(m.Program.Path)
	if m.debug {
		processor.tracer = newTraceLogger(m.diag)
	}
	if m.trace != nil {
		processor.recorder = NewTraceRecorder(m.trace)
		err := processor.recorder.WriteHeader(TraceHeader{
			Run:       state.Run.String(),
			Program:   m.Program.Path,
			Width:     m.Program.Width,
			Height:    m.Program.Height,
			CodelSize: m.Program.CodelSize,
		})
		if err != nil {
			return state.Result(), err
		}
	}

	processor.log.Logger().Debugf("Run %dx%d program", m.Program.Width, m.Program.Height)

	err := processor.Process(ctx)
	return state.Result(), err
}
