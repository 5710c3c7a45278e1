package esolang

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCodelSize = 1
	DefaultStepLimit = 10000
)

type Option func(m *Interpreter)

func WithCodelSize(size int) Option {
	return func(m *Interpreter) {
		m.codelSize = size
	}
}

// WithDebug traces every step to the diagnostic stream.
func WithDebug(debug bool) Option {
	return func(m *Interpreter) {
		m.debug = debug
	}
}

func WithInput(r io.Reader) Option {
	return func(m *Interpreter) {
		m.in = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(m *Interpreter) {
		m.out = w
	}
}

// WithDiagnostics sets where debug trace lines go. Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(m *Interpreter) {
		m.diag = w
	}
}

// WithPrompt prints an input prompt on w before each numeric read.
func WithPrompt(w io.Writer) Option {
	return func(m *Interpreter) {
		m.prompt = w
	}
}

func WithStepLimit(n int) Option {
	return func(m *Interpreter) {
		m.stepLimit = n
	}
}

// WithTrace records every executed step to w in msgpack.
func WithTrace(w io.Writer) Option {
	return func(m *Interpreter) {
		m.trace = w
	}
}

func WithBlockCache(enabled bool) Option {
	return func(m *Interpreter) {
		m.blockCache = enabled
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(m *Interpreter) {
		m.logger = l
	}
}

func WithInstructionSet(is *InstructionSet) Option {
	return func(m *Interpreter) {
		m.InstructionSet = is
	}
}
