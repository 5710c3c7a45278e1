package esolang

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Machine is the mutable state operations act on: the stack, the two
// navigation pointers and the program's I/O streams.
type Machine struct {
	Stack *Stack
	DP    Direction
	CC    CodelChooser

	in     *bufio.Reader
	out    io.Writer
	prompt io.Writer
}

func NewMachine(in io.Reader, out io.Writer) *Machine {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &Machine{
		Stack: NewStack(),
		DP:    DirectionRight,
		CC:    CodelChooserLeft,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// SetPrompt makes ReadNumber announce itself on w before blocking.
func (m *Machine) SetPrompt(w io.Writer) {
	m.prompt = w
}

// ReadNumber reads one line and parses it as a base-10 integer.
func (m *Machine) ReadNumber() (int, bool) {
	if m.prompt != nil {
		fmt.Fprint(m.prompt, "Enter number: ")
	}
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ReadChar reads one UTF-8 character and returns its code point.
func (m *Machine) ReadChar() (int, bool) {
	r, _, err := m.in.ReadRune()
	if err != nil {
		return 0, false
	}
	return int(r), true
}

func (m *Machine) WriteNumber(n int) error {
	_, err := io.WriteString(m.out, strconv.Itoa(n))
	return err
}

// WriteChar writes printable ASCII as is and anything else as "[n]".
func (m *Machine) WriteChar(n int) error {
	if n >= 32 && n <= 126 {
		_, err := m.out.Write([]byte{byte(n)})
		return err
	}
	_, err := fmt.Fprintf(m.out, "[%d]", n)
	return err
}
