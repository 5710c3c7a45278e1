package esolang

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

const BrainfuckMemorySize = 30000

// Brainfuck runs tape-machine programs: 30000 wrapping byte cells and a
// wrapping data pointer. Input at EOF reads as 0. Output cells are
// written as the code points U+0000 to U+00FF.
type Brainfuck struct {
	Input io.Reader
}

func NewBrainfuck() *Brainfuck {
	return &Brainfuck{}
}

func (m *Brainfuck) ExecuteFile(ctx context.Context, path string) (string, error) {
	program, err := readProgramFile(path)
	if err != nil {
		return "", err
	}
	return m.Execute(ctx, program)
}

// Execute runs program and returns everything it printed. Unmatched
// brackets are tolerated: a '[' without partner skips to the end.
func (m *Brainfuck) Execute(ctx context.Context, program string) (string, error) {
	memory := make([]byte, BrainfuckMemorySize)
	dp, ip := 0, 0
	out := strings.Builder{}
	loops := []int{}

	var in *bufio.Reader
	if m.Input != nil {
		in = bufio.NewReader(m.Input)
	}

	for ip < len(program) {
		if err := ctx.Err(); err != nil {
			return out.String(), wrapError(ErrCanceled, "At instruction %d, %v", ip, err)
		}

		switch program[ip] {
		case '>':
			dp = (dp + 1) % BrainfuckMemorySize
		case '<':
			dp = (dp - 1 + BrainfuckMemorySize) % BrainfuckMemorySize
		case '+':
			memory[dp]++
		case '-':
			memory[dp]--
		case '.':
			out.WriteRune(rune(memory[dp]))
		case ',':
			memory[dp] = 0
			if in != nil {
				if b, err := in.ReadByte(); err == nil {
					memory[dp] = b
				}
			}
		case '[':
			if memory[dp] == 0 {
				depth := 1
				ip++
				for ip < len(program) && depth > 0 {
					switch program[ip] {
					case '[':
						depth++
					case ']':
						depth--
					}
					ip++
				}
				ip--
			} else {
				loops = append(loops, ip)
			}
		case ']':
			if len(loops) == 0 {
				break
			}
			if memory[dp] != 0 {
				ip = loops[len(loops)-1]
			} else {
				loops = loops[:len(loops)-1]
			}
		}

		ip++
	}

	return out.String(), nil
}

func readProgramFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", wrapError(ErrProgramFile, "%s", path)
	}
	if err != nil {
		return "", wrapError(err, "Read %s", path)
	}
	return string(b), nil
}
