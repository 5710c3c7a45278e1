package esolang

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

type ookPair struct {
	first, second string
}

var ookCommands = map[ookPair]byte{
	{"Ook.", "Ook?"}: '>',
	{"Ook?", "Ook."}: '<',
	{"Ook.", "Ook."}: '+',
	{"Ook!", "Ook!"}: '-',
	{"Ook!", "Ook."}: '.',
	{"Ook.", "Ook!"}: ',',
	{"Ook!", "Ook?"}: '[',
	{"Ook?", "Ook!"}: ']',
}

var brainfuckCommands = func() map[byte]ookPair {
	m := make(map[byte]ookPair, len(ookCommands))
	for pair, c := range ookCommands {
		m[c] = pair
	}
	return m
}()

// Ook runs Ook! programs by translating them to Brainfuck.
type Ook struct {
	Brainfuck *Brainfuck
}

func NewOok() *Ook {
	return &Ook{Brainfuck: NewBrainfuck()}
}

func (m *Ook) ExecuteFile(ctx context.Context, path string) (string, error) {
	program, err := readProgramFile(path)
	if err != nil {
		return "", err
	}
	return m.Execute(ctx, program)
}

func (m *Ook) Execute(ctx context.Context, program string) (string, error) {
	return m.Brainfuck.Execute(ctx, TranslateOok(program))
}

// TranslateOok pairs up Ook tokens and maps each pair to its Brainfuck
// command. Unknown pairs and a trailing odd token are dropped.
func TranslateOok(program string) string {
	tokens := tokenizeOok(program)

	b := strings.Builder{}
	for i := 0; i+1 < len(tokens); i += 2 {
		if c, ok := ookCommands[ookPair{tokens[i], tokens[i+1]}]; ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func tokenizeOok(program string) []string {
	tokens := []string{}
	for _, word := range strings.Fields(program) {
		if !strings.HasPrefix(word, "Ook") {
			continue
		}
		if strings.HasSuffix(word, ".") || strings.HasSuffix(word, "?") || strings.HasSuffix(word, "!") {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// TranslateBrainfuck writes each Brainfuck command as its Ook pair, all
// tokens separated by single spaces. Other characters are dropped.
func TranslateBrainfuck(program string) string {
	tokens := []string{}
	for i := 0; i < len(program); i++ {
		if pair, ok := brainfuckCommands[program[i]]; ok {
			tokens = append(tokens, pair.first, pair.second)
		}
	}
	return strings.Join(tokens, " ")
}

// TranslateBrainfuckFile translates the Brainfuck program at src and writes
// the Ook program to dst, creating its directory if needed.
func TranslateBrainfuckFile(src, dst string) error {
	program, err := readProgramFile(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return wrapError(err, "Create directory for %s", dst)
	}
	if err := os.WriteFile(dst, []byte(TranslateBrainfuck(program)), 0644); err != nil {
		return wrapError(err, "Write %s", dst)
	}
	return nil
}
