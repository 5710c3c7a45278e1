package esolang

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// TraceHeader opens a recorded trace.
type TraceHeader struct {
	Run       string `msgpack:"run"`
	Program   string `msgpack:"program"`
	Width     int    `msgpack:"width"`
	Height    int    `msgpack:"height"`
	CodelSize int    `msgpack:"codel_size"`
}

// TraceStep is one executed transition as seen after its operation ran.
type TraceStep struct {
	Step      int    `msgpack:"step"`
	X         int    `msgpack:"x"`
	Y         int    `msgpack:"y"`
	Color     string `msgpack:"color"`
	OpCode    string `msgpack:"opcode"`
	BlockSize int    `msgpack:"block_size"`
	DP        string `msgpack:"dp"`
	CC        string `msgpack:"cc"`
	Stack     []int  `msgpack:"stack"`
}

type Trace struct {
	Header TraceHeader
	Steps  []TraceStep
}

// TraceRecorder writes a header followed by a stream of steps in msgpack.
type TraceRecorder struct {
	enc *msgpack.Encoder
}

func NewTraceRecorder(w io.Writer) *TraceRecorder {
	return &TraceRecorder{enc: msgpack.NewEncoder(w)}
}

func (m *TraceRecorder) WriteHeader(h TraceHeader) error {
	if err := m.enc.Encode(&h); err != nil {
		return wrapError(ErrTraceEncode, "Header, %v", err)
	}
	return nil
}

func (m *TraceRecorder) WriteStep(s TraceStep) error {
	if err := m.enc.Encode(&s); err != nil {
		return wrapError(ErrTraceEncode, "Step %d, %v", s.Step, err)
	}
	return nil
}

// ReadTrace decodes a stream written by TraceRecorder.
func ReadTrace(r io.Reader) (Trace, error) {
	dec := msgpack.NewDecoder(r)

	t := Trace{}
	if err := dec.Decode(&t.Header); err != nil {
		return Trace{}, wrapError(ErrTraceDecode, "Header, %v", err)
	}

	for {
		s := TraceStep{}
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Trace{}, wrapError(ErrTraceDecode, "Step %d, %v", len(t.Steps)+1, err)
		}
		t.Steps = append(t.Steps, s)
	}

	return t, nil
}
