package esolang

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTraceRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewTraceRecorder(buf)

	header := TraceHeader{Run: NewRunID().String(), Program: "hello.png", Width: 4, Height: 2, CodelSize: 1}
	require.Nil(t, r.WriteHeader(header))

	steps := []TraceStep{
		{Step: 1, X: 2, Color: "Red", OpCode: "push", BlockSize: 2, DP: "Right", CC: "Left", Stack: []int{2}},
		{Step: 2, X: 3, Y: 1, Color: "DarkRed", OpCode: "none", DP: "Down", CC: "Right", Stack: []int{2}},
	}
	for _, s := range steps {
		require.Nil(t, r.WriteStep(s))
	}

	tr, err := ReadTrace(buf)
	require.Nil(t, err)
	require.Equal(t, header, tr.Header)
	require.Equal(t, steps, tr.Steps)
}

func TestReadTrace_Errors(t *testing.T) {
	_, err := ReadTrace(&bytes.Buffer{})
	require.True(t, errors.Is(err, ErrTraceDecode))

	buf := &bytes.Buffer{}
	r := NewTraceRecorder(buf)
	require.Nil(t, r.WriteHeader(TraceHeader{Width: 1, Height: 1}))
	buf.WriteString("\xc1")

	_, err = ReadTrace(buf)
	require.True(t, errors.Is(err, ErrTraceDecode))
}
