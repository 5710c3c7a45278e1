package esolang

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	old := stdLogger
	defer SetLogger(old)

	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)

	img := getTestImage(1, []Color{Red, Green})
	_, err := LoadProgram(writeTestPNG(t, t.TempDir(), img), 1)
	require.Nil(t, err)
	require.Contains(t, buf.String(), "Decoded png image")

	m, err := NewFromProgram(getTestProgram(t, []Color{Red}))
	require.Nil(t, err)
	require.Equal(t, l, m.logger)
}

func TestRunLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)

	id := NewRunID()
	newRunLogger(l).WithRun(id).WithProgram("hello.png").Logger().Info("started")
	require.Contains(t, buf.String(), "channel=run")
	require.Contains(t, buf.String(), "program=hello.png")
	require.Contains(t, buf.String(), "run="+id.String())

	buf.Reset()
	newRunLogger(l).WithStep(7).Logger().Info("stepped")
	require.Contains(t, buf.String(), "channel=step")
	require.Contains(t, buf.String(), "step=7")
}

func TestTraceFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := newTraceLogger(buf)
	l.WithField("run", "x").Debugf("Step %d: Pos(%d,%d)", 1, 2, 0)
	require.Equal(t, "Step 1: Pos(2,0)\n", buf.String())
}
