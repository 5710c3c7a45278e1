package esolang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockProcessor_Process(t *testing.T) {
	p := getTestProgram(t, []Color{LightRed, LightRed, Red, Red, Red, DarkRed, DarkYellow})
	state := NewInterpreterState(NewMachine(nil, nil))

	var processor Processor = NewBlockProcessor(p, NewInstructionSet(), NewBlockCache(p), state, 4)
	err := processor.Process(context.Background())
	require.Nil(t, err)
	require.True(t, state.IsState(StateStepLimit))
	require.Equal(t, []int{5}, state.Machine.Stack.Values())
}
