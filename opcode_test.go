package esolang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		from, to Color
		want     OpCode
	}{
		{Red, Red, OpCodeNone},
		{LightRed, Red, OpCodePush},
		{LightRed, DarkRed, OpCodePop},
		{Red, Yellow, OpCodeAdd},
		{Red, DarkYellow, OpCodeSubtract},
		{Red, LightYellow, OpCodeMultiply},
		{Red, Green, OpCodeDivide},
		{Red, DarkGreen, OpCodeMod},
		{Red, LightGreen, OpCodeNot},
		{Red, Cyan, OpCodeGreater},
		{Red, DarkCyan, OpCodePointer},
		{Red, LightCyan, OpCodeSwitch},
		{Red, Blue, OpCodeDuplicate},
		{Red, DarkBlue, OpCodeRoll},
		{Red, LightBlue, OpCodeInNumber},
		{Red, Magenta, OpCodeInChar},
		{Red, DarkMagenta, OpCodeOutNumber},
		{Red, LightMagenta, OpCodeOutChar},
		// Hue and lightness wrap around.
		{Magenta, Red, OpCodeAdd},
		{DarkBlue, LightBlue, OpCodePush},
		{DarkMagenta, LightRed, OpCodeSubtract},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Decode(tt.from, tt.to), "%v -> %v", tt.from, tt.to)
	}
}

func TestDecode_NonChromaticIsNoOp(t *testing.T) {
	for _, c := range []Color{White, Black, Unknown} {
		for _, other := range []Color{Red, DarkBlue, White, Black, Unknown} {
			require.Equal(t, OpCodeNone, Decode(c, other))
			require.Equal(t, OpCodeNone, Decode(other, c))
		}
	}
}

func TestDecode_DependsOnlyOnDeltas(t *testing.T) {
	for from := LightRed; from < White; from++ {
		for to := LightRed; to < White; to++ {
			hue, lightness, ok := Delta(from, to)
			require.True(t, ok)
			require.Equal(t, opCodeTable[hue][lightness], Decode(from, to))
		}
	}
}

func TestOpCode_String(t *testing.T) {
	require.Equal(t, "none", OpCodeNone.String())
	require.Equal(t, "out_char", OpCodeOutChar.String())
}
