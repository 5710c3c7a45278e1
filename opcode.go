package esolang

type OpCode string

const (
	OpCodeNone      OpCode = ""
	OpCodePush      OpCode = "push"
	OpCodePop       OpCode = "pop"
	OpCodeAdd       OpCode = "add"
	OpCodeSubtract  OpCode = "subtract"
	OpCodeMultiply  OpCode = "multiply"
	OpCodeDivide    OpCode = "divide"
	OpCodeMod       OpCode = "mod"
	OpCodeNot       OpCode = "not"
	OpCodeGreater   OpCode = "greater"
	OpCodePointer   OpCode = "pointer"
	OpCodeSwitch    OpCode = "switch"
	OpCodeDuplicate OpCode = "duplicate"
	OpCodeRoll      OpCode = "roll"
	OpCodeInNumber  OpCode = "in_number"
	OpCodeInChar    OpCode = "in_char"
	OpCodeOutNumber OpCode = "out_number"
	OpCodeOutChar   OpCode = "out_char"
)

func (v OpCode) String() string {
	if v == OpCodeNone {
		return "none"
	}
	return string(v)
}

// opCodeTable is indexed by [hue delta][lightness delta].
var opCodeTable = [hueCount][lightnessCount]OpCode{
	{OpCodeNone, OpCodePush, OpCodePop},
	{OpCodeAdd, OpCodeSubtract, OpCodeMultiply},
	{OpCodeDivide, OpCodeMod, OpCodeNot},
	{OpCodeGreater, OpCodePointer, OpCodeSwitch},
	{OpCodeDuplicate, OpCodeRoll, OpCodeInNumber},
	{OpCodeInChar, OpCodeOutNumber, OpCodeOutChar},
}

// Delta returns the cyclic hue and lightness change from one color to
// another. ok is false when either color is black, white or unknown.
func Delta(from, to Color) (hue int, lightness int, ok bool) {
	if !from.IsChromatic() || !to.IsChromatic() {
		return 0, 0, false
	}
	hue = (to.Hue() - from.Hue() + hueCount) % hueCount
	lightness = (to.Lightness() - from.Lightness() + lightnessCount) % lightnessCount
	return hue, lightness, true
}

// Decode maps a color transition to the operation it performs.
func Decode(from, to Color) OpCode {
	hue, lightness, ok := Delta(from, to)
	if !ok {
		return OpCodeNone
	}
	return opCodeTable[hue][lightness]
}
