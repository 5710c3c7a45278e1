package esolang

// Instruction is one decoded transition between two color blocks.
type Instruction struct {
	OpCode         OpCode
	From           ColorBlock
	To             ColorBlock
	HueDelta       int
	LightnessDelta int
}

func NewInstruction(from, to ColorBlock) Instruction {
	hue, lightness, _ := Delta(from.Color, to.Color)
	return Instruction{
		OpCode:         Decode(from.Color, to.Color),
		From:           from,
		To:             to,
		HueDelta:       hue,
		LightnessDelta: lightness,
	}
}

// Operand is the size of the block being left; only push reads it.
func (m Instruction) Operand() int {
	return m.From.Size()
}

func (m Instruction) IsNoOp() bool {
	return m.OpCode == OpCodeNone
}
