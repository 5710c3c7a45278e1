package esolang

// MaxNavigationAttempts covers every direction pointer and codel chooser
// combination once.
const MaxNavigationAttempts = directionCount * 2

// Move is the outcome of trying to leave a block.
type Move struct {
	To       Position
	DP       Direction
	CC       CodelChooser
	Attempts int
	Blocked  bool
}

// Navigate finds the codel execution moves to from block. Each blocked
// attempt turns dp clockwise, and every second one also toggles cc. The
// returned DP and CC are the pointer state after the last attempt.
func Navigate(p *Program, block ColorBlock, dp Direction, cc CodelChooser) Move {
	if block.Size() == 0 {
		return Move{DP: dp, CC: cc, Blocked: true}
	}

	for attempt := 0; attempt < MaxNavigationAttempts; attempt++ {
		next := ExitCodel(block, dp, cc).Step(dp)
		if p.Contains(next) && p.At(next) != Black {
			return Move{To: next, DP: dp, CC: cc, Attempts: attempt + 1}
		}
		dp, cc = retryPointers(attempt, dp, cc)
	}

	return Move{DP: dp, CC: cc, Attempts: MaxNavigationAttempts, Blocked: true}
}

func retryPointers(attempt int, dp Direction, cc CodelChooser) (Direction, CodelChooser) {
	dp = dp.Clockwise()
	if attempt%2 == 1 {
		cc = cc.Toggle()
	}
	return dp, cc
}

// ExitCodel picks the codel of block furthest along dp, resolving ties on
// the perpendicular axis with cc: Left takes the smaller coordinate, Right
// the larger.
func ExitCodel(block ColorBlock, dp Direction, cc CodelChooser) Position {
	edge := blockEdge(block, dp)

	chosen := edge[0]
	for _, pos := range edge[1:] {
		var a, b int
		if dp.IsHorizontal() {
			a, b = pos.Y, chosen.Y
		} else {
			a, b = pos.X, chosen.X
		}
		if (cc == CodelChooserLeft && a < b) || (cc == CodelChooserRight && a > b) {
			chosen = pos
		}
	}
	return chosen
}

func blockEdge(block ColorBlock, dp Direction) []Position {
	axis := func(pos Position) int {
		switch dp {
		case DirectionRight:
			return pos.X
		case DirectionDown:
			return pos.Y
		case DirectionLeft:
			return -pos.X
		default:
			return -pos.Y
		}
	}

	best := axis(block.Codels[0])
	for _, pos := range block.Codels[1:] {
		if v := axis(pos); v > best {
			best = v
		}
	}

	edge := []Position{}
	for _, pos := range block.Codels {
		if axis(pos) == best {
			edge = append(edge, pos)
		}
	}
	return edge
}
