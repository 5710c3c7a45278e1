package esolang

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

type RunID struct {
	value uuid.UUID
}

func NewRunID() RunID {
	return RunID{value: uuid.Must(uuid.NewV4())}
}

func ParseRunID(s string) (RunID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return RunID{}, errors.Wrap(err, "Parse run id")
	}
	if u.Version() != uuid.V4 {
		return RunID{}, errors.New("Invalid uuid version")
	}
	return RunID{value: u}, nil
}

func (v RunID) String() string {
	return v.value.String()
}

func (v RunID) IsEqual(v2 RunID) bool {
	return v.value == v2.value
}

func (v RunID) IsValid() bool {
	return v.value != uuid.Nil
}

// Position is a codel coordinate: X is the column, Y the row.
type Position struct {
	X int
	Y int
}

func (v Position) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Step returns the neighbouring position one codel towards d.
func (v Position) Step(d Direction) Position {
	switch d {
	case DirectionRight:
		v.X++
	case DirectionDown:
		v.Y++
	case DirectionLeft:
		v.X--
	case DirectionUp:
		v.Y--
	}
	return v
}

// Direction is the direction pointer. Values are ordered clockwise.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionDown
	DirectionLeft
	DirectionUp
)

const directionCount = 4

func (v Direction) Clockwise() Direction {
	return (v + 1) % directionCount
}

// Rotate turns the pointer clockwise n times; n <= 0 leaves it unchanged.
func (v Direction) Rotate(n int) Direction {
	for i := 0; i < n; i++ {
		v = v.Clockwise()
	}
	return v
}

func (v Direction) IsHorizontal() bool {
	return v == DirectionRight || v == DirectionLeft
}

func (v Direction) String() string {
	switch v {
	case DirectionRight:
		return "Right"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionUp:
		return "Up"
	}
	return fmt.Sprintf("Direction(%d)", int(v))
}

// CodelChooser selects which end of a block's edge to leave from.
type CodelChooser int

const (
	CodelChooserLeft CodelChooser = iota
	CodelChooserRight
)

func (v CodelChooser) Toggle() CodelChooser {
	if v == CodelChooserLeft {
		return CodelChooserRight
	}
	return CodelChooserLeft
}

func (v CodelChooser) String() string {
	if v == CodelChooserLeft {
		return "Left"
	}
	return "Right"
}

type State string

const (
	StateNew       State = "New"
	StateRunning   State = "Running"
	StateBlocked   State = "Blocked"
	StateStepLimit State = "StepLimit"
	StateCanceled  State = "Canceled"
	StateExit      State = "Exit"
)

func (v State) IsTerminated() bool {
	return v == StateBlocked || v == StateStepLimit || v == StateCanceled || v == StateExit
}
