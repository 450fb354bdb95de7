package player

import "fmt"

// Position is the element_type of a player. Values match the draft API.
type Position int

const (
	PositionGoalkeeper Position = 1
	PositionDefender   Position = 2
	PositionMidfielder Position = 3
	PositionForward    Position = 4
)

// AllPositions is the fixed comparison order used by bench analytics.
var AllPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

func (p Position) Valid() bool {
	return p >= PositionGoalkeeper && p <= PositionForward
}

func (p Position) String() string {
	switch p {
	case PositionGoalkeeper:
		return "GKP"
	case PositionDefender:
		return "DEF"
	case PositionMidfielder:
		return "MID"
	case PositionForward:
		return "FWD"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Element is player master data from bootstrap-static.
type Element struct {
	ID         int64
	WebName    string
	FirstName  string
	SecondName string
	Team       int
	Position   Position
}

func (e Element) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("element id is required")
	}
	if e.WebName == "" {
		return fmt.Errorf("element web name is required")
	}
	if !e.Position.Valid() {
		return fmt.Errorf("invalid element position: %d", int(e.Position))
	}

	return nil
}
