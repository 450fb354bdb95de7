package pick

import "context"

const (
	StartingSlots = 11
	SquadSlots    = 15
)

// Pick is one squad slot of an entry in a gameweek.
type Pick struct {
	EntryID int64
	GW      int
	Element int64
	Slot    int
}

func (p Pick) IsStarting() bool {
	return p.Slot >= 1 && p.Slot <= StartingSlots
}

func (p Pick) IsBench() bool {
	return p.Slot > StartingSlots && p.Slot <= SquadSlots
}

type Repository interface {
	// ReplaceSquads swaps the stored squad of every (entry, gw) present in
	// items. Squads of other gameweeks are untouched.
	ReplaceSquads(ctx context.Context, items []Pick) error
	ListUpTo(ctx context.Context, maxGW int) ([]Pick, error)
}
