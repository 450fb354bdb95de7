package livestats

import "context"

// Stats are the live scoring stats of one element in one gameweek.
type Stats struct {
	Element         int64
	GW              int
	Minutes         int
	GoalsScored     int
	Assists         int
	CleanSheets     int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
	Saves           int
	Bonus           int
	BPS             int
	TotalPoints     int
}

type Key struct {
	Element int64
	GW      int
}

// Index maps (element, gw) to its stats row.
type Index map[Key]Stats

func NewIndex(items []Stats) Index {
	out := make(Index, len(items))
	for _, s := range items {
		out[Key{Element: s.Element, GW: s.GW}] = s
	}
	return out
}

func (i Index) Points(element int64, gw int) (int, bool) {
	s, ok := i[Key{Element: element, GW: gw}]
	if !ok {
		return 0, false
	}
	return s.TotalPoints, true
}

type Repository interface {
	Upsert(ctx context.Context, items []Stats) error
	ListUpTo(ctx context.Context, maxGW int) ([]Stats, error)
	// MissingForPicks lists (element, gw) pairs picked by some entry that have
	// no stats row.
	MissingForPicks(ctx context.Context) ([]Key, error)
}
