package entryhistory

import "context"

// History is one gameweek of an entry's season series. OverallRank and
// RankSort change retroactively and are kept out of exports.
type History struct {
	EntryID        int64
	GW             int
	Points         int
	TotalPoints    int
	OverallRank    int
	RankSort       int
	EventTransfers int
	PointsOnBench  int
	SquadValue     int
	Bank           int
}

// Repository describes entry history persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, items []History) error
	// ListUpTo returns rows with gw <= maxGW ordered by entry_id, gw.
	ListUpTo(ctx context.Context, maxGW int) ([]History, error)
}
