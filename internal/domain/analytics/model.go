package analytics

import (
	"context"

	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/player"
)

// DefaultTransferLimit is the size of the top and bottom transfer lists.
const DefaultTransferLimit = 10

// TeamPoints is one gameweek of an entry's history joined with its team name.
type TeamPoints struct {
	EntryID     int64
	Team        string
	GW          int
	Points      int
	TotalPoints int
}

// BenchLoss is the points an entry left on the bench at one position in one
// gameweek. PtsLost is always positive.
type BenchLoss struct {
	EntryID        int64
	Team           string
	GW             int
	Position       player.Position
	StartingMinPts int
	BenchMaxPts    int
	PtsLost        int
}

type BenchTotal struct {
	EntryID  int64
	Team     string
	BenchPts int
}

// Blunder scores an accepted transaction by what the incoming and outgoing
// players scored in the following gameweek.
type Blunder struct {
	TransactionID int64
	EntryID       int64
	Team          string
	WaiverOrFree  string
	WaiverGW      int
	NextGW        int
	PlayerIn      string
	PlayerInPts   int
	PlayerOut     string
	PlayerOutPts  int
	NetPts        int
}

type TimelineRow struct {
	GW      int
	Pos     int
	EntryID int64
	Name    string
}

type CumulativePoints struct {
	EntryID    int64
	Team       string
	GW         int
	Points     int
	CummPoints int
}

// Repository replaces derived tables wholesale. Each call runs in its own
// transaction.
type Repository interface {
	ReplaceTeamPoints(ctx context.Context, rows []TeamPoints) error
	ListTeamPoints(ctx context.Context) ([]TeamPoints, error)
	ReplaceBenchPoints(ctx context.Context, losses []BenchLoss, totals []BenchTotal) error
	ReplaceBlunders(ctx context.Context, gw int, rows []Blunder) error
	ListBlunders(ctx context.Context) ([]Blunder, error)
	ReplaceBracketStandings(ctx context.Context, name string, rows []bracket.Standing) error
	// PruneStale drops blunders outside gameweeks 1..maxGW and standings of
	// brackets not named in brackets.
	PruneStale(ctx context.Context, maxGW int, brackets []string) error
	ReplaceTimeline(ctx context.Context, rows []TimelineRow) error
	ReplaceCumulativePoints(ctx context.Context, rows []CumulativePoints) error
	ReplaceTransfers(ctx context.Context, top, bottom []Blunder) error
}

// TeamNames maps team ids to entry names.
func TeamNames(entries []league.Entry) map[int64]string {
	out := make(map[int64]string, len(entries))
	for _, e := range entries {
		out[e.EntryID] = e.EntryName
	}
	return out
}
