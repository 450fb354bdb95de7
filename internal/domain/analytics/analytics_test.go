package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/pick"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
)

func testEntries() []league.Entry {
	return []league.Entry{
		{ID: 1, EntryID: 101, EntryName: "A"},
		{ID: 2, EntryID: 102, EntryName: "B"},
	}
}

func TestBlunderAppearsInBottomTransfers(t *testing.T) {
	elements := map[int64]player.Element{
		10: {ID: 10, WebName: "X", Position: player.PositionMidfielder},
		20: {ID: 20, WebName: "Y", Position: player.PositionMidfielder},
	}
	stats := livestats.NewIndex([]livestats.Stats{
		{Element: 10, GW: 2, TotalPoints: 3},
		{Element: 20, GW: 2, TotalPoints: 7},
	})
	txs := []transaction.Transaction{
		{ID: 5, Entry: 101, GW: 1, ElementIn: 10, ElementOut: 20, Kind: "w", Result: "a"},
		{ID: 6, Entry: 102, GW: 1, ElementIn: 20, ElementOut: 10, Kind: "f", Result: "di"},
	}

	rows := Blunders(1, testEntries(), txs, stats, elements)
	require.Len(t, rows, 1)
	assert.Equal(t, Blunder{
		TransactionID: 5,
		EntryID:       101,
		Team:          "A",
		WaiverOrFree:  "w",
		WaiverGW:      1,
		NextGW:        2,
		PlayerIn:      "X",
		PlayerInPts:   3,
		PlayerOut:     "Y",
		PlayerOutPts:  7,
		NetPts:        -4,
	}, rows[0])

	_, bottom := TopBottomTransfers(rows, DefaultTransferLimit)
	require.NotEmpty(t, bottom)
	assert.Equal(t, -4, bottom[0].NetPts)
}

func TestBlundersSkipMissingNextGameweekStats(t *testing.T) {
	stats := livestats.NewIndex([]livestats.Stats{{Element: 10, GW: 2, TotalPoints: 3}})
	txs := []transaction.Transaction{
		{ID: 5, Entry: 101, GW: 1, ElementIn: 10, ElementOut: 20, Kind: "w", Result: "a"},
	}

	rows := Blunders(1, testEntries(), txs, stats, nil)
	assert.Empty(t, rows)
}

func TestTopBottomTransfersTieBreak(t *testing.T) {
	all := []Blunder{
		{TransactionID: 9, WaiverGW: 3, NetPts: 5},
		{TransactionID: 2, WaiverGW: 3, NetPts: 5},
		{TransactionID: 1, WaiverGW: 4, NetPts: 5},
		{TransactionID: 4, WaiverGW: 1, NetPts: -2},
	}

	top, bottom := TopBottomTransfers(all, 2)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].TransactionID)
	assert.Equal(t, int64(9), top[1].TransactionID)

	require.Len(t, bottom, 2)
	assert.Equal(t, int64(4), bottom[0].TransactionID)
	assert.Equal(t, int64(2), bottom[1].TransactionID)
}

func TestBracketStandingsRankByPoints(t *testing.T) {
	points := []TeamPoints{
		{EntryID: 101, Team: "A", GW: 1, Points: 30},
		{EntryID: 101, Team: "A", GW: 5, Points: 10},
		{EntryID: 102, Team: "B", GW: 1, Points: 5},
		{EntryID: 102, Team: "B", GW: 3, Points: 50},
		{EntryID: 102, Team: "B", GW: 6, Points: 99},
	}

	rows := BracketStandings(bracket.Bracket{Name: "early", Start: 1, End: 5}, 6, testEntries(), points)
	require.Len(t, rows, 2)
	assert.Equal(t, bracket.Standing{Bracket: "early", Rank: 1, EntryID: 102, TeamName: "B", Points: 55}, rows[0])
	assert.Equal(t, bracket.Standing{Bracket: "early", Rank: 2, EntryID: 101, TeamName: "A", Points: 40}, rows[1])
}

func TestBracketStandingsNotStarted(t *testing.T) {
	points := []TeamPoints{{EntryID: 102, Team: "B", GW: 1, Points: 5}}

	rows := BracketStandings(bracket.Bracket{Name: "late", Start: 10, End: 20}, 3, testEntries(), points)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Zero(t, r.Points)
	}
	assert.Equal(t, int64(101), rows[0].EntryID)
}

func TestBenchLossKeeperOnly(t *testing.T) {
	elements := map[int64]player.Element{
		1:  {ID: 1, Position: player.PositionGoalkeeper},
		2:  {ID: 2, Position: player.PositionDefender},
		3:  {ID: 3, Position: player.PositionMidfielder},
		4:  {ID: 4, Position: player.PositionForward},
		12: {ID: 12, Position: player.PositionGoalkeeper},
		13: {ID: 13, Position: player.PositionDefender},
		14: {ID: 14, Position: player.PositionMidfielder},
		15: {ID: 15, Position: player.PositionForward},
	}
	stats := livestats.NewIndex([]livestats.Stats{
		{Element: 1, GW: 1, TotalPoints: 2},
		{Element: 2, GW: 1, TotalPoints: 6},
		{Element: 3, GW: 1, TotalPoints: 5},
		{Element: 4, GW: 1, TotalPoints: 4},
		{Element: 12, GW: 1, TotalPoints: 8},
		{Element: 13, GW: 1, TotalPoints: 6},
		{Element: 14, GW: 1, TotalPoints: 1},
		{Element: 15, GW: 1, TotalPoints: 0},
	})
	picks := []pick.Pick{
		{EntryID: 101, GW: 1, Element: 1, Slot: 1},
		{EntryID: 101, GW: 1, Element: 2, Slot: 2},
		{EntryID: 101, GW: 1, Element: 3, Slot: 7},
		{EntryID: 101, GW: 1, Element: 4, Slot: 11},
		{EntryID: 101, GW: 1, Element: 12, Slot: 12},
		{EntryID: 101, GW: 1, Element: 13, Slot: 13},
		{EntryID: 101, GW: 1, Element: 14, Slot: 14},
		{EntryID: 101, GW: 1, Element: 15, Slot: 15},
	}

	losses := BenchLosses(testEntries(), picks, stats, elements)
	require.Len(t, losses, 1)
	assert.Equal(t, BenchLoss{
		EntryID:        101,
		Team:           "A",
		GW:             1,
		Position:       player.PositionGoalkeeper,
		StartingMinPts: 2,
		BenchMaxPts:    8,
		PtsLost:        6,
	}, losses[0])

	totals := BenchTotals(testEntries(), losses)
	assert.Equal(t, []BenchTotal{
		{EntryID: 101, Team: "A", BenchPts: 6},
		{EntryID: 102, Team: "B", BenchPts: 0},
	}, totals)
	for _, l := range losses {
		assert.Positive(t, l.PtsLost)
	}
}

func TestRunningStandingsTieGoesToLowerEntry(t *testing.T) {
	points := []TeamPoints{
		{EntryID: 102, Team: "B", GW: 1, Points: 10},
		{EntryID: 101, Team: "A", GW: 1, Points: 10},
		{EntryID: 102, Team: "B", GW: 2, Points: 1},
		{EntryID: 101, Team: "A", GW: 2, Points: 4},
	}

	rows := RunningStandings(points)
	assert.Equal(t, []TimelineRow{
		{GW: 1, Pos: 1, EntryID: 101, Name: "A"},
		{GW: 1, Pos: 2, EntryID: 102, Name: "B"},
		{GW: 2, Pos: 1, EntryID: 101, Name: "A"},
		{GW: 2, Pos: 2, EntryID: 102, Name: "B"},
	}, rows)
}

func TestConcatAndCumulative(t *testing.T) {
	history := []entryhistory.History{
		{EntryID: 102, GW: 1, Points: 3, TotalPoints: 3},
		{EntryID: 101, GW: 2, Points: 7, TotalPoints: 12},
		{EntryID: 101, GW: 1, Points: 5, TotalPoints: 5},
		{EntryID: 999, GW: 1, Points: 50, TotalPoints: 50},
	}

	joined := ConcatTeamPoints(testEntries(), history)
	require.Len(t, joined, 3)
	assert.Equal(t, TeamPoints{EntryID: 101, Team: "A", GW: 1, Points: 5, TotalPoints: 5}, joined[0])

	cumm := Cumulative(joined)
	assert.Equal(t, []CumulativePoints{
		{EntryID: 101, Team: "A", GW: 1, Points: 5, CummPoints: 5},
		{EntryID: 101, Team: "A", GW: 2, Points: 7, CummPoints: 12},
		{EntryID: 102, Team: "B", GW: 1, Points: 3, CummPoints: 3},
	}, cumm)
}

func TestRecordsAreDeterministic(t *testing.T) {
	points := []TeamPoints{
		{EntryID: 102, Team: "B", GW: 1, Points: 10},
		{EntryID: 101, Team: "A", GW: 1, Points: 10},
	}
	first := Records(RunningStandings(points))
	second := Records(RunningStandings([]TeamPoints{points[1], points[0]}))
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"1", "1", "A"}, first[0])
	assert.Len(t, BlunderHeader, len(Blunder{}.Record()))
}
