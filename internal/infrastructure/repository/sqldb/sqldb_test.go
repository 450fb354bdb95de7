package sqldb

import (
	"context"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/drafty/internal/domain/analytics"
	"github.com/riskibarqy/drafty/internal/domain/bracket"
	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/pick"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), DriverDuckDB, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = NewSchema(db).Ensure(context.Background())
	require.NoError(t, err)
	return db
}

func TestTableCreateSQL(t *testing.T) {
	got := TableEvent.CreateSQL()
	want := "CREATE TABLE IF NOT EXISTS gw_event (entry_id BIGINT, gw INTEGER, element BIGINT, slot INTEGER, PRIMARY KEY (entry_id, gw, element))"
	if got != want {
		t.Fatalf("unexpected ddl:\nwant: %s\ngot:  %s", want, got)
	}
	if strings.Contains(TableBlunders.CreateSQL(), "PRIMARY KEY") {
		t.Fatalf("derived tables must not declare a primary key")
	}
}

func TestUpsertSuffixSkipsKeyColumns(t *testing.T) {
	got := TableEvent.upsertSuffix()
	if got != "ON CONFLICT (entry_id, gw, element) DO UPDATE SET slot = EXCLUDED.slot" {
		t.Fatalf("unexpected suffix: %s", got)
	}
}

func TestLookupTable(t *testing.T) {
	if _, ok := LookupTable("history"); !ok {
		t.Fatalf("expected history table")
	}
	if _, ok := LookupTable("history; DROP TABLE x"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestSchemaEnsureIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	schema := NewSchema(db)

	created, err := schema.Ensure(ctx)
	require.NoError(t, err)
	assert.Empty(t, created)

	status, err := schema.Status(ctx)
	require.NoError(t, err)
	require.Len(t, status, len(Tables))
	for _, s := range status {
		assert.True(t, s.Exists, s.Name)
	}
}

func TestLeagueRepositoryUpsertExtends(t *testing.T) {
	ctx := context.Background()
	repo := NewLeagueRepository(openTestDB(t))

	require.NoError(t, repo.UpsertEntries(ctx, []league.Entry{
		{ID: 2, EntryID: 102, EntryName: "B"},
		{ID: 1, EntryID: 101, EntryName: "A"},
	}))
	require.NoError(t, repo.UpsertEntries(ctx, []league.Entry{
		{ID: 1, EntryID: 101, EntryName: "A renamed"},
	}))

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A renamed", entries[0].EntryName)
	assert.Equal(t, int64(102), entries[1].EntryID)

	_, ok, err := repo.MaxEvent(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.UpsertStatuses(ctx, []league.EventStatus{{Event: 1}, {Event: 3}, {Event: 2}}))
	maxGW, ok, err := repo.MaxEvent(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, maxGW)

	owner := int64(1)
	require.NoError(t, repo.UpsertOwnership(ctx, []league.Ownership{
		{Element: 10, Owner: &owner, Status: "o"},
		{Element: 11, Status: "a"},
	}))
}

func TestLiveStatsCompleteness(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	picks := NewPickRepository(db)
	stats := NewLiveStatsRepository(db)

	require.NoError(t, picks.ReplaceSquads(ctx, []pick.Pick{
		{EntryID: 101, GW: 1, Element: 10, Slot: 1},
		{EntryID: 101, GW: 1, Element: 11, Slot: 12},
	}))
	require.NoError(t, stats.Upsert(ctx, []livestats.Stats{{Element: 10, GW: 1, TotalPoints: 6}}))

	missing, err := stats.MissingForPicks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []livestats.Key{{Element: 11, GW: 1}}, missing)

	require.NoError(t, stats.Upsert(ctx, []livestats.Stats{{Element: 11, GW: 1, TotalPoints: 2}}))
	missing, err = stats.MissingForPicks(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)

	rows, err := stats.ListUpTo(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 6, rows[0].TotalPoints)
}

func TestNormalizedReadsAreOrdered(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	history := NewHistoryRepository(db)
	require.NoError(t, history.Upsert(ctx, []entryhistory.History{
		{EntryID: 102, GW: 1, Points: 3},
		{EntryID: 101, GW: 2, Points: 7},
		{EntryID: 101, GW: 1, Points: 5},
		{EntryID: 101, GW: 3, Points: 9},
	}))
	rows, err := history.ListUpTo(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 5, rows[0].Points)
	assert.Equal(t, 7, rows[1].Points)
	assert.Equal(t, int64(102), rows[2].EntryID)

	elements := NewPlayerRepository(db)
	require.NoError(t, elements.UpsertElements(ctx, []player.Element{
		{ID: 2, WebName: "Saka", Position: player.PositionMidfielder},
		{ID: 1, WebName: "Raya", Position: player.PositionGoalkeeper},
	}))
	items, err := elements.ListElements(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, player.PositionGoalkeeper, items[0].Position)

	txs := NewTransactionRepository(db)
	require.NoError(t, txs.Upsert(ctx, []transaction.Transaction{
		{ID: 3, Entry: 101, GW: 2, Result: "a"},
		{ID: 1, Entry: 101, GW: 1, Result: "di"},
		{ID: 2, Entry: 102, GW: 1, Result: "a"},
	}))
	accepted, err := txs.ListAccepted(ctx)
	require.NoError(t, err)
	require.Len(t, accepted, 2)
	assert.Equal(t, int64(2), accepted[0].ID)
	assert.Equal(t, int64(3), accepted[1].ID)
}

func TestDerivedReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDerivedRepository(db)

	require.NoError(t, repo.ReplaceTeamPoints(ctx, []analytics.TeamPoints{
		{EntryID: 1, Team: "A", GW: 1, Points: 5, TotalPoints: 5},
		{EntryID: 1, Team: "A", GW: 2, Points: 5, TotalPoints: 10},
	}))
	require.NoError(t, repo.ReplaceTeamPoints(ctx, []analytics.TeamPoints{
		{EntryID: 1, Team: "A", GW: 1, Points: 5, TotalPoints: 5},
	}))
	points, err := repo.ListTeamPoints(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 1)

	require.NoError(t, repo.ReplaceBlunders(ctx, 1, []analytics.Blunder{{TransactionID: 1, WaiverGW: 1, NextGW: 2, NetPts: -4}}))
	require.NoError(t, repo.ReplaceBlunders(ctx, 2, []analytics.Blunder{{TransactionID: 2, WaiverGW: 2, NextGW: 3, NetPts: 3}}))
	require.NoError(t, repo.ReplaceBlunders(ctx, 1, []analytics.Blunder{{TransactionID: 5, WaiverGW: 1, NextGW: 2, NetPts: 1}}))

	blunders, err := repo.ListBlunders(ctx)
	require.NoError(t, err)
	require.Len(t, blunders, 2)
	assert.Equal(t, int64(5), blunders[0].TransactionID)
	assert.Equal(t, int64(2), blunders[1].TransactionID)
}

func TestDerivedPruneStale(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewDerivedRepository(db)

	for gw := 1; gw <= 3; gw++ {
		require.NoError(t, repo.ReplaceBlunders(ctx, gw, []analytics.Blunder{{TransactionID: int64(gw), WaiverGW: gw, NextGW: gw + 1}}))
	}
	for _, name := range []string{"early", "renamed", "late"} {
		require.NoError(t, repo.ReplaceBracketStandings(ctx, name, []bracket.Standing{{Bracket: name, Rank: 1, EntryID: 1, TeamName: "A"}}))
	}

	require.NoError(t, repo.PruneStale(ctx, 2, []string{"early", "late"}))

	blunders, err := repo.ListBlunders(ctx)
	require.NoError(t, err)
	require.Len(t, blunders, 2)
	assert.Equal(t, 2, blunders[1].WaiverGW)

	var names []string
	require.NoError(t, db.SelectContext(ctx, &names, "SELECT DISTINCT bracket FROM "+TableBracketStandings.Name+" ORDER BY bracket"))
	assert.Equal(t, []string{"early", "late"}, names)

	require.NoError(t, repo.PruneStale(ctx, 2, nil))
	var remaining int
	require.NoError(t, db.GetContext(ctx, &remaining, "SELECT COUNT(*) FROM "+TableBracketStandings.Name))
	assert.Zero(t, remaining)
}

func TestPickReplaceSquads(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewPickRepository(db)

	require.NoError(t, repo.ReplaceSquads(ctx, []pick.Pick{
		{EntryID: 1, GW: 1, Element: 10, Slot: 1},
		{EntryID: 1, GW: 1, Element: 11, Slot: 12},
		{EntryID: 1, GW: 2, Element: 10, Slot: 1},
	}))
	require.NoError(t, repo.ReplaceSquads(ctx, []pick.Pick{
		{EntryID: 1, GW: 1, Element: 10, Slot: 1},
		{EntryID: 1, GW: 1, Element: 12, Slot: 12},
	}))

	rows, err := repo.ListUpTo(ctx, 38)
	require.NoError(t, err)
	assert.Equal(t, []pick.Pick{
		{EntryID: 1, GW: 1, Element: 10, Slot: 1},
		{EntryID: 1, GW: 1, Element: 12, Slot: 12},
		{EntryID: 1, GW: 2, Element: 10, Slot: 1},
	}, rows)
}

func TestSchemaRebuildDropsRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	schema := NewSchema(db)
	repo := NewPickRepository(db)

	require.NoError(t, repo.ReplaceSquads(ctx, []pick.Pick{{EntryID: 1, GW: 1, Element: 1, Slot: 1}}))
	require.NoError(t, schema.Rebuild(ctx, TableEvent.Name))

	rows, err := repo.ListUpTo(ctx, 38)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.Error(t, schema.Rebuild(ctx, "not_a_table"))

	rebuilt, err := schema.RebuildDerived(ctx)
	require.NoError(t, err)
	assert.Contains(t, rebuilt, TableBlunders.Name)
	assert.NotContains(t, rebuilt, TableHistory.Name)
}
