package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type Column struct {
	Name string
	Type string
}

// Table describes one relational table. Derived tables carry no primary key
// and are replaced wholesale on every run.
type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey []string
	Derived    bool
}

func (t Table) CreateSQL() string {
	parts := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		parts = append(parts, c.Name+" "+c.Type)
	}
	if len(t.PrimaryKey) > 0 {
		parts = append(parts, "PRIMARY KEY ("+strings.Join(t.PrimaryKey, ", ")+")")
	}
	return "CREATE TABLE IF NOT EXISTS " + t.Name + " (" + strings.Join(parts, ", ") + ")"
}

func (t Table) ColumnNames() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Name)
	}
	return out
}

// upsertSuffix updates every non-key column on conflict.
func (t Table) upsertSuffix() string {
	keys := make(map[string]struct{}, len(t.PrimaryKey))
	for _, k := range t.PrimaryKey {
		keys[k] = struct{}{}
	}
	update := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if _, ok := keys[c.Name]; ok {
			continue
		}
		update = append(update, c.Name)
	}
	return qb.OnConflict(t.PrimaryKey, update)
}

const (
	typeBigint  = "BIGINT"
	typeInt     = "INTEGER"
	typeText    = "TEXT"
	typeBoolean = "BOOLEAN"
)

func cols(pairs ...string) []Column {
	out := make([]Column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Column{Name: pairs[i], Type: pairs[i+1]})
	}
	return out
}

var (
	TableLeagueEntries = Table{
		Name: "league_entries",
		Columns: cols(
			"id", typeBigint, "entry_id", typeBigint, "entry_name", typeText,
			"player_first_name", typeText, "player_last_name", typeText,
			"short_name", typeText, "waiver_pick", typeInt,
		),
		PrimaryKey: []string{"id"},
	}
	TableLeague = Table{
		Name: "league",
		Columns: cols(
			"id", typeBigint, "name", typeText, "admin_entry", typeBigint,
			"draft_status", typeText, "scoring", typeText, "start_event", typeInt,
			"stop_event", typeInt, "trades", typeText, "transaction_mode", typeText,
		),
		PrimaryKey: []string{"id"},
	}
	TableStandings = Table{
		Name: "standings",
		Columns: cols(
			"league_entry", typeBigint, "rank", typeInt, "last_rank", typeInt,
			"rank_sort", typeInt, "total", typeInt, "event_total", typeInt,
		),
		PrimaryKey: []string{"league_entry"},
	}
	TableStatus = Table{
		Name:       "status",
		Columns:    cols("event", typeInt, "event_date", typeText, "points", typeText, "bonus_added", typeBoolean),
		PrimaryKey: []string{"event"},
	}
	TableElements = Table{
		Name: "elements",
		Columns: cols(
			"id", typeBigint, "web_name", typeText, "first_name", typeText,
			"second_name", typeText, "team", typeInt, "element_type", typeInt,
		),
		PrimaryKey: []string{"id"},
	}
	TableTransactions = Table{
		Name: "transactions",
		Columns: cols(
			"id", typeBigint, "entry", typeBigint, "event", typeInt,
			"element_in", typeBigint, "element_out", typeBigint, "kind", typeText,
			"result", typeText, "priority", typeInt, "added", typeText,
		),
		PrimaryKey: []string{"id"},
	}
	TableElementStatus = Table{
		Name: "element_status",
		Columns: cols(
			"element", typeBigint, "owner", typeBigint, "status", typeText,
			"in_accepted_trade", typeBoolean,
		),
		PrimaryKey: []string{"element"},
	}
	TableDraftChoices = Table{
		Name: "draft_choices",
		Columns: cols(
			"id", typeBigint, "entry", typeBigint, "element", typeBigint,
			"draft_round", typeInt, "draft_pick", typeInt, "was_auto", typeBoolean,
			"choice_time", typeText,
		),
		PrimaryKey: []string{"id"},
	}
	TableEntryProfiles = Table{
		Name: "entry_profiles",
		Columns: cols(
			"entry_id", typeBigint, "name", typeText, "player_first_name", typeText,
			"player_last_name", typeText, "started_event", typeInt,
		),
		PrimaryKey: []string{"entry_id"},
	}
	TableHistory = Table{
		Name: "history",
		Columns: cols(
			"entry_id", typeBigint, "gw", typeInt, "points", typeInt,
			"total_points", typeInt, "overall_rank", typeInt, "rank_sort", typeInt,
			"event_transfers", typeInt, "points_on_bench", typeInt,
			"squad_value", typeInt, "bank", typeInt,
		),
		PrimaryKey: []string{"entry_id", "gw"},
	}
	TableLive = Table{
		Name: "gw_live",
		Columns: cols(
			"element", typeBigint, "gw", typeInt, "minutes", typeInt,
			"goals_scored", typeInt, "assists", typeInt, "clean_sheets", typeInt,
			"goals_conceded", typeInt, "own_goals", typeInt, "penalties_saved", typeInt,
			"penalties_missed", typeInt, "yellow_cards", typeInt, "red_cards", typeInt,
			"saves", typeInt, "bonus", typeInt, "bps", typeInt, "total_points", typeInt,
		),
		PrimaryKey: []string{"element", "gw"},
	}
	TableEvent = Table{
		Name:       "gw_event",
		Columns:    cols("entry_id", typeBigint, "gw", typeInt, "element", typeBigint, "slot", typeInt),
		PrimaryKey: []string{"entry_id", "gw", "element"},
	}
)

var blunderColumns = cols(
	"transaction_id", typeBigint, "entry_id", typeBigint, "team", typeText,
	"waiver_or_free", typeText, "waiver_gw", typeInt, "next_gw", typeInt,
	"player_in", typeText, "player_in_pts", typeInt, "player_out", typeText,
	"player_out_pts", typeInt, "net_pts", typeInt,
)

var (
	TableTotalPoints = Table{
		Name:    "total_points",
		Columns: cols("entry_id", typeBigint, "team", typeText, "gw", typeInt, "points", typeInt, "total_points", typeInt),
		Derived: true,
	}
	TableBenchPoints = Table{
		Name: "bench_pts",
		Columns: cols(
			"entry_id", typeBigint, "team", typeText, "gw", typeInt, "position", typeText,
			"starting_min_pts", typeInt, "bench_max_pts", typeInt, "pts_lost", typeInt,
		),
		Derived: true,
	}
	TableTotalBenchPoints = Table{
		Name:    "total_bench_pts",
		Columns: cols("entry_id", typeBigint, "team", typeText, "bench_pts", typeInt),
		Derived: true,
	}
	TableBlunders = Table{
		Name:    "blunders",
		Columns: blunderColumns,
		Derived: true,
	}
	TableBracketStandings = Table{
		Name:    "bracket_standings",
		Columns: cols("bracket", typeText, "rank", typeInt, "entry_id", typeBigint, "team_name", typeText, "points", typeInt),
		Derived: true,
	}
	TableTimeline = Table{
		Name:    "standings_ts",
		Columns: cols("gw", typeInt, "pos", typeInt, "entry_id", typeBigint, "name", typeText),
		Derived: true,
	}
	TableCumulativePoints = Table{
		Name:    "cumm_points",
		Columns: cols("entry_id", typeBigint, "team", typeText, "gw", typeInt, "points", typeInt, "cumm_points", typeInt),
		Derived: true,
	}
	TableTopTransfers = Table{
		Name:    "top_n_transfers",
		Columns: blunderColumns,
		Derived: true,
	}
	TableBottomTransfers = Table{
		Name:    "bottom_n_transfers",
		Columns: blunderColumns,
		Derived: true,
	}
)

// Tables lists every table in creation order, normalized first.
var Tables = []Table{
	TableLeagueEntries,
	TableLeague,
	TableStandings,
	TableStatus,
	TableElements,
	TableTransactions,
	TableElementStatus,
	TableDraftChoices,
	TableEntryProfiles,
	TableHistory,
	TableLive,
	TableEvent,
	TableTotalPoints,
	TableBenchPoints,
	TableTotalBenchPoints,
	TableBlunders,
	TableBracketStandings,
	TableTimeline,
	TableCumulativePoints,
	TableTopTransfers,
	TableBottomTransfers,
}

func LookupTable(name string) (Table, bool) {
	name = strings.TrimSpace(name)
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

type TableState struct {
	Name    string
	Derived bool
	Exists  bool
	Rows    int64
}

// Schema manages table lifecycle. Existing tables are only dropped by an
// explicit Rebuild.
type Schema struct {
	db *sqlx.DB
}

func NewSchema(db *sqlx.DB) *Schema {
	return &Schema{db: db}
}

func (s *Schema) TableExists(ctx context.Context, name string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("information_schema.tables").
		Where(qb.Eq("table_name", name), qb.Expr("table_schema = current_schema()")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build table exists query: %w", err)
	}

	var count int64
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return count > 0, nil
}

// Ensure creates every missing table and returns the names it created.
func (s *Schema) Ensure(ctx context.Context) ([]string, error) {
	created := make([]string, 0)
	for _, t := range Tables {
		exists, err := s.TableExists(ctx, t.Name)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		if _, err := s.db.ExecContext(ctx, t.CreateSQL()); err != nil {
			return created, fmt.Errorf("create table %s: %w", t.Name, err)
		}
		created = append(created, t.Name)
	}
	return created, nil
}

// Rebuild drops and recreates one table, discarding its rows.
func (s *Schema) Rebuild(ctx context.Context, name string) error {
	t, ok := LookupTable(name)
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx rebuild %s: %w", t.Name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+t.Name); err != nil {
		return fmt.Errorf("drop table %s: %w", t.Name, err)
	}
	if _, err := tx.ExecContext(ctx, t.CreateSQL()); err != nil {
		return fmt.Errorf("create table %s: %w", t.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild %s: %w", t.Name, err)
	}
	return nil
}

func (s *Schema) RebuildDerived(ctx context.Context) ([]string, error) {
	rebuilt := make([]string, 0)
	for _, t := range Tables {
		if !t.Derived {
			continue
		}
		if err := s.Rebuild(ctx, t.Name); err != nil {
			return rebuilt, err
		}
		rebuilt = append(rebuilt, t.Name)
	}
	return rebuilt, nil
}

func (s *Schema) Status(ctx context.Context) ([]TableState, error) {
	out := make([]TableState, 0, len(Tables))
	for _, t := range Tables {
		status := TableState{Name: t.Name, Derived: t.Derived}
		exists, err := s.TableExists(ctx, t.Name)
		if err != nil {
			return nil, err
		}
		status.Exists = exists
		if exists {
			if err := s.db.GetContext(ctx, &status.Rows, "SELECT COUNT(*) FROM "+t.Name); err != nil {
				return nil, fmt.Errorf("count rows %s: %w", t.Name, err)
			}
		}
		out = append(out, status)
	}
	return out, nil
}
