package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("entry_id", "gw", "points").
		From("history").
		Where(Eq("entry_id", int64(7)), Expr("gw <= ?", 5)).
		OrderBy("entry_id", "gw").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT entry_id, gw, points FROM history WHERE entry_id = $1 AND gw <= $2 ORDER BY entry_id, gw"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("elements").
		Columns("id", "web_name").
		Values(int64(1), "Raya").
		Suffix(OnConflict([]string{"id"}, []string{"web_name"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO elements (id, web_name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET web_name = EXCLUDED.web_name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "Raya" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("elements").
		Columns("id", "web_name").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("blunders").Where(Eq("gw", 3)).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM blunders WHERE gw = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = DeleteFrom("standings_ts").ToSQL()
	if err != nil {
		t.Fatalf("build unscoped delete query: %v", err)
	}
	if query != "DELETE FROM standings_ts" || len(args) != 0 {
		t.Fatalf("unexpected unscoped delete: %s %+v", query, args)
	}
}

func TestDeleteBuilder_NotIn(t *testing.T) {
	query, args, err := DeleteFrom("bracket_standings").Where(NotIn("bracket", "1", "2")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM bracket_standings WHERE bracket NOT IN ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "1" || args[1] != "2" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = DeleteFrom("bracket_standings").Where(NotIn("bracket")).ToSQL()
	if err != nil {
		t.Fatalf("build empty not-in query: %v", err)
	}
	if query != "DELETE FROM bracket_standings WHERE TRUE" || len(args) != 0 {
		t.Fatalf("unexpected empty not-in: %s %+v", query, args)
	}
}

func TestOnConflictDoNothing(t *testing.T) {
	got := OnConflict([]string{"entry_id", "gw"}, nil)
	if got != "ON CONFLICT (entry_id, gw) DO NOTHING" {
		t.Fatalf("unexpected suffix: %s", got)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		EntryID int64  `db:"entry_id"`
		Team    string `db:"team"`
		skipped int
		Ignored string `db:"-"`
	}

	query, args, err := InsertModel("total_points", row{EntryID: 3, Team: "Hindsight FC"}, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	if query != "INSERT INTO total_points (entry_id, team) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != "Hindsight FC" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = InsertModel("total_points", &row{EntryID: 4}, "")
	if err != nil {
		t.Fatalf("build insert model from pointer: %v", err)
	}
	if query != "INSERT INTO total_points (entry_id, team) VALUES ($1, $2)" {
		t.Fatalf("unexpected pointer query: %s", query)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilRow *struct {
		ID int `db:"id"`
	}
	if _, _, err := InsertModel("t", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
