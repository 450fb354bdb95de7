package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/pick"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

type squadKey struct {
	entryID int64
	gw      int
}

// ReplaceSquads clears each (entry_id, gw) present in items and writes its
// new picks, all in one transaction.
func (r *PickRepository) ReplaceSquads(ctx context.Context, items []pick.Pick) error {
	if len(items) == 0 {
		return nil
	}

	order := make([]squadKey, 0)
	squads := make(map[squadKey][]pickModel)
	for _, p := range items {
		key := squadKey{entryID: p.EntryID, gw: p.GW}
		if _, ok := squads[key]; !ok {
			order = append(order, key)
		}
		squads[key] = append(squads[key], pickModel{EntryID: p.EntryID, GW: p.GW, Element: p.Element, Slot: p.Slot})
	}

	sets := make([]replaceSet, 0, len(order))
	for _, key := range order {
		set := replacing(TableEvent, squads[key], qb.Eq("entry_id", key.entryID), qb.Eq("gw", key.gw))
		set.suffix = TableEvent.upsertSuffix()
		sets = append(sets, set)
	}
	return replaceModels(ctx, r.db, sets...)
}

func (r *PickRepository) ListUpTo(ctx context.Context, maxGW int) ([]pick.Pick, error) {
	query, args, err := qb.Select(TableEvent.ColumnNames()...).
		From(TableEvent.Name).
		Where(qb.Expr("gw <= ?", maxGW)).
		OrderBy("entry_id", "gw", "slot", "element").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.Pick{EntryID: row.EntryID, GW: row.GW, Element: row.Element, Slot: row.Slot})
	}
	return out, nil
}
