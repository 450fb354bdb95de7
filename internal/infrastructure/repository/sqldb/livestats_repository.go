package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/livestats"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type LiveStatsRepository struct {
	db *sqlx.DB
}

func NewLiveStatsRepository(db *sqlx.DB) *LiveStatsRepository {
	return &LiveStatsRepository{db: db}
}

func (r *LiveStatsRepository) Upsert(ctx context.Context, items []livestats.Stats) error {
	rows := make([]liveModel, 0, len(items))
	for _, s := range items {
		rows = append(rows, liveModel(s))
	}
	return upsertModels(ctx, r.db, TableLive, rows)
}

func (r *LiveStatsRepository) ListUpTo(ctx context.Context, maxGW int) ([]livestats.Stats, error) {
	query, args, err := qb.Select(TableLive.ColumnNames()...).
		From(TableLive.Name).
		Where(qb.Expr("gw <= ?", maxGW)).
		OrderBy("gw", "element").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list live stats query: %w", err)
	}

	var rows []liveModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list live stats: %w", err)
	}

	out := make([]livestats.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, livestats.Stats(row))
	}
	return out, nil
}

const missingLiveStatsQuery = `SELECT DISTINCT e.element AS element, e.gw AS gw
FROM gw_event e
LEFT JOIN gw_live l ON l.element = e.element AND l.gw = e.gw
WHERE l.element IS NULL
ORDER BY e.gw, e.element`

func (r *LiveStatsRepository) MissingForPicks(ctx context.Context) ([]livestats.Key, error) {
	var rows []struct {
		Element int64 `db:"element"`
		GW      int   `db:"gw"`
	}
	if err := r.db.SelectContext(ctx, &rows, missingLiveStatsQuery); err != nil {
		return nil, fmt.Errorf("check live stats completeness: %w", err)
	}

	out := make([]livestats.Key, 0, len(rows))
	for _, row := range rows {
		out = append(out, livestats.Key{Element: row.Element, GW: row.GW})
	}
	return out, nil
}
