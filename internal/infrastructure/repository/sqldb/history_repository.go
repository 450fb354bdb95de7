package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Upsert(ctx context.Context, items []entryhistory.History) error {
	rows := make([]historyModel, 0, len(items))
	for _, h := range items {
		rows = append(rows, historyModel{
			EntryID:        h.EntryID,
			GW:             h.GW,
			Points:         h.Points,
			TotalPoints:    h.TotalPoints,
			OverallRank:    h.OverallRank,
			RankSort:       h.RankSort,
			EventTransfers: h.EventTransfers,
			PointsOnBench:  h.PointsOnBench,
			SquadValue:     h.SquadValue,
			Bank:           h.Bank,
		})
	}
	return upsertModels(ctx, r.db, TableHistory, rows)
}

func (r *HistoryRepository) ListUpTo(ctx context.Context, maxGW int) ([]entryhistory.History, error) {
	query, args, err := qb.Select(TableHistory.ColumnNames()...).
		From(TableHistory.Name).
		Where(qb.Expr("gw <= ?", maxGW)).
		OrderBy("entry_id", "gw").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list history query: %w", err)
	}

	var rows []historyModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	out := make([]entryhistory.History, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryhistory.History{
			EntryID:        row.EntryID,
			GW:             row.GW,
			Points:         row.Points,
			TotalPoints:    row.TotalPoints,
			OverallRank:    row.OverallRank,
			RankSort:       row.RankSort,
			EventTransfers: row.EventTransfers,
			PointsOnBench:  row.PointsOnBench,
			SquadValue:     row.SquadValue,
			Bank:           row.Bank,
		})
	}
	return out, nil
}
