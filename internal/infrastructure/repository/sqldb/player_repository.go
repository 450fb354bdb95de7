package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/player"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) UpsertElements(ctx context.Context, items []player.Element) error {
	rows := make([]elementModel, 0, len(items))
	for _, e := range items {
		rows = append(rows, elementModel{
			ID:          e.ID,
			WebName:     e.WebName,
			FirstName:   e.FirstName,
			SecondName:  e.SecondName,
			Team:        e.Team,
			ElementType: int(e.Position),
		})
	}
	return upsertModels(ctx, r.db, TableElements, rows)
}

func (r *PlayerRepository) ListElements(ctx context.Context) ([]player.Element, error) {
	query, args, err := qb.Select(TableElements.ColumnNames()...).
		From(TableElements.Name).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list elements query: %w", err)
	}

	var rows []elementModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list elements: %w", err)
	}

	out := make([]player.Element, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Element{
			ID:         row.ID,
			WebName:    row.WebName,
			FirstName:  row.FirstName,
			SecondName: row.SecondName,
			Team:       row.Team,
			Position:   player.Position(row.ElementType),
		})
	}
	return out, nil
}
