package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/drafty/internal/domain/transaction"
	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Upsert(ctx context.Context, items []transaction.Transaction) error {
	rows := make([]transactionModel, 0, len(items))
	for _, t := range items {
		rows = append(rows, transactionModel{
			ID:         t.ID,
			Entry:      t.Entry,
			Event:      t.GW,
			ElementIn:  t.ElementIn,
			ElementOut: t.ElementOut,
			Kind:       t.Kind,
			Result:     t.Result,
			Priority:   t.Priority,
			Added:      t.Added,
		})
	}
	return upsertModels(ctx, r.db, TableTransactions, rows)
}

func (r *TransactionRepository) ListAccepted(ctx context.Context) ([]transaction.Transaction, error) {
	query, args, err := qb.Select(TableTransactions.ColumnNames()...).
		From(TableTransactions.Name).
		Where(qb.Eq("result", transaction.ResultAccepted)).
		OrderBy("event", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list transactions query: %w", err)
	}

	var rows []transactionModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]transaction.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, transaction.Transaction{
			ID:         row.ID,
			Entry:      row.Entry,
			GW:         row.Event,
			ElementIn:  row.ElementIn,
			ElementOut: row.ElementOut,
			Kind:       row.Kind,
			Result:     row.Result,
			Priority:   row.Priority,
			Added:      row.Added,
		})
	}
	return out, nil
}
