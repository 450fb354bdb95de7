package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/drafty/internal/platform/querybuilder"
)

// upsertModels writes rows keyed by the table's primary key inside one
// transaction. Later rows win over earlier ones with the same key.
func upsertModels[T any](ctx context.Context, db *sqlx.DB, table Table, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert %s: %w", table.Name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	suffix := table.upsertSuffix()
	for _, row := range rows {
		query, args, err := qb.InsertModel(table.Name, row, suffix)
		if err != nil {
			return fmt.Errorf("build upsert %s query: %w", table.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert %s: %w", table.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert %s: %w", table.Name, err)
	}
	return nil
}

type replaceSet struct {
	table  Table
	where  []qb.Condition
	rows   []any
	suffix string
}

func replacing[T any](table Table, rows []T, where ...qb.Condition) replaceSet {
	items := make([]any, 0, len(rows))
	for _, r := range rows {
		items = append(items, r)
	}
	return replaceSet{table: table, where: where, rows: items}
}

// replaceModels clears the scoped rows of each set and inserts the new ones,
// all in a single transaction.
func replaceModels(ctx context.Context, db *sqlx.DB, sets ...replaceSet) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, set := range sets {
		query, args, err := qb.DeleteFrom(set.table.Name).Where(set.where...).ToSQL()
		if err != nil {
			return fmt.Errorf("build clear %s query: %w", set.table.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", set.table.Name, err)
		}

		for _, row := range set.rows {
			query, args, err := qb.InsertModel(set.table.Name, row, set.suffix)
			if err != nil {
				return fmt.Errorf("build insert %s query: %w", set.table.Name, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert %s: %w", set.table.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}
