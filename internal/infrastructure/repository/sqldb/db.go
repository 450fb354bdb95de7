package sqldb

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Open connects to the configured store. The pipeline is single threaded, so
// the pool is capped at one connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch driver {
	case DriverDuckDB, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s store %s: %w", driver, DescribeDSN(dsn), err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s store %s: %w", driver, DescribeDSN(dsn), err)
	}
	return db, nil
}

// DescribeDSN returns a log-safe name for the store: the database name of a
// URL or key/value DSN, or the file path of an embedded store.
func DescribeDSN(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" && parsed.Host != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	if trimmed == "" {
		return ":memory:"
	}
	if i := strings.Index(trimmed, "?"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
