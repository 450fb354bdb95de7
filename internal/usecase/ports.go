package usecase

import (
	"context"
	"time"
)

// DraftAPI stages raw payloads from the draft API. Implementations write each
// response body verbatim and stop at the first failure.
type DraftAPI interface {
	FetchStatic(ctx context.Context) error
	FetchLeague(ctx context.Context, leagueCode string) error
	FetchEntry(ctx context.Context, entryID int64) error
	FetchEntryEvent(ctx context.Context, entryID int64, gw int) error
	FetchLive(ctx context.Context, gw int) error
}

type StagingStore interface {
	ReadKeys(rel string, keys ...string) (map[string]string, error)
	Decode(rel string, out any) error
	Exists(rel string) bool
	WriteScope(entryIDs []int64, maxGW int) error
}

type CSVWriter interface {
	WriteCSV(ctx context.Context, name string, header []string, records [][]string) error
}

type SchemaManager interface {
	Ensure(ctx context.Context) ([]string, error)
}

// RunObserver receives run telemetry. A nil observer is allowed.
type RunObserver interface {
	ObserveStage(stage string, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveStage(string, time.Duration, error) {}
