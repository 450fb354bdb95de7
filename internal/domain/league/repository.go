package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	UpsertEntries(ctx context.Context, entries []Entry) error
	UpsertLeague(ctx context.Context, item League) error
	UpsertStandings(ctx context.Context, items []Standing) error
	UpsertStatuses(ctx context.Context, items []EventStatus) error
	UpsertProfiles(ctx context.Context, items []Profile) error
	UpsertOwnership(ctx context.Context, items []Ownership) error
	UpsertDraftChoices(ctx context.Context, items []DraftChoice) error
	ListEntries(ctx context.Context) ([]Entry, error)
	MaxEvent(ctx context.Context) (int, bool, error)
}
