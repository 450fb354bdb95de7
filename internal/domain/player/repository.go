package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	UpsertElements(ctx context.Context, items []Element) error
	ListElements(ctx context.Context) ([]Element, error)
}
