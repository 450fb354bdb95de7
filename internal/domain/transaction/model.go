package transaction

import "context"

const (
	KindWaiver = "w"
	KindFree   = "f"

	ResultAccepted = "a"
)

// Transaction is a waiver claim or free-agent signing.
type Transaction struct {
	ID         int64
	Entry      int64
	GW         int
	ElementIn  int64
	ElementOut int64
	Kind       string
	Result     string
	Priority   int
	Added      string
}

func (t Transaction) Accepted() bool {
	return t.Result == ResultAccepted
}

type Repository interface {
	Upsert(ctx context.Context, items []Transaction) error
	// ListAccepted returns accepted transactions ordered by gw, id.
	ListAccepted(ctx context.Context) ([]Transaction, error)
}
