package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")

	// ErrConfig aborts a run before anything is fetched.
	ErrConfig = crerr.New("invalid configuration")
	// ErrFetch marks a failed or non-2xx request to the draft API.
	ErrFetch = crerr.New("fetch failed")
	// ErrStorage marks relational store failures.
	ErrStorage = crerr.New("storage failure")
	// ErrIntegrity marks picks without live stats after a load.
	ErrIntegrity = crerr.New("referential integrity violated")
	// ErrStageFailed marks the aggregated error of failed transform stages.
	ErrStageFailed = crerr.New("transform stage failed")
)

func markStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(crerr.Wrap(err, msg), ErrStorage)
}
