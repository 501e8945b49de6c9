package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// defaultListLimit bounds unfiltered console listings, matching the page size
// the console requests.
const defaultListLimit = 50

var errStoreUnavailable = errors.New("store unavailable")

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return defaultListLimit
	}
	return limit
}
