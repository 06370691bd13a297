package ports

import (
	"context"

	"pizzaria/internal/core/domain/model/quote"
)

// QuoteCache is the persistent store of resolved delivery quotes, keyed by
// the normalized-address hash. One entry exists per hash; entries are
// immutable once written and never expire.
type QuoteCache interface {
	// Get returns the cached entry for the hash. found is false on a miss.
	Get(ctx context.Context, addressHash string) (entry quote.CacheEntry, found bool, err error)

	// Put stores a freshly computed quote. Callers treat failures as
	// best-effort: a Put error skips caching but never fails the quote.
	Put(ctx context.Context, entry quote.CacheEntry) error
}
