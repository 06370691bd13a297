package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewNumber generates the customer-facing order number: the local date as a
// prefix plus a random 4-digit suffix, e.g. "20260829-0417". Uniqueness per
// day is probabilistic, not enforced by storage; a same-day collision is a
// rare operational anomaly, not a correctness violation.
func NewNumber(now time.Time) string {
	return fmt.Sprintf("%s-%04d", now.Format("20060102"), rand.IntN(10000)) //nolint:gosec // not a secret
}
