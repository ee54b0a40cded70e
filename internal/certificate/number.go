package certificate

import (
	"fmt"
	"math/rand"
	"time"
)

// MaxAttempts bounds certificate number regeneration when an insert hits the
// uniqueness constraint. The number itself is not unique by construction; the
// store's unique index is the safety net.
const MaxAttempts = 5

// NewNumber produces a certificate number of the form NIG-<year>-<6 digits>,
// where the digits are a zero-padded random integer in [0, 999999].
func NewNumber(now time.Time) string {
	return NumberFrom(now, rand.Intn(1000000))
}

// NumberFrom builds the number from an explicit random draw. Split out so the
// submission flow can be tested with a deterministic source.
func NumberFrom(now time.Time, n int) string {
	return fmt.Sprintf("NIG-%d-%06d", now.Year(), n)
}
