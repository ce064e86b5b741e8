// Package refcode mints the short human-readable codes handed to customers:
// booking references ("BK" + 6 digits) and ticket numbers ("TKT" + 5 digits).
//
// Uniqueness is enforced in two layers. EnsureUnique pre-checks candidates
// against the store to keep collision retries cheap; the database unique
// constraint remains the authoritative guard, and callers must re-mint when
// an insert fails with a unique violation.
package refcode

import (
	"context"
	"math/rand/v2"
	"strings"
)

const (
	BookingPrefix = "BK"
	BookingDigits = 6

	TicketPrefix = "TKT"
	TicketDigits = 5
)

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate returns prefix followed by count random decimal digits.
func Generate(prefix string, count int) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + count)
	sb.WriteString(prefix)
	for i := 0; i < count; i++ {
		sb.WriteByte(byte('0' + rand.IntN(10)))
	}
	return sb.String()
}

// NewBookingReference mints a booking reference candidate.
func NewBookingReference() string {
	return Generate(BookingPrefix, BookingDigits)
}

// NewTicketNumber mints a ticket number candidate.
func NewTicketNumber() string {
	return Generate(TicketPrefix, TicketDigits)
}

// EnsureUnique invokes mint until exists reports the candidate as free. The
// namespace is small (10^5-10^6 codes) and collisions are rare, so no retry
// cap is applied here; the caller's insert-time retry handles the race
// between this check and the commit.
func EnsureUnique(ctx context.Context, mint func() string, exists ExistsFunc) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := mint()
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
