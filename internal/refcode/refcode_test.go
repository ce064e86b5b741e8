package refcode

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShape(t *testing.T) {
	bookingPattern := regexp.MustCompile(`^BK\d{6}$`)
	ticketPattern := regexp.MustCompile(`^TKT\d{5}$`)

	for i := 0; i < 200; i++ {
		assert.Regexp(t, bookingPattern, NewBookingReference())
		assert.Regexp(t, ticketPattern, NewTicketNumber())
	}
}

func TestEnsureUniqueReturnsFirstFreeCandidate(t *testing.T) {
	candidates := []string{"BK000001", "BK000002", "BK000003"}
	i := 0
	mint := func() string {
		c := candidates[i]
		i++
		return c
	}
	exists := func(_ context.Context, code string) (bool, error) {
		return code != "BK000003", nil
	}

	code, err := EnsureUnique(context.Background(), mint, exists)
	assert.NoError(t, err)
	assert.Equal(t, "BK000003", code)
	assert.Equal(t, 3, i)
}

func TestEnsureUniquePropagatesExistsError(t *testing.T) {
	boom := errors.New("store unavailable")
	_, err := EnsureUnique(context.Background(), NewBookingReference, func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestEnsureUniqueStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EnsureUnique(ctx, NewTicketNumber, func(context.Context, string) (bool, error) {
		return true, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
