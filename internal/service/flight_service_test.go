package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/aerobook/internal/domain"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

// memoryFlightCache is a map-backed FlightSearchCache for tests.
type memoryFlightCache struct {
	entries map[string][]domain.Flight
	sets    int
}

func newMemoryFlightCache() *memoryFlightCache {
	return &memoryFlightCache{entries: make(map[string][]domain.Flight)}
}

func (c *memoryFlightCache) GetSearch(_ context.Context, key string) ([]domain.Flight, error) {
	return c.entries[key], nil
}

func (c *memoryFlightCache) SetSearch(_ context.Context, key string, flights []domain.Flight) error {
	c.entries[key] = flights
	c.sets++
	return nil
}

func searchInput() FlightSearchInput {
	return FlightSearchInput{
		Origin:      "New York (JFK)",
		Destination: "London (LHR)",
		Date:        "2026-10-15",
		Passengers:  1,
		Class:       "economy",
	}
}

func TestSearchRequiresRouteAndDate(t *testing.T) {
	svc := NewFlightService(DefaultAirlines, DefaultAirports, nil, nil)

	_, err := svc.Search(context.Background(), FlightSearchInput{Origin: "New York (JFK)"})
	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	input := searchInput()
	input.Date = "15-10-2026"
	_, err = svc.Search(context.Background(), input)
	assert.Error(t, err)
}

func TestSearchReturnsOffersSortedByPrice(t *testing.T) {
	svc := NewFlightService(DefaultAirlines, DefaultAirports, nil, nil)

	flights, err := svc.Search(context.Background(), searchInput())

	assert.NoError(t, err)
	assert.Len(t, flights, 8)
	assert.True(t, sort.SliceIsSorted(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	}))
	for _, flight := range flights {
		assert.Equal(t, "New York (JFK)", flight.Origin)
		assert.Equal(t, "London (LHR)", flight.Destination)
		assert.Equal(t, "economy", flight.Class)
		assert.GreaterOrEqual(t, flight.Price, 150.0)
	}
}

func TestSearchClassMultiplierRaisesPrices(t *testing.T) {
	svc := NewFlightService(DefaultAirlines, DefaultAirports, nil, nil)

	input := searchInput()
	input.Class = "first"
	flights, err := svc.Search(context.Background(), input)

	assert.NoError(t, err)
	for _, flight := range flights {
		// first class quadruples the base fare, which never falls below 150
		assert.GreaterOrEqual(t, flight.Price, 600.0)
		assert.Equal(t, "first", flight.Class)
	}
}

func TestSearchServesRepeatQueriesFromCache(t *testing.T) {
	cache := newMemoryFlightCache()
	svc := NewFlightService(DefaultAirlines, DefaultAirports, cache, nil)

	first, err := svc.Search(context.Background(), searchInput())
	assert.NoError(t, err)

	second, err := svc.Search(context.Background(), searchInput())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestGetFlightRecoversAirlineFromID(t *testing.T) {
	svc := NewFlightService(DefaultAirlines, DefaultAirports, nil, nil)

	flight := svc.GetFlight("SW1003")

	assert.Equal(t, "SW1003", flight.ID)
	assert.Equal(t, "SW", flight.AirlineCode)
	assert.Equal(t, "SkyWings", flight.Airline)
}

func TestAirportsFilterMatchesCityCodeAndName(t *testing.T) {
	svc := NewFlightService(DefaultAirlines, DefaultAirports, nil, nil)

	all := svc.Airports("")
	assert.Len(t, all, len(DefaultAirports))

	byCity := svc.Airports("london")
	if assert.Len(t, byCity, 1) {
		assert.Equal(t, "LHR", byCity[0].Code)
	}

	byCode := svc.Airports("jfk")
	if assert.Len(t, byCode, 1) {
		assert.Equal(t, "New York", byCode[0].City)
	}

	assert.Empty(t, svc.Airports("atlantis"))
}
