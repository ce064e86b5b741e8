package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/aerobook/internal/domain"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

// FlightSearchCache caches search results keyed by the search parameters.
type FlightSearchCache interface {
	GetSearch(ctx context.Context, key string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, key string, flights []domain.Flight) error
}

// FlightService serves mock flight offers from static carrier and airport
// tables injected at startup. Nothing here is persisted; bookings copy the
// offer fields they need.
type FlightService struct {
	airlines []domain.Airline
	airports []domain.Airport
	cache    FlightSearchCache
	logger   *zap.Logger
}

// FlightSearchInput describes the search query.
type FlightSearchInput struct {
	Origin      string
	Destination string
	Date        string
	Passengers  int
	Class       string
}

var classMultipliers = map[string]float64{
	"economy":  1.0,
	"business": 2.5,
	"first":    4.0,
}

// NewFlightService constructs the service.
func NewFlightService(airlines []domain.Airline, airports []domain.Airport, cache FlightSearchCache, logger *zap.Logger) *FlightService {
	return &FlightService{airlines: airlines, airports: airports, cache: cache, logger: logger}
}

// Search returns mock offers for the route, cheapest first. Results are
// cached per search key so repeat searches stay stable within the TTL.
func (s *FlightService) Search(ctx context.Context, input FlightSearchInput) ([]domain.Flight, error) {
	if input.Origin == "" || input.Destination == "" || input.Date == "" {
		return nil, apperrors.NewValidationError("origin, destination and date are required", nil)
	}
	if _, err := time.Parse(departureDateLayout, input.Date); err != nil {
		return nil, apperrors.NewValidationError("invalid date format, expected YYYY-MM-DD", nil)
	}
	if input.Passengers < 1 {
		input.Passengers = 1
	}
	class := input.Class
	if class == "" {
		class = "economy"
	}

	key := fmt.Sprintf("%s:%s:%s:%s:%d", input.Origin, input.Destination, input.Date, class, input.Passengers)
	if s.cache != nil {
		cached, err := s.cache.GetSearch(ctx, key)
		if err != nil && s.logger != nil {
			s.logger.Warn("flight cache read failed", zap.Error(err))
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	flights := s.generateOffers(input, class)
	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, key, flights); err != nil && s.logger != nil {
			s.logger.Warn("flight cache write failed", zap.Error(err))
		}
	}
	return flights, nil
}

func (s *FlightService) generateOffers(input FlightSearchInput, class string) []domain.Flight {
	multiplier, ok := classMultipliers[class]
	if !ok {
		multiplier = 1.0
	}

	flights := make([]domain.Flight, 0, 8)
	for i := 0; i < 8; i++ {
		airline := s.airlines[rand.IntN(len(s.airlines))]

		depHour := 6 + i*2
		depMinute := []int{0, 30}[rand.IntN(2)]

		durationHours := 2 + rand.IntN(7)
		durationMinutes := []int{0, 15, 30, 45}[rand.IntN(4)]

		arrHour := (depHour + durationHours) % 24
		arrMinute := (depMinute + durationMinutes) % 60

		basePrice := float64(150 + rand.IntN(351))
		price := basePrice + float64(input.Passengers-1)*basePrice*0.8

		flights = append(flights, domain.Flight{
			ID:             fmt.Sprintf("%s%d", airline.Code, 1000+i),
			Airline:        airline.Name,
			AirlineCode:    airline.Code,
			Rating:         airline.Rating,
			Origin:         input.Origin,
			Destination:    input.Destination,
			DepartureTime:  fmt.Sprintf("%02d:%02d", depHour, depMinute),
			ArrivalTime:    fmt.Sprintf("%02d:%02d", arrHour, arrMinute),
			Date:           input.Date,
			Duration:       fmt.Sprintf("%dh %dm", durationHours, durationMinutes),
			Price:          round2(price * multiplier),
			Class:          class,
			Stops:          []int{0, 0, 0, 1}[rand.IntN(4)],
			SeatsAvailable: 10 + rand.IntN(51),
			Aircraft:       []string{"Boeing 737", "Airbus A320", "Boeing 787", "Airbus A350"}[rand.IntN(4)],
		})
	}

	sort.Slice(flights, func(i, j int) bool { return flights[i].Price < flights[j].Price })
	return flights
}

// GetFlight returns mock detail for a single flight id. The carrier is
// recovered from the id's code prefix.
func (s *FlightService) GetFlight(flightID string) domain.Flight {
	airline := s.airlines[0]
	if len(flightID) >= 2 {
		code := strings.ToUpper(flightID[:2])
		for _, a := range s.airlines {
			if a.Code == code {
				airline = a
				break
			}
		}
	}

	return domain.Flight{
		ID:             flightID,
		Airline:        airline.Name,
		AirlineCode:    airline.Code,
		Rating:         airline.Rating,
		DepartureTime:  "10:30",
		ArrivalTime:    "14:45",
		Duration:       "4h 15m",
		Price:          299.99,
		Stops:          0,
		SeatsAvailable: 24,
		Aircraft:       "Boeing 737",
		Amenities:      []string{"WiFi", "In-flight Entertainment", "Meals", "Extra Legroom"},
	}
}

// Airports returns the static airport table, optionally filtered by a
// case-insensitive match on code, name or city.
func (s *FlightService) Airports(query string) []domain.Airport {
	if query == "" {
		return s.airports
	}
	q := strings.ToLower(query)
	matched := make([]domain.Airport, 0, len(s.airports))
	for _, airport := range s.airports {
		if strings.Contains(strings.ToLower(airport.Code), q) ||
			strings.Contains(strings.ToLower(airport.Name), q) ||
			strings.Contains(strings.ToLower(airport.City), q) {
			matched = append(matched, airport)
		}
	}
	return matched
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
