package dto

import (
	"math"
	"time"

	"github.com/spec-kit/aerobook/internal/domain"
)

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	FlightID       string            `json:"flight_id"`
	Airline        string            `json:"airline"`
	Origin         string            `json:"origin"`
	Destination    string            `json:"destination"`
	DepartureTime  string            `json:"departure_time"`
	ArrivalTime    string            `json:"arrival_time"`
	DepartureDate  string            `json:"departure_date"`
	Duration       string            `json:"duration"`
	Passengers     int               `json:"passengers"`
	ClassType      domain.CabinClass `json:"class_type"`
	Price          *float64          `json:"price"`
	PassengerName  string            `json:"passenger_name"`
	PassengerEmail string            `json:"passenger_email"`
	PassengerPhone string            `json:"passenger_phone"`
}

// UpdateBookingRequest payload; only passenger contact fields are honored.
type UpdateBookingRequest struct {
	PassengerName  *string `json:"passenger_name"`
	PassengerEmail *string `json:"passenger_email"`
	PassengerPhone *string `json:"passenger_phone"`
}

// BookingResponse serializes a booking. Dates are ISO 8601; monetary values
// are rounded to two decimals at this boundary only.
type BookingResponse struct {
	ID               string               `json:"id"`
	BookingReference string               `json:"booking_reference"`
	FlightID         string               `json:"flight_id"`
	Airline          string               `json:"airline"`
	Origin           string               `json:"origin"`
	Destination      string               `json:"destination"`
	DepartureTime    string               `json:"departure_time"`
	ArrivalTime      string               `json:"arrival_time"`
	DepartureDate    string               `json:"departure_date"`
	Duration         string               `json:"duration"`
	Passengers       int                  `json:"passengers"`
	ClassType        domain.CabinClass    `json:"class_type"`
	Price            float64              `json:"price"`
	TotalPrice       float64              `json:"total_price"`
	Status           domain.BookingStatus `json:"status"`
	PassengerName    string               `json:"passenger_name"`
	PassengerEmail   string               `json:"passenger_email"`
	PassengerPhone   string               `json:"passenger_phone"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// NewBookingResponse maps a domain booking to its wire form.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               booking.ID,
		BookingReference: booking.BookingReference,
		FlightID:         booking.FlightID,
		Airline:          booking.Airline,
		Origin:           booking.Origin,
		Destination:      booking.Destination,
		DepartureTime:    booking.DepartureTime,
		ArrivalTime:      booking.ArrivalTime,
		DepartureDate:    booking.DepartureDate.Format("2006-01-02"),
		Duration:         booking.Duration,
		Passengers:       booking.Passengers,
		ClassType:        booking.ClassType,
		Price:            roundMoney(booking.Price),
		TotalPrice:       roundMoney(booking.TotalPrice),
		Status:           booking.Status,
		PassengerName:    booking.PassengerName,
		PassengerEmail:   booking.PassengerEmail,
		PassengerPhone:   booking.PassengerPhone,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
