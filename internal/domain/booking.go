package domain

import "time"

// BookingStatus enumerates lifecycle states for bookings.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// CabinClass enumerates fare classes.
type CabinClass string

const (
	CabinClassEconomy  CabinClass = "economy"
	CabinClassBusiness CabinClass = "business"
	CabinClassFirst    CabinClass = "first"
)

// ValidCabinClass reports whether the value is a known fare class.
func ValidCabinClass(c CabinClass) bool {
	switch c {
	case CabinClassEconomy, CabinClassBusiness, CabinClassFirst:
		return true
	}
	return false
}

// Booking is the aggregate for a flight reservation. The reference is the
// short human-readable code handed to the passenger; it is unique and never
// changes after creation.
type Booking struct {
	ID               string
	UserID           string
	BookingReference string

	FlightID      string
	Airline       string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	DepartureDate time.Time
	Duration      string

	Passengers int
	ClassType  CabinClass
	Price      float64
	TotalPrice float64
	Status     BookingStatus

	PassengerName  string
	PassengerEmail string
	PassengerPhone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
