package events

import (
	"time"

	"github.com/spec-kit/aerobook/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
	EventTicketCreated    EventType = "ticket_created"
	EventEnquiryReceived  EventType = "enquiry_received"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID        string               `json:"booking_id"`
	BookingReference string               `json:"booking_reference"`
	UserID           string               `json:"user_id"`
	Airline          string               `json:"airline"`
	Origin           string               `json:"origin"`
	Destination      string               `json:"destination"`
	TotalPrice       float64              `json:"total_price"`
	Status           domain.BookingStatus `json:"status"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	BookingID        string `json:"booking_id"`
	BookingReference string `json:"booking_reference"`
	UserID           string `json:"user_id"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID     string                `json:"ticket_id"`
	TicketNumber string                `json:"ticket_number"`
	UserID       *string               `json:"user_id,omitempty"`
	Priority     domain.TicketPriority `json:"priority"`
	Subject      string                `json:"subject"`
}

// EnquiryReceivedPayload payload.
type EnquiryReceivedPayload struct {
	EnquiryID string `json:"enquiry_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}
