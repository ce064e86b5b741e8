package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets. Only "open"
// is reachable through the public API; the remaining states belong to a back
// office that is not part of this service.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// ValidTicketPriority reports whether the value is a known priority.
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// SupportTicket is the aggregate for support requests. UserID is nil for
// anonymous submissions, in which case contact name and email are mandatory.
type SupportTicket struct {
	ID           string
	UserID       *string
	TicketNumber string

	Subject     string
	Description string
	Priority    TicketPriority
	Status      TicketStatus

	// Free-form reference to a booking; not validated against bookings.
	BookingReference *string

	ContactName  *string
	ContactEmail *string

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ResolvedAt *time.Time
}
