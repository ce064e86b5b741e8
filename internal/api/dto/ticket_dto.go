package dto

import (
	"time"

	"github.com/spec-kit/aerobook/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject          string                `json:"subject"`
	Description      string                `json:"description"`
	Priority         domain.TicketPriority `json:"priority"`
	BookingReference *string               `json:"booking_reference"`
	ContactName      *string               `json:"contact_name"`
	ContactEmail     *string               `json:"contact_email"`
}

// UpdateTicketRequest payload; only description and priority are honored.
type UpdateTicketRequest struct {
	Description *string                `json:"description"`
	Priority    *domain.TicketPriority `json:"priority"`
}

// TicketResponse serializes a support ticket.
type TicketResponse struct {
	ID               string                `json:"id"`
	TicketNumber     string                `json:"ticket_number"`
	Subject          string                `json:"subject"`
	Description      string                `json:"description"`
	Priority         domain.TicketPriority `json:"priority"`
	Status           domain.TicketStatus   `json:"status"`
	BookingReference *string               `json:"booking_reference"`
	ContactName      *string               `json:"contact_name"`
	ContactEmail     *string               `json:"contact_email"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	ResolvedAt       *time.Time            `json:"resolved_at"`
}

// NewTicketResponse maps a domain ticket to its wire form.
func NewTicketResponse(ticket *domain.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:               ticket.ID,
		TicketNumber:     ticket.TicketNumber,
		Subject:          ticket.Subject,
		Description:      ticket.Description,
		Priority:         ticket.Priority,
		Status:           ticket.Status,
		BookingReference: ticket.BookingReference,
		ContactName:      ticket.ContactName,
		ContactEmail:     ticket.ContactEmail,
		CreatedAt:        ticket.CreatedAt,
		UpdatedAt:        ticket.UpdatedAt,
		ResolvedAt:       ticket.ResolvedAt,
	}
}
