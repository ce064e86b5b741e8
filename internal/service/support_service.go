package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/aerobook/internal/domain"
	"github.com/spec-kit/aerobook/internal/events"
	"github.com/spec-kit/aerobook/internal/refcode"
	"github.com/spec-kit/aerobook/internal/repository"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

// SupportService coordinates support-ticket workflows. Tickets may be
// created anonymously; everything after creation is owner-scoped.
type SupportService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	faqs       []domain.FAQItem
	logger     *zap.Logger
}

// SupportDependencies bundles requirements for the support service.
type SupportDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	FAQs       []domain.FAQItem
}

// TicketCreateInput describes the ticket creation payload. UserID is empty
// for anonymous submissions.
type TicketCreateInput struct {
	Subject          string
	Description      string
	Priority         domain.TicketPriority
	BookingReference *string
	ContactName      *string
	ContactEmail     *string
}

// TicketUpdateInput carries the mutable ticket fields. Nil means leave
// unchanged.
type TicketUpdateInput struct {
	Description *string
	Priority    *domain.TicketPriority
}

// NewSupportService constructs the service.
func NewSupportService(deps SupportDependencies) *SupportService {
	return &SupportService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		faqs:       deps.FAQs,
		logger:     deps.Logger,
	}
}

// ListFAQ returns the static FAQ entries, optionally filtered by category.
func (s *SupportService) ListFAQ(category string) []domain.FAQItem {
	if category == "" {
		return s.faqs
	}
	matched := make([]domain.FAQItem, 0, len(s.faqs))
	for _, item := range s.faqs {
		if item.Category == category {
			matched = append(matched, item)
		}
	}
	return matched
}

// CreateTicket validates the payload, mints a unique ticket number and
// persists the ticket as open. Anonymous callers must supply contact name
// and email.
func (s *SupportService) CreateTicket(ctx context.Context, userID string, input TicketCreateInput) (*domain.SupportTicket, error) {
	var missing []string
	if strings.TrimSpace(input.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"missing": missing})
	}

	if userID == "" {
		if emptyPtr(input.ContactName) || emptyPtr(input.ContactEmail) {
			return nil, apperrors.NewValidationError("contact name and email required for anonymous tickets", nil)
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !domain.ValidTicketPriority(priority) {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": priority})
	}

	ticket := &domain.SupportTicket{
		Subject:          strings.TrimSpace(input.Subject),
		Description:      strings.TrimSpace(input.Description),
		Priority:         priority,
		Status:           domain.TicketStatusOpen,
		BookingReference: input.BookingReference,
		ContactName:      input.ContactName,
		ContactEmail:     input.ContactEmail,
	}
	if userID != "" {
		owner := userID
		ticket.UserID = &owner
	}

	if err := s.persistWithNumber(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, events.TicketCreatedPayload{
		TicketID:     ticket.ID,
		TicketNumber: ticket.TicketNumber,
		UserID:       ticket.UserID,
		Priority:     ticket.Priority,
		Subject:      ticket.Subject,
	})
	return ticket, nil
}

// persistWithNumber mirrors the booking flow: mint, insert, re-mint on a
// unique-violation commit.
func (s *SupportService) persistWithNumber(ctx context.Context, ticket *domain.SupportTicket) error {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		number, err := refcode.EnsureUnique(ctx, refcode.NewTicketNumber, s.tickets.ExistsByNumber)
		if err != nil {
			return err
		}
		ticket.TicketNumber = number

		err = s.tickets.Create(ctx, ticket)
		if err == nil {
			return nil
		}
		if repository.IsUniqueViolation(err, repository.TicketNumberConstraint) {
			continue
		}
		return err
	}
	return apperrors.NewInternalError(errors.New("could not allocate a unique ticket number"))
}

// GetTicket returns the caller's ticket; ownership mismatch, absence and a
// malformed id are indistinguishable. The id column is UUID, so a value
// that cannot be one is known absent without touching the store.
func (s *SupportService) GetTicket(ctx context.Context, userID, ticketID string) (*domain.SupportTicket, error) {
	if uuid.Validate(ticketID) != nil {
		return nil, apperrors.NewNotFound("ticket", nil)
	}
	ticket, err := s.tickets.GetByIDForUser(ctx, ticketID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, err
	}
	return ticket, nil
}

// GetTicketByNumber is the public lookup; no ownership check.
func (s *SupportService) GetTicketByNumber(ctx context.Context, number string) (*domain.SupportTicket, error) {
	ticket, err := s.tickets.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, err
	}
	return ticket, nil
}

// ListTickets returns the caller's tickets, most recent first.
func (s *SupportService) ListTickets(ctx context.Context, userID string, status *domain.TicketStatus) ([]domain.SupportTicket, error) {
	return s.tickets.ListByUser(ctx, userID, status)
}

// UpdateTicket applies the mutable fields: description and priority.
func (s *SupportService) UpdateTicket(ctx context.Context, userID, ticketID string, input TicketUpdateInput) (*domain.SupportTicket, error) {
	ticket, err := s.GetTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.Priority != nil {
		if !domain.ValidTicketPriority(*input.Priority) {
			return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": *input.Priority})
		}
		ticket.Priority = *input.Priority
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func emptyPtr(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func (s *SupportService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
