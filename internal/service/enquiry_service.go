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
	"github.com/spec-kit/aerobook/internal/repository"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

// EnquiryService handles contact-form submissions. Fully anonymous, no
// lifecycle beyond creation and lookup.
type EnquiryService struct {
	enquiries  repository.EnquiryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// EnquiryCreateInput describes the submission payload.
type EnquiryCreateInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NewEnquiryService constructs the service.
func NewEnquiryService(enquiries repository.EnquiryRepository, dispatcher events.Dispatcher, logger *zap.Logger) *EnquiryService {
	return &EnquiryService{enquiries: enquiries, dispatcher: dispatcher, logger: logger}
}

// SubmitEnquiry validates and persists an enquiry with status "new".
func (s *EnquiryService) SubmitEnquiry(ctx context.Context, input EnquiryCreateInput) (*domain.Enquiry, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"subject", input.Subject},
		{"message", input.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"missing": missing})
	}

	enquiry := &domain.Enquiry{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  domain.EnquiryStatusNew,
	}
	if err := s.enquiries.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		err := s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEnquiryReceived,
			Timestamp: time.Now(),
			Payload: events.EnquiryReceivedPayload{
				EnquiryID: enquiry.ID,
				Email:     enquiry.Email,
				Subject:   enquiry.Subject,
			},
		})
		if err != nil && s.logger != nil {
			s.logger.Warn("event publish failed", zap.String("event_type", string(events.EventEnquiryReceived)), zap.Error(err))
		}
	}
	return enquiry, nil
}

// GetEnquiry returns an enquiry by id; no access control. A malformed id
// cannot match the UUID column, so it reports not-found directly.
func (s *EnquiryService) GetEnquiry(ctx context.Context, id string) (*domain.Enquiry, error) {
	if uuid.Validate(id) != nil {
		return nil, apperrors.NewNotFound("enquiry", nil)
	}
	enquiry, err := s.enquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("enquiry", nil)
		}
		return nil, err
	}
	return enquiry, nil
}
