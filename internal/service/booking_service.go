package service

import (
	"context"
	"errors"
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

// departureDateLayout is the wire format for departure dates.
const departureDateLayout = "2006-01-02"

// maxMintAttempts bounds insert retries after unique-violation commits. The
// pre-check makes collisions rare; hitting the bound means the namespace is
// effectively exhausted.
const maxMintAttempts = 5

// BookingService coordinates the booking lifecycle: creation with pricing
// and reference minting, owner-scoped reads and updates, and cancellation.
type BookingService struct {
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// BookingDependencies bundles requirements for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// BookingCreateInput describes the booking creation payload.
type BookingCreateInput struct {
	FlightID      string
	Airline       string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	DepartureDate string
	Duration      string
	Passengers    int
	ClassType     domain.CabinClass
	// Price is per person; nil means the field was absent from the payload.
	// An explicit zero is a valid (free) fare.
	Price *float64

	PassengerName  string
	PassengerEmail string
	PassengerPhone string
}

// BookingUpdateInput carries the mutable booking fields. Nil means leave
// unchanged; anything else in the request payload is ignored, not rejected.
type BookingUpdateInput struct {
	PassengerName  *string
	PassengerEmail *string
	PassengerPhone *string
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateBooking validates the payload, computes the total price, mints a
// unique booking reference and persists the booking as confirmed.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, input BookingCreateInput) (*domain.Booking, error) {
	missing := missingBookingFields(input)
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"missing": missing})
	}
	if input.Passengers < 1 {
		return nil, apperrors.NewValidationError("passengers must be at least 1", nil)
	}
	if !domain.ValidCabinClass(input.ClassType) {
		return nil, apperrors.NewValidationError("invalid class_type", map[string]any{"class_type": input.ClassType})
	}
	departureDate, err := time.Parse(departureDateLayout, input.DepartureDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date format, expected YYYY-MM-DD", nil)
	}

	booking := &domain.Booking{
		UserID:         userID,
		FlightID:       input.FlightID,
		Airline:        input.Airline,
		Origin:         input.Origin,
		Destination:    input.Destination,
		DepartureTime:  input.DepartureTime,
		ArrivalTime:    input.ArrivalTime,
		DepartureDate:  departureDate,
		Duration:       input.Duration,
		Passengers:     input.Passengers,
		ClassType:      input.ClassType,
		Price:          *input.Price,
		TotalPrice:     *input.Price * float64(input.Passengers),
		Status:         domain.BookingStatusConfirmed,
		PassengerName:  input.PassengerName,
		PassengerEmail: input.PassengerEmail,
		PassengerPhone: input.PassengerPhone,
	}

	if err := s.persistWithReference(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, events.BookingCreatedPayload{
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID,
		Airline:          booking.Airline,
		Origin:           booking.Origin,
		Destination:      booking.Destination,
		TotalPrice:       booking.TotalPrice,
		Status:           booking.Status,
	})
	return booking, nil
}

// persistWithReference mints a reference and inserts, re-minting when the
// insert loses the race on the reference unique constraint. The constraint
// is the authoritative uniqueness guard; the exists pre-check only trims
// retries.
func (s *BookingService) persistWithReference(ctx context.Context, booking *domain.Booking) error {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		reference, err := refcode.EnsureUnique(ctx, refcode.NewBookingReference, s.bookings.ExistsByReference)
		if err != nil {
			return err
		}
		booking.BookingReference = reference

		err = s.bookings.Create(ctx, booking)
		if err == nil {
			return nil
		}
		if repository.IsUniqueViolation(err, repository.BookingReferenceConstraint) {
			continue
		}
		return err
	}
	return apperrors.NewInternalError(errors.New("could not allocate a unique booking reference"))
}

// GetBooking returns the caller's booking. A booking owned by someone else
// surfaces the same not-found as a missing one, and so does a malformed id:
// the column is UUID, so anything that cannot be one is known absent without
// touching the store.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	if uuid.Validate(bookingID) != nil {
		return nil, apperrors.NewNotFound("booking", nil)
	}
	booking, err := s.bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}
	return booking, nil
}

// GetBookingByReference is the public guest lookup; no ownership check.
func (s *BookingService) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}
	return booking, nil
}

// ListBookings returns the caller's bookings, most recent first.
func (s *BookingService) ListBookings(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, status)
}

// UpdateBooking applies the mutable passenger contact fields.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, bookingID string, input BookingUpdateInput) (*domain.Booking, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if input.PassengerName != nil {
		booking.PassengerName = *input.PassengerName
	}
	if input.PassengerEmail != nil {
		booking.PassengerEmail = *input.PassengerEmail
	}
	if input.PassengerPhone != nil {
		booking.PassengerPhone = *input.PassengerPhone
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CancelBooking transitions a booking to cancelled. Cancellation is
// terminal; a second cancel fails.
func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, apperrors.NewConflict("booking already cancelled", nil)
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCancelled, events.BookingCancelledPayload{
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID,
	})
	return booking, nil
}

func missingBookingFields(input BookingCreateInput) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"flight_id", input.FlightID},
		{"airline", input.Airline},
		{"origin", input.Origin},
		{"destination", input.Destination},
		{"departure_time", input.DepartureTime},
		{"arrival_time", input.ArrivalTime},
		{"departure_date", input.DepartureDate},
		{"passenger_name", input.PassengerName},
		{"passenger_email", input.PassengerEmail},
		{"passenger_phone", input.PassengerPhone},
	}
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if input.Passengers == 0 {
		missing = append(missing, "passengers")
	}
	if input.ClassType == "" {
		missing = append(missing, "class_type")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}

func (s *BookingService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
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
