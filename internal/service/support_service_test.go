package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/aerobook/internal/domain"
	"github.com/spec-kit/aerobook/internal/events"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *domain.SupportTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.SupportTicket, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

func (m *MockTicketRepository) GetByNumber(ctx context.Context, number string) (*domain.SupportTicket, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportTicket), args.Error(1)
}

func (m *MockTicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) ListByUser(ctx context.Context, userID string, status *domain.TicketStatus) ([]domain.SupportTicket, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).([]domain.SupportTicket), args.Error(1)
}

func newSupportServiceForTest(repo *MockTicketRepository, dispatcher *MockDispatcher) *SupportService {
	return NewSupportService(SupportDependencies{
		TicketRepo: repo,
		Dispatcher: dispatcher,
		FAQs:       DefaultFAQs,
	})
}

func TestCreateTicketDefaultsToOpenAndMedium(t *testing.T) {
	repo := &MockTicketRepository{}
	dispatcher := &MockDispatcher{}
	svc := newSupportServiceForTest(repo, dispatcher)

	repo.On("ExistsByNumber", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SupportTicket")).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.CreateTicket(context.Background(), "user-1", TicketCreateInput{
		Subject:     "Refund request",
		Description: "My flight was cancelled by the airline.",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.Regexp(t, `^TKT\d{5}$`, ticket.TicketNumber)
	if assert.NotNil(t, ticket.UserID) {
		assert.Equal(t, "user-1", *ticket.UserID)
	}
}

func TestCreateTicketAnonymousRequiresContact(t *testing.T) {
	svc := newSupportServiceForTest(&MockTicketRepository{}, &MockDispatcher{})

	_, err := svc.CreateTicket(context.Background(), "", TicketCreateInput{
		Subject:     "Baggage missing",
		Description: "Bag did not arrive on the carousel.",
	})

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestCreateTicketAnonymousWithContactSucceeds(t *testing.T) {
	repo := &MockTicketRepository{}
	dispatcher := &MockDispatcher{}
	svc := newSupportServiceForTest(repo, dispatcher)

	repo.On("ExistsByNumber", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	name := "Bob Jones"
	email := "bob@example.com"
	ticket, err := svc.CreateTicket(context.Background(), "", TicketCreateInput{
		Subject:      "Baggage missing",
		Description:  "Bag did not arrive on the carousel.",
		ContactName:  &name,
		ContactEmail: &email,
	})

	assert.NoError(t, err)
	assert.Nil(t, ticket.UserID)
	dispatcher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.EventTicketCreated
	}))
}

func TestCreateTicketRejectsUnknownPriority(t *testing.T) {
	svc := newSupportServiceForTest(&MockTicketRepository{}, &MockDispatcher{})

	_, err := svc.CreateTicket(context.Background(), "user-1", TicketCreateInput{
		Subject:     "Seat change",
		Description: "Please move me to an aisle seat.",
		Priority:    "critical",
	})

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUpdateTicketValidatesPriority(t *testing.T) {
	repo := &MockTicketRepository{}
	svc := newSupportServiceForTest(repo, &MockDispatcher{})

	const ticketID = "8a1f4b2c-6d3e-47a9-b5c0-2e9d7f8a1b3c"
	stored := &domain.SupportTicket{ID: ticketID, Subject: "Seat change", Priority: domain.TicketPriorityLow, Status: domain.TicketStatusOpen}
	repo.On("GetByIDForUser", mock.Anything, ticketID, "user-1").Return(stored, nil)

	bad := domain.TicketPriority("severe")
	_, err := svc.UpdateTicket(context.Background(), "user-1", ticketID, TicketUpdateInput{Priority: &bad})

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetTicketMalformedIDIsNotFound(t *testing.T) {
	repo := &MockTicketRepository{}
	svc := newSupportServiceForTest(repo, &MockDispatcher{})

	_, err := svc.GetTicket(context.Background(), "user-1", "TKT12345")

	assert.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	repo.AssertNotCalled(t, "GetByIDForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestListFAQFiltersByCategory(t *testing.T) {
	svc := newSupportServiceForTest(&MockTicketRepository{}, &MockDispatcher{})

	all := svc.ListFAQ("")
	assert.NotEmpty(t, all)

	bookings := svc.ListFAQ("bookings")
	assert.NotEmpty(t, bookings)
	for _, item := range bookings {
		assert.Equal(t, "bookings", item.Category)
	}
	assert.Empty(t, svc.ListFAQ("no-such-category"))
}
