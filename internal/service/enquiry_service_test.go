package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/aerobook/internal/domain"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	args := m.Called(ctx, enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func TestSubmitEnquiryStartsAsNew(t *testing.T) {
	repo := &MockEnquiryRepository{}
	dispatcher := &MockDispatcher{}
	svc := NewEnquiryService(repo, dispatcher, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Enquiry")).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	enquiry, err := svc.SubmitEnquiry(context.Background(), EnquiryCreateInput{
		Name:    "Carol Danvers",
		Email:   "carol@example.com",
		Subject: "Group booking",
		Message: "Do you offer discounts for groups of ten or more?",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.EnquiryStatusNew, enquiry.Status)
	repo.AssertExpectations(t)
}

func TestSubmitEnquiryReportsMissingFields(t *testing.T) {
	svc := NewEnquiryService(&MockEnquiryRepository{}, &MockDispatcher{}, nil)

	_, err := svc.SubmitEnquiry(context.Background(), EnquiryCreateInput{Email: "carol@example.com"})

	assert.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	missing, ok := domainErr.Details["missing"].([]string)
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"name", "subject", "message"}, missing)
}

func TestGetEnquiryNotFound(t *testing.T) {
	repo := &MockEnquiryRepository{}
	svc := NewEnquiryService(repo, &MockDispatcher{}, nil)

	const enquiryID = "c4b7e6a2-9d01-4f3b-8a5e-7f2c1d0b9a84"
	repo.On("GetByID", mock.Anything, enquiryID).Return(nil, pgx.ErrNoRows)

	_, err := svc.GetEnquiry(context.Background(), enquiryID)
	assert.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestGetEnquiryMalformedIDIsNotFound(t *testing.T) {
	repo := &MockEnquiryRepository{}
	svc := NewEnquiryService(repo, &MockDispatcher{}, nil)

	_, err := svc.GetEnquiry(context.Background(), "nope")

	assert.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
