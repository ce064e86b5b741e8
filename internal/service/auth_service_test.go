package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/aerobook/internal/auth"
	"github.com/spec-kit/aerobook/internal/config"
	"github.com/spec-kit/aerobook/internal/domain"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newAuthServiceForTest(users *MockUserRepository) *AuthService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return NewAuthService(cfg, users)
}

func TestRegisterIssuesToken(t *testing.T) {
	users := &MockUserRepository{}
	svc := newAuthServiceForTest(users)

	users.On("GetByEmail", mock.Anything, "dana@example.com").Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, token, exp, err := svc.Register(context.Background(), "Dana", "dana@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "secret123"))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newAuthServiceForTest(&MockUserRepository{})

	_, _, _, err := svc.Register(context.Background(), "Dana", "dana@example.com", "short")

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := &MockUserRepository{}
	svc := newAuthServiceForTest(users)

	users.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{Email: "dana@example.com"}, nil)

	_, _, _, err := svc.Register(context.Background(), "Dana", "dana@example.com", "secret123")

	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	users := &MockUserRepository{}
	svc := newAuthServiceForTest(users)

	hash, err := auth.HashPassword("secret123", bcrypt.MinCost)
	assert.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{ID: "user-1", Email: "dana@example.com", PasswordHash: hash}, nil)

	_, _, _, err = svc.Login(context.Background(), "dana@example.com", "wrong-pass")

	assert.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	users := &MockUserRepository{}
	svc := newAuthServiceForTest(users)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")

	assert.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	users := &MockUserRepository{}
	svc := newAuthServiceForTest(users)

	hash, err := auth.HashPassword("secret123", bcrypt.MinCost)
	assert.NoError(t, err)
	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1", PasswordHash: hash}, nil)

	err = svc.ChangePassword(context.Background(), "user-1", "not-the-one", "newsecret")
	assert.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfileParsesDateOfBirth(t *testing.T) {
	users := &MockUserRepository{}
	svc := newAuthServiceForTest(users)

	users.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1", Name: "Dana"}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	dob := "1990-04-02"
	user, err := svc.UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{DateOfBirth: &dob})

	assert.NoError(t, err)
	if assert.NotNil(t, user.DateOfBirth) {
		assert.Equal(t, 1990, user.DateOfBirth.Year())
	}

	bad := "02/04/1990"
	_, err = svc.UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{DateOfBirth: &bad})
	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
