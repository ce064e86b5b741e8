package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/aerobook/internal/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(context.Context, *domain.User) error { return nil }
func (s *stubUserRepo) Update(context.Context, *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

const testUserID = "3e7a9c21-54b8-4d6f-8e02-b1c5d9f7a380"

func newTestMiddleware() (*AuthMiddleware, *TokenManager) {
	tokens := NewTokenManager("test-secret", 60)
	repo := &stubUserRepo{users: map[string]*domain.User{
		testUserID: {ID: testUserID, Email: "eve@example.com", Name: "Eve"},
	}}
	return NewAuthMiddleware(tokens, repo, nil), tokens
}

// echoApp mounts the given middleware on a route whose handler reports the
// resolved user id (empty for anonymous).
func echoApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", handler, func(c *fiber.Ctx) error {
		return c.SendString(UserIDFromContext(c))
	})
	return app
}

func TestOptionalTreatsMalformedTokenAsAnonymous(t *testing.T) {
	m, _ := newTestMiddleware()
	app := echoApp(m.Optional)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	assert.Empty(t, string(buf[:n]))
}

func TestOptionalWithoutHeaderIsAnonymous(t *testing.T) {
	m, _ := newTestMiddleware()
	app := echoApp(m.Optional)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalResolvesValidToken(t *testing.T) {
	m, tokens := newTestMiddleware()
	app := echoApp(m.Optional)

	token, _, err := tokens.GenerateToken(testUserID)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, testUserID, string(buf[:n]))
}

func TestRequireRejectsMalformedToken(t *testing.T) {
	m, _ := newTestMiddleware()

	reached := false
	app := fiber.New()
	app.Get("/whoami", m.Require, func(c *fiber.Ctx) error {
		reached = true
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.False(t, reached)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRejectsNonUUIDSubject(t *testing.T) {
	m, tokens := newTestMiddleware()

	reached := false
	app := fiber.New()
	app.Get("/whoami", m.Require, func(c *fiber.Ctx) error {
		reached = true
		return c.SendString("ok")
	})

	token, _, err := tokens.GenerateToken("admin")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.False(t, reached)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}
