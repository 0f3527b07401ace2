package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bistroboss/internal/auth"
	"bistroboss/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, user *model.User) (*uuid.UUID, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uuid.UUID), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) PromoteToAdmin(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestServer(t *testing.T, users *MockUserService) (*echo.Echo, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService("test-secret")

	e := echo.New()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	secured := e.Group("", VerifyToken(tokens))
	secured.GET("/protected", ok)

	admin := secured.Group("", RequireAdmin(users))
	admin.GET("/admin-only", ok)

	return e, tokens
}

func request(e *echo.Echo, token string) *httptest.ResponseRecorder {
	return requestPath(e, "/protected", token)
}

func requestPath(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestVerifyToken(t *testing.T) {
	e, tokens := newTestServer(t, new(MockUserService))

	t.Run("missing authorization header", func(t *testing.T) {
		rec := request(e, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized")
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := request(e, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &auth.Claims{
			Email: "x@y.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		rec := request(e, expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign, err := auth.NewTokenService("other-secret").GenerateToken("x@y.com", "")
		assert.NoError(t, err)

		rec := request(e, foreign)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, err := tokens.GenerateToken("x@y.com", "")
		assert.NoError(t, err)

		rec := request(e, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("valid token without the admin role", func(t *testing.T) {
		users := new(MockUserService)
		users.On("IsAdmin", mock.Anything, "user@y.com").Return(false, nil)
		e, tokens := newTestServer(t, users)

		token, err := tokens.GenerateToken("user@y.com", "")
		assert.NoError(t, err)

		rec := requestPath(e, "/admin-only", token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Forbidden")
	})

	t.Run("admin role passes", func(t *testing.T) {
		users := new(MockUserService)
		users.On("IsAdmin", mock.Anything, "admin@y.com").Return(true, nil)
		e, tokens := newTestServer(t, users)

		token, err := tokens.GenerateToken("admin@y.com", "")
		assert.NoError(t, err)

		rec := requestPath(e, "/admin-only", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token never reaches the role check", func(t *testing.T) {
		users := new(MockUserService)
		e, _ := newTestServer(t, users)

		rec := requestPath(e, "/admin-only", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		users.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
	})
}
