package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/domain/service"
	"pizzahouse/internal/errors"
	mockSvc "pizzahouse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	t.Helper()

	tokens := mockSvc.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokens,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokens
}

func serve(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	auth, tokens := newTestAuth(t)
	userID := uuid.New()

	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		actor, ok := GetActor(c)
		require.True(t, ok)
		assert.Equal(t, userID, actor.UserID)
		assert.True(t, actor.IsAdmin())

		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate)

	tokens.EXPECT().ValidateAccessToken("good").Return(&service.AccessClaims{
		UserID: userID,
		Roles:  []string{constants.RoleAdmin},
	}, nil).Once()
	tokens.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired")).Once()

	assert.Equal(t, http.StatusNoContent, serve(e, "Bearer good").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer expired").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "").Code)

	rec := serve(e, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	auth, tokens := newTestAuth(t)

	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate, auth.RequireRole(constants.RoleAdmin))

	tokens.EXPECT().ValidateAccessToken("customer").Return(&service.AccessClaims{
		UserID: uuid.New(),
		Roles:  []string{constants.RoleCustomer},
	}, nil).Once()
	tokens.EXPECT().ValidateAccessToken("admin").Return(&service.AccessClaims{
		UserID: uuid.New(),
		Roles:  []string{constants.RoleCustomer, constants.RoleAdmin},
	}, nil).Once()

	rec := serve(e, "Bearer customer")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "details")

	assert.Equal(t, http.StatusNoContent, serve(e, "Bearer admin").Code)
}
