package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
	"pulse/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := new(mocks.MockTokenService)
	tokenSvc.On("Verify", "signed.token").Return(&service.Claims{
		UserID:   "64f0c0ffee00000000000001",
		Username: "josip",
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext("Bearer signed.token")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, "64f0c0ffee00000000000001", c.Get(KeyUserID))
	assert.Equal(t, "josip", c.Get(KeyUsername))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(new(mocks.MockTokenService))
	c := newAuthTestContext("")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next must not run without a token")

		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(new(mocks.MockTokenService))
	c := newAuthTestContext("Basic am9zaXA6c2VjcmV0")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next must not run without a bearer token")

		return nil
	})(c)

	require.Error(t, err)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrTokenMissing.ErrorCode(), appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mocks.MockTokenService)
	tokenSvc.On("Verify", "forged.token").
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("signature is invalid"))

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext("Bearer forged.token")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next must not run with an invalid token")

		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
