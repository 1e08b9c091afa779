package auth

import (
	"testing"
	"time"

	"pulse/config"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, jwtCfg *config.JWTConfig) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{JWT: jwtCfg})
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, &config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "pulse",
		ExpiresIn: time.Hour,
	})

	token, err := svc.Issue("64f0c0ffee00000000000001", "josip")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee00000000000001", claims.UserID)
	assert.Equal(t, "josip", claims.Username)
	assert.Equal(t, "pulse", claims.Issuer)
	assert.Equal(t, "64f0c0ffee00000000000001", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := newTestTokenService(t, &config.JWTConfig{Secret: "test-secret"})

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := svc.Verify(tokenString)

		require.Error(t, err)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	}
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, &config.JWTConfig{Secret: "secret-one"})
	verifier := newTestTokenService(t, &config.JWTConfig{Secret: "secret-two"})

	token, err := issuer.Issue("64f0c0ffee00000000000001", "josip")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService(t, &config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: -time.Minute,
	}).(*jwtService)
	// Bypass the constructor's floor on expiry to sign an already-dead token.
	svc.expiry = -time.Minute

	token, err := svc.Issue("64f0c0ffee00000000000001", "josip")
	require.NoError(t, err)

	claims, err := svc.Verify(token)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_Verify_IssuerMismatch(t *testing.T) {
	issuer := newTestTokenService(t, &config.JWTConfig{Secret: "test-secret", Issuer: "other-service"})
	verifier := newTestTokenService(t, &config.JWTConfig{Secret: "test-secret", Issuer: "pulse"})

	token, err := issuer.Issue("64f0c0ffee00000000000001", "josip")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{}})

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewJWTService_UnsupportedAlgorithm(t *testing.T) {
	svc, err := NewJWTService(&config.Config{
		JWT: &config.JWTConfig{Secret: "test-secret", Algorithm: "RS256"},
	})

	require.Error(t, err)
	assert.Nil(t, svc)
}
