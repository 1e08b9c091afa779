package auth

import (
	"time"

	"pulse/config"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultExpiry = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It is stateless: issued tokens are never stored, and verification is a pure
// function of the configured secret, issuer and the token itself.
type jwtService struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.Algorithm != "" && cfg.JWT.Algorithm != jwt.SigningMethodHS256.Alg() {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", cfg.JWT.Algorithm)
	}

	expiry := cfg.JWT.ExpiresIn
	if expiry <= 0 {
		expiry = defaultExpiry
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		issuer: cfg.JWT.Issuer,
		expiry: expiry,
	}, nil
}

// Issue signs a token carrying {userId, username} with the configured secret and issuer.
func (s *jwtService) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Verify checks the signature, issuer and expiry of a token string and
// returns the embedded claims. Any failure collapses into the invalid-token
// kind; callers cannot distinguish a forged signature from an expired token.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		opts...,
	)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	return claims, nil
}
