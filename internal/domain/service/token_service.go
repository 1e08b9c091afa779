package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the identity claim embedded in session tokens.
// The token is a stateless capability bearer: nothing here is persisted,
// and expiry is enforced only through the registered claims.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed
// session tokens. Implementations are pure functions of configuration and
// input; they keep no server-side session state.
type TokenService interface {
	// Issue signs a token carrying {userId, username} with the configured
	// secret, issuer and expiry, and returns it as an opaque string.
	Issue(userID, username string) (string, error)

	// Verify checks the token's signature, issuer and expiry, and returns
	// the embedded claims. Failures surface as the invalid-token kind.
	Verify(tokenString string) (*Claims, error)
}
