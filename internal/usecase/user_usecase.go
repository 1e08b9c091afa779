// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to rotate a user's credentials.
type ChangePasswordInput struct {
	Username    string
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// TokenOutput returns the signed session token after sign-up or login.
type TokenOutput struct {
	Token string
}

// UserInfo is the outward projection of a user identity.
// Hash and salt never leave the usecase layer.
type UserInfo struct {
	ID       string
	Username string
}

// ProfileOutput returns a user's identity together with both sides of their
// like relationships.
type ProfileOutput struct {
	ID           string
	Username     string
	Liked        []string // IDs of users this user has liked.
	LikedBy      []string // IDs of users who have liked this user.
	LikedCount   int
	LikedByCount int
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp creates a new user with a fresh salt and hash, then logs the
	// new user in and returns the session token.
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)

	// Login verifies credentials and returns a session token. Unknown
	// username and wrong password fail with the same error kind.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// ChangePassword verifies the old password and replaces salt and hash
	// in a single write, returning the updated identity.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*UserInfo, error)

	// GetProfile resolves a user by ID.
	GetProfile(ctx context.Context, userID string) (*ProfileOutput, error)
}
