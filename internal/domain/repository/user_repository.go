// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
)

// UserRepository is the persistence port over user aggregates. The user
// aggregate is the unit of read and write: Save replaces the whole document,
// and the embedded liked/likedBy collections travel with it.
//
// The application layer depends on this interface, never on the concrete
// document-store implementation.
type UserRepository interface {
	// FindByID retrieves a single user aggregate by its unique ID.
	// Returns domain errors.ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a single user aggregate by its username.
	// Returns domain errors.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Insert persists a new user aggregate and assigns its ID.
	// A duplicate username surfaces as domain errors.ErrUsernameTaken.
	Insert(ctx context.Context, user *entity.User) error

	// Save replaces an existing aggregate with the given state.
	Save(ctx context.Context, user *entity.User) error

	// UpdateCredentials replaces the salt and password hash of the named user
	// in a single write and returns the updated aggregate.
	// Returns domain errors.ErrUserNotFound when no such user exists.
	UpdateCredentials(ctx context.Context, username, salt, passwordHash string) (*entity.User, error)

	// MostLiked returns every user with the size of their likedBy set,
	// ordered by that size descending. Tie order follows the store's
	// natural enumeration order and is unspecified.
	MostLiked(ctx context.Context) ([]entity.Ranking, error)

	// DeleteAll removes every user aggregate. Reset tooling only.
	DeleteAll(ctx context.Context) error
}
