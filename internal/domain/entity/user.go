// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// LikeRef is a weak reference to another user aggregate. It carries the
// referenced user's ID only; no ownership or cascading lifecycle is implied.
type LikeRef struct {
	UserID string
}

// User is the core aggregate of the system. Besides the identity fields it
// owns two embedded collections of weak references: the users this user has
// liked, and the users who have liked this user. Both are sets — duplicates
// are forbidden and insertion order carries no meaning.
type User struct {
	ID           string    // Unique, stable identifier assigned at creation.
	Username     string    // Unique (case-sensitive), non-empty, immutable after creation.
	PasswordHash string    // Opaque derived credential. Never exposed outward.
	Salt         string    // Per-user salt used to derive PasswordHash. Never exposed outward.
	Liked        []LikeRef // Users this user has liked.
	LikedBy      []LikeRef // Users who have liked this user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this aggregate.
}

// HasLiked reports whether this user has already liked the user with the given ID.
func (u *User) HasLiked(userID string) bool {
	for _, ref := range u.Liked {
		if ref.UserID == userID {
			return true
		}
	}

	return false
}

// AddLiked appends a weak reference to the liked set.
// Callers must check HasLiked first; this method does not deduplicate.
func (u *User) AddLiked(userID string) {
	u.Liked = append(u.Liked, LikeRef{UserID: userID})
}

// AddLikedBy appends a weak reference to the likedBy set.
func (u *User) AddLikedBy(userID string) {
	u.LikedBy = append(u.LikedBy, LikeRef{UserID: userID})
}

// RemoveLiked removes the weak reference to the given user from the liked set.
// Removing an absent reference is a no-op.
func (u *User) RemoveLiked(userID string) {
	u.Liked = removeRef(u.Liked, userID)
}

// RemoveLikedBy removes the weak reference to the given user from the likedBy set.
func (u *User) RemoveLikedBy(userID string) {
	u.LikedBy = removeRef(u.LikedBy, userID)
}

func removeRef(refs []LikeRef, userID string) []LikeRef {
	filtered := refs[:0]
	for _, ref := range refs {
		if ref.UserID != userID {
			filtered = append(filtered, ref)
		}
	}

	return filtered
}

// Ranking is one row of the most-liked view: a username together with the
// size of that user's likedBy set. Produced by the store's aggregation.
type Ranking struct {
	Username   string
	LikedCount int
}
