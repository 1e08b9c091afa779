// Package model contains the persistence representations of domain entities
// and the mapping between the two. Domain entities stay free of driver tags;
// the document layout lives here.
package model

import (
	"time"

	"pulse/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeRefModel mirrors one element of the embedded liked/likedBy arrays.
type LikeRefModel struct {
	UserID primitive.ObjectID `bson:"userId"`
}

// UserModel mirrors the 'users' collection. The liked/likedBy arrays are
// embedded in the aggregate, so one document read or replace covers the
// whole unit of mutation.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
	Salt         string             `bson:"salt"`
	Liked        []LikeRefModel     `bson:"liked"`
	LikedBy      []LikeRefModel     `bson:"likedBy"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// CollectionName is the name of the backing collection.
func (UserModel) CollectionName() string {
	return "users"
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Salt:         m.Salt,
		Liked:        toRefDomain(m.Liked),
		LikedBy:      toRefDomain(m.LikedBy),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model.
// An unassigned or malformed entity ID maps to the zero ObjectID, which the
// driver replaces on insert.
func FromUserDomain(user *entity.User) *UserModel {
	id, _ := primitive.ObjectIDFromHex(user.ID)

	return &UserModel{
		ID:           id,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Salt:         user.Salt,
		Liked:        fromRefDomain(user.Liked),
		LikedBy:      fromRefDomain(user.LikedBy),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toRefDomain(refs []LikeRefModel) []entity.LikeRef {
	if refs == nil {
		return nil
	}

	out := make([]entity.LikeRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, entity.LikeRef{UserID: ref.UserID.Hex()})
	}

	return out
}

func fromRefDomain(refs []entity.LikeRef) []LikeRefModel {
	out := make([]LikeRefModel, 0, len(refs))
	for _, ref := range refs {
		id, err := primitive.ObjectIDFromHex(ref.UserID)
		if err != nil {
			continue
		}
		out = append(out, LikeRefModel{UserID: id})
	}

	return out
}
