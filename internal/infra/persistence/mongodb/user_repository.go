package mongodb

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements repository.UserRepository over a MongoDB collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// EnsureIndexes creates the unique username index. Index creation is
// idempotent, so this is safe to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UserModel{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return errors.Wrap(err, "failed to create username index")
}

// FindByID retrieves a single user aggregate by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID cannot resolve to an existing user.
		return nil, domainerrors.ErrUserNotFound.WrapMessage("invalid user id")
	}

	return repo.findOne(ctx, bson.M{"_id": objectID})
}

// FindByUsername retrieves a single user aggregate by its username.
// The lookup is case-sensitive.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return model.ToUserDomain(&userM), nil
}

// Insert persists a new user aggregate and writes the generated ID back
// into the entity. A duplicate username maps to the username-taken kind.
func (repo *userRepository) Insert(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	userM := model.FromUserDomain(user)
	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert user")
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = objectID.Hex()
	}

	return nil
}

// Save replaces the whole aggregate with the given state.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	objectID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domainerrors.ErrUserNotFound.WrapMessage("invalid user id")
	}

	user.UpdatedAt = time.Now()

	userM := model.FromUserDomain(user)
	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, userM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save user")
	}
	if result.MatchedCount == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// UpdateCredentials replaces salt and password hash in a single write and
// returns the updated aggregate.
func (repo *userRepository) UpdateCredentials(ctx context.Context, username, salt, passwordHash string) (*entity.User, error) {
	update := bson.M{"$set": bson.M{
		"salt":      salt,
		"password":  passwordHash,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var userM model.UserModel
	err := repo.collection.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update credentials")
	}

	return model.ToUserDomain(&userM), nil
}

// MostLiked projects every user down to the size of their likedBy set and
// sorts by that size descending. Tie order is whatever the store enumerates.
func (repo *userRepository) MostLiked(ctx context.Context) ([]entity.Ranking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"username":   1,
			"likedCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$likedBy", bson.A{}}}},
		}}},
		{{Key: "$sort", Value: bson.M{"likedCount": -1}}},
	}

	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate most liked users")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Username   string `bson:"username"`
		LikedCount int    `bson:"likedCount"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode most liked users")
	}

	rankings := make([]entity.Ranking, 0, len(rows))
	for _, row := range rows {
		rankings = append(rankings, entity.Ranking{
			Username:   row.Username,
			LikedCount: row.LikedCount,
		})
	}

	return rankings, nil
}

// DeleteAll removes every user aggregate.
func (repo *userRepository) DeleteAll(ctx context.Context) error {
	if _, err := repo.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete users")
	}

	return nil
}
