package user

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/portfolio/pkg/mongo"
)

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	TouchLogin(ctx context.Context, id bson.ObjectID, at time.Time) error
}

type MongoRepository struct {
	coll *mongo.Collection[User]
}

func NewMongoRepository(db *driver.Database) *MongoRepository {
	return &MongoRepository{coll: mongo.NewCollection[User](db, collectionName)}
}

// EnsureIndexes creates the unique email index Create depends on.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, r.coll.Raw(), driver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.Count(ctx, bson.D{})
}

func (r *MongoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	u, err := r.coll.FindByID(ctx, id)
	if mongo.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id.Hex())
	}
	return u, err
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.coll.FindOne(ctx, bson.M{"email": email})
	if mongo.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return u, err
}

func (r *MongoRepository) Create(ctx context.Context, u *User) error {
	if _, err := r.coll.Insert(ctx, u); err != nil {
		if mongo.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *MongoRepository) TouchLogin(ctx context.Context, id bson.ObjectID, at time.Time) error {
	_, err := r.coll.UpdateByID(ctx, id, mongo.NewUpdate().Set("lastLoginAt", at), at)
	return err
}
