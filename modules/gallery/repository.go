package gallery

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/portfolio/pkg/mongo"
)

// Repository persists gallery items.
type Repository interface {
	List(ctx context.Context, category string) ([]Item, error)
	Get(ctx context.Context, id bson.ObjectID) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Item, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MongoRepository struct {
	coll *mongo.Collection[Item]
}

func NewMongoRepository(db *driver.Database) *MongoRepository {
	return &MongoRepository{coll: mongo.NewCollection[Item](db, collectionName)}
}

// EnsureIndexes creates the indexes List relies on.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, r.coll.Raw(),
		driver.IndexModel{Keys: bson.D{{Key: "categories", Value: 1}}},
		driver.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	)
}

// List returns items newest first, optionally restricted to one category.
func (r *MongoRepository) List(ctx context.Context, category string) ([]Item, error) {
	filter := bson.M{}
	if category != "" {
		filter["categories"] = category
	}
	return r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoRepository) Get(ctx context.Context, id bson.ObjectID) (*Item, error) {
	item, err := r.coll.FindByID(ctx, id)
	return item, notFound(id, err)
}

func (r *MongoRepository) Create(ctx context.Context, item *Item) error {
	_, err := r.coll.Insert(ctx, item)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Item, error) {
	item, err := r.coll.UpdateByID(ctx, id, u, time.Now().UTC())
	return item, notFound(id, err)
}

func (r *MongoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return notFound(id, r.coll.DeleteByID(ctx, id))
}

func notFound(id bson.ObjectID, err error) error {
	if mongo.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id.Hex())
	}
	return err
}
