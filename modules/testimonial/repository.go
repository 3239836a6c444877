package testimonial

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
	List(ctx context.Context) ([]Testimonial, error)
	Get(ctx context.Context, id bson.ObjectID) (*Testimonial, error)
	Create(ctx context.Context, t *Testimonial) error
	Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Testimonial, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MongoRepository struct {
	coll *mongo.Collection[Testimonial]
}

func NewMongoRepository(db *driver.Database) *MongoRepository {
	return &MongoRepository{coll: mongo.NewCollection[Testimonial](db, collectionName)}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, r.coll.Raw(),
		driver.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	)
}

func (r *MongoRepository) List(ctx context.Context) ([]Testimonial, error) {
	return r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoRepository) Get(ctx context.Context, id bson.ObjectID) (*Testimonial, error) {
	t, err := r.coll.FindByID(ctx, id)
	return t, notFound(id, err)
}

func (r *MongoRepository) Create(ctx context.Context, t *Testimonial) error {
	_, err := r.coll.Insert(ctx, t)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Testimonial, error) {
	t, err := r.coll.UpdateByID(ctx, id, u, time.Now().UTC())
	return t, notFound(id, err)
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
