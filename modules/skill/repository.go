package skill

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
	List(ctx context.Context, category string) ([]Skill, error)
	Get(ctx context.Context, id bson.ObjectID) (*Skill, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Skill, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MongoRepository struct {
	coll *mongo.Collection[Skill]
}

func NewMongoRepository(db *driver.Database) *MongoRepository {
	return &MongoRepository{coll: mongo.NewCollection[Skill](db, collectionName)}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, r.coll.Raw(),
		driver.IndexModel{Keys: bson.D{{Key: "categories", Value: 1}}},
	)
}

// List sorts by English name so the public page is stable.
func (r *MongoRepository) List(ctx context.Context, category string) ([]Skill, error) {
	filter := bson.M{}
	if category != "" {
		filter["categories"] = category
	}
	return r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name.en", Value: 1}}))
}

func (r *MongoRepository) Get(ctx context.Context, id bson.ObjectID) (*Skill, error) {
	s, err := r.coll.FindByID(ctx, id)
	return s, notFound(id, err)
}

func (r *MongoRepository) Create(ctx context.Context, s *Skill) error {
	_, err := r.coll.Insert(ctx, s)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Skill, error) {
	s, err := r.coll.UpdateByID(ctx, id, u, time.Now().UTC())
	return s, notFound(id, err)
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
