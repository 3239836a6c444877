package project

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/portfolio/pkg/mongo"
)

type Repository interface {
	List(ctx context.Context, tech string) ([]Project, error)
	Get(ctx context.Context, id bson.ObjectID) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Project, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MongoRepository struct {
	coll *mongo.Collection[Project]
}

func NewMongoRepository(db *driver.Database) *MongoRepository {
	return &MongoRepository{coll: mongo.NewCollection[Project](db, collectionName)}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	return mongo.EnsureIndexes(ctx, r.coll.Raw(),
		driver.IndexModel{Keys: bson.D{{Key: "techStack", Value: 1}}},
		driver.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	)
}

// List returns projects newest first. A non-empty tech matches stack
// entries case-insensitively.
func (r *MongoRepository) List(ctx context.Context, tech string) ([]Project, error) {
	filter := bson.M{}
	if tech != "" {
		filter["techStack"] = bson.Regex{Pattern: "^" + regexp.QuoteMeta(tech) + "$", Options: "i"}
	}
	return r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *MongoRepository) Get(ctx context.Context, id bson.ObjectID) (*Project, error) {
	p, err := r.coll.FindByID(ctx, id)
	return p, notFound(id, err)
}

func (r *MongoRepository) Create(ctx context.Context, p *Project) error {
	_, err := r.coll.Insert(ctx, p)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id bson.ObjectID, u *mongo.Update) (*Project, error) {
	p, err := r.coll.UpdateByID(ctx, id, u, time.Now().UTC())
	return p, notFound(id, err)
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
