package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is a typed view over a collection whose documents decode into T.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

// Raw exposes the driver collection for index management and ad hoc queries.
func (c *Collection[T]) Raw() *mongo.Collection {
	return c.coll
}

// Find returns all matching documents; no match yields an empty, non-nil slice.
func (c *Collection[T]) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}

	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.coll.Name(), err)
	}

	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}
	return items, nil
}

// FindOne returns ErrNotFound when nothing matches.
func (c *Collection[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var v T
	if err := c.coll.FindOne(ctx, filter).Decode(&v); err != nil {
		return nil, c.wrap("find one", err)
	}
	return &v, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

// Count returns the number of documents matching filter.
func (c *Collection[T]) Count(ctx context.Context, filter any) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.coll.Name(), err)
	}
	return n, nil
}

// Insert stores doc and returns its id. Unique index violations are
// reported as ErrDuplicateKey.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (bson.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return bson.NilObjectID, c.wrap("insert", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("insert %s: unexpected id type %T", c.coll.Name(), res.InsertedID)
	}
	return id, nil
}

// UpdateByID applies u and returns the document as stored afterwards.
func (c *Collection[T]) UpdateByID(ctx context.Context, id bson.ObjectID, u *Update, now time.Time) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var v T
	if err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, u.Doc(now), opts).Decode(&v); err != nil {
		return nil, c.wrap("update", err)
	}
	return &v, nil
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.wrap("delete", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete %s %s: %w", c.coll.Name(), id.Hex(), ErrNotFound)
	}
	return nil
}

func (c *Collection[T]) wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s %s: %w", op, c.coll.Name(), ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w", op, c.coll.Name(), errors.Join(ErrDuplicateKey, err))
	default:
		return fmt.Errorf("%s %s: %w", op, c.coll.Name(), err)
	}
}
