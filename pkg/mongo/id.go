package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/validator"
)

// ParseID converts a hex id taken from a request. Malformed ids fail with a
// validation error naming field, so they never reach a query.
func ParseID(field, raw string) (bson.ObjectID, error) {
	if err := validator.ApplyFirst(validator.ValidObjectID(field, raw)); err != nil {
		return bson.NilObjectID, err
	}
	id, _ := bson.ObjectIDFromHex(raw)
	return id, nil
}
