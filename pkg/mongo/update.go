package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

// Update collects $set and $unset operations for a partial update.
type Update struct {
	set   bson.M
	unset bson.M
}

func NewUpdate() *Update {
	return &Update{set: bson.M{}, unset: bson.M{}}
}

func (u *Update) Set(field string, value any) *Update {
	u.set[field] = value
	delete(u.unset, field)
	return u
}

func (u *Update) Unset(field string) *Update {
	u.unset[field] = ""
	delete(u.set, field)
	return u
}

// SetLocalized sets field.<lang> for each changed language only, so stored
// translations the request did not mention stay intact.
func (u *Update) SetLocalized(field string, changes map[content.Lang]string) *Update {
	for lang, v := range changes {
		u.set[field+"."+lang.String()] = v
	}
	return u
}

// SetOptional sets field when v is non-nil. An empty value unsets it.
func (u *Update) SetOptional(field string, v *string) *Update {
	switch {
	case v == nil:
	case *v == "":
		u.Unset(field)
	default:
		u.Set(field, *v)
	}
	return u
}

// Empty reports whether no field would change.
func (u *Update) Empty() bool {
	return len(u.set) == 0 && len(u.unset) == 0
}

// Doc returns the update document, stamping updatedAt.
func (u *Update) Doc(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	for k, v := range u.set {
		set[k] = v
	}
	doc := bson.M{"$set": set}
	if len(u.unset) > 0 {
		doc["$unset"] = u.unset
	}
	return doc
}
