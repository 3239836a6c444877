package gallery

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

const (
	collectionName = "gallery"
	imagePrefix    = "gallery"
	resourceName   = "gallery"
)

// Categories is the closed set of gallery categories.
var Categories = []string{"PROJECT", "EVENT", "TEAM", "OFFICE", "COMMUNITY", "OTHER"}

// Item is a stored gallery entry.
type Item struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	Title       content.Text  `bson:"title" json:"title"`
	Description content.Text  `bson:"description" json:"description"`
	Categories  []string      `bson:"categories" json:"categories"`
	ImageURL    string        `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
