package testimonial

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

const (
	collectionName = "testimonials"
	imagePrefix    = "testimonials"
	resourceName   = "testimonial"
)

// Testimonial is a quote from a client or colleague. Position is the
// author's job title and is not translated.
type Testimonial struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Name      content.Text  `bson:"name" json:"name"`
	Text      content.Text  `bson:"text" json:"text"`
	Position  string        `bson:"position,omitempty" json:"position,omitempty"`
	ImageURL  string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
