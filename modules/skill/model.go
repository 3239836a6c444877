package skill

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

const (
	collectionName = "skills"
	iconPrefix     = "skills"
	resourceName   = "skill"
)

// Categories is the closed set of skill categories.
var Categories = []string{"FRONTEND", "BACKEND", "DATABASE", "DEVOPS", "MOBILE", "DESIGN", "TOOLS", "OTHER"}

type Skill struct {
	ID         bson.ObjectID `bson:"_id" json:"id"`
	Name       content.Text  `bson:"name" json:"name"`
	Level      content.Text  `bson:"level" json:"level"`
	Categories []string      `bson:"categories" json:"categories"`
	IconURL    string        `bson:"iconUrl,omitempty" json:"iconUrl,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}
