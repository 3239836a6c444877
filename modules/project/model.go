package project

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

const (
	collectionName = "projects"
	imagePrefix    = "projects"
	resourceName   = "project"
)

type Project struct {
	ID          bson.ObjectID `bson:"_id" json:"id"`
	Title       content.Text  `bson:"title" json:"title"`
	Description content.Text  `bson:"description" json:"description"`
	TechStack   []string      `bson:"techStack" json:"techStack"`
	Link        string        `bson:"link,omitempty" json:"link,omitempty"`
	GithubURL   string        `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	ImageURL    string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
