package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job represents a job posting. AuthorEmail records the only identity
// allowed to mutate the record; it is a lookup key into users, not an
// ownership edge, and deleting a user does not cascade.
type Job struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Price           float64            `json:"price" bson:"price"`
	PricingType     string             `json:"pricingType" bson:"pricing_type"`
	Description     string             `json:"description" bson:"description"`
	Location        string             `json:"location" bson:"location"`
	ExperienceLevel string             `json:"experienceLevel" bson:"experience_level"`
	Vacancy         int                `json:"vacancy" bson:"vacancy"`
	Skills          []string           `json:"skills" bson:"skills"`
	AuthorEmail     string             `json:"authorEmail" bson:"author_email"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at"`
}

// JobUpdate carries the fixed allow-list of mutable fields. AuthorEmail and
// CreatedAt are deliberately absent.
type JobUpdate struct {
	Title           string   `json:"title" bson:"title"`
	Price           float64  `json:"price" bson:"price"`
	PricingType     string   `json:"pricingType" bson:"pricing_type"`
	Description     string   `json:"description" bson:"description"`
	Location        string   `json:"location" bson:"location"`
	ExperienceLevel string   `json:"experienceLevel" bson:"experience_level"`
	Vacancy         int      `json:"vacancy" bson:"vacancy"`
	Skills          []string `json:"skills" bson:"skills"`
}
