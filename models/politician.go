package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Politician is a member of Congress with committee assignments.
// Collection: politicians
type Politician struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	BioguideID string             `bson:"bioguide_id" json:"bioguide_id"`
	Name       string             `bson:"name" json:"name"`
	Party      string             `bson:"party" json:"party"`
	Chamber    string             `bson:"chamber" json:"chamber"`

	// State is empty when the state lookup has no entry.
	State      string   `bson:"state" json:"state"`
	Committees []string `bson:"committees" json:"committees"`
}
