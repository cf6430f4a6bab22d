package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trade is one disclosed stock transaction of a member of Congress.
// Collection: trades
//
// Politician and committee fields are a denormalized snapshot so the
// listing can filter without a join.
type Trade struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`

	BioguideID     string   `bson:"bioguide_id" json:"bioguide_id"`
	PoliticianName string   `bson:"politician_name" json:"politician_name"`
	Party          string   `bson:"party" json:"party"`
	State          string   `bson:"state" json:"state"`
	Chamber        string   `bson:"chamber" json:"chamber"`
	Committees     []string `bson:"committees" json:"committees"`

	CompanyName string `bson:"company_name" json:"company_name"`
	Ticker      string `bson:"ticker" json:"ticker"`
	Industry    string `bson:"industry" json:"industry"`

	Traded      time.Time `bson:"traded" json:"traded"`
	Filed       time.Time `bson:"filed" json:"filed"`
	Transaction string    `bson:"transaction" json:"transaction"`

	// Size is the size as disclosed: a dollar amount or a bucket label.
	Size string `bson:"size" json:"size"`

	// Amount is the numeric lower bound of Size, used by range filters.
	Amount float64  `bson:"amount" json:"amount"`
	Price  *float64 `bson:"price,omitempty" json:"price,omitempty"`

	// ExcessReturn is stored as delivered by the upstream feed; it may be
	// a number, a numeric string or missing.
	ExcessReturn interface{} `bson:"excess_return,omitempty" json:"excess_return,omitempty"`
}
