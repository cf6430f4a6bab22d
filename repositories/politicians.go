package repositories

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"congress-tracker/models"
)

type PoliticianRepository struct {
	col *mongo.Collection
}

func NewPoliticianRepository(db *mongo.Database) *PoliticianRepository {
	return &PoliticianRepository{col: db.Collection("politicians")}
}

// FindByName returns a politician by name, case-insensitive exact match.
func (r *PoliticianRepository) FindByName(ctx context.Context, name string) (*models.Politician, error) {
	var p models.Politician
	filter := bson.M{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}}
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Count returns the number of stored politicians.
func (r *PoliticianRepository) Count(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}

// CountCommitteeAssignments sums the committee list sizes of all politicians.
func (r *PoliticianRepository) CountCommitteeAssignments(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{"n": bson.M{"$size": bson.M{"$ifNull": bson.A{"$committees", bson.A{}}}}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$n"}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
