package repositories

import (
	"context"
	"math"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"congress-tracker/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TradeRepository struct {
	col *mongo.Collection
}

func NewTradeRepository(db *mongo.Database) *TradeRepository {
	return &TradeRepository{col: db.Collection("trades")}
}

// ListTradesOptions is a storage-level trade query. Zero values mean no
// constraint. Slice fields match any of their values; fields combine with AND.
type ListTradesOptions struct {
	Page     int
	PageSize int

	// NameContains is a case-insensitive substring match on politician_name.
	NameContains string
	// PoliticianName is a case-insensitive exact match (profile pages).
	PoliticianName string
	BioguideID     string

	Party       string
	State       string
	Industries  []string
	Committees  []string
	Transaction string

	// AmountMin (inclusive) and AmountMax (exclusive) bound the amount.
	AmountMin *float64
	AmountMax *float64
	// Size matches the disclosed size literally. Used for range values
	// that are not a known bucket.
	Size string

	TradedAfter *time.Time
}

// ListResult is one page of trades. Page is the page actually served after
// clamping into [1, last page].
type ListResult struct {
	Items    []models.Trade
	Total    int64
	Page     int
	PageSize int
}

// BuildTradeFilter translates options into a Mongo filter document.
func BuildTradeFilter(opt ListTradesOptions) bson.M {
	filter := bson.M{}

	if opt.NameContains != "" {
		filter["politician_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(opt.NameContains), Options: "i"}
	}
	if opt.PoliticianName != "" {
		filter["politician_name"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opt.PoliticianName) + "$", Options: "i"}
	}
	if opt.BioguideID != "" {
		filter["bioguide_id"] = opt.BioguideID
	}
	if opt.Party != "" {
		filter["party"] = opt.Party
	}
	if opt.State != "" {
		filter["state"] = opt.State
	}
	if in := nonEmptyValues(opt.Industries); len(in) > 0 {
		filter["industry"] = bson.M{"$in": in}
	}
	if in := nonEmptyValues(opt.Committees); len(in) > 0 {
		filter["committees"] = bson.M{"$in": in}
	}
	if opt.Transaction != "" {
		filter["transaction"] = opt.Transaction
	}

	amount := bson.M{}
	if opt.AmountMin != nil {
		amount["$gte"] = *opt.AmountMin
	}
	if opt.AmountMax != nil && !math.IsInf(*opt.AmountMax, 1) {
		amount["$lt"] = *opt.AmountMax
	}
	if len(amount) > 0 {
		filter["amount"] = amount
	}
	if opt.Size != "" {
		filter["size"] = opt.Size
	}

	if opt.TradedAfter != nil {
		filter["traded"] = bson.M{"$gte": *opt.TradedAfter}
	}
	return filter
}

// List returns trades matching opt, newest traded first.
func (r *TradeRepository) List(ctx context.Context, opt ListTradesOptions) (ListResult, error) {
	filter := BuildTradeFilter(opt)

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > maxPageSize {
		opt.PageSize = defaultPageSize
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}
	// Requests past the last page are served the last page.
	lastPage := int((total + int64(opt.PageSize) - 1) / int64(opt.PageSize))
	if lastPage < 1 {
		lastPage = 1
	}
	if opt.Page > lastPage {
		opt.Page = lastPage
	}

	skip := int64((opt.Page - 1) * opt.PageSize)
	findOpts := options.Find().SetSkip(skip).SetLimit(int64(opt.PageSize)).SetSort(bson.D{
		{Key: "traded", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return ListResult{}, err
	}
	defer cur.Close(ctx)

	var results []models.Trade
	for cur.Next(ctx) {
		var t models.Trade
		if err := cur.Decode(&t); err != nil {
			return ListResult{}, err
		}
		results = append(results, t)
	}
	if err := cur.Err(); err != nil {
		return ListResult{}, err
	}
	return ListResult{Items: results, Total: total, Page: opt.Page, PageSize: opt.PageSize}, nil
}

// DistinctValues returns the sorted non-empty values of a string field.
// Array fields (committees) are flattened by Mongo.
func (r *TradeRepository) DistinctValues(ctx context.Context, field string) ([]string, error) {
	raw, err := r.col.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	return stringValues(raw), nil
}

// Count returns the number of stored trades.
func (r *TradeRepository) Count(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}

func stringValues(raw []interface{}) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func nonEmptyValues(values []string) []interface{} {
	arr := make([]interface{}, 0, len(values))
	for _, v := range values {
		if v != "" {
			arr = append(arr, v)
		}
	}
	return arr
}
