package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"congress-tracker/config"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	var initErr error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.DBName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
	})
	return initErr
}

func Database() *mongo.Database { return db }

// Ping checks the primary is reachable.
func Ping(ctx context.Context) error {
	if client == nil {
		return errors.New("mongo client not initialized")
	}
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the global client if it was opened.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	trades := d.Collection("trades")
	tradeIndexes := []mongo.IndexModel{
		// listing order: traded desc
		{Keys: bson.D{{Key: "traded", Value: -1}, {Key: "_id", Value: -1}}, Options: options.Index().SetName("idx_traded_desc")},
		{Keys: bson.D{{Key: "bioguide_id", Value: 1}, {Key: "traded", Value: -1}}, Options: options.Index().SetName("idx_bioguide_traded")},
		{Keys: bson.D{{Key: "politician_name", Value: 1}}, Options: options.Index().SetName("idx_politician_name")},
		{Keys: bson.D{{Key: "party", Value: 1}}, Options: options.Index().SetName("idx_party")},
		{Keys: bson.D{{Key: "state", Value: 1}}, Options: options.Index().SetName("idx_state")},
		{Keys: bson.D{{Key: "industry", Value: 1}}, Options: options.Index().SetName("idx_industry")},
		{Keys: bson.D{{Key: "committees", Value: 1}}, Options: options.Index().SetName("idx_committees")},
		{Keys: bson.D{{Key: "amount", Value: 1}}, Options: options.Index().SetName("idx_amount")},
	}
	if _, err := trades.Indexes().CreateMany(ctx, tradeIndexes); err != nil {
		return err
	}

	// politicians: unique bioguide id, lookup by name
	{
		if _, err := d.Collection("politicians").Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "bioguide_id", Value: 1}}, Options: options.Index().SetName("uniq_bioguide_id").SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("idx_name")},
		}); err != nil {
			return err
		}
	}
	return nil
}
