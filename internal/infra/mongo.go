package infra

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongo connects to the document store and validates connectivity at
// startup. The returned database owns the "categorias" and "productos"
// collections; no schema management is needed beyond the unique index on
// category names, which guards the name-as-join-key invariant.
func NewMongo(url, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(dbName)

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "nombre", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("categorias").Indexes().CreateOne(ctx, idx); err != nil {
		return nil, err
	}

	return db, nil
}
