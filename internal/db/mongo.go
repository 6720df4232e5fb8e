package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"artisticdb/internal/model"
)

// Collection names.
const (
	UsersCollection    = "usersCollections"
	ClassesCollection  = "classesCollection"
	CartsCollection    = "cartCollection"
	PaymentsCollection = "paymentsCollection"
)

// NewMongo connects to MongoDB using the Stable API and verifies the
// deployment answers a ping.
func NewMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index is what makes registration idempotent under concurrency.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	if _, err := d.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	if _, err := d.Collection(ClassesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "class_name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "instructor_email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("classes indexes: %w", err)
	}

	if _, err := d.Collection(CartsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "class_name", Value: 1}},
	}); err != nil {
		return fmt.Errorf("carts indexes: %w", err)
	}

	if _, err := d.Collection(PaymentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "date", Value: -1}}},
		{
			Keys: bson.D{{Key: "transaction_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"transaction_id": bson.M{"$type": "string"},
			}),
		},
	}); err != nil {
		return fmt.Errorf("payments indexes: %w", err)
	}

	return nil
}

// SeedAdmin upserts email as an admin user.
func SeedAdmin(ctx context.Context, d *mongo.Database, email, name string) error {
	email = model.NormalizeEmail(email)
	if email == "" {
		return nil
	}
	_, err := d.Collection(UsersCollection).UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{
			"$set":         bson.M{"role": model.RoleAdmin},
			"$setOnInsert": bson.M{"name": name, "created_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
