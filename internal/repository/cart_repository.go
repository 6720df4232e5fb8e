package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artisticdb/internal/db"
	"artisticdb/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) (model.InsertResult, error)
	ListByUser(ctx context.Context, email string) ([]model.CartItem, error)
	DeleteByUserAndClass(ctx context.Context, email, className string) (model.DeleteResult, error)
}

type cartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(d *mongo.Database) CartRepository {
	return &cartRepository{coll: d.Collection(db.CartsCollection)}
}

// Create stores a cart snapshot.
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) (model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return model.InsertResult{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return insertResult(res), nil
}

// ListByUser returns a user's cart, oldest first.
func (r *cartRepository) ListByUser(ctx context.Context, email string) ([]model.CartItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_email": email},
		options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := []model.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByUserAndClass removes one cart entry for a class.
func (r *cartRepository) DeleteByUserAndClass(ctx context.Context, email, className string) (model.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_email": email, "class_name": className})
	if err != nil {
		return model.DeleteResult{}, err
	}
	return deleteResult(res), nil
}
