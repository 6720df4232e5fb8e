package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artisticdb/internal/db"
	"artisticdb/internal/errors"
	"artisticdb/internal/model"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (model.InsertResult, error)
	ListByUser(ctx context.Context, email string) ([]model.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error)
}

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(d *mongo.Database) PaymentRepository {
	return &paymentRepository{coll: d.Collection(db.PaymentsCollection)}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if mongo.IsDuplicateKeyError(err) {
		return model.InsertResult{}, errors.ErrDuplicatePayment
	}
	if err != nil {
		return model.InsertResult{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return insertResult(res), nil
}

// ListByUser returns a user's payments, newest first.
func (r *paymentRepository) ListByUser(ctx context.Context, email string) ([]model.Payment, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_email": email},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	payments := []model.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByTransactionID finds a payment by provider transaction id.
func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.coll.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
