package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
)

// ParseID converts a hex document id from a request path.
func ParseID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errors.ErrInvalidID, hex)
	}
	return oid, nil
}

func oidHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func insertResult(res *mongo.InsertOneResult) model.InsertResult {
	return model.InsertResult{Acknowledged: true, InsertedID: oidHex(res.InsertedID)}
}

func updateResult(res *mongo.UpdateResult) model.UpdateResult {
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    oidHex(res.UpsertedID),
	}
}

func deleteResult(res *mongo.DeleteResult) model.DeleteResult {
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
