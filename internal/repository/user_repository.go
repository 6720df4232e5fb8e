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

// UserRepository defines persistence operations.
type UserRepository interface {
	CreateIfAbsent(ctx context.Context, user *model.User) (model.UpdateResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role model.Role) (model.UpdateResult, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a MongoDB-backed repository.
func NewUserRepository(d *mongo.Database) UserRepository {
	return &userRepository{coll: d.Collection(db.UsersCollection)}
}

// CreateIfAbsent inserts user unless a user with the same email exists. It is
// a single upsert, so concurrent registrations of one email create one
// document; UpsertedCount tells the caller whether anything was written.
func (r *userRepository) CreateIfAbsent(ctx context.Context, user *model.User) (model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": bson.M{
			"name":       user.Name,
			"photo":      user.Photo,
			"role":       user.Role,
			"created_at": user.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race against a concurrent upsert for the same email.
		return model.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}
	if err != nil {
		return model.UpdateResult{}, err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return updateResult(res), nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role model.Role) (model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return model.UpdateResult{}, err
	}
	return updateResult(res), nil
}
