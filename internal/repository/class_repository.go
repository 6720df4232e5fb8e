package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"artisticdb/internal/db"
	"artisticdb/internal/model"
)

// ClassRepository defines class persistence operations.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) (model.InsertResult, error)
	List(ctx context.Context) ([]model.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]model.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Class, error)
	FindByName(ctx context.Context, name string) (*model.Class, error)
	ReserveSeat(ctx context.Context, name string) (model.UpdateResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ClassStatus) (model.UpdateResult, error)
	UpdateFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (model.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error)
}

type classRepository struct {
	coll *mongo.Collection
}

// NewClassRepository creates a new class repository.
func NewClassRepository(d *mongo.Database) ClassRepository {
	return &classRepository{coll: d.Collection(db.ClassesCollection)}
}

// Create inserts a new class.
func (r *classRepository) Create(ctx context.Context, class *model.Class) (model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, class)
	if err != nil {
		return model.InsertResult{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		class.ID = oid
	}
	return insertResult(res), nil
}

// List returns every class.
func (r *classRepository) List(ctx context.Context) ([]model.Class, error) {
	return r.find(ctx, bson.M{})
}

// ListByInstructor returns the classes owned by an instructor.
func (r *classRepository) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return r.find(ctx, bson.M{"instructor_email": email})
}

// FindByID finds a class by id.
func (r *classRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Class, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByName finds a class by its unique name.
func (r *classRepository) FindByName(ctx context.Context, name string) (*model.Class, error) {
	return r.findOne(ctx, bson.M{"class_name": name})
}

// ReserveSeat moves one seat from available to enrolled, but only while a
// seat is left. The precondition and both counters travel in a single
// update, so concurrent enrollments cannot drive available_seats below zero.
// Counters stored as strings are coerced inside the update and written back
// as integers. A zero MatchedCount means the class is missing or full.
func (r *classRepository) ReserveSeat(ctx context.Context, name string) (model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, reserveSeatFilter(name), reserveSeatUpdate())
	if err != nil {
		return model.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func reserveSeatFilter(name string) bson.M {
	return bson.M{
		"class_name": name,
		"$expr":      bson.M{"$gt": bson.A{storedInt("$available_seats"), 0}},
	}
}

func reserveSeatUpdate() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "available_seats", Value: bson.M{"$subtract": bson.A{storedInt("$available_seats"), 1}}},
			{Key: "enrolled_students", Value: bson.M{"$add": bson.A{storedInt("$enrolled_students"), 1}}},
		}}},
	}
}

// storedInt reads a counter that may be stored as a number or a numeric
// string. Missing or unparseable values count as zero.
func storedInt(field string) bson.M {
	return bson.M{"$toInt": bson.M{"$convert": bson.M{
		"input":   field,
		"to":      "double",
		"onError": 0,
		"onNull":  0,
	}}}
}

// UpdateStatus sets the moderation status of a class.
func (r *classRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ClassStatus) (model.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"status": status})
}

// UpdateFeedback sets the admin feedback on a class.
func (r *classRepository) UpdateFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (model.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"feedback": feedback})
}

// Delete removes a class.
func (r *classRepository) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return model.DeleteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *classRepository) set(ctx context.Context, id primitive.ObjectID, fields bson.M) (model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return model.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *classRepository) findOne(ctx context.Context, filter bson.M) (*model.Class, error) {
	var class model.Class
	if err := r.coll.FindOne(ctx, filter).Decode(&class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) find(ctx context.Context, filter bson.M) ([]model.Class, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	classes := []model.Class{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}
