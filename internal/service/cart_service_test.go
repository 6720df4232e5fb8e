package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
)

func TestCartService_Add_Snapshot(t *testing.T) {
	classes := new(MockClassRepository)
	carts := new(MockCartRepository)
	svc := NewCartService(classes, carts)

	id := primitive.NewObjectID()
	class := &model.Class{ID: id, ClassDetails: model.ClassDetails{
		Name:            "Watercolor",
		InstructorEmail: "ins@example.com",
		AvailableSeats:  3,
		Price:           40,
		Status:          model.ClassStatusApproved,
	}}
	classes.On("FindByID", mock.Anything, id).Return(class, nil)

	var stored *model.CartItem
	carts.On("Create", mock.Anything, mock.AnythingOfType("*model.CartItem")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.CartItem) }).
		Return(model.InsertResult{Acknowledged: true, InsertedID: "64c1"}, nil)

	res, err := svc.Add(context.Background(), id.Hex(), "Stu@Example.com")
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	require.NotNil(t, stored)
	assert.True(t, stored.ID.IsZero())
	assert.Equal(t, "stu@example.com", stored.UserEmail)
	assert.Equal(t, "Watercolor", stored.Name)

	// Later edits to the class do not reach the cart copy.
	class.Price = 99
	assert.Equal(t, model.Price(40), stored.Price)
}

func TestCartService_Add_Errors(t *testing.T) {
	classes := new(MockClassRepository)
	carts := new(MockCartRepository)
	svc := NewCartService(classes, carts)

	_, err := svc.Add(context.Background(), "bad", "stu@example.com")
	assert.ErrorIs(t, err, errors.ErrInvalidID)

	id := primitive.NewObjectID()
	classes.On("FindByID", mock.Anything, id).Return(nil, mongo.ErrNoDocuments)

	_, err = svc.Add(context.Background(), id.Hex(), "stu@example.com")
	assert.ErrorIs(t, err, errors.ErrClassNotFound)
	carts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCartService_ListAndRemove(t *testing.T) {
	carts := new(MockCartRepository)
	svc := NewCartService(new(MockClassRepository), carts)

	carts.On("ListByUser", mock.Anything, "stu@example.com").
		Return([]model.CartItem{{UserEmail: "stu@example.com"}}, nil)
	carts.On("DeleteByUserAndClass", mock.Anything, "stu@example.com", "Watercolor").
		Return(model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	items, err := svc.List(context.Background(), "STU@example.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	res, err := svc.Remove(context.Background(), "stu@example.com", "Watercolor")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}
