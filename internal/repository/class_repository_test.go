package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestReserveSeatFilter(t *testing.T) {
	filter := reserveSeatFilter("Pottery")

	assert.Equal(t, "Pottery", filter["class_name"])
	assert.NotContains(t, filter, "available_seats")

	expr, ok := filter["$expr"].(bson.M)
	require.True(t, ok)
	gt, ok := expr["$gt"].(bson.A)
	require.True(t, ok)
	require.Len(t, gt, 2)
	assert.Equal(t, storedInt("$available_seats"), gt[0])
	assert.Equal(t, 0, gt[1])
}

func TestReserveSeatUpdate(t *testing.T) {
	update := reserveSeatUpdate()
	require.Len(t, update, 1)
	require.Equal(t, "$set", update[0][0].Key)

	set, ok := update[0][0].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, set, 2)

	assert.Equal(t, "available_seats", set[0].Key)
	assert.Equal(t, bson.M{"$subtract": bson.A{storedInt("$available_seats"), 1}}, set[0].Value)
	assert.Equal(t, "enrolled_students", set[1].Key)
	assert.Equal(t, bson.M{"$add": bson.A{storedInt("$enrolled_students"), 1}}, set[1].Value)
}

func TestStoredInt_CoercesStrings(t *testing.T) {
	conv := storedInt("$available_seats")["$toInt"].(bson.M)["$convert"].(bson.M)

	assert.Equal(t, "$available_seats", conv["input"])
	assert.Equal(t, "double", conv["to"])
	assert.Equal(t, 0, conv["onError"])
	assert.Equal(t, 0, conv["onNull"])
}

func TestReserveSeatUpdate_Marshals(t *testing.T) {
	_, err := bson.Marshal(reserveSeatFilter("Pottery"))
	require.NoError(t, err)
	for _, stage := range reserveSeatUpdate() {
		_, err := bson.Marshal(stage)
		require.NoError(t, err)
	}
}
