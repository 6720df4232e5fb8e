package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClass_DecodesLegacyCounters(t *testing.T) {
	dec128, err := primitive.ParseDecimal128("65.50")
	require.NoError(t, err)

	tests := []struct {
		name      string
		doc       bson.M
		wantSeats Count
		wantEnrol Count
		wantPrice Price
	}{
		{
			name:      "string counters",
			doc:       bson.M{"class_name": "Pottery", "available_seats": "5", "enrolled_students": "10", "price": "40"},
			wantSeats: 5, wantEnrol: 10, wantPrice: 40,
		},
		{
			name:      "native numbers",
			doc:       bson.M{"class_name": "Pottery", "available_seats": int32(5), "enrolled_students": int64(10), "price": 19.99},
			wantSeats: 5, wantEnrol: 10, wantPrice: 19.99,
		},
		{
			name:      "fractional and padded strings",
			doc:       bson.M{"class_name": "Pottery", "available_seats": " 5.7 ", "enrolled_students": 10.2, "price": dec128},
			wantSeats: 5, wantEnrol: 10, wantPrice: 65.5,
		},
		{
			name:      "missing and empty",
			doc:       bson.M{"class_name": "Pottery", "available_seats": "", "price": nil},
			wantSeats: 0, wantEnrol: 0, wantPrice: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(tt.doc)
			require.NoError(t, err)

			var class Class
			require.NoError(t, bson.Unmarshal(raw, &class))
			assert.Equal(t, "Pottery", class.Name)
			assert.Equal(t, tt.wantSeats, class.AvailableSeats)
			assert.Equal(t, tt.wantEnrol, class.EnrolledStudents)
			assert.InDelta(t, float64(tt.wantPrice), float64(class.Price), 1e-9)
		})
	}
}

func TestClass_RejectsNonNumericCounters(t *testing.T) {
	for _, v := range []interface{}{"lots", true, bson.A{1}} {
		raw, err := bson.Marshal(bson.M{"class_name": "Pottery", "available_seats": v})
		require.NoError(t, err)

		var class Class
		assert.Error(t, bson.Unmarshal(raw, &class))
	}
}

func TestCartItem_DecodesLegacyCounters(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"class_name": "Pottery", "available_seats": "3", "price": "12.5", "user_email": "stu@x.com"})
	require.NoError(t, err)

	var item CartItem
	require.NoError(t, bson.Unmarshal(raw, &item))
	assert.Equal(t, Count(3), item.AvailableSeats)
	assert.Equal(t, Price(12.5), item.Price)
}

func TestClass_EncodesNumbers(t *testing.T) {
	raw, err := bson.Marshal(Class{ClassDetails: ClassDetails{Name: "Pottery", AvailableSeats: 4, Price: 40}})
	require.NoError(t, err)

	seats := bson.Raw(raw).Lookup("available_seats")
	_, isInt32 := seats.Int32OK()
	_, isInt64 := seats.Int64OK()
	assert.True(t, isInt32 || isInt64)

	price, ok := bson.Raw(raw).Lookup("price").DoubleOK()
	require.True(t, ok)
	assert.Equal(t, 40.0, price)
}
