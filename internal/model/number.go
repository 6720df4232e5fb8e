package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Count is a non-fractional counter such as a seat total. Older class
// documents store counters as strings, so decoding accepts any BSON number
// or numeric string and truncates fractions.
type Count int

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (n *Count) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	f, err := decodeNumber(t, data)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	*n = Count(math.Trunc(f))
	return nil
}

// Price is an amount in major currency units. Like Count it decodes from
// numbers and numeric strings.
type Price float64

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	f, err := decodeNumber(t, data)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(f)
	return nil
}

func decodeNumber(t bsontype.Type, data []byte) (float64, error) {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		return 0, nil
	case bsontype.Int32:
		return float64(raw.Int32()), nil
	case bsontype.Int64:
		return float64(raw.Int64()), nil
	case bsontype.Double:
		return checkFinite(raw.Double())
	case bsontype.Decimal128:
		return parseNumber(raw.Decimal128().String())
	case bsontype.String:
		return parseNumber(raw.StringValue())
	default:
		return 0, fmt.Errorf("cannot decode %s as a number", t)
	}
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot decode %q as a number", s)
	}
	return checkFinite(f)
}

func checkFinite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite number %v", f)
	}
	return f, nil
}
