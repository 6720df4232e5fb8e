package payment

import (
	"github.com/shopspring/decimal"

	"artisticdb/internal/errors"
)

// MaxAmount is the largest charge, in minor units, the provider accepts.
const MaxAmount int64 = 99999999

var (
	hundred   = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(MaxAmount)
)

// ToMinorUnits converts a price in major units (dollars) to minor units
// (cents), rounding half away from zero. Anything that rounds to zero or
// below, or above MaxAmount, is ErrInvalidPrice.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	minor := price.Mul(hundred).Round(0)
	if !minor.IsPositive() || minor.GreaterThan(maxAmount) {
		return 0, errors.ErrInvalidPrice
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts minor units back to a major-unit amount.
func FromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
