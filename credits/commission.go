package credits

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Earnings is the creator's share of a sale: price * (1 - commission),
// computed without floating point rounding.
func Earnings(price int64, commission decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(price).Mul(one.Sub(commission))
}

func ValidateCommission(c decimal.Decimal) error {
	if c.IsNegative() || c.GreaterThan(one) {
		return ErrInvalidCommission
	}
	return nil
}
