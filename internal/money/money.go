// Package money holds the fixed-point helpers shared by the purchase paths.
// All amounts are major currency units rounded to two places; the payment
// gateway boundary converts to integer minor units.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ToMinorUnits converts a major-unit amount into integer cents, rounding half away from zero.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// PercentOf returns round(total × percent / 100, 2).
func PercentOf(total, percent decimal.Decimal) decimal.Decimal {
	return Round2(total.Mul(percent).Div(hundred))
}

// Ratio returns round(part / whole × 100, 2); zero when whole is zero.
func Ratio(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return Round2(part.Div(whole).Mul(hundred))
}

// ClampZero maps negative residue to zero.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
