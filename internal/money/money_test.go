package money_test

import (
	"testing"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"Whole amount", "1000", 100000},
		{"Cents", "12.34", 1234},
		{"Half cent rounds away from zero", "0.005", 1},
		{"Sub cent rounds down", "10.004", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.ToMinorUnits(d(tt.amount)))
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.True(t, d("12.34").Equal(money.FromMinorUnits(1234)))
}

func TestPercentOf(t *testing.T) {
	assert.True(t, d("300").Equal(money.PercentOf(d("1000"), d("30"))))
	assert.True(t, d("33.33").Equal(money.PercentOf(d("99.99"), d("33.333"))))
}

func TestRatio(t *testing.T) {
	assert.True(t, d("70").Equal(money.Ratio(d("700"), d("1000"))))
	assert.True(t, d("33.33").Equal(money.Ratio(d("1"), d("3"))))
	assert.True(t, decimal.Zero.Equal(money.Ratio(d("5"), decimal.Zero)))
}

func TestClampZero(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(money.ClampZero(d("-0.01"))))
	assert.True(t, d("0.01").Equal(money.ClampZero(d("0.01"))))
}
