package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLeasing(t *testing.T) {
	car := &Car{ID: 7, Brand: "Toyota", Model: "Corolla", Price: 20000}

	quote, err := CalculateLeasing(car, 5000, 12)
	require.NoError(t, err)

	assert.Equal(t, int64(7), quote.CarID)
	assert.Equal(t, "Toyota", quote.CarBrand)
	assert.Equal(t, "Corolla", quote.CarModel)
	assert.Equal(t, 20000.0, quote.TotalPrice)
	assert.Equal(t, 5000.0, quote.DownPayment)
	assert.Equal(t, "15000.00", quote.RemainingAmount)
	assert.Equal(t, 12, quote.Months)
	assert.Equal(t, "1250.00", quote.MonthlyRate)
}

func TestCalculateLeasingRounding(t *testing.T) {
	car := &Car{Price: 1000}

	quote, err := CalculateLeasing(car, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", quote.RemainingAmount)
	assert.Equal(t, "333.33", quote.MonthlyRate)

	quote, err = CalculateLeasing(&Car{Price: 19999.99}, 0.01, 1)
	require.NoError(t, err)
	assert.Equal(t, "19999.98", quote.RemainingAmount)
	assert.Equal(t, "19999.98", quote.MonthlyRate)
}

func TestCalculateLeasingFullDownPayment(t *testing.T) {
	quote, err := CalculateLeasing(&Car{Price: 20000}, 20000, 6)
	require.NoError(t, err)
	assert.Equal(t, "0.00", quote.RemainingAmount)
	assert.Equal(t, "0.00", quote.MonthlyRate)
}

func TestCalculateLeasingRejects(t *testing.T) {
	car := &Car{Price: 20000}

	tests := []struct {
		name        string
		downPayment float64
		months      int
	}{
		{"down payment above price", 25000, 12},
		{"negative down payment", -1, 12},
		{"zero months", 5000, 0},
		{"negative months", 5000, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := CalculateLeasing(car, tt.downPayment, tt.months)
			assert.Nil(t, quote)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
