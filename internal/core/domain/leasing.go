package domain

import (
	"fmt"
	"math"
)

// swagger:model domain.LeasingQuote
type LeasingQuote struct {
	CarID           int64   `json:"carId"`
	CarBrand        string  `json:"carBrand"`
	CarModel        string  `json:"carModel"`
	TotalPrice      float64 `json:"totalPrice"`
	DownPayment     float64 `json:"downPayment"`
	RemainingAmount string  `json:"remainingAmount"`
	Months          int     `json:"months"`
	MonthlyRate     string  `json:"monthlyRate"`
}

// CalculateLeasing splits what is left of the car price after the down payment
// into equal monthly rates. Amounts are computed in cents and rendered with two decimals.
func CalculateLeasing(car *Car, downPayment float64, months int) (*LeasingQuote, error) {
	if months < 1 {
		return nil, NewValidationError("months must be at least 1")
	}
	if downPayment < 0 || math.IsNaN(downPayment) || math.IsInf(downPayment, 0) {
		return nil, NewValidationError("downPayment must be a non-negative amount")
	}

	priceCents := math.Round(car.Price * 100)
	downCents := math.Round(downPayment * 100)
	remainingCents := priceCents - downCents
	if remainingCents < 0 {
		return nil, NewValidationError("downPayment exceeds the car price")
	}
	rateCents := math.Round(remainingCents / float64(months))

	return &LeasingQuote{
		CarID:           car.ID,
		CarBrand:        car.Brand,
		CarModel:        car.Model,
		TotalPrice:      car.Price,
		DownPayment:     downPayment,
		RemainingAmount: formatCents(remainingCents),
		Months:          months,
		MonthlyRate:     formatCents(rateCents),
	}, nil
}

func formatCents(cents float64) string {
	return fmt.Sprintf("%.2f", cents/100)
}
