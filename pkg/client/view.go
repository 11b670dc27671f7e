package client

import (
	"sort"
	"strings"

	"github.com/go-openapi/swag"
)

type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// FilterByBrand keeps the cars whose brand contains brand, ignoring case.
// An empty brand keeps every car.
func FilterByBrand(cars []Car, brand string) []Car {
	brand = strings.ToLower(strings.TrimSpace(brand))
	out := make([]Car, 0, len(cars))
	for _, c := range cars {
		if brand == "" || strings.Contains(strings.ToLower(c.Brand), brand) {
			out = append(out, c)
		}
	}
	return out
}

func SortByPrice(cars []Car, order SortOrder) []Car {
	return sortedBy(cars, order, func(c Car) float64 { return c.Price })
}

// SortByHorsePower orders cars with an unknown horse power as 0.
func SortByHorsePower(cars []Car, order SortOrder) []Car {
	return sortedBy(cars, order, func(c Car) float64 { return float64(swag.IntValue(c.HorsePower)) })
}

func sortedBy(cars []Car, order SortOrder, key func(Car) float64) []Car {
	out := make([]Car, len(cars))
	copy(out, cars)
	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}
