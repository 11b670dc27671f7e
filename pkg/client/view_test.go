package client

import (
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
)

func ids(cars []Car) []int64 {
	out := make([]int64, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}

func TestViewHelpers(t *testing.T) {
	cars := []Car{
		{ID: 1, Brand: "Toyota", Price: 20000, HorsePower: swag.Int(132)},
		{ID: 2, Brand: "Audi", Price: 15000},
		{ID: 3, Brand: "toyota", Price: 30000, HorsePower: swag.Int(90)},
	}

	assert.Equal(t, []int64{1, 3}, ids(FilterByBrand(cars, " TOYO ")))
	assert.Equal(t, []int64{1, 2, 3}, ids(FilterByBrand(cars, "")))

	assert.Equal(t, []int64{2, 1, 3}, ids(SortByPrice(cars, Ascending)))
	assert.Equal(t, []int64{3, 1, 2}, ids(SortByPrice(cars, Descending)))
	assert.Equal(t, []int64{2, 3, 1}, ids(SortByHorsePower(cars, Ascending)))

	assert.Equal(t, int64(1), cars[0].ID)
}

func TestCarQueryParams(t *testing.T) {
	assert.Empty(t, CarQuery{}.params())

	params := CarQuery{
		Brand: "Toyota", Year: swag.Int(2021), MaxPrice: swag.Float64(25000.5),
		Available: swag.Bool(true), SalonID: swag.Int64(3), Page: 2, Limit: 10,
	}.params()
	assert.Equal(t, map[string]string{
		"brand": "Toyota", "year": "2021", "maxPrice": "25000.5",
		"available": "true", "salonId": "3", "page": "2", "limit": "10",
	}, params)
}
