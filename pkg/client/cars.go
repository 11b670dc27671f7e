package client

import (
	"context"
	"net/http"

	"github.com/go-openapi/swag"
)

// CarQuery mirrors the filters of GET /cars. Zero values are not sent.
type CarQuery struct {
	Brand     string
	Year      *int
	MinPrice  *float64
	MaxPrice  *float64
	Available *bool
	SalonID   *int64
	Page      int
	Limit     int
}

func (q CarQuery) params() map[string]string {
	params := make(map[string]string)
	if q.Brand != "" {
		params["brand"] = q.Brand
	}
	if q.Year != nil {
		params["year"] = swag.FormatInt64(int64(*q.Year))
	}
	if q.MinPrice != nil {
		params["minPrice"] = swag.FormatFloat64(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		params["maxPrice"] = swag.FormatFloat64(*q.MaxPrice)
	}
	if q.Available != nil {
		params["available"] = swag.FormatBool(*q.Available)
	}
	if q.SalonID != nil {
		params["salonId"] = swag.FormatInt64(*q.SalonID)
	}
	if q.Page > 0 {
		params["page"] = swag.FormatInt64(int64(q.Page))
	}
	if q.Limit > 0 {
		params["limit"] = swag.FormatInt64(int64(q.Limit))
	}
	return params
}

// CarService keeps the catalog snapshot. Every mutation publishes a new slice;
// a published slice is never modified.
type CarService struct {
	client *Client
	cars   *Holder[[]Car]
}

func NewCarService(c *Client) *CarService {
	return &CarService{
		client: c,
		cars:   NewHolder[[]Car](nil),
	}
}

func (s *CarService) Cars() []Car {
	return s.cars.Get()
}

func (s *CarService) Subscribe() (<-chan []Car, func()) {
	return s.cars.Subscribe()
}

func (s *CarService) Load(ctx context.Context, query CarQuery) ([]Car, error) {
	var cars []Car
	if err := s.client.submit(ctx, operation{
		id:     "listCars",
		method: http.MethodGet,
		path:   "/cars",
		query:  query.params(),
	}, &cars); err != nil {
		return nil, err
	}

	s.cars.Set(cars)
	return cars, nil
}

func (s *CarService) Add(ctx context.Context, input CarInput) (*Car, error) {
	if err := input.Validate(s.client.formats); err != nil {
		return nil, err
	}

	var car Car
	if err := s.client.submit(ctx, operation{
		id:     "createCar",
		method: http.MethodPost,
		path:   "/cars",
		body:   input,
	}, &car); err != nil {
		return nil, err
	}

	s.cars.Update(func(cars []Car) []Car {
		next := make([]Car, 0, len(cars)+1)
		next = append(next, cars...)
		return append(next, car)
	})
	return &car, nil
}

func (s *CarService) Update(ctx context.Context, carID int64, patch CarPatch) (*Car, error) {
	var car Car
	if err := s.client.submit(ctx, operation{
		id:         "updateCar",
		method:     http.MethodPut,
		path:       "/cars/{id}",
		pathParams: carPath(carID),
		body:       patch,
	}, &car); err != nil {
		return nil, err
	}

	s.replace(car)
	return &car, nil
}

func (s *CarService) Delete(ctx context.Context, carID int64) error {
	if err := s.client.submit(ctx, operation{
		id:         "deleteCar",
		method:     http.MethodDelete,
		path:       "/cars/{id}",
		pathParams: carPath(carID),
	}, nil); err != nil {
		return err
	}

	s.cars.Update(func(cars []Car) []Car {
		next := make([]Car, 0, len(cars))
		for _, c := range cars {
			if c.ID != carID {
				next = append(next, c)
			}
		}
		return next
	})
	return nil
}

func (s *CarService) Rent(ctx context.Context, carID int64) (*Car, error) {
	return s.action(ctx, "rentCar", "/cars/{id}/rent", carID)
}

func (s *CarService) Return(ctx context.Context, carID int64) (*Car, error) {
	return s.action(ctx, "returnCar", "/cars/{id}/return", carID)
}

func (s *CarService) Buy(ctx context.Context, carID int64) (*Car, error) {
	return s.action(ctx, "buyCar", "/cars/{id}/buy", carID)
}

// action runs a lifecycle call, then re-reads the car and patches it into the snapshot.
func (s *CarService) action(ctx context.Context, id, path string, carID int64) (*Car, error) {
	if err := s.client.submit(ctx, operation{
		id:         id,
		method:     http.MethodPost,
		path:       path,
		pathParams: carPath(carID),
	}, nil); err != nil {
		return nil, err
	}

	var car Car
	if err := s.client.submit(ctx, operation{
		id:         "getCar",
		method:     http.MethodGet,
		path:       "/cars/{id}",
		pathParams: carPath(carID),
	}, &car); err != nil {
		return nil, err
	}

	s.replace(car)
	return &car, nil
}

func (s *CarService) Renter(ctx context.Context, carID int64) (*Renter, error) {
	var renter Renter
	if err := s.client.submit(ctx, operation{
		id:         "carRenter",
		method:     http.MethodGet,
		path:       "/cars/{id}/renter",
		pathParams: carPath(carID),
	}, &renter); err != nil {
		return nil, err
	}
	return &renter, nil
}

// Lease fetches a quote. The catalog snapshot is left as is.
func (s *CarService) Lease(ctx context.Context, carID int64, downPayment float64, months int) (*LeasingQuote, error) {
	var quote LeasingQuote
	if err := s.client.submit(ctx, operation{
		id:         "leasingQuote",
		method:     http.MethodPost,
		path:       "/cars/{id}/leasing",
		pathParams: carPath(carID),
		body:       leasingRequest{DownPayment: downPayment, Months: months},
	}, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *CarService) replace(car Car) {
	s.cars.Update(func(cars []Car) []Car {
		next := make([]Car, len(cars))
		for i, c := range cars {
			if c.ID == car.ID {
				c = car
			}
			next[i] = c
		}
		return next
	})
}

func carPath(carID int64) map[string]string {
	return map[string]string{"id": swag.FormatInt64(carID)}
}
