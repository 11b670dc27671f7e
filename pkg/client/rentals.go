package client

import (
	"context"
	"net/http"

	"github.com/go-openapi/swag"
)

type RentalService struct {
	client  *Client
	rentals *Holder[[]Rental]
}

func NewRentalService(c *Client) *RentalService {
	return &RentalService{
		client:  c,
		rentals: NewHolder[[]Rental](nil),
	}
}

func (s *RentalService) Rentals() []Rental {
	return s.rentals.Get()
}

func (s *RentalService) Subscribe() (<-chan []Rental, func()) {
	return s.rentals.Subscribe()
}

// List loads the rental windows, of one car when carID is set.
func (s *RentalService) List(ctx context.Context, carID *int64) ([]Rental, error) {
	op := operation{
		id:     "listRentals",
		method: http.MethodGet,
		path:   "/rentals",
	}
	if carID != nil {
		op.query = map[string]string{"carId": swag.FormatInt64(*carID)}
	}

	var rentals []Rental
	if err := s.client.submit(ctx, op, &rentals); err != nil {
		return nil, err
	}

	s.rentals.Set(rentals)
	return rentals, nil
}

func (s *RentalService) Add(ctx context.Context, input RentalInput) (*Rental, error) {
	if err := input.Validate(s.client.formats); err != nil {
		return nil, err
	}

	var rental Rental
	if err := s.client.submit(ctx, operation{
		id:     "addRental",
		method: http.MethodPost,
		path:   "/rentals",
		body:   input,
	}, &rental); err != nil {
		return nil, err
	}

	s.rentals.Update(func(rentals []Rental) []Rental {
		next := make([]Rental, 0, len(rentals)+1)
		next = append(next, rentals...)
		return append(next, rental)
	})
	return &rental, nil
}

func (s *RentalService) Remove(ctx context.Context, rentalID int64) error {
	if err := s.client.submit(ctx, operation{
		id:         "removeRental",
		method:     http.MethodDelete,
		path:       "/rentals/{id}",
		pathParams: map[string]string{"id": swag.FormatInt64(rentalID)},
	}, nil); err != nil {
		return err
	}

	s.rentals.Update(func(rentals []Rental) []Rental {
		next := make([]Rental, 0, len(rentals))
		for _, r := range rentals {
			if r.ID != rentalID {
				next = append(next, r)
			}
		}
		return next
	})
	return nil
}
