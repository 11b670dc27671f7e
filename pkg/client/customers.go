package client

import (
	"context"
	"net/http"
)

// CustomerService lists customers and lets a dealer open accounts for them.
type CustomerService struct {
	client    *Client
	customers *Holder[[]User]
}

func NewCustomerService(c *Client) *CustomerService {
	return &CustomerService{
		client:    c,
		customers: NewHolder[[]User](nil),
	}
}

func (s *CustomerService) Customers() []User {
	return s.customers.Get()
}

func (s *CustomerService) Subscribe() (<-chan []User, func()) {
	return s.customers.Subscribe()
}

func (s *CustomerService) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.client.submit(ctx, operation{
		id:     "listUsers",
		method: http.MethodGet,
		path:   "/users",
	}, &users); err != nil {
		return nil, err
	}

	s.customers.Set(users)
	return users, nil
}

// Add creates a customer account without touching the session of the caller.
func (s *CustomerService) Add(ctx context.Context, reg Registration) (*User, error) {
	if err := reg.Validate(s.client.formats); err != nil {
		return nil, err
	}

	var resp userEnvelope
	if err := s.client.submit(ctx, operation{
		id:     "createCustomer",
		method: http.MethodPost,
		path:   "/admin/create-customer",
		body:   reg,
	}, &resp); err != nil {
		return nil, err
	}

	user := *resp.User
	s.customers.Update(func(users []User) []User {
		next := make([]User, 0, len(users)+1)
		next = append(next, users...)
		return append(next, user)
	})
	return &user, nil
}
