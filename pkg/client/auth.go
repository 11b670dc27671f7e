package client

import (
	"context"
	"net/http"
)

// AuthenticationService owns the session of the client and the user behind it.
type AuthenticationService struct {
	client  *Client
	current *Holder[*User]
}

func NewAuthenticationService(c *Client) *AuthenticationService {
	return &AuthenticationService{
		client:  c,
		current: NewHolder[*User](nil),
	}
}

func (s *AuthenticationService) CurrentUser() *User {
	return s.current.Get()
}

func (s *AuthenticationService) IsDealer() bool {
	u := s.current.Get()
	return u != nil && u.IsDealer
}

func (s *AuthenticationService) Subscribe() (<-chan *User, func()) {
	return s.current.Subscribe()
}

func (s *AuthenticationService) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := reg.Validate(s.client.formats); err != nil {
		return nil, err
	}

	var resp userEnvelope
	if err := s.client.submit(ctx, operation{
		id:     "register",
		method: http.MethodPost,
		path:   "/register",
		body:   reg,
	}, &resp); err != nil {
		return nil, err
	}

	s.current.Set(resp.User)
	return resp.User, nil
}

func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*User, error) {
	var resp userEnvelope
	if err := s.client.submit(ctx, operation{
		id:     "login",
		method: http.MethodPost,
		path:   "/login",
		body: map[string]string{
			"username": username,
			"password": password,
		},
	}, &resp); err != nil {
		return nil, err
	}

	s.current.Set(resp.User)
	return resp.User, nil
}

// Logout forgets the current user even when the server call fails.
func (s *AuthenticationService) Logout(ctx context.Context) error {
	defer s.current.Set(nil)
	return s.client.submit(ctx, operation{
		id:     "logout",
		method: http.MethodPost,
		path:   "/logout",
	}, nil)
}

// CheckCurrentUser asks the server who owns the session. A missing session
// is not an error and yields a nil user.
func (s *AuthenticationService) CheckCurrentUser(ctx context.Context) (*User, error) {
	var resp userEnvelope
	err := s.client.submit(ctx, operation{
		id:     "currentUser",
		method: http.MethodGet,
		path:   "/current-user",
	}, &resp)
	if err != nil {
		if StatusOf(err) == http.StatusUnauthorized {
			s.current.Set(nil)
			return nil, nil
		}
		return nil, err
	}

	s.current.Set(resp.User)
	return resp.User, nil
}
