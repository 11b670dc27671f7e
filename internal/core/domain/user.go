package domain

import (
	"strings"
	"time"
)

// swagger:model domain.User
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	IsDealer     bool      `json:"isDealer"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Registration is the input of self-registration and of dealer-issued accounts.
type Registration struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

func (r *Registration) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

type UserPatch struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
}

// Normalize trims the set profile fields. The password is left as given.
func (p *UserPatch) Normalize() {
	trimPtr(p.Username)
	trimPtr(p.FirstName)
	trimPtr(p.LastName)
}

func (p *UserPatch) Empty() bool {
	return p.Username == nil && p.Password == nil && p.FirstName == nil && p.LastName == nil
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   int64
	IsDealer bool
}

// CanManage reports whether the principal may edit or delete the user with the given id.
func (p Principal) CanManage(userID int64) bool {
	return p.IsDealer || p.UserID == userID
}

func PrincipalOf(u *User) Principal {
	return Principal{UserID: u.ID, IsDealer: u.IsDealer}
}
