package domain

import (
	"strings"
	"time"
)

// swagger:model domain.Car
type Car struct {
	ID                 int64     `json:"id"`
	Brand              string    `json:"brand" validate:"required,max=100"`
	Model              string    `json:"model" validate:"required,max=100"`
	Year               int       `json:"year" validate:"required,min=1886"`
	VIN                string    `json:"vin" validate:"required,min=11,max=17,alphanum"`
	Price              float64   `json:"price" validate:"min=0,max=99999999.99"`
	HorsePower         *int      `json:"horsePower" validate:"omitempty,min=0,max=5000"`
	IsAvailableForRent bool      `json:"isAvailableForRent"`
	OwnerID            *int64    `json:"ownerId"`
	RenterID           *int64    `json:"renterId"`
	SalonID            *int64    `json:"salonId"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type CarState string

const (
	CarAvailable CarState = "available"
	CarRented    CarState = "rented"
	CarOwned     CarState = "owned"
	// CarWithdrawn is a car a dealer took off the rental market without an owner or renter.
	CarWithdrawn CarState = "withdrawn"
)

func (c *Car) State() CarState {
	switch {
	case c.OwnerID != nil:
		return CarOwned
	case c.RenterID != nil:
		return CarRented
	case c.IsAvailableForRent:
		return CarAvailable
	default:
		return CarWithdrawn
	}
}

func (c *Car) RentedBy(userID int64) bool {
	return c.RenterID != nil && *c.RenterID == userID
}

// Normalize trims descriptive fields and upper-cases the VIN.
func (c *Car) Normalize() {
	c.Brand = strings.TrimSpace(c.Brand)
	c.Model = strings.TrimSpace(c.Model)
	c.VIN = strings.ToUpper(strings.TrimSpace(c.VIN))
}

// CarPatch carries a partial update. Nil fields are left untouched.
type CarPatch struct {
	Brand              *string  `json:"brand,omitempty" validate:"omitempty,min=1,max=100"`
	Model              *string  `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	Year               *int     `json:"year,omitempty" validate:"omitempty,min=1886"`
	VIN                *string  `json:"vin,omitempty" validate:"omitempty,min=11,max=17,alphanum"`
	Price              *float64 `json:"price,omitempty" validate:"omitempty,min=0,max=99999999.99"`
	HorsePower         *int     `json:"horsePower,omitempty" validate:"omitempty,min=0,max=5000"`
	IsAvailableForRent *bool    `json:"isAvailableForRent,omitempty"`
	SalonID            *int64   `json:"salonId,omitempty" validate:"omitempty,min=1"`
}

func (p *CarPatch) Empty() bool {
	return p.Brand == nil && p.Model == nil && p.Year == nil && p.VIN == nil &&
		p.Price == nil && p.HorsePower == nil && p.IsAvailableForRent == nil && p.SalonID == nil
}

// Apply copies the set fields of the patch onto car.
func (p *CarPatch) Apply(car *Car) {
	if p.Brand != nil {
		car.Brand = *p.Brand
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.VIN != nil {
		car.VIN = *p.VIN
	}
	if p.Price != nil {
		car.Price = *p.Price
	}
	if p.HorsePower != nil {
		hp := *p.HorsePower
		car.HorsePower = &hp
	}
	if p.IsAvailableForRent != nil {
		car.IsAvailableForRent = *p.IsAvailableForRent
	}
	if p.SalonID != nil {
		id := *p.SalonID
		car.SalonID = &id
	}
	car.Normalize()
}

type CarFilter struct {
	Brand     string
	Year      *int
	MinPrice  *float64
	MaxPrice  *float64
	Available *bool
	SalonID   *int64
	Limit     int
	Offset    int
}

// Matches reports whether car passes every set criterion of the filter.
// Limit and Offset are not considered.
func (f CarFilter) Matches(car *Car) bool {
	if f.Brand != "" && !strings.Contains(strings.ToLower(car.Brand), strings.ToLower(f.Brand)) {
		return false
	}
	if f.Year != nil && car.Year != *f.Year {
		return false
	}
	if f.MinPrice != nil && car.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && car.Price > *f.MaxPrice {
		return false
	}
	if f.Available != nil && car.IsAvailableForRent != *f.Available {
		return false
	}
	if f.SalonID != nil && (car.SalonID == nil || *car.SalonID != *f.SalonID) {
		return false
	}
	return true
}
