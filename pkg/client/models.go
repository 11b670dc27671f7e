package client

import (
	"time"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsDealer  bool   `json:"isDealer"`
}

type userEnvelope struct {
	User *User `json:"user"`
}

type Car struct {
	ID                 int64   `json:"id"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	VIN                string  `json:"vin"`
	Price              float64 `json:"price"`
	HorsePower         *int    `json:"horsePower"`
	IsAvailableForRent bool    `json:"isAvailableForRent"`
	OwnerID            *int64  `json:"ownerId"`
	RenterID           *int64  `json:"renterId"`
	SalonID            *int64  `json:"salonId"`
}

// Registration is the body of self-registration and of dealer-issued accounts.
type Registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (m *Registration) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("username", "body", m.Username); err != nil {
		res = append(res, err)
	} else if err := validate.MinLength("username", "body", m.Username, 3); err != nil {
		res = append(res, err)
	}
	if err := validate.RequiredString("password", "body", m.Password); err != nil {
		res = append(res, err)
	} else if err := validate.MinLength("password", "body", m.Password, 6); err != nil {
		res = append(res, err)
	}
	if err := validate.RequiredString("firstName", "body", m.FirstName); err != nil {
		res = append(res, err)
	}
	if err := validate.RequiredString("lastName", "body", m.LastName); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

type CarInput struct {
	Brand              string   `json:"brand"`
	Model              string   `json:"model"`
	Year               int      `json:"year"`
	VIN                string   `json:"vin"`
	Price              *float64 `json:"price"`
	HorsePower         *int     `json:"horsePower,omitempty"`
	IsAvailableForRent *bool    `json:"isAvailableForRent,omitempty"`
	SalonID            *int64   `json:"salonId,omitempty"`
}

func (m *CarInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("brand", "body", m.Brand); err != nil {
		res = append(res, err)
	}
	if err := validate.RequiredString("model", "body", m.Model); err != nil {
		res = append(res, err)
	}
	if err := validate.MinimumInt("year", "body", int64(m.Year), 1886, false); err != nil {
		res = append(res, err)
	}
	if err := validate.MinLength("vin", "body", m.VIN, 11); err != nil {
		res = append(res, err)
	}
	if err := validate.MaxLength("vin", "body", m.VIN, 17); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("price", "body", m.Price); err != nil {
		res = append(res, err)
	} else if err := validate.Minimum("price", "body", *m.Price, 0, false); err != nil {
		res = append(res, err)
	}
	if m.HorsePower != nil {
		if err := validate.MinimumInt("horsePower", "body", int64(*m.HorsePower), 0, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// CarPatch changes only the fields that are set.
type CarPatch struct {
	Brand              *string  `json:"brand,omitempty"`
	Model              *string  `json:"model,omitempty"`
	Year               *int     `json:"year,omitempty"`
	VIN                *string  `json:"vin,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	HorsePower         *int     `json:"horsePower,omitempty"`
	IsAvailableForRent *bool    `json:"isAvailableForRent,omitempty"`
	SalonID            *int64   `json:"salonId,omitempty"`
}

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

type leasingRequest struct {
	DownPayment float64 `json:"downPayment"`
	Months      int     `json:"months"`
}

type Renter struct {
	CarID    int64  `json:"carId"`
	RenterID *int64 `json:"renterId"`
}

type Rental struct {
	ID        int64       `json:"id"`
	CarID     int64       `json:"carId"`
	UserID    int64       `json:"userId"`
	StartDate strfmt.Date `json:"startDate"`
	EndDate   strfmt.Date `json:"endDate"`
}

type RentalInput struct {
	CarID     int64       `json:"carId"`
	StartDate strfmt.Date `json:"startDate"`
	EndDate   strfmt.Date `json:"endDate"`
}

func (m *RentalInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinimumInt("carId", "body", m.CarID, 1, false); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("startDate", "body", m.StartDate); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("endDate", "body", m.EndDate); err != nil {
		res = append(res, err)
	}
	if len(res) == 0 && time.Time(m.EndDate).Before(time.Time(m.StartDate)) {
		res = append(res, errors.New(422, "endDate must not be before startDate"))
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
