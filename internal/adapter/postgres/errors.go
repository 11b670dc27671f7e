package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

const (
	codeNumericOverflow     = "22003"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
)

var constraintErrors = map[string]error{
	"users_username_key":      domain.ErrUsernameTaken,
	"cars_vin_key":            domain.ErrVINTaken,
	"cars_owner_id_fkey":      domain.ErrUserNotFound,
	"cars_renter_id_fkey":     domain.ErrUserNotFound,
	"cars_salon_id_fkey":      domain.ErrSalonNotFound,
	"cars_single_holder":      domain.ErrCarLocked,
	"cars_held_not_available": domain.ErrCarLocked,
	"rentals_car_id_fkey":     domain.ErrCarNotFound,
	"rentals_user_id_fkey":    domain.ErrUserNotFound,
	"rentals_no_overlap":      domain.ErrRentalOverlap,
	"rentals_window":          domain.NewValidationError("endDate must not be before startDate"),
}

// translateError maps PostgreSQL constraint violations onto domain errors.
func translateError(op string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if mapped, ok := constraintErrors[pqErr.Constraint]; ok {
		return fmt.Errorf("%s: %w", op, mapped)
	}

	switch pqErr.Code {
	case codeNumericOverflow:
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("numeric value out of range"))
	case codeNotNullViolation:
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("required field is missing"))
	case codeExclusionViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrRentalOverlap)
	case codeCheckViolation, codeForeignKeyViolation, codeUniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.NewValidationError(pqErr.Message))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
