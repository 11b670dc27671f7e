package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

type RentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func scanRental(row scanner) (*domain.Rental, error) {
	var rental domain.Rental
	if err := row.Scan(
		&rental.ID,
		&rental.CarID,
		&rental.UserID,
		&rental.StartDate,
		&rental.EndDate,
		&rental.CreatedAt,
	); err != nil {
		return nil, err
	}
	rental.StartDate = domain.TruncateDay(rental.StartDate)
	rental.EndDate = domain.TruncateDay(rental.EndDate)
	return &rental, nil
}

// CreateRental relies on the rentals_no_overlap exclusion constraint to reject
// overlapping windows of one car.
func (r *RentalRepository) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	query := `INSERT INTO rentals (car_id, user_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, car_id, user_id, start_date, end_date, created_at`

	created, err := scanRental(r.db.QueryRowContext(ctx, query,
		rental.CarID,
		rental.UserID,
		rental.StartDate,
		rental.EndDate,
	))
	if err != nil {
		return nil, translateError("create rental", err)
	}
	return created, nil
}

func (r *RentalRepository) GetRentalByID(ctx context.Context, rentalID int64) (*domain.Rental, error) {
	rental, err := scanRental(r.db.QueryRowContext(ctx,
		`SELECT id, car_id, user_id, start_date, end_date, created_at FROM rentals WHERE id = $1`, rentalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return rental, nil
}

func (r *RentalRepository) ListRentals(ctx context.Context, carID *int64) ([]*domain.Rental, error) {
	query := `SELECT id, car_id, user_id, start_date, end_date, created_at FROM rentals
		WHERE $1::BIGINT IS NULL OR car_id = $1
		ORDER BY start_date, id`

	rows, err := r.db.QueryContext(ctx, query, nullInt64(carID))
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	rentals := []*domain.Rental{}
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) DeleteRental(ctx context.Context, rentalID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, rentalID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}
