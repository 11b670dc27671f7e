package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

const carColumns = `id, brand, model, year, vin, price, horse_power, is_available_for_rent,
	owner_id, renter_id, salon_id, created_at, updated_at`

type CarRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

func scanCar(row scanner) (*domain.Car, error) {
	var (
		car        domain.Car
		horsePower sql.NullInt64
		ownerID    sql.NullInt64
		renterID   sql.NullInt64
		salonID    sql.NullInt64
	)
	err := row.Scan(
		&car.ID,
		&car.Brand,
		&car.Model,
		&car.Year,
		&car.VIN,
		&car.Price,
		&horsePower,
		&car.IsAvailableForRent,
		&ownerID,
		&renterID,
		&salonID,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if horsePower.Valid {
		hp := int(horsePower.Int64)
		car.HorsePower = &hp
	}
	car.OwnerID = int64Ptr(ownerID)
	car.RenterID = int64Ptr(renterID)
	car.SalonID = int64Ptr(salonID)
	return &car, nil
}

func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	defer rows.Close()

	cars := []*domain.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cars, nil
}

func horsePowerArg(hp *int) sql.NullInt64 {
	if hp == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*hp), Valid: true}
}

func (r *CarRepository) CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	query := `INSERT INTO cars (brand, model, year, vin, price, horse_power, is_available_for_rent, salon_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + carColumns

	created, err := scanCar(r.db.QueryRowContext(ctx, query,
		car.Brand,
		car.Model,
		car.Year,
		car.VIN,
		car.Price,
		horsePowerArg(car.HorsePower),
		car.IsAvailableForRent,
		nullInt64(car.SalonID),
	))
	if err != nil {
		return nil, translateError("create car", err)
	}
	return created, nil
}

func (r *CarRepository) GetCarByID(ctx context.Context, carID int64) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	car, err := scanCar(r.db.QueryRowContext(ctx, query, carID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return car, nil
}

// likeEscaper neutralizes LIKE wildcards in user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *CarRepository) ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	var (
		conditions []string
		args       []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Brand != "" {
		add(`brand ILIKE '%%' || $%d || '%%'`, likeEscaper.Replace(filter.Brand))
	}
	if filter.Year != nil {
		add(`year = $%d`, *filter.Year)
	}
	if filter.MinPrice != nil {
		add(`price >= $%d`, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add(`price <= $%d`, *filter.MaxPrice)
	}
	if filter.Available != nil {
		add(`is_available_for_rent = $%d`, *filter.Available)
	}
	if filter.SalonID != nil {
		add(`salon_id = $%d`, *filter.SalonID)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + carColumns + ` FROM cars`)
	if len(conditions) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(conditions, ` AND `))
	}
	sb.WriteString(` ORDER BY id`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		sb.WriteString(fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args)))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return scanCars(rows)
}

func (r *CarRepository) ListCarsByUser(ctx context.Context, userID int64) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars
		WHERE owner_id = $1 OR renter_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user cars: %w", err)
	}
	return scanCars(rows)
}

// UpdateCar writes the descriptive fields of car. The availability flag only
// changes while the car has neither an owner nor a renter.
func (r *CarRepository) UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	query := `UPDATE cars
		SET
			brand = $1,
			model = $2,
			year = $3,
			vin = $4,
			price = $5,
			horse_power = $6,
			is_available_for_rent = CASE
				WHEN owner_id IS NULL AND renter_id IS NULL THEN $7
				ELSE is_available_for_rent
			END,
			salon_id = $8,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING ` + carColumns

	updated, err := scanCar(r.db.QueryRowContext(ctx, query,
		car.Brand,
		car.Model,
		car.Year,
		car.VIN,
		car.Price,
		horsePowerArg(car.HorsePower),
		car.IsAvailableForRent,
		nullInt64(car.SalonID),
		car.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, translateError("update car", err)
	}
	return updated, nil
}

func (r *CarRepository) DeleteCar(ctx context.Context, carID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, carID)
	if err != nil {
		return translateError("delete car", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *CarRepository) RentCar(ctx context.Context, carID, renterID int64) (*domain.Car, error) {
	query := `UPDATE cars
		SET is_available_for_rent = FALSE, renter_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_available_for_rent AND owner_id IS NULL AND renter_id IS NULL
		RETURNING ` + carColumns

	car, err := scanCar(r.db.QueryRowContext(ctx, query, carID, renterID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.explainRejection(ctx, carID, domain.ErrCarUnavailable)
	}
	if err != nil {
		return nil, translateError("rent car", err)
	}
	return car, nil
}

func (r *CarRepository) ReturnCar(ctx context.Context, carID, renterID int64) (*domain.Car, error) {
	query := `UPDATE cars
		SET is_available_for_rent = TRUE, renter_id = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND renter_id = $2
		RETURNING ` + carColumns

	car, err := scanCar(r.db.QueryRowContext(ctx, query, carID, renterID))
	if errors.Is(err, sql.ErrNoRows) {
		current, getErr := r.GetCarByID(ctx, carID)
		if getErr != nil {
			return nil, getErr
		}
		if current.RenterID == nil {
			return nil, domain.ErrCarAlreadyReturned
		}
		return nil, domain.ErrNotRenter
	}
	if err != nil {
		return nil, translateError("return car", err)
	}
	return car, nil
}

func (r *CarRepository) BuyCar(ctx context.Context, carID, ownerID int64) (*domain.Car, error) {
	query := `UPDATE cars
		SET is_available_for_rent = FALSE, owner_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_available_for_rent AND owner_id IS NULL AND renter_id IS NULL
		RETURNING ` + carColumns

	car, err := scanCar(r.db.QueryRowContext(ctx, query, carID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.explainRejection(ctx, carID, domain.ErrCarUnavailable)
	}
	if err != nil {
		return nil, translateError("buy car", err)
	}
	return car, nil
}

// explainRejection tells a missing car apart from one whose state refused the update.
func (r *CarRepository) explainRejection(ctx context.Context, carID int64, rejected error) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`, carID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check car: %w", err)
	}
	if !exists {
		return domain.ErrCarNotFound
	}
	return rejected
}
