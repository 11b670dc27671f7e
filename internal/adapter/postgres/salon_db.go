package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

type SalonRepository struct {
	db *sql.DB
}

func NewSalonRepository(db *sql.DB) *SalonRepository {
	return &SalonRepository{db: db}
}

func (r *SalonRepository) CreateSalon(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO salons (name, location) VALUES ($1, $2) RETURNING id`,
		salon.Name, salon.Location,
	).Scan(&salon.ID)
	if err != nil {
		return nil, translateError("create salon", err)
	}
	return salon, nil
}

func (r *SalonRepository) GetSalonByID(ctx context.Context, salonID int64) (*domain.Salon, error) {
	var salon domain.Salon
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, location FROM salons WHERE id = $1`, salonID,
	).Scan(&salon.ID, &salon.Name, &salon.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get salon: %w", err)
	}
	return &salon, nil
}

func (r *SalonRepository) ListSalons(ctx context.Context) ([]*domain.Salon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, location FROM salons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	defer rows.Close()

	salons := []*domain.Salon{}
	for rows.Next() {
		salon := &domain.Salon{}
		if err := rows.Scan(&salon.ID, &salon.Name, &salon.Location); err != nil {
			return nil, err
		}
		salons = append(salons, salon)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *SalonRepository) UpdateSalon(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	err := r.db.QueryRowContext(ctx,
		`UPDATE salons SET name = $1, location = $2 WHERE id = $3 RETURNING id, name, location`,
		salon.Name, salon.Location, salon.ID,
	).Scan(&salon.ID, &salon.Name, &salon.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSalonNotFound
	}
	if err != nil {
		return nil, translateError("update salon", err)
	}
	return salon, nil
}

func (r *SalonRepository) DeleteSalon(ctx context.Context, salonID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM salons WHERE id = $1`, salonID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrSalonNotFound
	}
	return nil
}
