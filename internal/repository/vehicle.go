package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
)

type VehicleRepository struct {
	db DB
}

func NewVehicleRepository(db DB) service.VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create добавляет машину, если машины с таким номером еще нет
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (plate, name, active)
		VALUES ($1, $2, $3)
		ON CONFLICT (plate) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;
	`
	if err := r.db.QueryRow(ctx, query, v.Plate, v.Name, v.Active).Scan(&v.ID); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	query := `SELECT id, plate, name, active FROM vehicles WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Plate, &v.Name, &v.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("vehicle with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle by id: %w", err)
	}
	return v, nil
}

// List возвращает машины, отсортированные по номеру
func (r *VehicleRepository) List(ctx context.Context, activeOnly bool) ([]*models.Vehicle, error) {
	query := `
		SELECT id, plate, name, active
		FROM vehicles
		WHERE active OR NOT $1
		ORDER BY plate ASC;
	`
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*models.Vehicle, 0)
	for rows.Next() {
		v := &models.Vehicle{}
		if err := rows.Scan(&v.ID, &v.Plate, &v.Name, &v.Active); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return vehicles, nil
}
