package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
)

type MunicipalityRepository struct {
	db DB
}

func NewMunicipalityRepository(db DB) service.MunicipalityRepository {
	return &MunicipalityRepository{db: db}
}

func (r *MunicipalityRepository) Create(ctx context.Context, m *models.Municipality) error {
	query := `
		INSERT INTO municipalities (name, active)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET active = EXCLUDED.active
		RETURNING id;
	`
	if err := r.db.QueryRow(ctx, query, m.Name, m.Active).Scan(&m.ID); err != nil {
		return fmt.Errorf("failed to create municipality: %w", err)
	}
	return nil
}

func (r *MunicipalityRepository) List(ctx context.Context, activeOnly bool) ([]*models.Municipality, error) {
	query := `
		SELECT id, name, active
		FROM municipalities
		WHERE active OR NOT $1
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list municipalities: %w", err)
	}
	defer rows.Close()

	municipalities := make([]*models.Municipality, 0)
	for rows.Next() {
		m := &models.Municipality{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Active); err != nil {
			return nil, fmt.Errorf("failed to scan municipality row: %w", err)
		}
		municipalities = append(municipalities, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return municipalities, nil
}
