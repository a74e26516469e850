package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *models.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Vehicle, error)
}

type MunicipalityRepository interface {
	Create(ctx context.Context, m *models.Municipality) error
	List(ctx context.Context, activeOnly bool) ([]*models.Municipality, error)
}

// ReferenceService - справочники машин и муниципалитетов
type ReferenceService interface {
	ListVehicles(ctx context.Context, activeOnly bool) ([]*models.Vehicle, error)
	ListMunicipalities(ctx context.Context, activeOnly bool) ([]*models.Municipality, error)
}

type referenceService struct {
	vehicles       VehicleRepository
	municipalities MunicipalityRepository
	logger         *logrus.Logger
}

func NewReferenceService(vehicles VehicleRepository, municipalities MunicipalityRepository, logger *logrus.Logger) ReferenceService {
	return &referenceService{
		vehicles:       vehicles,
		municipalities: municipalities,
		logger:         logger,
	}
}

func (s *referenceService) ListVehicles(ctx context.Context, activeOnly bool) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx, activeOnly)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListVehicles").Error("Failed to list vehicles from repository")
		return nil, fmt.Errorf("service: could not list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *referenceService) ListMunicipalities(ctx context.Context, activeOnly bool) ([]*models.Municipality, error) {
	municipalities, err := s.municipalities.List(ctx, activeOnly)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListMunicipalities").Error("Failed to list municipalities from repository")
		return nil, fmt.Errorf("service: could not list municipalities: %w", err)
	}
	return municipalities, nil
}
