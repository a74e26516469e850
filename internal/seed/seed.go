package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// DefaultMunicipalities - муниципалитеты региона по умолчанию
var DefaultMunicipalities = []string{
	"Recife",
	"Olinda",
	"Jaboatão dos Guararapes",
	"Paulista",
	"Camaragibe",
	"São Lourenço da Mata",
	"Moreno",
	"Cabo de Santo Agostinho",
	"Ipojuca",
}

// DefaultVehicles - машины по умолчанию
var DefaultVehicles = []models.Vehicle{
	{Plate: "AR-973", Name: "Viatura Alpha", Active: true},
	{Plate: "BR-456", Name: "Viatura Bravo", Active: true},
	{Plate: "CR-789", Name: "Viatura Charlie", Active: true},
	{Plate: "DR-012", Name: "Viatura Delta", Active: true},
}

const adminName = "Administrador Sistema"

// Seeder заполняет справочники и создает администратора. Повторный запуск ничего не дублирует.
type Seeder struct {
	municipalities service.MunicipalityRepository
	vehicles       service.VehicleRepository
	users          service.UserRepository
	logger         *logrus.Logger
}

func NewSeeder(
	municipalities service.MunicipalityRepository,
	vehicles service.VehicleRepository,
	users service.UserRepository,
	logger *logrus.Logger,
) *Seeder {
	return &Seeder{
		municipalities: municipalities,
		vehicles:       vehicles,
		users:          users,
		logger:         logger,
	}
}

func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) error {
	if err := s.seedMunicipalities(ctx); err != nil {
		return err
	}
	if err := s.seedVehicles(ctx); err != nil {
		return err
	}
	return s.seedAdmin(ctx, adminEmail, adminPassword)
}

func (s *Seeder) seedMunicipalities(ctx context.Context) error {
	for _, name := range DefaultMunicipalities {
		m := &models.Municipality{Name: name, Active: true}
		if err := s.municipalities.Create(ctx, m); err != nil {
			return fmt.Errorf("seed municipality %s: %w", name, err)
		}
	}
	s.logger.Infof("Seeded %d municipalities", len(DefaultMunicipalities))
	return nil
}

func (s *Seeder) seedVehicles(ctx context.Context) error {
	for i := range DefaultVehicles {
		v := DefaultVehicles[i]
		if err := s.vehicles.Create(ctx, &v); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.Plate, err)
		}
	}
	s.logger.Infof("Seeded %d vehicles", len(DefaultVehicles))
	return nil
}

// seedAdmin создает администратора, если пользователя с таким email нет
func (s *Seeder) seedAdmin(ctx context.Context, email, password string) error {
	log := s.logger.WithField("email", email)
	if password == "" {
		return errors.New("SEED_ADMIN_PASSWORD is required to create the admin user")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		log.Info("Admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	admin := &models.User{
		Name:         adminName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Registration: "001",
		Unit:         "Central",
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.WithField("user_id", admin.ID).Info("Admin user created")
	return nil
}
