package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type seedMocks struct {
	municipalities *mocks.MockMunicipalityRepository
	vehicles       *mocks.MockVehicleRepository
	users          *mocks.MockUserRepository
}

func newTestSeeder(t *testing.T) (*Seeder, seedMocks) {
	ctrl := gomock.NewController(t)
	m := seedMocks{
		municipalities: mocks.NewMockMunicipalityRepository(ctrl),
		vehicles:       mocks.NewMockVehicleRepository(ctrl),
		users:          mocks.NewMockUserRepository(ctrl),
	}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewSeeder(m.municipalities, m.vehicles, m.users, logger), m
}

func expectReferenceData(m seedMocks) {
	m.municipalities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(len(DefaultMunicipalities))
	m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(len(DefaultVehicles))
}

func TestSeeder_CreatesAdmin(t *testing.T) {
	s, m := newTestSeeder(t)
	expectReferenceData(m)

	m.users.EXPECT().GetByEmail(gomock.Any(), "admin@ocorrencias.local").
		Return(nil, fmt.Errorf("user with email admin@ocorrencias.local: %w", models.ErrNotFound))
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.Equal(t, "admin@ocorrencias.local", u.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Admin123#")))
			u.ID = uuid.New()
			return nil
		})

	require.NoError(t, s.Run(context.Background(), "admin@ocorrencias.local", "Admin123#"))
}

func TestSeeder_AdminAlreadyExists(t *testing.T) {
	s, m := newTestSeeder(t)
	expectReferenceData(m)

	m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.User{ID: uuid.New()}, nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, s.Run(context.Background(), "admin@ocorrencias.local", "Admin123#"))
}

func TestSeeder_PasswordRequired(t *testing.T) {
	s, m := newTestSeeder(t)
	expectReferenceData(m)
	m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Times(0)

	err := s.Run(context.Background(), "admin@ocorrencias.local", "")
	assert.ErrorContains(t, err, "SEED_ADMIN_PASSWORD")
}

func TestSeeder_StopsOnMunicipalityError(t *testing.T) {
	s, m := newTestSeeder(t)
	m.municipalities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := s.Run(context.Background(), "admin@ocorrencias.local", "x")
	assert.ErrorContains(t, err, "seed municipality Recife")
}

func TestSeeder_VehiclesKeepDefaults(t *testing.T) {
	s, m := newTestSeeder(t)
	m.municipalities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var plates []string
	m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Vehicle) error {
			plates = append(plates, v.Plate)
			v.ID = uuid.New()
			return nil
		}).Times(len(DefaultVehicles))
	m.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(&models.User{}, nil)

	require.NoError(t, s.Run(context.Background(), "admin@ocorrencias.local", "x"))
	assert.Equal(t, []string{"AR-973", "BR-456", "CR-789", "DR-012"}, plates)
	for _, v := range DefaultVehicles {
		assert.Equal(t, uuid.Nil, v.ID, "значения по умолчанию не изменяются")
	}
}
