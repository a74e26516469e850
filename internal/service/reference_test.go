package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReferenceService(t *testing.T) (ReferenceService, *mocks.MockVehicleRepository, *mocks.MockMunicipalityRepository) {
	ctrl := gomock.NewController(t)
	vehicles := mocks.NewMockVehicleRepository(ctrl)
	municipalities := mocks.NewMockMunicipalityRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewReferenceService(vehicles, municipalities, logger), vehicles, municipalities
}

func TestListVehicles(t *testing.T) {
	svc, vehicles, _ := newTestReferenceService(t)
	expected := []*models.Vehicle{{ID: uuid.New(), Plate: "AR-973", Active: true}}
	vehicles.EXPECT().List(gomock.Any(), true).Return(expected, nil)

	got, err := svc.ListVehicles(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestListVehicles_RepositoryError(t *testing.T) {
	svc, vehicles, _ := newTestReferenceService(t)
	dbErr := errors.New("connection reset")
	vehicles.EXPECT().List(gomock.Any(), false).Return(nil, dbErr)

	_, err := svc.ListVehicles(context.Background(), false)
	assert.ErrorIs(t, err, dbErr)
}

func TestListMunicipalities(t *testing.T) {
	svc, _, municipalities := newTestReferenceService(t)
	expected := []*models.Municipality{{ID: uuid.New(), Name: "Olinda", Active: true}}
	municipalities.EXPECT().List(gomock.Any(), true).Return(expected, nil)

	got, err := svc.ListMunicipalities(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
