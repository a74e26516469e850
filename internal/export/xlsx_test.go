package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestOccurrencesXLSX_HeaderOnly(t *testing.T) {
	data, err := OccurrencesXLSX(nil)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 1)
	assert.Equal(t, Headers(), rows[0])
}

func TestOccurrencesXLSX_Rows(t *testing.T) {
	id := uuid.New()
	occurred := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	items := []*models.Occurrence{
		{
			ID:             id,
			Type:           models.TypeFire,
			Status:         models.StatusOpen,
			Municipality:   "Recife",
			Neighborhood:   "Boa Viagem",
			Address:        "Av. Boa Viagem, 100",
			Description:    "Incêndio em residência",
			VictimName:     "João",
			VehicleNumber:  "AR-973",
			OccurrenceDate: occurred,
			ActivationDate: occurred.Add(10 * time.Minute),
			CreatedBy:      &models.User{Name: "Maria"},
			CreatedAt:      occurred,
		},
		{
			ID:             uuid.New(),
			Type:           models.TypeRescue,
			Status:         models.StatusClosed,
			Municipality:   "Olinda",
			Address:        "Rua do Amparo, 1",
			Description:    "Resgate",
			Vehicle:        &models.Vehicle{Plate: "ABT-01"},
			OccurrenceDate: occurred,
			ActivationDate: occurred,
		},
	}

	data, err := OccurrencesXLSX(items)
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 3)

	first := rows[1]
	assert.Equal(t, id.String(), first[0])
	assert.Equal(t, "incendio", first[1])
	assert.Equal(t, "aberto", first[2])
	assert.Equal(t, "Recife", first[3])
	assert.Equal(t, "AR-973", first[8])
	assert.Equal(t, "15/03/2024 14:30", first[9])
	assert.Equal(t, "15/03/2024 14:40", first[10])
	assert.Equal(t, "Maria", first[11])

	second := rows[2]
	assert.Equal(t, "Olinda", second[3])
	assert.Equal(t, "", second[4])
	assert.Equal(t, "ABT-01", second[8])
}
