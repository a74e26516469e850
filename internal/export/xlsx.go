package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName - имя листа отчета
	SheetName = "Ocorrências"
	// ContentType - MIME-тип XLSX
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	dateLayout = "02/01/2006 15:04"
)

type reportColumn struct {
	header string
	width  float64
	value  func(o *models.Occurrence) any
}

var occurrenceColumns = []reportColumn{
	{"ID", 38, func(o *models.Occurrence) any { return o.ID.String() }},
	{"Tipo", 15, func(o *models.Occurrence) any { return string(o.Type) }},
	{"Status", 15, func(o *models.Occurrence) any { return string(o.Status) }},
	{"Município", 20, func(o *models.Occurrence) any { return o.Municipality }},
	{"Bairro", 20, func(o *models.Occurrence) any { return o.Neighborhood }},
	{"Endereço", 35, func(o *models.Occurrence) any { return o.Address }},
	{"Descrição", 50, func(o *models.Occurrence) any { return o.Description }},
	{"Vítima", 25, func(o *models.Occurrence) any { return o.VictimName }},
	{"Viatura", 15, func(o *models.Occurrence) any { return vehicleLabel(o) }},
	{"Data da Ocorrência", 20, func(o *models.Occurrence) any { return formatDate(o.OccurrenceDate) }},
	{"Data de Acionamento", 20, func(o *models.Occurrence) any { return formatDate(o.ActivationDate) }},
	{"Criado por", 25, func(o *models.Occurrence) any { return creatorName(o) }},
	{"Criado em", 20, func(o *models.Occurrence) any { return formatDate(o.CreatedAt) }},
}

// Headers возвращает заголовки колонок отчета в порядке вывода
func Headers() []string {
	headers := make([]string, len(occurrenceColumns))
	for i, c := range occurrenceColumns {
		headers[i] = c.header
	}
	return headers
}

// OccurrencesXLSX формирует XLSX-отчет по происшествиям.
// Пустой список дает файл только с заголовком.
func OccurrencesXLSX(items []*models.Occurrence) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, c := range occurrenceColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, c.header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, c.width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	// Данные начинаются со второй строки
	for rowIdx, o := range items {
		row := rowIdx + 2
		for colIdx, c := range occurrenceColumns {
			value := c.value(o)
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, colIdx+1, err)
			}
		}
	}

	// Закрепляем заголовок
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

func vehicleLabel(o *models.Occurrence) string {
	if o.VehicleNumber != "" {
		return o.VehicleNumber
	}
	if o.Vehicle != nil {
		return o.Vehicle.Plate
	}
	return ""
}

func creatorName(o *models.Occurrence) string {
	if o.CreatedBy != nil {
		return o.CreatedBy.Name
	}
	return ""
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
