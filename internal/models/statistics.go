package models

// StatusCounts - количество происшествий по статусам
type StatusCounts struct {
	Total      int `json:"total"`
	Open       int `json:"aberto"`
	InProgress int `json:"em_andamento"`
	Closed     int `json:"finalizado"`
	Alert      int `json:"alerta"`
}

// Add увеличивает счетчик соответствующего статуса. Неизвестные статусы игнорируются.
func (c *StatusCounts) Add(status OccurrenceStatus, n int) {
	switch status {
	case StatusOpen:
		c.Open += n
	case StatusInProgress:
		c.InProgress += n
	case StatusClosed:
		c.Closed += n
	case StatusAlert:
		c.Alert += n
	}
}

type MunicipalityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// OccurrencePage - страница списка вместе с общим количеством и разбивкой по статусам
type OccurrencePage struct {
	Items  []*Occurrence `json:"occurrences"`
	Total  int           `json:"total"`
	Counts StatusCounts  `json:"counts"`
}

type StatisticsSummary struct {
	ResolutionRate      string `json:"resolution_rate"`
	AverageResponseTime string `json:"average_response_time"`
	Today               int    `json:"today"`
}

type Statistics struct {
	Total          int                    `json:"total"`
	ByStatus       StatusCounts           `json:"by_status"`
	ByType         map[OccurrenceType]int `json:"by_type"`
	ByMunicipality []MunicipalityCount    `json:"by_municipality"`
	Monthly        []MonthlyCount         `json:"monthly"`
	Summary        StatisticsSummary      `json:"summary"`
}

// EmptyStatistics - нулевая статистика, возвращаемая при ошибках
func EmptyStatistics() *Statistics {
	return &Statistics{
		ByType:         map[OccurrenceType]int{},
		ByMunicipality: []MunicipalityCount{},
		Monthly:        []MonthlyCount{},
		Summary: StatisticsSummary{
			ResolutionRate:      "0",
			AverageResponseTime: "0h",
		},
	}
}
