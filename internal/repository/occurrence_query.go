package repository

import (
	"fmt"
	"strings"

	"github.com/shenikar/occurrence_reporting_system/internal/models"
)

// filterKey - фильтр, который агрегат может исключить из своего набора условий
type filterKey int

const (
	filterType filterKey = iota + 1
	filterStatus
	filterMunicipality
	filterDateRange
)

var monthAbbreviations = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// whereBuilder собирает параметризованное условие WHERE с плейсхолдерами $n
type whereBuilder struct {
	conditions []string
	args       []any
}

// add добавляет условие. Плейсхолдер в cond задается как $%[1]d и может повторяться.
func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conditions = append(b.conditions, fmt.Sprintf(cond, len(b.args)))
}

func (b *whereBuilder) clause() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conditions, " AND ")
}

// nextArg возвращает номер следующего плейсхолдера (для LIMIT/OFFSET)
func (b *whereBuilder) nextArg() int {
	return len(b.args) + 1
}

// buildOccurrenceWhere переводит фильтры в условие WHERE над таблицей occurrences (алиас o).
// Пагинация сюда не входит. Фильтры из omit не применяются.
func buildOccurrenceWhere(f models.OccurrenceFilters, omit ...filterKey) *whereBuilder {
	skip := make(map[filterKey]bool, len(omit))
	for _, k := range omit {
		skip[k] = true
	}

	b := &whereBuilder{}
	if f.Type != "" && !skip[filterType] {
		b.add("o.type = $%[1]d", string(f.Type))
	}
	if f.Status != "" && !skip[filterStatus] {
		b.add("o.status = $%[1]d", string(f.Status))
	}
	if f.Municipality != "" && !skip[filterMunicipality] {
		b.add("o.municipality ILIKE $%[1]d", likePattern(f.Municipality))
	}
	if f.Neighborhood != "" {
		b.add("o.neighborhood ILIKE $%[1]d", likePattern(f.Neighborhood))
	}
	if !skip[filterDateRange] {
		if f.StartDate != nil {
			b.add("o.occurrence_date >= $%[1]d", *f.StartDate)
		}
		if f.EndDate != nil {
			b.add("o.occurrence_date <= $%[1]d", *f.EndDate)
		}
	}
	if f.CreatedBy != nil {
		b.add("o.created_by = $%[1]d", *f.CreatedBy)
	}
	if f.VehicleID != nil {
		b.add("o.vehicle_id = $%[1]d", *f.VehicleID)
	}
	if f.Search != "" {
		b.add("(o.address ILIKE $%[1]d OR o.description ILIKE $%[1]d OR o.victim_name ILIKE $%[1]d)", likePattern(f.Search))
	}
	return b
}

// likePattern экранирует спецсимволы LIKE и оборачивает значение в %...%
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

const occurrenceColumns = `
	o.id,
	COALESCE(o.type, 'outros'),
	COALESCE(o.status, 'aberto'),
	o.municipality,
	o.neighborhood,
	o.address,
	o.description,
	o.victim_name,
	o.vehicle_number,
	o.occurrence_date,
	o.activation_date,
	o.vehicle_id,
	o.created_by,
	o.created_at,
	o.updated_at,
	u.name,
	u.email,
	u.role,
	v.plate,
	v.name`

const occurrenceFrom = `
	FROM occurrences o
	LEFT JOIN users u ON u.id = o.created_by
	LEFT JOIN vehicles v ON v.id = o.vehicle_id`

func listOccurrencesQuery(f models.OccurrenceFilters) (string, []any) {
	b := buildOccurrenceWhere(f)
	n := b.nextArg()
	query := fmt.Sprintf(
		"SELECT%s%s%s ORDER BY o.occurrence_date DESC, o.created_at ASC, o.id ASC LIMIT $%d OFFSET $%d",
		occurrenceColumns, occurrenceFrom, b.clause(), n, n+1,
	)
	return query, append(b.args, f.Limit, f.Offset())
}

func countOccurrencesQuery(f models.OccurrenceFilters) (string, []any) {
	b := buildOccurrenceWhere(f)
	return "SELECT COUNT(*) FROM occurrences o" + b.clause(), b.args
}

// exportOccurrencesQuery - как listOccurrencesQuery, но с фиксированным лимитом и без смещения
func exportOccurrencesQuery(f models.OccurrenceFilters, maxRows int) (string, []any) {
	b := buildOccurrenceWhere(f)
	query := fmt.Sprintf(
		"SELECT%s%s%s ORDER BY o.occurrence_date DESC, o.created_at ASC, o.id ASC LIMIT $%d",
		occurrenceColumns, occurrenceFrom, b.clause(), b.nextArg(),
	)
	return query, append(b.args, maxRows)
}

func statusCountsQuery(f models.OccurrenceFilters) (string, []any) {
	b := buildOccurrenceWhere(f, filterStatus)
	query := "SELECT o.status AS status, COUNT(*) AS count FROM occurrences o" +
		b.clause() + " GROUP BY o.status"
	return query, b.args
}

func typeCountsQuery(f models.OccurrenceFilters) (string, []any) {
	b := buildOccurrenceWhere(f, filterType)
	query := "SELECT o.type AS type, COUNT(*) AS count FROM occurrences o" +
		b.clause() + " GROUP BY o.type"
	return query, b.args
}

func municipalityCountsQuery(f models.OccurrenceFilters) (string, []any) {
	b := buildOccurrenceWhere(f, filterMunicipality)
	query := "SELECT o.municipality AS name, COUNT(*) AS count FROM occurrences o" +
		b.clause() + " GROUP BY o.municipality ORDER BY count DESC, name ASC"
	return query, b.args
}

func monthlyStatsQuery(f models.OccurrenceFilters) (string, []any) {
	b := buildOccurrenceWhere(f, filterDateRange)
	query := "SELECT TO_CHAR(o.occurrence_date, 'YYYY-MM') AS month, COUNT(*) AS count FROM occurrences o" +
		b.clause() + " GROUP BY TO_CHAR(o.occurrence_date, 'YYYY-MM') ORDER BY month DESC LIMIT 6"
	return query, b.args
}

// monthLabel переводит "2024-03" в "Mar/24"
func monthLabel(yearMonth string) (string, error) {
	var year, month int
	if _, err := fmt.Sscanf(yearMonth, "%4d-%2d", &year, &month); err != nil {
		return "", fmt.Errorf("invalid month key %q: %w", yearMonth, err)
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("invalid month key %q", yearMonth)
	}
	return fmt.Sprintf("%s/%02d", monthAbbreviations[month-1], year%100), nil
}
