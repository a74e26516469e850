package v1

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
)

const dateOnlyLayout = "2006-01-02"

func invalidQuery(field, value string) error {
	return &service.ValidationError{
		Fields:  []string{field},
		Message: fmt.Sprintf("invalid %s %q", field, value),
	}
}

// parseTimeQuery принимает RFC3339 или дату YYYY-MM-DD.
// Для endOfDay дата без времени означает конец этого дня.
func parseTimeQuery(c *gin.Context, field string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(field))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return nil, invalidQuery(field, raw)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func parseUUIDQuery(c *gin.Context, field string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(field))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, invalidQuery(field, raw)
	}
	return &id, nil
}

func parseIntQuery(c *gin.Context, field string) (int, error) {
	raw := strings.TrimSpace(c.Query(field))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidQuery(field, raw)
	}
	return n, nil
}

// parsePageQuery читает номер страницы и отклоняет значения больше models.MaxPage
func parsePageQuery(c *gin.Context) (int, error) {
	page, err := parseIntQuery(c, "page")
	if err != nil {
		return 0, err
	}
	if page > models.MaxPage {
		return 0, &service.ValidationError{
			Fields:  []string{"page"},
			Message: fmt.Sprintf("page must not exceed %d", models.MaxPage),
		}
	}
	return page, nil
}

// parseOccurrenceFilters читает фильтры списка, статистики и выгрузки из query-параметров
func parseOccurrenceFilters(c *gin.Context) (models.OccurrenceFilters, error) {
	f := models.OccurrenceFilters{
		Type:         models.OccurrenceType(strings.TrimSpace(c.Query("type"))),
		Status:       models.OccurrenceStatus(strings.TrimSpace(c.Query("status"))),
		Municipality: strings.TrimSpace(c.Query("municipality")),
		Neighborhood: strings.TrimSpace(c.Query("neighborhood")),
		Search:       strings.TrimSpace(c.Query("search")),
	}

	var err error
	if f.StartDate, err = parseTimeQuery(c, "start_date", false); err != nil {
		return f, err
	}
	if f.EndDate, err = parseTimeQuery(c, "end_date", true); err != nil {
		return f, err
	}
	if f.CreatedBy, err = parseUUIDQuery(c, "created_by"); err != nil {
		return f, err
	}
	if f.VehicleID, err = parseUUIDQuery(c, "vehicle_id"); err != nil {
		return f, err
	}
	if f.Page, err = parsePageQuery(c); err != nil {
		return f, err
	}
	if f.Limit, err = parseIntQuery(c, "limit"); err != nil {
		return f, err
	}
	return f, nil
}

// parseAuditLogFilters читает фильтры журнала аудита
func parseAuditLogFilters(c *gin.Context) (models.AuditLogFilters, error) {
	f := models.AuditLogFilters{
		Action: models.AuditAction(strings.TrimSpace(c.Query("action"))),
		Entity: models.AuditEntity(strings.TrimSpace(c.Query("entity"))),
	}

	var err error
	if f.UserID, err = parseUUIDQuery(c, "user_id"); err != nil {
		return f, err
	}
	if f.EntityID, err = parseUUIDQuery(c, "entity_id"); err != nil {
		return f, err
	}
	if f.From, err = parseTimeQuery(c, "from", false); err != nil {
		return f, err
	}
	if f.To, err = parseTimeQuery(c, "to", true); err != nil {
		return f, err
	}
	if f.Page, err = parsePageQuery(c); err != nil {
		return f, err
	}
	if f.PageSize, err = parseIntQuery(c, "page_size"); err != nil {
		return f, err
	}
	return f, nil
}

// parseBoolQuery возвращает def, если параметр не задан или некорректен
func parseBoolQuery(c *gin.Context, field string, def bool) bool {
	raw := strings.TrimSpace(c.Query(field))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
