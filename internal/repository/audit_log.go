package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
)

const changesDetailKey = "changes"

type AuditLogRepository struct {
	db DB
}

func NewAuditLogRepository(db DB) service.AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create добавляет запись в журнал. Изменения полей хранятся в details под ключом "changes".
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	details, err := encodeAuditDetails(entry)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_logs (id, user_id, action, entity, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.Entity,
		entry.EntityID,
		details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// Search возвращает страницу журнала (новые записи первыми) и общее количество
func (r *AuditLogRepository) Search(ctx context.Context, filters models.AuditLogFilters) ([]*models.AuditLog, int, error) {
	countQuery, countArgs, query, args := auditLogSearchQueries(filters)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search audit logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.AuditLog, 0)
	for rows.Next() {
		entry := &models.AuditLog{}
		var details []byte
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Entity,
			&entry.EntityID,
			&details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		if err := decodeAuditDetails(details, entry); err != nil {
			return nil, 0, err
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error audit log iteration: %w", err)
	}
	return logs, total, nil
}

func auditLogSearchQueries(f models.AuditLogFilters) (string, []any, string, []any) {
	b := &whereBuilder{}
	if f.UserID != nil {
		b.add("user_id = $%[1]d", *f.UserID)
	}
	if f.Action != "" {
		b.add("action = $%[1]d", string(f.Action))
	}
	if f.Entity != "" {
		b.add("entity = $%[1]d", string(f.Entity))
	}
	if f.EntityID != nil {
		b.add("entity_id = $%[1]d", *f.EntityID)
	}
	if f.From != nil {
		b.add("created_at >= $%[1]d", *f.From)
	}
	if f.To != nil {
		b.add("created_at <= $%[1]d", *f.To)
	}

	f = f.Normalize()

	countQuery := "SELECT COUNT(*) FROM audit_logs" + b.clause()
	n := b.nextArg()
	query := fmt.Sprintf(
		"SELECT id, user_id, action, entity, entity_id, details, created_at FROM audit_logs%s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d",
		b.clause(), n, n+1,
	)
	args := append(append([]any{}, b.args...), f.PageSize, f.Offset())
	return countQuery, b.args, query, args
}

func encodeAuditDetails(entry *models.AuditLog) ([]byte, error) {
	if len(entry.Details) == 0 && len(entry.Changes) == 0 {
		return nil, nil
	}
	payload := make(map[string]any, len(entry.Details)+1)
	for k, v := range entry.Details {
		payload[k] = v
	}
	if len(entry.Changes) > 0 {
		payload[changesDetailKey] = entry.Changes
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit details: %w", err)
	}
	return raw, nil
}

func decodeAuditDetails(raw []byte, entry *models.AuditLog) error {
	if len(raw) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("failed to unmarshal audit details: %w", err)
	}
	if changes, ok := fields[changesDetailKey]; ok {
		if err := json.Unmarshal(changes, &entry.Changes); err != nil {
			return fmt.Errorf("failed to unmarshal audit changes: %w", err)
		}
		delete(fields, changesDetailKey)
	}
	if len(fields) == 0 {
		return nil
	}
	entry.Details = make(map[string]any, len(fields))
	for k, v := range fields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return fmt.Errorf("failed to unmarshal audit detail %q: %w", k, err)
		}
		entry.Details[k] = val
	}
	return nil
}
