package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	ActionLogin    AuditAction = "login"
	ActionLogout   AuditAction = "logout"
	ActionCreate   AuditAction = "create"
	ActionUpdate   AuditAction = "update"
	ActionDelete   AuditAction = "delete"
	ActionDownload AuditAction = "download"
)

type AuditEntity string

const (
	EntityUser       AuditEntity = "user"
	EntityOccurrence AuditEntity = "occurrence"
	EntityReport     AuditEntity = "report"
	EntityVehicle    AuditEntity = "vehicle"
)

// AuditLog - неизменяемая запись журнала аудита. Записи только добавляются.
type AuditLog struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Action    AuditAction            `json:"action"`
	Entity    AuditEntity            `json:"entity"`
	EntityID  *uuid.UUID             `json:"entity_id,omitempty"`
	Changes   map[string]FieldChange `json:"changes,omitempty"`
	Details   map[string]any         `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// FieldChange - изменение одного отслеживаемого поля
type FieldChange struct {
	From ChangeValue `json:"from"`
	To   ChangeValue `json:"to"`
}

// ValueKind - тег для ChangeValue
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindTime
)

// ChangeValue хранит примитивное значение поля до/после изменения.
// Сериализуется в JSON как сам примитив.
type ChangeValue struct {
	Kind   ValueKind
	String string
	Number float64
	Bool   bool
	Time   time.Time
}

func NullValue() ChangeValue { return ChangeValue{Kind: KindNull} }
func StringValue(s string) ChangeValue { return ChangeValue{Kind: KindString, String: s} }
func NumberValue(n float64) ChangeValue { return ChangeValue{Kind: KindNumber, Number: n} }
func BoolValue(b bool) ChangeValue { return ChangeValue{Kind: KindBool, Bool: b} }
func TimeValue(t time.Time) ChangeValue { return ChangeValue{Kind: KindTime, Time: t} }

// Equal сравнивает значения с учетом тега
func (v ChangeValue) Equal(other ChangeValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.String == other.String
	case KindNumber:
		return v.Number == other.Number
	case KindBool:
		return v.Bool == other.Bool
	case KindTime:
		return v.Time.Equal(other.Time)
	}
	return true
}

func (v ChangeValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.String)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindTime:
		return json.Marshal(v.Time.UTC().Format(time.RFC3339Nano))
	}
	return nil, fmt.Errorf("unknown change value kind %d", v.Kind)
}

// UnmarshalJSON восстанавливает тег по типу JSON-значения.
// Строки в формате RFC3339 считаются временем.
func (v *ChangeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = NullValue()
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, val); err == nil {
			*v = TimeValue(t)
			return nil
		}
		*v = StringValue(val)
	case float64:
		*v = NumberValue(val)
	case bool:
		*v = BoolValue(val)
	default:
		return fmt.Errorf("unsupported change value %s", string(data))
	}
	return nil
}

// AuditLogFilters - параметры поиска по журналу аудита
type AuditLogFilters struct {
	UserID   *uuid.UUID
	Action   AuditAction
	Entity   AuditEntity
	EntityID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// Normalize подставляет значения пагинации по умолчанию
func (f AuditLogFilters) Normalize() AuditLogFilters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultLimit
	}
	if f.PageSize > MaxLimit {
		f.PageSize = MaxLimit
	}
	return f
}

// Offset возвращает смещение для текущей страницы
func (f AuditLogFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// AuditLogPage - страница журнала аудита
type AuditLogPage struct {
	Items []*AuditLog `json:"items"`
	Total int         `json:"total"`
}
