package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
)

type OccurrenceRepository struct {
	db          DB
	redisClient *redis.Client
}

func NewOccurrenceRepository(db DB, redisClient *redis.Client) service.OccurrenceRepository {
	return &OccurrenceRepository{
		db:          db,
		redisClient: redisClient,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOccurrence(row rowScanner) (*models.Occurrence, error) {
	o := &models.Occurrence{Images: []models.OccurrenceImage{}}
	var (
		userName, userEmail, userRole *string
		vehiclePlate, vehicleName     *string
	)
	err := row.Scan(
		&o.ID,
		&o.Type,
		&o.Status,
		&o.Municipality,
		&o.Neighborhood,
		&o.Address,
		&o.Description,
		&o.VictimName,
		&o.VehicleNumber,
		&o.OccurrenceDate,
		&o.ActivationDate,
		&o.VehicleID,
		&o.CreatedByID,
		&o.CreatedAt,
		&o.UpdatedAt,
		&userName,
		&userEmail,
		&userRole,
		&vehiclePlate,
		&vehicleName,
	)
	if err != nil {
		return nil, err
	}

	if userName != nil {
		o.CreatedBy = &models.User{ID: o.CreatedByID, Name: *userName}
		if userEmail != nil {
			o.CreatedBy.Email = *userEmail
		}
		if userRole != nil {
			o.CreatedBy.Role = models.Role(*userRole)
		}
	}
	if o.VehicleID != nil && vehiclePlate != nil {
		o.Vehicle = &models.Vehicle{ID: *o.VehicleID, Plate: *vehiclePlate, Active: true}
		if vehicleName != nil {
			o.Vehicle.Name = *vehicleName
		}
	}
	return o, nil
}

// Create создает новое происшествие в бд
func (r *OccurrenceRepository) Create(ctx context.Context, o *models.Occurrence) error {
	query := `
		INSERT INTO occurrences (
			type, status, municipality, neighborhood, address, description,
			victim_name, vehicle_number, occurrence_date, activation_date, vehicle_id, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		o.Type,
		o.Status,
		o.Municipality,
		o.Neighborhood,
		o.Address,
		o.Description,
		o.VictimName,
		o.VehicleNumber,
		o.OccurrenceDate,
		o.ActivationDate,
		o.VehicleID,
		o.CreatedByID,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create occurrence: %w", err)
	}
	if o.Images == nil {
		o.Images = []models.OccurrenceImage{}
	}
	return nil
}

// GetByID возвращает происшествие вместе с автором, машиной и изображениями
func (r *OccurrenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	query := "SELECT" + occurrenceColumns + occurrenceFrom + " WHERE o.id = $1"
	o, err := scanOccurrence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("occurrence with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get occurrence by id: %w", err)
	}

	if err := r.attachImages(ctx, []*models.Occurrence{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OccurrenceRepository) Update(ctx context.Context, o *models.Occurrence) error {
	query := `
		UPDATE occurrences SET
			type = $1,
			status = $2,
			municipality = $3,
			neighborhood = $4,
			address = $5,
			description = $6,
			victim_name = $7,
			vehicle_number = $8,
			occurrence_date = $9,
			activation_date = $10,
			vehicle_id = $11,
			updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		o.Type,
		o.Status,
		o.Municipality,
		o.Neighborhood,
		o.Address,
		o.Description,
		o.VictimName,
		o.VehicleNumber,
		o.OccurrenceDate,
		o.ActivationDate,
		o.VehicleID,
		o.ID,
	).Scan(&o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("occurrence with id %s not found for update: %w", o.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update occurrence: %w", err)
	}
	return nil
}

// UpdateStatus меняет только статус
func (r *OccurrenceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OccurrenceStatus) error {
	query := `
		UPDATE occurrences SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update occurrence status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("occurrence with id %s not found for status update: %w", id, models.ErrNotFound)
	}
	return nil
}

// Delete удаляет происшествие. Изображения удаляются каскадно.
func (r *OccurrenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM occurrences WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete occurrence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("occurrence with id %s not found for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// AddImage прикрепляет изображение к происшествию
func (r *OccurrenceRepository) AddImage(ctx context.Context, img *models.OccurrenceImage) error {
	query := `
		INSERT INTO occurrence_images (occurrence_id, url, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, img.OccurrenceID, img.URL, img.Description).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add occurrence image: %w", err)
	}
	return nil
}

// FindWithFilters возвращает страницу происшествий, общее количество до пагинации
// и разбивку по статусам с теми же фильтрами
func (r *OccurrenceRepository) FindWithFilters(ctx context.Context, filters models.OccurrenceFilters) (*models.OccurrencePage, error) {
	filters = filters.Normalize()

	countQuery, countArgs := countOccurrencesQuery(filters)
	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count occurrences: %w", err)
	}

	query, args := listOccurrencesQuery(filters)
	items, err := r.queryOccurrences(ctx, query, args)
	if err != nil {
		return nil, err
	}

	counts, err := r.GetStatusCounts(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &models.OccurrencePage{
		Items:  items,
		Total:  total,
		Counts: *counts,
	}, nil
}

// FindAll возвращает все происшествия по фильтрам без пагинации, не более maxRows
func (r *OccurrenceRepository) FindAll(ctx context.Context, filters models.OccurrenceFilters, maxRows int) ([]*models.Occurrence, error) {
	query, args := exportOccurrencesQuery(filters, maxRows)
	return r.queryOccurrences(ctx, query, args)
}

func (r *OccurrenceRepository) queryOccurrences(ctx context.Context, query string, args []any) ([]*models.Occurrence, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	defer rows.Close()

	occurrences := make([]*models.Occurrence, 0)
	for rows.Next() {
		o, err := scanOccurrence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan occurrence row: %w", err)
		}
		occurrences = append(occurrences, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	if err := r.attachImages(ctx, occurrences); err != nil {
		return nil, err
	}
	return occurrences, nil
}

// attachImages загружает изображения одним запросом для всех переданных происшествий
func (r *OccurrenceRepository) attachImages(ctx context.Context, occurrences []*models.Occurrence) error {
	if len(occurrences) == 0 {
		return nil
	}

	ids := make([]string, len(occurrences))
	byID := make(map[uuid.UUID]*models.Occurrence, len(occurrences))
	for i, o := range occurrences {
		ids[i] = o.ID.String()
		byID[o.ID] = o
	}

	query := `
		SELECT id, occurrence_id, url, description, created_at
		FROM occurrence_images
		WHERE occurrence_id = ANY($1::uuid[])
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load occurrence images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.OccurrenceImage
		if err := rows.Scan(&img.ID, &img.OccurrenceID, &img.URL, &img.Description, &img.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan occurrence image row: %w", err)
		}
		if o, ok := byID[img.OccurrenceID]; ok {
			o.Images = append(o.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error image iteration: %w", err)
	}
	return nil
}

// GetStatusCounts считает происшествия по статусам. Фильтр по статусу не применяется,
// NULL-статус учитывается как "aberto".
func (r *OccurrenceRepository) GetStatusCounts(ctx context.Context, filters models.OccurrenceFilters) (*models.StatusCounts, error) {
	query, args := statusCountsQuery(filters)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	defer rows.Close()

	counts := &models.StatusCounts{}
	for rows.Next() {
		var (
			status pgtype.Text
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts.Total += count
		counts.Add(statusOrOpen(status), count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error status count iteration: %w", err)
	}
	return counts, nil
}

// GetTypeCounts считает происшествия по типам, NULL-тип учитывается как "outros"
func (r *OccurrenceRepository) GetTypeCounts(ctx context.Context, filters models.OccurrenceFilters) (map[models.OccurrenceType]int, error) {
	query, args := typeCountsQuery(filters)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get type counts: %w", err)
	}
	defer rows.Close()

	result := make(map[models.OccurrenceType]int)
	for rows.Next() {
		var (
			occurrenceType pgtype.Text
			count          int
		)
		if err := rows.Scan(&occurrenceType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count row: %w", err)
		}
		result[typeOrOther(occurrenceType)] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error type count iteration: %w", err)
	}
	return result, nil
}

// GetMunicipalityCounts возвращает муниципалитеты по убыванию количества происшествий
func (r *OccurrenceRepository) GetMunicipalityCounts(ctx context.Context, filters models.OccurrenceFilters) ([]models.MunicipalityCount, error) {
	query, args := municipalityCountsQuery(filters)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get municipality counts: %w", err)
	}
	defer rows.Close()

	result := make([]models.MunicipalityCount, 0)
	for rows.Next() {
		var item models.MunicipalityCount
		if err := rows.Scan(&item.Name, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan municipality count row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error municipality count iteration: %w", err)
	}
	return result, nil
}

// GetMonthlyStats возвращает не более шести последних месяцев по убыванию
func (r *OccurrenceRepository) GetMonthlyStats(ctx context.Context, filters models.OccurrenceFilters) ([]models.MonthlyCount, error) {
	query, args := monthlyStatsQuery(filters)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	defer rows.Close()

	result := make([]models.MonthlyCount, 0, 6)
	for rows.Next() {
		var (
			month string
			count int
		)
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly stats row: %w", err)
		}
		label, err := monthLabel(month)
		if err != nil {
			return nil, err
		}
		result = append(result, models.MonthlyCount{Month: label, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error monthly stats iteration: %w", err)
	}
	return result, nil
}

// statusOrOpen - NULL-статус считается "aberto"
func statusOrOpen(v pgtype.Text) models.OccurrenceStatus {
	if !v.Valid {
		return models.StatusOpen
	}
	return models.OccurrenceStatus(v.String)
}

// typeOrOther - NULL-тип считается "outros"
func typeOrOther(v pgtype.Text) models.OccurrenceType {
	if !v.Valid {
		return models.TypeOther
	}
	return models.OccurrenceType(v.String)
}
