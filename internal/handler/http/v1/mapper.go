package v1

import (
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
)

// CreateRequestToInput преобразует DTO создания во входные данные сервиса
func CreateRequestToInput(req CreateOccurrenceRequest) service.CreateOccurrenceInput {
	return service.CreateOccurrenceInput{
		Type:           models.OccurrenceType(req.Type),
		Status:         models.OccurrenceStatus(req.Status),
		Municipality:   req.Municipality,
		Neighborhood:   req.Neighborhood,
		Address:        req.Address,
		Description:    req.Description,
		VictimName:     req.VictimName,
		VehicleNumber:  req.VehicleNumber,
		OccurrenceDate: req.OccurrenceDate,
		ActivationDate: req.ActivationDate,
		VehicleID:      req.VehicleID,
	}
}

// UpdateRequestToInput преобразует DTO обновления, сохраняя nil для непереданных полей
func UpdateRequestToInput(req UpdateOccurrenceRequest) service.UpdateOccurrenceInput {
	in := service.UpdateOccurrenceInput{
		Municipality:   req.Municipality,
		Neighborhood:   req.Neighborhood,
		Address:        req.Address,
		Description:    req.Description,
		VictimName:     req.VictimName,
		VehicleNumber:  req.VehicleNumber,
		OccurrenceDate: req.OccurrenceDate,
		ActivationDate: req.ActivationDate,
		VehicleID:      req.VehicleID,
		ClearVehicle:   req.ClearVehicle,
	}
	if req.Type != nil {
		t := models.OccurrenceType(*req.Type)
		in.Type = &t
	}
	if req.Status != nil {
		s := models.OccurrenceStatus(*req.Status)
		in.Status = &s
	}
	return in
}

func ModelToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Registration: u.Registration,
		Unit:         u.Unit,
	}
}

func ModelToImageResponse(img *models.OccurrenceImage) ImageResponse {
	return ImageResponse{
		ID:          img.ID,
		URL:         img.URL,
		Description: img.Description,
		CreatedAt:   img.CreatedAt,
	}
}

func ModelToVehicleResponse(v *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:     v.ID,
		Plate:  v.Plate,
		Name:   v.Name,
		Active: v.Active,
	}
}

// ModelToOccurrenceResponse преобразует доменную модель в DTO для ответа
func ModelToOccurrenceResponse(o *models.Occurrence) *OccurrenceResponse {
	resp := &OccurrenceResponse{
		ID:             o.ID,
		Type:           o.Type,
		Status:         o.Status,
		Municipality:   o.Municipality,
		Neighborhood:   o.Neighborhood,
		Address:        o.Address,
		Description:    o.Description,
		VictimName:     o.VictimName,
		VehicleNumber:  o.VehicleNumber,
		OccurrenceDate: o.OccurrenceDate,
		ActivationDate: o.ActivationDate,
		Images:         make([]ImageResponse, len(o.Images)),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for i := range o.Images {
		resp.Images[i] = ModelToImageResponse(&o.Images[i])
	}
	if o.Vehicle != nil {
		resp.Vehicle = ModelToVehicleResponse(o.Vehicle)
	}
	if o.CreatedBy != nil {
		resp.CreatedBy = ModelToUserResponse(o.CreatedBy)
	}
	return resp
}

// ModelsToOccurrenceResponses преобразует слайс моделей в слайс DTO
func ModelsToOccurrenceResponses(items []*models.Occurrence) []*OccurrenceResponse {
	responses := make([]*OccurrenceResponse, len(items))
	for i, o := range items {
		responses[i] = ModelToOccurrenceResponse(o)
	}
	return responses
}

// PageToListResponse дополняет страницу параметрами пагинации
func PageToListResponse(page *models.OccurrencePage, filters models.OccurrenceFilters) *OccurrenceListResponse {
	filters = filters.Normalize()
	totalPages := 0
	if page.Total > 0 {
		totalPages = (page.Total + filters.Limit - 1) / filters.Limit
	}
	return &OccurrenceListResponse{
		Occurrences: ModelsToOccurrenceResponses(page.Items),
		Total:       page.Total,
		Page:        filters.Page,
		Limit:       filters.Limit,
		TotalPages:  totalPages,
		Counts:      page.Counts,
	}
}

func ModelsToVehicleResponses(items []*models.Vehicle) []*VehicleResponse {
	responses := make([]*VehicleResponse, len(items))
	for i, v := range items {
		responses[i] = ModelToVehicleResponse(v)
	}
	return responses
}

func ModelsToMunicipalityResponses(items []*models.Municipality) []*MunicipalityResponse {
	responses := make([]*MunicipalityResponse, len(items))
	for i, m := range items {
		responses[i] = &MunicipalityResponse{ID: m.ID, Name: m.Name, Active: m.Active}
	}
	return responses
}

func AuditPageToListResponse(page *models.AuditLogPage, filters models.AuditLogFilters) *AuditLogListResponse {
	filters = filters.Normalize()
	items := make([]*AuditLogResponse, len(page.Items))
	for i, e := range page.Items {
		items[i] = &AuditLogResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Changes:   e.Changes,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		}
	}
	return &AuditLogListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}
}
