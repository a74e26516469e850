package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/occurrence_reporting_system/internal/config"
	"github.com/shenikar/occurrence_reporting_system/internal/export"
	"github.com/shenikar/occurrence_reporting_system/internal/models"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/shenikar/occurrence_reporting_system/internal/service AuditService,AuthService,OccurrenceService,ReferenceService

type Handler struct {
	occurrenceService service.OccurrenceService
	authService       service.AuthService
	auditService      service.AuditService
	referenceService  service.ReferenceService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	occurrenceService service.OccurrenceService,
	authService service.AuthService,
	auditService service.AuditService,
	referenceService service.ReferenceService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		occurrenceService: occurrenceService,
		authService:       authService,
		auditService:      auditService,
		referenceService:  referenceService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// bindJSON разбирает и валидирует тело запроса. При ошибке ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// requireClaims возвращает claims текущего пользователя или отвечает 401
func requireClaims(c *gin.Context) (*service.Claims, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "authorization token required"})
		return nil, false
	}
	return claims, true
}

func parseOccurrenceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid occurrence ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Log in
// @Description Authenticate with email and password and receive a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "User credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      *ModelToUserResponse(result.User),
	})
}

// @Summary Log out
// @Description Revoke the current bearer token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "logout").WithField("user_id", claims.UserID)

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the profile of the authenticated user.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "me").WithField("user_id", claims.UserID)

	user, err := h.authService.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Create a new occurrence
// @Description Register an occurrence. All missing required fields are reported at once.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param occurrence body CreateOccurrenceRequest true "Occurrence creation request"
// @Success 201 {object} OccurrenceResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences [post]
func (h *Handler) createOccurrence(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	var input CreateOccurrenceRequest
	log := h.logger.WithField("method", "createOccurrence").WithField("user_id", claims.UserID)

	if !h.bindJSON(c, log, &input) {
		return
	}

	o, err := h.occurrenceService.CreateOccurrence(c.Request.Context(), CreateRequestToInput(input), claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToOccurrenceResponse(o))
}

// @Summary Get a list of occurrences
// @Description Get a filtered, paginated list of occurrences with status counts. Operators only see their own.
// @Tags Occurrences
// @Produce json
// @Security BearerAuth
// @Param type query string false "Occurrence type"
// @Param status query string false "Occurrence status"
// @Param municipality query string false "Municipality"
// @Param neighborhood query string false "Neighborhood (partial match)"
// @Param start_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param created_by query string false "Creator user ID"
// @Param vehicle_id query string false "Vehicle ID"
// @Param search query string false "Free text search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Number of items per page" default(20)
// @Success 200 {object} OccurrenceListResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences [get]
func (h *Handler) listOccurrences(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listOccurrences").WithField("user_id", claims.UserID)

	filters, err := parseOccurrenceFilters(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	page, err := h.occurrenceService.ListOccurrences(c.Request.Context(), filters, claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PageToListResponse(page, filters))
}

// @Summary Get occurrence by ID
// @Description Get a single occurrence with its images.
// @Tags Occurrences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Success 200 {object} OccurrenceResponse
// @Failure 400 {object} ErrorResponse "Invalid occurrence ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences/{id} [get]
func (h *Handler) getOccurrence(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := parseOccurrenceID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getOccurrence").WithField("id", id)

	o, err := h.occurrenceService.GetOccurrence(c.Request.Context(), id, claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToOccurrenceResponse(o))
}

// @Summary Update an existing occurrence
// @Description Partially update an occurrence. Changes of watched fields are audited.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Param occurrence body UpdateOccurrenceRequest true "Occurrence update request"
// @Success 200 {object} OccurrenceResponse
// @Failure 400 {object} ErrorResponse "Invalid occurrence ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences/{id} [put]
func (h *Handler) updateOccurrence(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := parseOccurrenceID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateOccurrence").WithField("id", id)

	var input UpdateOccurrenceRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	o, err := h.occurrenceService.UpdateOccurrence(c.Request.Context(), id, UpdateRequestToInput(input), claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToOccurrenceResponse(o))
}

// @Summary Change occurrence status
// @Description Move an occurrence to any status. The transition is audited with a reason.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Param status body UpdateStatusRequest true "Status change request"
// @Success 200 {object} OccurrenceResponse
// @Failure 400 {object} ErrorResponse "Invalid occurrence ID or status"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := parseOccurrenceID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	o, err := h.occurrenceService.UpdateStatus(c.Request.Context(), id, models.OccurrenceStatus(input.Status), claims.UserID, input.Reason)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToOccurrenceResponse(o))
}

// @Summary Delete an occurrence
// @Description Delete an occurrence by its ID. Admin only.
// @Tags Occurrences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid occurrence ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences/{id} [delete]
func (h *Handler) deleteOccurrence(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := parseOccurrenceID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteOccurrence").WithField("id", id)

	if err := h.occurrenceService.DeleteOccurrence(c.Request.Context(), id, claims.UserID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Attach an image
// @Description Attach an image URL to an occurrence.
// @Tags Occurrences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occurrence ID"
// @Param image body AddImageRequest true "Image"
// @Success 201 {object} ImageResponse
// @Failure 400 {object} ErrorResponse "Invalid occurrence ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Occurrence not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences/{id}/images [post]
func (h *Handler) addImage(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := parseOccurrenceID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addImage").WithField("id", id)

	var input AddImageRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	img, err := h.occurrenceService.AddImage(c.Request.Context(), id, input.URL, input.Description, claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToImageResponse(img))
}

// @Summary Get occurrence statistics
// @Description Aggregated counts by status, type, municipality and month. Never fails: returns zeros on error.
// @Tags Occurrences
// @Produce json
// @Security BearerAuth
// @Param type query string false "Occurrence type"
// @Param status query string false "Occurrence status"
// @Param municipality query string false "Municipality"
// @Param neighborhood query string false "Neighborhood (partial match)"
// @Param start_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param created_by query string false "Creator user ID"
// @Param vehicle_id query string false "Vehicle ID"
// @Param search query string false "Free text search"
// @Success 200 {object} models.Statistics
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /occurrences/stats [get]
func (h *Handler) getStatistics(c *gin.Context) {
	if _, ok := requireClaims(c); !ok {
		return
	}
	log := h.logger.WithField("method", "getStatistics")

	filters, err := parseOccurrenceFilters(c)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.occurrenceService.GetStatistics(c.Request.Context(), filters))
}

// @Summary Export occurrences
// @Description Download all matching occurrences as an XLSX report. Admin and supervisor only.
// @Tags Occurrences
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param type query string false "Occurrence type"
// @Param status query string false "Occurrence status"
// @Param municipality query string false "Municipality"
// @Param start_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /occurrences/export [get]
func (h *Handler) exportOccurrences(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "exportOccurrences").WithField("user_id", claims.UserID)

	filters, err := parseOccurrenceFilters(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	items, err := h.occurrenceService.ExportOccurrences(c.Request.Context(), filters, claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}

	data, err := export.OccurrencesXLSX(items)
	if err != nil {
		respondError(c, log, err)
		return
	}

	filename := fmt.Sprintf("ocorrencias_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

// @Summary List vehicles
// @Description Reference list of vehicles.
// @Tags Reference
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active vehicles" default(true)
// @Success 200 {array} VehicleResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	log := h.logger.WithField("method", "listVehicles")

	vehicles, err := h.referenceService.ListVehicles(c.Request.Context(), parseBoolQuery(c, "active", true))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToVehicleResponses(vehicles))
}

// @Summary List municipalities
// @Description Reference list of municipalities.
// @Tags Reference
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active municipalities" default(true)
// @Success 200 {array} MunicipalityResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /municipalities [get]
func (h *Handler) listMunicipalities(c *gin.Context) {
	log := h.logger.WithField("method", "listMunicipalities")

	municipalities, err := h.referenceService.ListMunicipalities(c.Request.Context(), parseBoolQuery(c, "active", true))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMunicipalityResponses(municipalities))
}

// @Summary Search audit logs
// @Description Search the append-only audit log. Admin only.
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Acting user ID"
// @Param action query string false "Action"
// @Param entity query string false "Entity"
// @Param entity_id query string false "Entity ID"
// @Param from query string false "From (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "To (RFC3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} AuditLogListResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /audit-logs [get]
func (h *Handler) listAuditLogs(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listAuditLogs").WithField("user_id", claims.UserID)

	filters, err := parseAuditLogFilters(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	page, err := h.auditService.SearchAuditLogs(c.Request.Context(), filters, claims.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AuditPageToListResponse(page, filters))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
