package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// respondError переводит ошибку сервиса в HTTP-ответ.
// Неизвестные ошибки логируются и скрываются за 500.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		validationErr *service.ValidationError
		enumErr       *service.InvalidEnumError
		notFoundErr   *service.NotFoundError
		permissionErr *service.PermissionError
	)

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error(), Fields: validationErr.Fields})
	case errors.As(err, &enumErr):
		log.WithError(err).Warn("Invalid enum value")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: enumErr.Error(), Fields: []string{enumErr.Field}, Allowed: enumErr.Allowed})
	case errors.As(err, &notFoundErr):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &permissionErr):
		log.WithError(err).Warn("Permission denied")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: permissionErr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		log.WithError(err).Warn("Authentication failed")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
