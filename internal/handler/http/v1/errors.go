package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// respondError сопоставляет доменные ошибки с кодами ответа. Сообщения об
// интервале ожидания и конфликтах перерывов можно показывать клиенту как есть.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var rlErr *models.RateLimitError
	switch {
	case errors.As(err, &rlErr):
		c.Header("Retry-After", strconv.Itoa(rlErr.RemainingSeconds))
		c.JSON(http.StatusTooManyRequests, RateLimitedResponse{
			Error:            rlErr.Error(),
			RemainingSeconds: rlErr.RemainingSeconds,
		})
	case errors.Is(err, models.ErrDuplicateActiveBreak):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNoActiveBreak):
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrNoActiveBreak.Error()})
	case errors.Is(err, models.ErrTrackingActive):
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrTrackingActive.Error()})
	case errors.Is(err, models.ErrInvalidZone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNoZones):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": models.ErrNoZones.Error()})
	case errors.Is(err, models.ErrZoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
	case errors.Is(err, models.ErrBreakNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "break session not found"})
	case errors.Is(err, models.ErrLocationUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": models.ErrLocationUnavailable.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	log.WithError(err).Warn("Request rejected")
}
