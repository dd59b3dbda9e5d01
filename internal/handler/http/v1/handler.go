package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/attendance_guard/internal/config"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/service"
	"github.com/sirupsen/logrus"
)

// Handler - HTTP-обработчики API v1
type Handler struct {
	guard    service.AttendanceGuard
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

// NewHandler создает новый экземпляр Handler
func NewHandler(guard service.AttendanceGuard, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		guard:    guard,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bind разбирает и валидирует JSON тела запроса, при ошибке отвечает 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Create a geofence zone
// @Description Create a zone for a location. Expected BSSIDs are hashed before storage. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToZoneModel(input)
	if err := h.guard.CreateZone(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(model))
}

// @Summary List the zones of a location
// @Description List the active zones of a location. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param location_id path string true "Location ID"
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{location_id}/zones [get]
func (h *Handler) listZones(c *gin.Context) {
	locationID := c.Param("location_id")
	log := h.logger.WithField("method", "listZones").WithField("location_id", locationID)

	zones, err := h.guard.ListZones(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Deactivate a zone
// @Description Deactivate a zone so it no longer takes part in validation. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deactivateZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "deactivateZone").WithField("id", id)

	if err := h.guard.DeactivateZone(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Validate a location against one zone
// @Description Distance, membership and warning band of a sample for a single zone. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ValidateLocationRequest true "Sample and zone"
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /location/validate [post]
func (h *Handler) validateLocation(c *gin.Context) {
	var input ValidateLocationRequest
	log := h.logger.WithField("method", "validateLocation")
	if !h.bind(c, log, &input) {
		return
	}

	zoneID, err := uuid.Parse(input.ZoneID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}

	result, err := h.guard.ValidateLocation(c.Request.Context(), DTOToCoordinate(input.Coordinate), zoneID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Check a location against all zones of a site
// @Description Membership set and closest zone of a sample. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CheckLocationRequest true "Sample and location"
// @Success 200 {object} models.MultiZoneResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 422 {object} map[string]string "Location has no zones"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input CheckLocationRequest
	log := h.logger.WithField("method", "checkLocation")
	if !h.bind(c, log, &input) {
		return
	}

	result, err := h.guard.ValidateAgainstZones(c.Request.Context(), DTOToCoordinate(input.Coordinate), input.LocationID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Verify a WiFi network
// @Description Match an observed access point against expected BSSIDs and SSIDs. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body VerifyWiFiRequest true "Observed and expected networks"
// @Success 200 {object} models.WiFiMatch
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /wifi/verify [post]
func (h *Handler) verifyWiFi(c *gin.Context) {
	var input VerifyWiFiRequest
	log := h.logger.WithField("method", "verifyWiFi")
	if !h.bind(c, log, &input) {
		return
	}

	strict := h.cfg.WiFiStrict
	if input.Strict != nil {
		strict = *input.Strict
	}

	match := h.guard.VerifyWiFi(DTOToWiFiNetwork(input.Observed), input.ExpectedBSSIDs, input.ExpectedSSIDs, strict)
	c.JSON(http.StatusOK, match)
}

// @Summary Verify a clock action
// @Description Apply the cooldown, zone membership and WiFi checks to a clock-in/out or break action. Requires API key.
// @Tags Clock
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ClockVerifyRequest true "Clock action"
// @Success 200 {object} models.ClockVerdict
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 422 {object} map[string]string "Location has no zones"
// @Failure 429 {object} RateLimitedResponse "Action repeated inside the cooldown window"
// @Router /clock/verify [post]
func (h *Handler) verifyClock(c *gin.Context) {
	var input ClockVerifyRequest
	log := h.logger.WithField("method", "verifyClock")
	if !h.bind(c, log, &input) {
		return
	}

	verdict, err := h.guard.VerifyClockAction(c.Request.Context(), DTOToClockRequest(input))
	if err != nil {
		respondError(c, log.WithField("employee_id", input.EmployeeID), err)
		return
	}
	c.JSON(http.StatusOK, verdict)
}

// @Summary Clear a clock cooldown
// @Description Administrative override: let an employee repeat a clock action before the cooldown ends. Without action every cooldown of the employee is cleared. Requires API key.
// @Tags Clock
// @Security ApiKeyAuth
// @Param employee_id path string true "Employee ID"
// @Param action query string false "Clock action" Enums(clock_in, clock_out, break_start, break_end)
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Unknown action"
// @Router /rate-limits/{employee_id} [delete]
func (h *Handler) clearRateLimit(c *gin.Context) {
	action := models.ClockAction(c.Query("action"))
	if action != "" && !action.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown clock action"})
		return
	}
	h.guard.ClearRateLimit(c.Param("employee_id"), action)
	c.Status(http.StatusNoContent)
}

// @Summary Start a break
// @Description Start a break for a time entry. Only one break may run per time entry. Requires API key.
// @Tags Breaks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body StartBreakRequest true "Break"
// @Success 201 {object} models.BreakSession
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "A break is already running"
// @Router /breaks [post]
func (h *Handler) startBreak(c *gin.Context) {
	var input StartBreakRequest
	log := h.logger.WithField("method", "startBreak")
	if !h.bind(c, log, &input) {
		return
	}

	kind, err := models.ParseBreakKind(input.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.guard.StartBreak(c.Request.Context(), input.EmployeeID, input.TimeEntryID, kind)
	if err != nil {
		respondError(c, log.WithField("time_entry_id", input.TimeEntryID), err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// @Summary End a break
// @Description End a running break and record its duration. Requires API key.
// @Tags Breaks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Break session ID"
// @Success 200 {object} models.BreakSession
// @Failure 400 {object} map[string]string "Invalid break ID"
// @Failure 409 {object} map[string]string "No active break"
// @Router /breaks/{id}/end [post]
func (h *Handler) endBreak(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid break ID"})
		return
	}
	log := h.logger.WithField("method", "endBreak").WithField("id", id)

	session, err := h.guard.EndBreak(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// @Summary List the breaks of a time entry
// @Description Breaks of a time entry with the total of the completed ones. Requires API key.
// @Tags Breaks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Time entry ID"
// @Success 200 {object} models.BreakSummary
// @Failure 500 {object} map[string]string "Break history unavailable"
// @Router /time-entries/{id}/breaks [get]
func (h *Handler) listBreaks(c *gin.Context) {
	log := h.logger.WithField("method", "listBreaks").WithField("time_entry_id", c.Param("id"))

	summary, err := h.guard.BreakSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Start tracking an employee
// @Description Start periodic location checks of a clocked-in employee. Requires API key.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body StartTrackingRequest true "Employee and location"
// @Success 202 {object} map[string]string "Tracking started"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Tracking already active"
// @Failure 422 {object} map[string]string "Location has no zones"
// @Router /tracking [post]
func (h *Handler) startTracking(c *gin.Context) {
	var input StartTrackingRequest
	log := h.logger.WithField("method", "startTracking")
	if !h.bind(c, log, &input) {
		return
	}

	// нарушения уходят в хранилище и каналы оповещений, HTTP-клиенты опрашивают снимок
	if _, err := h.guard.StartTracking(c.Request.Context(), input.EmployeeID, input.LocationID, nil); err != nil {
		respondError(c, log.WithField("employee_id", input.EmployeeID), err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "tracking", "employee_id": input.EmployeeID})
}

// @Summary Get tracking state
// @Description Latest sample and validation of a tracked employee. Requires API key.
// @Tags Tracking
// @Produce json
// @Security ApiKeyAuth
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} tracking.Snapshot
// @Failure 404 {object} map[string]string "Employee is not tracked"
// @Router /tracking/{employee_id} [get]
func (h *Handler) getTracking(c *gin.Context) {
	snapshot, ok := h.guard.TrackingSnapshot(c.Param("employee_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee is not tracked"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Stop tracking an employee
// @Description Stop the location checks of an employee. Stopping twice is not an error. Requires API key.
// @Tags Tracking
// @Security ApiKeyAuth
// @Param employee_id path string true "Employee ID"
// @Success 204 "No Content"
// @Router /tracking/{employee_id} [delete]
func (h *Handler) stopTracking(c *gin.Context) {
	employeeID := c.Param("employee_id")
	stopped := h.guard.StopTracking(employeeID)
	h.logger.WithFields(logrus.Fields{
		"method":      "stopTracking",
		"employee_id": employeeID,
		"was_running": stopped,
	}).Info("Tracking stop requested")
	c.Status(http.StatusNoContent)
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
