package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/attendance_guard/internal/geo"
	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/ratelimit"
	"github.com/shenikar/attendance_guard/internal/tracking"
	"github.com/shenikar/attendance_guard/internal/wifi"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=guard.go -destination=mocks/mock_guard.go -package=mocks

// AttendanceGuard - точка входа прикладного слоя: проверки местоположения,
// защита отметок, перерывы и отслеживание.
type AttendanceGuard interface {
	ValidateLocation(ctx context.Context, loc models.Coordinate, zoneID uuid.UUID) (models.ValidationResult, error)
	ValidateAgainstZones(ctx context.Context, loc models.Coordinate, locationID string) (models.MultiZoneResult, error)
	DetectViolation(previous *models.Coordinate, current models.Coordinate, zone models.GeofenceZone) (models.ViolationEvent, bool)
	VerifyWiFi(observed *models.WiFiNetwork, expectedBSSIDs, expectedSSIDs []string, strict bool) models.WiFiMatch
	CheckRateLimit(subjectID string, action models.ClockAction) (bool, int)
	ClearRateLimit(subjectID string, action models.ClockAction)
	VerifyClockAction(ctx context.Context, req models.ClockRequest) (models.ClockVerdict, error)

	StartBreak(ctx context.Context, employeeID, timeEntryID string, kind models.BreakKind) (models.BreakSession, error)
	EndBreak(ctx context.Context, sessionID uuid.UUID) (models.BreakSession, error)
	BreakSummary(ctx context.Context, timeEntryID string) (models.BreakSummary, error)

	StartTracking(ctx context.Context, employeeID, locationID string, onViolation func(models.ViolationEvent)) (tracking.CancelFunc, error)
	StopTracking(employeeID string) bool
	TrackingSnapshot(employeeID string) (tracking.Snapshot, bool)

	CreateZone(ctx context.Context, zone *models.GeofenceZone) error
	ListZones(ctx context.Context, locationID string) ([]models.GeofenceZone, error)
	DeactivateZone(ctx context.Context, id uuid.UUID) error
}

// Options - настройки AttendanceGuard
type Options struct {
	AccuracyPolicy geo.AccuracyPolicy
	// WiFiStrict применяется к зонам, у которых не задан StrictWiFi
	WiFiStrict bool
}

type attendanceGuard struct {
	zones   *ZoneCatalog
	limiter *ratelimit.Limiter
	breaks  BreakTimer
	tracker Tracker
	logger  *logrus.Logger
	policy  geo.AccuracyPolicy
	strict  bool
}

// NewAttendanceGuard создает новый экземпляр AttendanceGuard
func NewAttendanceGuard(zones *ZoneCatalog, limiter *ratelimit.Limiter, breaks BreakTimer, tracker Tracker, logger *logrus.Logger, opts Options) AttendanceGuard {
	if opts.AccuracyPolicy == "" {
		opts.AccuracyPolicy = geo.AccuracyPolicyWarn
	}
	return &attendanceGuard{
		zones:   zones,
		limiter: limiter,
		breaks:  breaks,
		tracker: tracker,
		logger:  logger,
		policy:  opts.AccuracyPolicy,
		strict:  opts.WiFiStrict,
	}
}

// ValidateLocation проверяет координату относительно одной активной зоны
func (s *attendanceGuard) ValidateLocation(ctx context.Context, loc models.Coordinate, zoneID uuid.UUID) (models.ValidationResult, error) {
	zone, err := s.zones.GetZone(ctx, zoneID)
	if err != nil {
		return models.ValidationResult{}, err
	}
	if err := zone.Validate(); err != nil {
		return models.ValidationResult{}, fmt.Errorf("service: %w", err)
	}
	return s.policy.Apply(geo.Validate(loc, *zone)), nil
}

// ValidateAgainstZones проверяет координату относительно всех активных зон локации
func (s *attendanceGuard) ValidateAgainstZones(ctx context.Context, loc models.Coordinate, locationID string) (models.MultiZoneResult, error) {
	zones, err := s.loadZones(ctx, locationID)
	if err != nil {
		return models.MultiZoneResult{}, err
	}
	return s.policy.ApplyAll(geo.ValidateAll(loc, zones), zones), nil
}

func (s *attendanceGuard) DetectViolation(previous *models.Coordinate, current models.Coordinate, zone models.GeofenceZone) (models.ViolationEvent, bool) {
	return geo.Detect(previous, current, zone)
}

func (s *attendanceGuard) VerifyWiFi(observed *models.WiFiNetwork, expectedBSSIDs, expectedSSIDs []string, strict bool) models.WiFiMatch {
	return wifi.Verify(observed, expectedBSSIDs, expectedSSIDs, strict)
}

// CheckRateLimit фиксирует попытку действия и сообщает, прошел ли интервал ожидания
func (s *attendanceGuard) CheckRateLimit(subjectID string, action models.ClockAction) (bool, int) {
	allowed, remaining := s.limiter.Check(subjectID, string(action))
	if !allowed {
		metrics.IncRateLimitRejection(string(action))
		s.logger.WithFields(logrus.Fields{
			"service":           "guard",
			"method":            "CheckRateLimit",
			"subject_id":        subjectID,
			"action":            action,
			"remaining_seconds": remaining,
		}).Info("Attempt rejected by cooldown")
	}
	return allowed, remaining
}

// ClearRateLimit снимает интервал ожидания с действия сотрудника,
// при пустом action со всех его действий
func (s *attendanceGuard) ClearRateLimit(subjectID string, action models.ClockAction) {
	s.limiter.Clear(subjectID, string(action))
	s.logger.WithFields(logrus.Fields{
		"service":    "guard",
		"method":     "ClearRateLimit",
		"subject_id": subjectID,
		"action":     action,
	}).Info("Cooldown cleared")
}

// VerifyClockAction проверяет интервал ожидания, затем нахождение в зоне, затем
// WiFi найденной зоны. Отклоненные по интервалу попытки не доходят до справочника зон.
// Принятый clock_out закрывает незавершенный перерыв и останавливает отслеживание.
func (s *attendanceGuard) VerifyClockAction(ctx context.Context, req models.ClockRequest) (models.ClockVerdict, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "guard",
		"method":      "VerifyClockAction",
		"employee_id": req.EmployeeID,
		"location_id": req.LocationID,
		"action":      req.Action,
	})

	if req.EmployeeID == "" || req.LocationID == "" {
		return models.ClockVerdict{}, errors.New("service: employee and location are required")
	}

	if allowed, remaining := s.CheckRateLimit(req.EmployeeID, req.Action); !allowed {
		return models.ClockVerdict{}, &models.RateLimitError{
			Action:           humanAction(req.Action),
			RemainingSeconds: remaining,
		}
	}

	zones, err := s.loadZones(ctx, req.LocationID)
	if err != nil {
		log.WithError(err).Warn("Cannot verify clock action without zones")
		return models.ClockVerdict{}, err
	}

	result := s.policy.ApplyAll(geo.ValidateAll(req.Coordinate, zones), zones)
	verdict := models.ClockVerdict{Closest: result.Closest}

	if !result.InAnyZone() {
		verdict.Reasons = append(verdict.Reasons, outsideReason(result))
		if result.Closest != nil {
			verdict.AccuracyWarning = result.PerZone[result.Closest.ZoneID].AccuracyWarning
			if result.PerZone[result.Closest.ZoneID].AccuracyBlocked {
				verdict.Reasons = append(verdict.Reasons, "GPS accuracy is too low for this site")
			}
		}
		log.WithField("reasons", verdict.Reasons).Info("Clock action rejected")
		return verdict, nil
	}

	zoneID := result.InZoneIDs[0]
	verdict.MatchedZoneID = &zoneID
	verdict.AccuracyWarning = result.PerZone[zoneID].AccuracyWarning

	zone := findZone(zones, zoneID)
	if len(zone.ExpectedBSSIDs) > 0 || len(zone.ExpectedSSIDs) > 0 {
		match := s.VerifyWiFi(req.WiFi, zone.ExpectedBSSIDs, zone.ExpectedSSIDs, zone.WiFiStrict(s.strict))
		verdict.WiFi = &match
		if !match.Matched {
			verdict.Reasons = append(verdict.Reasons, fmt.Sprintf("WiFi network could not confirm presence (confidence %s)", match.Confidence))
			log.WithField("reasons", verdict.Reasons).Info("Clock action rejected")
			return verdict, nil
		}
	}

	verdict.Allowed = true
	if req.Action == models.ClockActionOut {
		s.closeShift(ctx, log, req, &verdict)
	}
	log.WithField("zone_id", zoneID).Info("Clock action verified")
	return verdict, nil
}

// closeShift завершает перерыв, оставшийся открытым к уходу, и останавливает
// отслеживание сотрудника. Ошибки не отменяют уже принятую отметку.
func (s *attendanceGuard) closeShift(ctx context.Context, log *logrus.Entry, req models.ClockRequest, verdict *models.ClockVerdict) {
	if req.TimeEntryID != "" {
		ended, err := s.breaks.EndActiveBreak(ctx, req.TimeEntryID)
		switch {
		case err == nil:
			verdict.EndedBreak = &ended
			log.WithField("session_id", ended.ID).Info("Open break ended on clock out")
		case !errors.Is(err, models.ErrNoActiveBreak):
			log.WithError(err).Error("Failed to end open break on clock out")
		}
	}
	verdict.TrackingStopped = s.tracker.StopTracking(req.EmployeeID)
}

func (s *attendanceGuard) StartBreak(ctx context.Context, employeeID, timeEntryID string, kind models.BreakKind) (models.BreakSession, error) {
	if employeeID == "" || timeEntryID == "" {
		return models.BreakSession{}, errors.New("service: employee and time entry are required")
	}
	session, err := s.breaks.StartBreak(ctx, employeeID, timeEntryID, kind)
	if err != nil {
		return session, fmt.Errorf("service: %w", err)
	}
	return session, nil
}

func (s *attendanceGuard) EndBreak(ctx context.Context, sessionID uuid.UUID) (models.BreakSession, error) {
	session, err := s.breaks.EndBreak(ctx, sessionID)
	if err != nil {
		return session, fmt.Errorf("service: %w", err)
	}
	return session, nil
}

// BreakSummary возвращает перерывы записи рабочего времени и сумму завершенных
func (s *attendanceGuard) BreakSummary(ctx context.Context, timeEntryID string) (models.BreakSummary, error) {
	summary, err := s.breaks.Summary(ctx, timeEntryID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":       "guard",
			"method":        "BreakSummary",
			"time_entry_id": timeEntryID,
		}).WithError(err).Error("Failed to load breaks")
		return models.BreakSummary{}, fmt.Errorf("service: %w", err)
	}
	return summary, nil
}

func (s *attendanceGuard) StartTracking(ctx context.Context, employeeID, locationID string, onViolation func(models.ViolationEvent)) (tracking.CancelFunc, error) {
	cancel, err := s.tracker.StartTracking(ctx, employeeID, locationID, onViolation)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "guard",
			"method":      "StartTracking",
			"employee_id": employeeID,
			"location_id": locationID,
		}).WithError(err).Warn("Tracking not started")
		return nil, fmt.Errorf("service: %w", err)
	}
	return cancel, nil
}

func (s *attendanceGuard) StopTracking(employeeID string) bool {
	return s.tracker.StopTracking(employeeID)
}

func (s *attendanceGuard) TrackingSnapshot(employeeID string) (tracking.Snapshot, bool) {
	return s.tracker.Snapshot(employeeID)
}

func (s *attendanceGuard) CreateZone(ctx context.Context, zone *models.GeofenceZone) error {
	return s.zones.CreateZone(ctx, zone)
}

func (s *attendanceGuard) ListZones(ctx context.Context, locationID string) ([]models.GeofenceZone, error) {
	return s.zones.ZonesForLocation(ctx, locationID)
}

func (s *attendanceGuard) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	return s.zones.DeactivateZone(ctx, id)
}

// loadZones возвращает зоны локации. Ошибка, если зон нет или хотя бы одна некорректна.
func (s *attendanceGuard) loadZones(ctx context.Context, locationID string) ([]models.GeofenceZone, error) {
	zones, err := s.zones.ZonesForLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("service: location %s: %w", locationID, models.ErrNoZones)
	}
	if err := models.ValidateZones(zones); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return zones, nil
}

func findZone(zones []models.GeofenceZone, id uuid.UUID) models.GeofenceZone {
	for _, z := range zones {
		if z.ID == id {
			return z
		}
	}
	return models.GeofenceZone{}
}

func outsideReason(result models.MultiZoneResult) string {
	if result.Closest == nil {
		return "location is outside every zone of this site"
	}
	return fmt.Sprintf("location is outside every zone of this site, the closest is %.0fm away", result.Closest.DistanceMeters)
}

func humanAction(a models.ClockAction) string {
	switch a {
	case models.ClockActionIn:
		return "to clock in"
	case models.ClockActionOut:
		return "to clock out"
	case models.ClockActionBreakStart:
		return "to start a break"
	case models.ClockActionBreakEnd:
		return "to end a break"
	}
	return string(a)
}
