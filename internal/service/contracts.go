package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/tracking"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// ZoneRepository - хранилище зон вместе с кэшем зон по локации
type ZoneRepository interface {
	CreateZone(ctx context.Context, zone *models.GeofenceZone) error
	GetZone(ctx context.Context, id uuid.UUID) (*models.GeofenceZone, error)
	ListActiveZones(ctx context.Context, locationID string) ([]models.GeofenceZone, error)
	DeactivateZone(ctx context.Context, id uuid.UUID) error
	GetZonesFromCache(ctx context.Context, locationID string) ([]models.GeofenceZone, error)
	SetZonesCache(ctx context.Context, locationID string, zones []models.GeofenceZone) error
	InvalidateZonesCache(ctx context.Context, locationID string) error
}

// ViolationRepository - журнал нарушений геозон
type ViolationRepository interface {
	LogViolation(ctx context.Context, event models.ViolationEvent, employeeID, locationID string) error
}

// BreakRepository - хранилище перерывов
type BreakRepository interface {
	SaveBreak(ctx context.Context, session *models.BreakSession) error
	ListBreaks(ctx context.Context, timeEntryID string) ([]models.BreakSession, error)
	ListActiveBreaks(ctx context.Context) ([]models.BreakSession, error)
}

// AlertNotifier доставляет руководителям нарушения и превышения перерывов
type AlertNotifier interface {
	Name() string
	NotifyViolation(ctx context.Context, event models.ViolationEvent) error
	NotifyBreakPolicy(ctx context.Context, v models.BreakPolicyViolation) error
}

// BreakTimer ведет перерывы и их лимит длительности
type BreakTimer interface {
	StartBreak(ctx context.Context, employeeID, timeEntryID string, kind models.BreakKind) (models.BreakSession, error)
	EndBreak(ctx context.Context, sessionID uuid.UUID) (models.BreakSession, error)
	EndActiveBreak(ctx context.Context, timeEntryID string) (models.BreakSession, error)
	Summary(ctx context.Context, timeEntryID string) (models.BreakSummary, error)
}

// Tracker выполняет периодические проверки местоположения сотрудников на смене
type Tracker interface {
	StartTracking(ctx context.Context, employeeID, locationID string, onViolation func(models.ViolationEvent)) (tracking.CancelFunc, error)
	StopTracking(employeeID string) bool
	Snapshot(employeeID string) (tracking.Snapshot, bool)
}
