// Package tracking периодически проверяет местоположение отметившихся сотрудников
// и сообщает о пересечении границ зон их локации.
package tracking

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/geo"
	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultInterval период замеров сессии отслеживания
const DefaultInterval = 5 * time.Second

// LocationProvider отдает текущее местоположение сотрудника
type LocationProvider interface {
	CurrentLocation(ctx context.Context, employeeID string) (models.Coordinate, error)
}

// LocationWatcher - провайдер, который сам сообщает о новых отчетах.
// Сессия делает внеочередной замер на каждый отчет, не дожидаясь тика.
type LocationWatcher interface {
	WatchLocation(employeeID string, onUpdate func(models.Coordinate)) func()
}

// ViolationStore сохраняет нарушения для аудита
type ViolationStore interface {
	LogViolation(ctx context.Context, event models.ViolationEvent, employeeID, locationID string) error
}

// Notifier оповещает менеджеров о нарушении
type Notifier interface {
	Name() string
	NotifyViolation(ctx context.Context, event models.ViolationEvent) error
}

// Session - цикл замеров одного сотрудника на одной локации
type Session struct {
	employeeID  string
	locationID  string
	zones       []models.GeofenceZone
	provider    LocationProvider
	store       ViolationStore
	notifiers   []Notifier
	onViolation func(models.ViolationEvent)
	clock       clockwork.Clock
	interval    time.Duration
	policy      geo.AccuracyPolicy
	logger      *logrus.Entry

	mu         sync.Mutex
	previous   *models.Coordinate
	lastResult *models.MultiZoneResult

	inFlight atomic.Bool
	skipped  atomic.Int64

	// pushMu не дает отчету провайдера запустить замер после остановки цикла
	pushMu sync.Mutex

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Snapshot - последнее состояние сессии
type Snapshot struct {
	EmployeeID string                  `json:"employee_id"`
	LocationID string                  `json:"location_id"`
	LastSample *models.Coordinate      `json:"last_sample,omitempty"`
	LastResult *models.MultiZoneResult `json:"last_result,omitempty"`
}

func (s *Session) start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	ticker := s.clock.NewTicker(s.interval)

	unwatch := func() {}
	if w, ok := s.provider.(LocationWatcher); ok {
		unwatch = w.WatchLocation(s.employeeID, func(models.Coordinate) {
			s.pushMu.Lock()
			defer s.pushMu.Unlock()
			if ctx.Err() != nil {
				return
			}
			s.tick(ctx)
		})
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				unwatch()
				// дожидаемся отчета, который уже начал замер
				s.pushMu.Lock()
				s.pushMu.Unlock()
				return
			case <-ticker.Chan():
				s.tick(ctx)
			}
		}
	}()
}

// tick запускает замер, если предыдущий уже получил ответ провайдера.
// Иначе тик пропускается.
func (s *Session) tick(ctx context.Context) bool {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.skipped.Add(1)
		metrics.IncTrackingTick("skipped")
		s.logger.Debug("Previous location fetch still in flight, skipping tick")
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inFlight.Store(false)
		_, _ = s.Sample(ctx)
	}()
	return true
}

// Sample получает одну точку, проверяет ее по всем зонам с учетом политики
// точности и передает нарушения относительно предыдущего замера.
// При ошибке провайдера точкой отсчета остается предыдущий замер.
func (s *Session) Sample(ctx context.Context) ([]models.ViolationEvent, error) {
	loc, err := s.provider.CurrentLocation(ctx, s.employeeID)
	if err != nil {
		metrics.IncTrackingTick("location_error")
		s.logger.WithError(err).Warn("Location unavailable, retrying next interval")
		return nil, fmt.Errorf("%w: %w", models.ErrLocationUnavailable, err)
	}
	if loc.RecordedAt.IsZero() {
		loc.RecordedAt = s.clock.Now()
	}

	result := s.policy.ApplyAll(geo.ValidateAll(loc, s.zones), s.zones)

	s.mu.Lock()
	previous := s.previous
	s.mu.Unlock()

	var events []models.ViolationEvent
	for _, zone := range s.zones {
		event, ok := s.policy.Detect(previous, loc, zone)
		if !ok {
			continue
		}
		event.ID = uuid.New()
		event.EmployeeID = s.employeeID
		event.LocationID = s.locationID
		events = append(events, event)
	}

	for _, event := range events {
		s.forward(ctx, event)
	}

	s.mu.Lock()
	s.previous = &loc
	s.lastResult = &result
	s.mu.Unlock()

	metrics.IncTrackingTick("ok")
	s.logger.WithFields(logrus.Fields{
		"in_zones":   len(result.InZoneIDs),
		"violations": len(events),
	}).Debug("Location sample processed")

	return events, nil
}

func (s *Session) forward(ctx context.Context, event models.ViolationEvent) {
	metrics.IncViolation(string(event.Type))
	log := s.logger.WithFields(logrus.Fields{
		"zone_id": event.ZoneID,
		"type":    event.Type,
	})
	log.Warn(event.Message)

	if s.store != nil {
		if err := s.store.LogViolation(ctx, event, s.employeeID, s.locationID); err != nil {
			metrics.IncNotifyFailure("store")
			log.WithError(err).Error("Failed to log violation")
		}
	}
	for _, n := range s.notifiers {
		if err := n.NotifyViolation(ctx, event); err != nil {
			metrics.IncNotifyFailure(n.Name())
			log.WithError(err).WithField("notifier", n.Name()).Error("Failed to notify violation")
		}
	}
	if s.onViolation != nil {
		s.onViolation(event)
	}
}

// Snapshot возвращает последний замер и результат его проверки
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{EmployeeID: s.employeeID, LocationID: s.locationID}
	if s.previous != nil {
		loc := *s.previous
		snap.LastSample = &loc
	}
	if s.lastResult != nil {
		res := *s.lastResult
		snap.LastResult = &res
	}
	return snap
}

// Stop отменяет цикл и ждет его вместе с незавершенным замером.
// Повторный вызов безопасен.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.wg.Wait()
	})
}
