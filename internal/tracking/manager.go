package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/geo"
	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneDirectory отдает зоны локации
type ZoneDirectory interface {
	ZonesForLocation(ctx context.Context, locationID string) ([]models.GeofenceZone, error)
}

// CancelFunc останавливает одну сессию отслеживания. Повторный вызов ничего не делает.
type CancelFunc func()

// Options - настройки Manager
type Options struct {
	Interval       time.Duration
	Notifiers      []Notifier
	// AccuracyPolicy применяется к каждому замеру до поиска нарушений
	AccuracyPolicy geo.AccuracyPolicy
}

// Manager держит не больше одной сессии отслеживания на сотрудника
type Manager struct {
	provider  LocationProvider
	zones     ZoneDirectory
	store     ViolationStore
	notifiers []Notifier
	clock     clockwork.Clock
	interval  time.Duration
	policy    geo.AccuracyPolicy
	logger    *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager создает новый Manager. Без интервала используется DefaultInterval,
// без политики точности - warn.
func NewManager(provider LocationProvider, zones ZoneDirectory, store ViolationStore, clock clockwork.Clock, logger *logrus.Logger, opts Options) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.AccuracyPolicy == "" {
		opts.AccuracyPolicy = geo.AccuracyPolicyWarn
	}
	return &Manager{
		provider:  provider,
		zones:     zones,
		store:     store,
		notifiers: opts.Notifiers,
		clock:     clock,
		interval:  opts.Interval,
		policy:    opts.AccuracyPolicy,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// StartTracking запускает проверку сотрудника по зонам локации.
// У локации должна быть хотя бы одна корректная зона.
func (m *Manager) StartTracking(ctx context.Context, employeeID, locationID string, onViolation func(models.ViolationEvent)) (CancelFunc, error) {
	log := m.logger.WithFields(logrus.Fields{
		"component":   "tracking",
		"employee_id": employeeID,
		"location_id": locationID,
	})

	if employeeID == "" || locationID == "" {
		return nil, errors.New("tracking: employee and location are required")
	}

	zones, err := m.zones.ZonesForLocation(ctx, locationID)
	if err != nil {
		log.WithError(err).Error("Failed to load zones")
		return nil, fmt.Errorf("tracking: could not load zones: %w", err)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("tracking: location %s: %w", locationID, models.ErrNoZones)
	}
	if err := models.ValidateZones(zones); err != nil {
		log.WithError(err).Warn("Refusing to track against invalid zones")
		return nil, fmt.Errorf("tracking: %w", err)
	}

	session := &Session{
		employeeID:  employeeID,
		locationID:  locationID,
		zones:       append([]models.GeofenceZone(nil), zones...),
		provider:    m.provider,
		store:       m.store,
		notifiers:   m.notifiers,
		onViolation: onViolation,
		clock:       m.clock,
		interval:    m.interval,
		policy:      m.policy,
		logger:      log,
	}

	m.mu.Lock()
	if _, ok := m.sessions[employeeID]; ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("tracking: employee %s: %w", employeeID, models.ErrTrackingActive)
	}
	m.sessions[employeeID] = session
	// сессия живет дольше запроса, который ее запустил
	session.start(context.Background())
	metrics.SetActiveTrackingSessions(len(m.sessions))
	m.mu.Unlock()

	log.WithField("zones", len(zones)).Info("Tracking started")
	return func() { m.stopSession(session) }, nil
}

// StopTracking останавливает сессию сотрудника и сообщает, была ли она запущена
func (m *Manager) StopTracking(employeeID string) bool {
	m.mu.Lock()
	session, ok := m.sessions[employeeID]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return m.stopSession(session)
}

func (m *Manager) stopSession(session *Session) bool {
	m.mu.Lock()
	current, ok := m.sessions[session.employeeID]
	removed := ok && current == session
	if removed {
		delete(m.sessions, session.employeeID)
		metrics.SetActiveTrackingSessions(len(m.sessions))
	}
	m.mu.Unlock()

	session.Stop()
	if removed {
		session.logger.Info("Tracking stopped")
	}
	return removed
}

// Snapshot возвращает последнее состояние сессии сотрудника
func (m *Manager) Snapshot(employeeID string) (Snapshot, bool) {
	m.mu.Lock()
	session, ok := m.sessions[employeeID]
	m.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}
	return session.Snapshot(), true
}

// StopAll останавливает все сессии при завершении работы
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		m.stopSession(s)
	}
}
