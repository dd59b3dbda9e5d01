// Package breaks ведет перерывы, привязанные к записи рабочего времени, и
// ограничивает длительность одного перерыва.
package breaks

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxDuration   = 8 * time.Hour
	DefaultCheckInterval = time.Minute
)

// Store - хранилище перерывов. SaveBreak вызывается при старте и при завершении,
// ListBreaks отдает всю историю записи рабочего времени.
type Store interface {
	SaveBreak(ctx context.Context, session *models.BreakSession) error
	ListBreaks(ctx context.Context, timeEntryID string) ([]models.BreakSession, error)
}

// Options - настройки Timer
type Options struct {
	MaxDuration   time.Duration
	CheckInterval time.Duration
	// OnPolicyViolation вызывается после того, как watchdog завершил слишком длинный перерыв
	OnPolicyViolation func(models.BreakPolicyViolation)
}

// Timer владеет активными перерывами. На одну запись рабочего времени
// приходится не больше одного активного перерыва, у каждого свой watchdog.
// Завершенные перерывы живут только в Store.
type Timer struct {
	store         Store
	clock         clockwork.Clock
	logger        *logrus.Logger
	maxDuration   time.Duration
	checkInterval time.Duration
	onViolation   func(models.BreakPolicyViolation)

	mu        sync.Mutex
	active    map[uuid.UUID]*models.BreakSession
	byEntry   map[string]uuid.UUID
	watchdogs map[uuid.UUID]*watchdog
	wg        sync.WaitGroup
}

type watchdog struct {
	stop chan struct{}
	once sync.Once
}

func (w *watchdog) Stop() {
	w.once.Do(func() { close(w.stop) })
}

// NewTimer создает новый Timer. Нулевые значения Options заменяются значениями по умолчанию
func NewTimer(store Store, clock clockwork.Clock, logger *logrus.Logger, opts Options) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultMaxDuration
	}
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = DefaultCheckInterval
	}
	return &Timer{
		store:         store,
		clock:         clock,
		logger:        logger,
		maxDuration:   opts.MaxDuration,
		checkInterval: opts.CheckInterval,
		onViolation:   opts.OnPolicyViolation,
		active:        make(map[uuid.UUID]*models.BreakSession),
		byEntry:       make(map[string]uuid.UUID),
		watchdogs:     make(map[uuid.UUID]*watchdog),
	}
}

// StartBreak открывает перерыв для записи рабочего времени. Пока идет другой
// перерыв этой записи, возвращает ErrDuplicateActiveBreak.
func (t *Timer) StartBreak(ctx context.Context, employeeID, timeEntryID string, kind models.BreakKind) (models.BreakSession, error) {
	log := t.logger.WithFields(logrus.Fields{
		"component":     "breaks",
		"method":        "StartBreak",
		"employee_id":   employeeID,
		"time_entry_id": timeEntryID,
	})

	t.mu.Lock()
	if id, ok := t.byEntry[timeEntryID]; ok {
		running := *t.active[id]
		t.mu.Unlock()
		log.WithField("session_id", id).Warn("Rejected second active break")
		return running, fmt.Errorf("%w (started at %s)", models.ErrDuplicateActiveBreak, running.StartedAt.Format(time.RFC3339))
	}

	session := &models.BreakSession{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		TimeEntryID: timeEntryID,
		Kind:        kind,
		Status:      models.BreakStatusActive,
		StartedAt:   t.clock.Now(),
	}
	t.active[session.ID] = session
	t.byEntry[timeEntryID] = session.ID
	t.mu.Unlock()

	if t.store != nil {
		pending := *session
		if err := t.store.SaveBreak(ctx, &pending); err != nil {
			t.mu.Lock()
			delete(t.active, session.ID)
			delete(t.byEntry, timeEntryID)
			t.mu.Unlock()
			log.WithError(err).Error("Failed to persist new break")
			return models.BreakSession{}, fmt.Errorf("breaks: could not start break: %w", err)
		}
	}

	t.mu.Lock()
	if _, ok := t.active[session.ID]; ok {
		t.startWatchdog(session.ID, session.StartedAt)
	}
	started := *session
	t.mu.Unlock()

	log.WithField("session_id", session.ID).Info("Break started")
	return started, nil
}

// EndBreak завершает активный перерыв. Для неизвестных и уже завершенных
// перерывов возвращает ErrNoActiveBreak.
func (t *Timer) EndBreak(ctx context.Context, sessionID uuid.UUID) (models.BreakSession, error) {
	session, err := t.complete(sessionID, false)
	if err != nil {
		return models.BreakSession{}, err
	}
	return t.persistCompleted(ctx, session)
}

// EndActiveBreak завершает текущий перерыв записи рабочего времени
func (t *Timer) EndActiveBreak(ctx context.Context, timeEntryID string) (models.BreakSession, error) {
	active, ok := t.ActiveBreak(timeEntryID)
	if !ok {
		return models.BreakSession{}, fmt.Errorf("%w for time entry %s", models.ErrNoActiveBreak, timeEntryID)
	}
	return t.EndBreak(ctx, active.ID)
}

// ActiveBreak возвращает текущий перерыв записи рабочего времени, если он есть
func (t *Timer) ActiveBreak(timeEntryID string) (models.BreakSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id, ok := t.byEntry[timeEntryID]
	if !ok {
		return models.BreakSession{}, false
	}
	return *t.active[id], true
}

// Sessions возвращает перерывы записи рабочего времени в порядке начала.
// Активный перерыв берется из памяти, остальные из Store.
func (t *Timer) Sessions(ctx context.Context, timeEntryID string) ([]models.BreakSession, error) {
	var stored []models.BreakSession
	if t.store != nil {
		var err error
		stored, err = t.store.ListBreaks(ctx, timeEntryID)
		if err != nil {
			return nil, fmt.Errorf("breaks: could not list breaks: %w", err)
		}
	}

	t.mu.Lock()
	var running *models.BreakSession
	if id, ok := t.byEntry[timeEntryID]; ok {
		s := *t.active[id]
		running = &s
	}
	t.mu.Unlock()

	out := make([]models.BreakSession, 0, len(stored)+1)
	for _, s := range stored {
		if running != nil && s.ID == running.ID {
			continue
		}
		// строка, которая еще активна в Store, но уже не в памяти, завершается прямо сейчас
		if s.Status == models.BreakStatusActive && running == nil {
			continue
		}
		out = append(out, s)
	}
	if running != nil {
		out = append(out, *running)
	}
	return out, nil
}

// Summary собирает перерывы записи рабочего времени вместе с суммой завершенных
func (t *Timer) Summary(ctx context.Context, timeEntryID string) (models.BreakSummary, error) {
	sessions, err := t.Sessions(ctx, timeEntryID)
	if err != nil {
		return models.BreakSummary{}, err
	}
	return models.NewBreakSummary(timeEntryID, sessions), nil
}

// Restore восстанавливает перерывы, активные до перезапуска. Перерывы, уже
// превысившие лимит, завершаются на первом тике watchdog.
func (t *Timer) Restore(sessions []models.BreakSession) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	restored := 0
	for _, s := range sessions {
		if s.Status != models.BreakStatusActive {
			continue
		}
		if _, ok := t.byEntry[s.TimeEntryID]; ok {
			continue
		}
		session := s
		t.active[session.ID] = &session
		t.byEntry[session.TimeEntryID] = session.ID
		t.startWatchdog(session.ID, session.StartedAt)
		restored++
	}
	return restored
}

// Close останавливает все watchdog и ждет их завершения. Активные перерывы
// остаются активными, чтобы их можно было восстановить позже.
func (t *Timer) Close() {
	t.mu.Lock()
	for id, wd := range t.watchdogs {
		wd.Stop()
		delete(t.watchdogs, id)
	}
	t.mu.Unlock()
	t.wg.Wait()
}

// startWatchdog вызывается под t.mu
func (t *Timer) startWatchdog(sessionID uuid.UUID, startedAt time.Time) {
	wd := &watchdog{stop: make(chan struct{})}
	t.watchdogs[sessionID] = wd
	ticker := t.clock.NewTicker(t.checkInterval)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-wd.stop:
				return
			case <-ticker.Chan():
				if t.clock.Since(startedAt) > t.maxDuration {
					t.forceEnd(sessionID)
					return
				}
			}
		}
	}()
}

func (t *Timer) forceEnd(sessionID uuid.UUID) {
	session, err := t.complete(sessionID, true)
	if err != nil {
		// пользователь завершил перерыв между тиком и этим вызовом
		return
	}
	metrics.IncForcedBreakEnd()

	elapsed := session.EndedAt.Sub(session.StartedAt)
	violation := models.BreakPolicyViolation{
		SessionID:      session.ID,
		EmployeeID:     session.EmployeeID,
		TimeEntryID:    session.TimeEntryID,
		ElapsedMinutes: int(elapsed.Minutes()),
		MaxMinutes:     int(t.maxDuration.Minutes()),
		Message: fmt.Sprintf("break exceeded the maximum of %d minutes and was ended automatically after %d minutes",
			int(t.maxDuration.Minutes()), int(elapsed.Minutes())),
		OccurredAt: *session.EndedAt,
	}

	t.logger.WithFields(logrus.Fields{
		"component":       "breaks",
		"session_id":      session.ID,
		"employee_id":     session.EmployeeID,
		"elapsed_minutes": violation.ElapsedMinutes,
	}).Warn("Break exceeded maximum duration, ended automatically")

	if _, err := t.persistCompleted(context.Background(), session); err != nil {
		t.logger.WithError(err).WithField("session_id", session.ID).Error("Failed to persist force-ended break")
	}

	if t.onViolation != nil {
		t.onViolation(violation)
	}
}

// complete переводит перерыв в завершенные и останавливает его watchdog
func (t *Timer) complete(sessionID uuid.UUID, forced bool) (models.BreakSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.active[sessionID]
	if !ok {
		return models.BreakSession{}, fmt.Errorf("%w: session %s", models.ErrNoActiveBreak, sessionID)
	}

	now := t.clock.Now()
	minutes := int(math.Round(now.Sub(session.StartedAt).Minutes()))
	session.EndedAt = &now
	session.DurationMinutes = &minutes
	session.Status = models.BreakStatusCompleted
	session.Forced = forced

	delete(t.active, sessionID)
	delete(t.byEntry, session.TimeEntryID)

	if wd, ok := t.watchdogs[sessionID]; ok {
		wd.Stop()
		delete(t.watchdogs, sessionID)
	}

	return *session, nil
}

func (t *Timer) persistCompleted(ctx context.Context, session models.BreakSession) (models.BreakSession, error) {
	if t.store == nil {
		return session, nil
	}
	if err := t.store.SaveBreak(ctx, &session); err != nil {
		return session, fmt.Errorf("breaks: break ended but could not be saved: %w", err)
	}
	return session, nil
}
