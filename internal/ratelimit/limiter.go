// Package ratelimit выдерживает интервал ожидания между повторными отметками
// одного и того же сотрудника.
package ratelimit

import (
	"context"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/sirupsen/logrus"
)

// DefaultWindow минимальное время между двумя принятыми попытками одного действия
const DefaultWindow = 30 * time.Second

const shardCount = 32

type entryKey struct {
	subjectID string
	action    string
}

// shard защищает записи субъектов, попавших в него по хэшу.
// Все действия одного субъекта лежат в одном шарде.
type shard struct {
	mu      sync.Mutex
	entries map[entryKey]time.Time
}

// Limiter хранит время последней принятой попытки для пары (субъект, действие)
type Limiter struct {
	window time.Duration
	clock  clockwork.Clock
	logger *logrus.Logger
	shards [shardCount]*shard
}

// New создает новый Limiter. Неположительное окно заменяется на DefaultWindow.
func New(window time.Duration, clock clockwork.Clock, logger *logrus.Logger) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	l := &Limiter{
		window: window,
		clock:  clock,
		logger: logger,
	}
	for i := range l.shards {
		l.shards[i] = &shard{entries: make(map[entryKey]time.Time)}
	}
	return l
}

func (l *Limiter) shardFor(subjectID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subjectID))
	return l.shards[h.Sum32()%shardCount]
}

// CheckAndRecord принимает попытку, если в пределах окна не было принятой,
// и запоминает now. Отклоненная попытка окно не сдвигает, поэтому повторные
// вызовы сообщают уменьшающееся время ожидания.
func (l *Limiter) CheckAndRecord(subjectID, action string, now time.Time) (bool, int) {
	k := entryKey{subjectID: subjectID, action: action}
	s := l.shardFor(subjectID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.entries[k]; ok {
		elapsed := now.Sub(last)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed < l.window {
			remaining := l.window - elapsed
			return false, int(math.Ceil(remaining.Seconds()))
		}
	}

	s.entries[k] = now
	return true, 0
}

// Check вызывает CheckAndRecord с текущим временем часов
func (l *Limiter) Check(subjectID, action string) (bool, int) {
	return l.CheckAndRecord(subjectID, action, l.clock.Now())
}

// Sweep удаляет записи старше maxAge и возвращает их число.
// Неположительный maxAge означает два окна.
func (l *Limiter) Sweep(now time.Time, maxAge time.Duration) int {
	if maxAge <= 0 {
		maxAge = 2 * l.window
	}
	removed := 0
	for _, s := range l.shards {
		s.mu.Lock()
		for k, last := range s.entries {
			if now.Sub(last) > maxAge {
				delete(s.entries, k)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed
}

// Clear удаляет запись одного действия субъекта, а при пустом action все его записи
func (l *Limiter) Clear(subjectID, action string) {
	s := l.shardFor(subjectID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if action != "" {
		delete(s.entries, entryKey{subjectID: subjectID, action: action})
		return
	}
	for k := range s.entries {
		if k.subjectID == subjectID {
			delete(s.entries, k)
		}
	}
}

// Len возвращает число хранимых записей
func (l *Limiter) Len() int {
	n := 0
	for _, s := range l.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// RunSweeper чистит устаревшие записи каждые interval до отмены ctx
func (l *Limiter) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := l.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.Chan():
			if removed := l.Sweep(now, 0); removed > 0 && l.logger != nil {
				l.logger.WithFields(logrus.Fields{
					"component": "ratelimit",
					"removed":   removed,
				}).Debug("Swept stale rate limit entries")
			}
			metrics.SetRateLimitEntries(l.Len())
		}
	}
}
