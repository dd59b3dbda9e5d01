package breaks

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

type memoryStore struct {
	mu    sync.Mutex
	saved []models.BreakSession
	err   error
}

func (s *memoryStore) SaveBreak(_ context.Context, session *models.BreakSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, *session)
	return nil
}

// ListBreaks отдает последнюю сохраненную версию каждого перерыва записи
func (s *memoryStore) ListBreaks(_ context.Context, timeEntryID string) ([]models.BreakSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	index := make(map[uuid.UUID]int)
	out := make([]models.BreakSession, 0)
	for _, saved := range s.saved {
		if saved.TimeEntryID != timeEntryID {
			continue
		}
		if i, ok := index[saved.ID]; ok {
			out[i] = saved
			continue
		}
		index[saved.ID] = len(out)
		out = append(out, saved)
	}
	return out, nil
}

func (s *memoryStore) snapshot() []models.BreakSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.BreakSession(nil), s.saved...)
}

func newTestTimer(t *testing.T, opts Options) (*Timer, *clockwork.FakeClock, *memoryStore) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	fc := clockwork.NewFakeClockAt(t0)
	store := &memoryStore{}
	timer := NewTimer(store, fc, logger, opts)
	t.Cleanup(timer.Close)
	return timer, fc, store
}

func TestStartBreak_CreatesActiveSession(t *testing.T) {
	timer, _, store := newTestTimer(t, Options{})
	ctx := context.Background()

	session, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindLunch)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, models.BreakStatusActive, session.Status)
	assert.Equal(t, t0, session.StartedAt)
	assert.Nil(t, session.EndedAt)

	active, ok := timer.ActiveBreak("entry1")
	require.True(t, ok)
	assert.Equal(t, session.ID, active.ID)
	assert.Len(t, store.snapshot(), 1)
}

func TestStartBreak_DuplicateActiveBreak(t *testing.T) {
	timer, _, _ := newTestTimer(t, Options{})
	ctx := context.Background()

	first, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindBreak)
	require.NoError(t, err)

	running, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindLunch)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicateActiveBreak)
	assert.Contains(t, err.Error(), "end it first")
	assert.Equal(t, first.ID, running.ID)

	_, err = timer.StartBreak(ctx, "emp1", "entry2", models.BreakKindLunch)
	assert.NoError(t, err, "another time entry may have its own break")
}

func TestEndBreak_NoActiveBreak(t *testing.T) {
	timer, _, _ := newTestTimer(t, Options{})
	ctx := context.Background()

	_, err := timer.EndBreak(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNoActiveBreak)

	_, err = timer.EndActiveBreak(ctx, "entry1")
	assert.ErrorIs(t, err, models.ErrNoActiveBreak)

	session, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindBreak)
	require.NoError(t, err)
	_, err = timer.EndBreak(ctx, session.ID)
	require.NoError(t, err)

	_, err = timer.EndBreak(ctx, session.ID)
	assert.ErrorIs(t, err, models.ErrNoActiveBreak, "a completed break cannot be ended twice")
}

func TestEndBreak_RoundsDuration(t *testing.T) {
	timer, fc, store := newTestTimer(t, Options{})
	ctx := context.Background()

	session, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindBreak)
	require.NoError(t, err)

	fc.Advance(14*time.Minute + 40*time.Second)
	ended, err := timer.EndBreak(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.BreakStatusCompleted, ended.Status)
	require.NotNil(t, ended.EndedAt)
	assert.Equal(t, t0.Add(14*time.Minute+40*time.Second), *ended.EndedAt)
	require.NotNil(t, ended.DurationMinutes)
	assert.Equal(t, 15, *ended.DurationMinutes)
	assert.False(t, ended.Forced)

	_, ok := timer.ActiveBreak("entry1")
	assert.False(t, ok)

	saved := store.snapshot()
	require.Len(t, saved, 2)
	assert.Equal(t, models.BreakStatusCompleted, saved[1].Status)
}

func TestSummary_TotalMinutes(t *testing.T) {
	timer, fc, _ := newTestTimer(t, Options{})
	ctx := context.Background()

	first, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindBreak)
	require.NoError(t, err)
	fc.Advance(10 * time.Minute)
	_, err = timer.EndBreak(ctx, first.ID)
	require.NoError(t, err)

	fc.Advance(time.Hour)
	_, err = timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindLunch)
	require.NoError(t, err)
	fc.Advance(30 * time.Minute)
	_, err = timer.EndActiveBreak(ctx, "entry1")
	require.NoError(t, err)

	_, err = timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindOther)
	require.NoError(t, err)

	summary, err := timer.Summary(ctx, "entry1")
	require.NoError(t, err)
	assert.Equal(t, 40, summary.TotalMinutes, "active breaks are not counted")
	require.Len(t, summary.Sessions, 3)
	assert.Equal(t, models.BreakStatusActive, summary.Sessions[2].Status)
	require.NotNil(t, summary.Active)
	assert.Equal(t, models.BreakKindOther, summary.Active.Kind)
}

func TestSummary_SurvivesRestart(t *testing.T) {
	timer, fc, store := newTestTimer(t, Options{})
	ctx := context.Background()

	session, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindLunch)
	require.NoError(t, err)
	fc.Advance(30 * time.Minute)
	_, err = timer.EndBreak(ctx, session.ID)
	require.NoError(t, err)

	summary, err := timer.Summary(ctx, "entry1")
	require.NoError(t, err)
	assert.Equal(t, 30, summary.TotalMinutes)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	restarted := NewTimer(store, fc, logger, Options{})
	t.Cleanup(restarted.Close)

	summary, err = restarted.Summary(ctx, "entry1")
	require.NoError(t, err)
	assert.Equal(t, 30, summary.TotalMinutes, "completed breaks are read back from the store")
	assert.Nil(t, summary.Active)
	require.Len(t, summary.Sessions, 1)
	assert.Equal(t, session.ID, summary.Sessions[0].ID)
	assert.Equal(t, models.BreakStatusCompleted, summary.Sessions[0].Status)
}

func TestSessions_StoreFailure(t *testing.T) {
	timer, _, store := newTestTimer(t, Options{})
	store.err = errors.New("connection refused")

	_, err := timer.Sessions(context.Background(), "entry1")
	assert.ErrorContains(t, err, "could not list breaks")
}

func TestWatchdog_ForcesEndPastCap(t *testing.T) {
	violations := make(chan models.BreakPolicyViolation, 1)
	timer, fc, store := newTestTimer(t, Options{
		OnPolicyViolation: func(v models.BreakPolicyViolation) { violations <- v },
	})

	session, err := timer.StartBreak(context.Background(), "emp1", "entry1", models.BreakKindLunch)
	require.NoError(t, err)

	fc.BlockUntil(1)
	fc.Advance(481 * time.Minute)

	select {
	case v := <-violations:
		assert.Equal(t, session.ID, v.SessionID)
		assert.Equal(t, "emp1", v.EmployeeID)
		assert.Equal(t, 481, v.ElapsedMinutes)
		assert.Equal(t, 480, v.MaxMinutes)
		assert.Contains(t, v.Message, "ended automatically")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a policy violation")
	}

	_, ok := timer.ActiveBreak("entry1")
	assert.False(t, ok)

	require.Eventually(t, func() bool { return len(store.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, store.snapshot()[1].Forced)

	sessions, err := timer.Sessions(context.Background(), "entry1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, models.BreakStatusCompleted, sessions[0].Status)
	assert.True(t, sessions[0].Forced)
	require.NotNil(t, sessions[0].DurationMinutes)
	assert.Equal(t, 481, *sessions[0].DurationMinutes)
}

func TestWatchdog_DoesNotFireUnderCap(t *testing.T) {
	violations := make(chan models.BreakPolicyViolation, 1)
	timer, fc, _ := newTestTimer(t, Options{
		OnPolicyViolation: func(v models.BreakPolicyViolation) { violations <- v },
	})
	ctx := context.Background()

	session, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindLunch)
	require.NoError(t, err)

	fc.BlockUntil(1)
	fc.Advance(479 * time.Minute)

	ended, err := timer.EndBreak(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, ended.Forced)
	assert.Equal(t, 479, *ended.DurationMinutes)

	select {
	case <-violations:
		t.Fatal("break under the cap must not be force-ended")
	default:
	}
}

func TestWatchdog_IndependentPerSession(t *testing.T) {
	violations := make(chan models.BreakPolicyViolation, 2)
	timer, fc, _ := newTestTimer(t, Options{
		MaxDuration: 30 * time.Minute,
		OnPolicyViolation: func(v models.BreakPolicyViolation) { violations <- v },
	})
	ctx := context.Background()

	early, err := timer.StartBreak(ctx, "emp1", "entry1", models.BreakKindBreak)
	require.NoError(t, err)
	fc.BlockUntil(1)
	fc.Advance(20 * time.Minute)

	_, err = timer.StartBreak(ctx, "emp2", "entry2", models.BreakKindBreak)
	require.NoError(t, err)
	fc.BlockUntil(2)
	fc.Advance(15 * time.Minute)

	select {
	case v := <-violations:
		assert.Equal(t, early.ID, v.SessionID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the first break to be force-ended")
	}

	_, ok := timer.ActiveBreak("entry2")
	assert.True(t, ok, "the second break is still within its cap")
}

func TestStartBreak_StoreFailureLeavesNoBreak(t *testing.T) {
	timer, _, store := newTestTimer(t, Options{})
	store.err = errors.New("connection refused")

	_, err := timer.StartBreak(context.Background(), "emp1", "entry1", models.BreakKindBreak)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not start break")

	_, ok := timer.ActiveBreak("entry1")
	assert.False(t, ok)
}

func TestRestore_EndsBreaksAlreadyPastCap(t *testing.T) {
	violations := make(chan models.BreakPolicyViolation, 1)
	timer, fc, _ := newTestTimer(t, Options{
		OnPolicyViolation: func(v models.BreakPolicyViolation) { violations <- v },
	})

	stale := models.BreakSession{
		ID:          uuid.New(),
		EmployeeID:  "emp1",
		TimeEntryID: "entry1",
		Kind:        models.BreakKindLunch,
		Status:      models.BreakStatusActive,
		StartedAt:   t0.Add(-9 * time.Hour),
	}
	done := stale
	done.ID = uuid.New()
	done.TimeEntryID = "entry2"
	done.Status = models.BreakStatusCompleted

	assert.Equal(t, 1, timer.Restore([]models.BreakSession{stale, done}))

	fc.BlockUntil(1)
	fc.Advance(time.Minute)

	select {
	case v := <-violations:
		assert.Equal(t, stale.ID, v.SessionID)
		assert.Equal(t, 541, v.ElapsedMinutes)
	case <-time.After(2 * time.Second):
		t.Fatal("expected restored break to be force-ended")
	}
}
