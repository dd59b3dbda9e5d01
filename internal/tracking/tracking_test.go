package tracking

import (
	"context"
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/geo"
	"github.com/shenikar/attendance_guard/internal/location"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0     = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	center = models.Coordinate{Latitude: 37.7749, Longitude: -122.4194}
)

func north(meters float64) models.Coordinate {
	c := center
	c.Latitude += meters / geo.EarthRadiusMeters * 180 / math.Pi
	return c
}

var _ LocationWatcher = (*location.MQTTProvider)(nil)

// scriptedProvider отдает замеры из очереди по порядку, пустая очередь - ошибка
type scriptedProvider struct {
	mu      sync.Mutex
	samples []models.Coordinate
	errs    []error
	calls   int
	block   chan struct{}
}

func (p *scriptedProvider) push(c models.Coordinate, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.samples = append(p.samples, c)
	p.errs = append(p.errs, err)
}

func (p *scriptedProvider) CurrentLocation(ctx context.Context, _ string) (models.Coordinate, error) {
	p.mu.Lock()
	p.calls++
	block := p.block
	p.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return models.Coordinate{}, ctx.Err()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.samples) == 0 {
		return models.Coordinate{}, errors.New("no fix")
	}
	c, err := p.samples[0], p.errs[0]
	p.samples, p.errs = p.samples[1:], p.errs[1:]
	return c, err
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// watchingProvider дополнительно сообщает о новых отчетах, как MQTTProvider
type watchingProvider struct {
	*scriptedProvider

	mu       sync.Mutex
	onUpdate func(models.Coordinate)
	watching bool
}

func (p *watchingProvider) WatchLocation(_ string, onUpdate func(models.Coordinate)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = onUpdate
	p.watching = true
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.watching = false
	}
}

// report кладет замер в очередь и уведомляет подписчика, даже отписавшегося
func (p *watchingProvider) report(c models.Coordinate) {
	p.push(c, nil)
	p.mu.Lock()
	fn := p.onUpdate
	p.mu.Unlock()
	if fn != nil {
		fn(c)
	}
}

func (p *watchingProvider) isWatching() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.watching
}

func activeSessions(m *Manager) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func inaccurate(c models.Coordinate, meters float64) models.Coordinate {
	c.AccuracyMeters = &meters
	return c
}

type loggedViolation struct {
	event      models.ViolationEvent
	employeeID string
	locationID string
}

type recordingStore struct {
	mu     sync.Mutex
	logged []loggedViolation
}

func (s *recordingStore) LogViolation(_ context.Context, event models.ViolationEvent, employeeID, locationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logged = append(s.logged, loggedViolation{event, employeeID, locationID})
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.ViolationEvent
	err    error
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) NotifyViolation(_ context.Context, event models.ViolationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

type staticZones map[string][]models.GeofenceZone

func (z staticZones) ZonesForLocation(_ context.Context, locationID string) ([]models.GeofenceZone, error) {
	return z[locationID], nil
}

func hq() models.GeofenceZone {
	return models.GeofenceZone{
		ID:           uuid.New(),
		LocationID:   "site-1",
		Name:         "HQ",
		Latitude:     center.Latitude,
		Longitude:    center.Longitude,
		RadiusMeters: 100,
	}
}

type fixture struct {
	manager  *Manager
	clock    *clockwork.FakeClock
	provider *scriptedProvider
	store    *recordingStore
	notifier *recordingNotifier
	zone     models.GeofenceZone
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &fixture{
		clock:    clockwork.NewFakeClockAt(t0),
		provider: &scriptedProvider{},
		store:    &recordingStore{},
		notifier: &recordingNotifier{},
		zone:     hq(),
	}
	f.manager = NewManager(f.provider, staticZones{"site-1": {f.zone}}, f.store, f.clock, logger, Options{
		Notifiers: []Notifier{f.notifier},
	})
	t.Cleanup(f.manager.StopAll)
	return f
}

func (f *fixture) session(t *testing.T, onViolation func(models.ViolationEvent)) *Session {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Session{
		employeeID:  "emp1",
		locationID:  "site-1",
		zones:       []models.GeofenceZone{f.zone},
		provider:    f.provider,
		store:       f.store,
		notifiers:   []Notifier{f.notifier},
		onViolation: onViolation,
		clock:       f.clock,
		interval:    DefaultInterval,
		logger:      logrus.NewEntry(logger),
	}
}

func TestSample_FirstSampleIsBaseline(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, nil)
	f.provider.push(north(150), nil)

	events, err := s.Sample(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Empty(t, f.store.logged)

	snap := s.Snapshot()
	require.NotNil(t, snap.LastSample)
	assert.Equal(t, t0, snap.LastSample.RecordedAt, "missing timestamps are filled from the clock")
	require.NotNil(t, snap.LastResult)
	assert.Empty(t, snap.LastResult.InZoneIDs)
}

func TestSample_LeftZoneIsForwardedEverywhere(t *testing.T) {
	f := newFixture(t)
	var callbacks []models.ViolationEvent
	s := f.session(t, func(e models.ViolationEvent) { callbacks = append(callbacks, e) })
	ctx := context.Background()

	f.provider.push(north(10), nil)
	f.provider.push(north(150), nil)

	_, err := s.Sample(ctx)
	require.NoError(t, err)
	events, err := s.Sample(ctx)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.ViolationLeftZone, events[0].Type)
	assert.Equal(t, "emp1", events[0].EmployeeID)
	assert.Equal(t, "site-1", events[0].LocationID)
	assert.NotEqual(t, uuid.Nil, events[0].ID)

	require.Len(t, f.store.logged, 1)
	assert.Equal(t, "emp1", f.store.logged[0].employeeID)
	assert.Equal(t, "site-1", f.store.logged[0].locationID)
	assert.Len(t, f.notifier.events, 1)
	assert.Len(t, callbacks, 1)
}

func TestSample_AccuracyBlockPolicy(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, nil)
	s.policy = geo.AccuracyPolicyBlock
	ctx := context.Background()

	f.provider.push(north(10), nil)
	f.provider.push(inaccurate(north(10), 250), nil)

	_, err := s.Sample(ctx)
	require.NoError(t, err)
	events, err := s.Sample(ctx)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.ViolationLeftZone, events[0].Type)
	assert.Contains(t, events[0].Message, "too inaccurate")

	snap := s.Snapshot()
	require.NotNil(t, snap.LastResult)
	assert.Empty(t, snap.LastResult.InZoneIDs)
	assert.True(t, snap.LastResult.PerZone[f.zone.ID].AccuracyBlocked)
}

func TestSample_AccuracyWarnPolicyKeepsVerdict(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, nil)
	s.policy = geo.AccuracyPolicyWarn
	ctx := context.Background()

	f.provider.push(north(10), nil)
	f.provider.push(inaccurate(north(10), 250), nil)

	_, _ = s.Sample(ctx)
	events, err := s.Sample(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	snap := s.Snapshot()
	require.NotNil(t, snap.LastResult)
	assert.Equal(t, []uuid.UUID{f.zone.ID}, snap.LastResult.InZoneIDs)
	assert.NotNil(t, snap.LastResult.PerZone[f.zone.ID].AccuracyWarning)
}

func TestSample_WarningThenNoEventOutside(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, nil)
	ctx := context.Background()

	f.provider.push(north(10), nil)
	f.provider.push(north(70), nil)
	f.provider.push(north(200), nil)
	f.provider.push(north(300), nil)

	_, _ = s.Sample(ctx)
	events, _ := s.Sample(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, models.ViolationWarningDistance, events[0].Type)

	events, _ = s.Sample(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, models.ViolationLeftZone, events[0].Type)

	events, _ = s.Sample(ctx)
	assert.Empty(t, events, "staying outside is not a new crossing")
}

func TestSample_LocationErrorKeepsBaseline(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, nil)
	ctx := context.Background()

	f.provider.push(north(10), nil)
	f.provider.push(models.Coordinate{}, errors.New("permission denied"))
	f.provider.push(north(150), nil)

	_, err := s.Sample(ctx)
	require.NoError(t, err)

	_, err = s.Sample(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLocationUnavailable)
	assert.ErrorContains(t, err, "permission denied")

	events, err := s.Sample(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.ViolationLeftZone, events[0].Type)
}

func TestSample_NotifierFailureDoesNotStopForwarding(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("redis down")
	var called bool
	s := f.session(t, func(models.ViolationEvent) { called = true })
	ctx := context.Background()

	f.provider.push(north(10), nil)
	f.provider.push(north(150), nil)
	_, _ = s.Sample(ctx)
	events, err := s.Sample(ctx)

	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Len(t, f.store.logged, 1)
	assert.True(t, called)
}

func TestTick_SkipsWhileFetchInFlight(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	f.provider.block = release
	f.provider.push(north(10), nil)
	s := f.session(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.True(t, s.tick(ctx))
	require.Eventually(t, func() bool { return f.provider.callCount() == 1 }, time.Second, 5*time.Millisecond)

	assert.False(t, s.tick(ctx))
	assert.Equal(t, int64(1), s.skipped.Load())
	assert.Equal(t, 1, f.provider.callCount())

	close(release)
	require.Eventually(t, func() bool { return !s.inFlight.Load() }, time.Second, 5*time.Millisecond)
	assert.True(t, s.tick(ctx))
	s.wg.Wait()
}

func TestStartTracking_TicksOnInterval(t *testing.T) {
	f := newFixture(t)
	violations := make(chan models.ViolationEvent, 1)
	f.provider.push(north(10), nil)
	f.provider.push(north(150), nil)

	cancel, err := f.manager.StartTracking(context.Background(), "emp1", "site-1", func(e models.ViolationEvent) {
		violations <- e
	})
	require.NoError(t, err)
	defer cancel()
	assert.Equal(t, 1, activeSessions(f.manager))

	f.manager.mu.Lock()
	session := f.manager.sessions["emp1"]
	f.manager.mu.Unlock()

	f.clock.BlockUntil(1)
	f.clock.Advance(DefaultInterval)
	require.Eventually(t, func() bool {
		snap, ok := f.manager.Snapshot("emp1")
		return ok && snap.LastSample != nil && !session.inFlight.Load()
	}, time.Second, 5*time.Millisecond)

	f.clock.Advance(DefaultInterval)
	select {
	case e := <-violations:
		assert.Equal(t, models.ViolationLeftZone, e.Type)
		assert.Equal(t, f.zone.ID, e.ZoneID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a left-zone violation")
	}
}

func TestStartTracking_SamplesOnPushedReport(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	provider := &watchingProvider{scriptedProvider: &scriptedProvider{}}
	zone := hq()
	clock := clockwork.NewFakeClockAt(t0)
	violations := make(chan models.ViolationEvent, 1)

	manager := NewManager(provider, staticZones{"site-1": {zone}}, &recordingStore{}, clock, logger, Options{
		AccuracyPolicy: geo.AccuracyPolicyBlock,
	})
	t.Cleanup(manager.StopAll)

	cancel, err := manager.StartTracking(context.Background(), "emp1", "site-1", func(e models.ViolationEvent) {
		violations <- e
	})
	require.NoError(t, err)
	require.True(t, provider.isWatching())

	// без движения часов замер делает только отчет провайдера
	provider.report(north(10))
	require.Eventually(t, func() bool {
		snap, ok := manager.Snapshot("emp1")
		return ok && snap.LastSample != nil
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		manager.mu.Lock()
		defer manager.mu.Unlock()
		return !manager.sessions["emp1"].inFlight.Load()
	}, time.Second, 5*time.Millisecond)
	provider.report(inaccurate(north(10), 250))
	select {
	case e := <-violations:
		assert.Equal(t, models.ViolationLeftZone, e.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the block policy to report a left-zone violation")
	}

	cancel()
	assert.False(t, provider.isWatching())
	calls := provider.callCount()
	provider.report(north(10))
	assert.Equal(t, calls, provider.callCount(), "reports after stop must not sample")
}

func TestStartTracking_Preconditions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.manager.StartTracking(ctx, "", "site-1", nil)
	assert.Error(t, err)

	_, err = f.manager.StartTracking(ctx, "emp1", "unknown-site", nil)
	assert.ErrorIs(t, err, models.ErrNoZones)

	bad := hq()
	bad.RadiusMeters = 0
	f.manager.zones = staticZones{"bad-site": {bad}}
	_, err = f.manager.StartTracking(ctx, "emp1", "bad-site", nil)
	assert.ErrorIs(t, err, models.ErrInvalidZone)
	assert.Equal(t, 0, activeSessions(f.manager))
}

func TestStartTracking_OneSessionPerEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cancel, err := f.manager.StartTracking(ctx, "emp1", "site-1", nil)
	require.NoError(t, err)

	_, err = f.manager.StartTracking(ctx, "emp1", "site-1", nil)
	assert.ErrorIs(t, err, models.ErrTrackingActive)

	cancel()
	cancel()
	assert.Equal(t, 0, activeSessions(f.manager))
	assert.False(t, f.manager.StopTracking("emp1"))

	again, err := f.manager.StartTracking(ctx, "emp1", "site-1", nil)
	require.NoError(t, err)
	cancel()
	assert.Equal(t, 1, activeSessions(f.manager), "a stale cancel must not stop the new session")
	again()
}

func TestStopTracking_NoMoreSamples(t *testing.T) {
	f := newFixture(t)
	f.provider.push(north(10), nil)

	_, err := f.manager.StartTracking(context.Background(), "emp1", "site-1", nil)
	require.NoError(t, err)
	f.clock.BlockUntil(1)

	assert.True(t, f.manager.StopTracking("emp1"))
	f.clock.Advance(10 * DefaultInterval)

	assert.Equal(t, 0, f.provider.callCount())
	_, ok := f.manager.Snapshot("emp1")
	assert.False(t, ok)
}
