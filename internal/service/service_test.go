package service

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/breaks"
	"github.com/shenikar/attendance_guard/internal/geo"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/ratelimit"
	"github.com/shenikar/attendance_guard/internal/service/mocks"
	"github.com/shenikar/attendance_guard/internal/tracking"
	"github.com/shenikar/attendance_guard/internal/wifi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *mocks.MockZoneRepository
	breaks  *mocks.MockBreakRepository
	tracker *mocks.MockTracker
	clock   *clockwork.FakeClock
}

// newTestGuard создает сервис с мокированными хранилищами и отслеживанием и
// настоящими limiter и break timer на фейковых часах
func newTestGuard(t *testing.T, opts Options) (*attendanceGuard, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:    mocks.NewMockZoneRepository(ctrl),
		breaks:  mocks.NewMockBreakRepository(ctrl),
		tracker: mocks.NewMockTracker(ctrl),
		clock:   clockwork.NewFakeClockAt(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	limiter := ratelimit.New(30*time.Second, deps.clock, logger)
	timer := breaks.NewTimer(deps.breaks, deps.clock, logger, breaks.Options{})
	t.Cleanup(timer.Close)

	guard := NewAttendanceGuard(NewZoneCatalog(deps.repo, logger), limiter, timer, deps.tracker, logger, opts)
	return guard.(*attendanceGuard), deps
}

// expectBreakStore подменяет хранилище перерывов слайсом в памяти
func expectBreakStore(deps testDeps) {
	var saved []models.BreakSession
	deps.breaks.EXPECT().
		SaveBreak(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.BreakSession) error {
			for i := range saved {
				if saved[i].ID == session.ID {
					saved[i] = *session
					return nil
				}
			}
			saved = append(saved, *session)
			return nil
		}).AnyTimes()
	deps.breaks.EXPECT().
		ListBreaks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, timeEntryID string) ([]models.BreakSession, error) {
			out := make([]models.BreakSession, 0)
			for _, session := range saved {
				if session.TimeEntryID == timeEntryID {
					out = append(out, session)
				}
			}
			return out, nil
		}).AnyTimes()
}

var hqCenter = models.Coordinate{Latitude: 37.7749, Longitude: -122.4194}

func north(c models.Coordinate, meters float64) models.Coordinate {
	c.Latitude += meters / geo.EarthRadiusMeters * 180 / math.Pi
	return c
}

func hqZone() models.GeofenceZone {
	return models.GeofenceZone{
		ID:           uuid.New(),
		LocationID:   "hq",
		Name:         "Main entrance",
		Latitude:     hqCenter.Latitude,
		Longitude:    hqCenter.Longitude,
		RadiusMeters: 100,
		Status:       models.ZoneStatusActive,
	}
}

func TestZonesForLocation_FromCache(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zones := []models.GeofenceZone{hqZone()}

	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return(zones, nil).Times(1)

	got, err := guard.ListZones(ctx, "hq")
	require.NoError(t, err)
	assert.Equal(t, zones, got)
}

func TestZonesForLocation_FromDB(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zones := []models.GeofenceZone{hqZone()}

	// промах кэша, затем БД, затем запись в кэш
	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return(nil, nil).Times(1)
	deps.repo.EXPECT().ListActiveZones(ctx, "hq").Return(zones, nil).Times(1)
	deps.repo.EXPECT().SetZonesCache(ctx, "hq", zones).Return(nil).Times(1)

	got, err := guard.ListZones(ctx, "hq")
	require.NoError(t, err)
	assert.Equal(t, zones, got)
}

func TestZonesForLocation_CacheErrorFallsBack(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()

	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return(nil, errors.New("redis: connection refused"))
	deps.repo.EXPECT().ListActiveZones(ctx, "hq").Return([]models.GeofenceZone{}, nil)
	deps.repo.EXPECT().SetZonesCache(ctx, "hq", gomock.Any()).Return(errors.New("redis: connection refused"))

	got, err := guard.ListZones(ctx, "hq")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateZone_Success(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zone := hqZone()
	zone.ID = uuid.Nil
	zone.Status = ""
	newID := uuid.New()

	deps.repo.EXPECT().
		CreateZone(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, z *models.GeofenceZone) error {
			assert.Equal(t, models.ZoneStatusActive, z.Status)
			z.ID = newID
			return nil
		}).Times(1)
	deps.repo.EXPECT().InvalidateZonesCache(ctx, "hq").Return(nil).Times(1)

	require.NoError(t, guard.CreateZone(ctx, &zone))
	assert.Equal(t, newID, zone.ID)
}

func TestCreateZone_InvalidRadius(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	zone := hqZone()
	zone.RadiusMeters = 0

	deps.repo.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Times(0)

	err := guard.CreateZone(context.Background(), &zone)
	assert.ErrorIs(t, err, models.ErrInvalidZone)
}

func TestDeactivateZone(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zone := hqZone()

	deps.repo.EXPECT().GetZone(ctx, zone.ID).Return(&zone, nil)
	deps.repo.EXPECT().DeactivateZone(ctx, zone.ID).Return(nil)
	deps.repo.EXPECT().InvalidateZonesCache(ctx, "hq").Return(nil)

	require.NoError(t, guard.DeactivateZone(ctx, zone.ID))
}

func TestDeactivateZone_NotFound(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().GetZone(ctx, id).Return(nil, models.ErrZoneNotFound)
	deps.repo.EXPECT().DeactivateZone(gomock.Any(), gomock.Any()).Times(0)

	err := guard.DeactivateZone(ctx, id)
	assert.ErrorIs(t, err, models.ErrZoneNotFound)
}

func TestValidateLocation(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zone := hqZone()

	deps.repo.EXPECT().GetZone(ctx, zone.ID).Return(&zone, nil)

	res, err := guard.ValidateLocation(ctx, north(hqCenter, 60), zone.ID)
	require.NoError(t, err)
	assert.True(t, res.IsInZone)
	assert.True(t, res.IsWarningDistance)
	assert.InDelta(t, 60, res.DistanceMeters, 0.5)
	assert.Equal(t, 50.0, res.WarningThresholdMeters)
}

func TestValidateLocation_InactiveZone(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zone := hqZone()
	zone.Status = models.ZoneStatusInactive

	deps.repo.EXPECT().GetZone(ctx, zone.ID).Return(&zone, nil)

	_, err := guard.ValidateLocation(ctx, hqCenter, zone.ID)
	assert.ErrorIs(t, err, models.ErrZoneNotFound)
}

func TestValidateAgainstZones_NoZones(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()

	deps.repo.EXPECT().GetZonesFromCache(ctx, "empty-site").Return([]models.GeofenceZone{}, nil)

	_, err := guard.ValidateAgainstZones(ctx, hqCenter, "empty-site")
	assert.ErrorIs(t, err, models.ErrNoZones)
}

func TestValidateAgainstZones_InvalidZone(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	broken := hqZone()
	broken.RadiusMeters = -5

	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{hqZone(), broken}, nil)

	_, err := guard.ValidateAgainstZones(ctx, hqCenter, "hq")
	assert.ErrorIs(t, err, models.ErrInvalidZone)
}

func TestValidateAgainstZones_AccuracyBlock(t *testing.T) {
	guard, deps := newTestGuard(t, Options{AccuracyPolicy: geo.AccuracyPolicyBlock})
	ctx := context.Background()
	zone := hqZone()
	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{zone}, nil)

	accuracy := 150.0
	loc := north(hqCenter, 10)
	loc.AccuracyMeters = &accuracy

	res, err := guard.ValidateAgainstZones(ctx, loc, "hq")
	require.NoError(t, err)
	assert.Empty(t, res.InZoneIDs)
	assert.True(t, res.PerZone[zone.ID].AccuracyBlocked)
	require.NotNil(t, res.PerZone[zone.ID].AccuracyWarning)
}

func TestVerifyClockAction_AllowedThenRateLimited(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zone := hqZone()

	// отклоненная вторая попытка не доходит до справочника зон
	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{zone}, nil).Times(1)

	req := models.ClockRequest{
		EmployeeID: "emp1",
		LocationID: "hq",
		Action:     models.ClockActionIn,
		Coordinate: north(hqCenter, 20),
	}
	verdict, err := guard.VerifyClockAction(ctx, req)
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
	require.NotNil(t, verdict.MatchedZoneID)
	assert.Equal(t, zone.ID, *verdict.MatchedZoneID)
	assert.Nil(t, verdict.WiFi)

	deps.clock.Advance(10 * time.Second)
	_, err = guard.VerifyClockAction(ctx, req)
	require.ErrorIs(t, err, models.ErrRateLimited)

	var rlErr *models.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, 20, rlErr.RemainingSeconds)
	assert.Contains(t, err.Error(), "please wait 20 seconds before trying to clock in again")
}

func TestClearRateLimit(t *testing.T) {
	guard, _ := newTestGuard(t, Options{})

	allowed, _ := guard.CheckRateLimit("emp1", models.ClockActionIn)
	require.True(t, allowed)
	allowed, _ = guard.CheckRateLimit("emp1", models.ClockActionOut)
	require.True(t, allowed)

	guard.ClearRateLimit("emp1", models.ClockActionIn)
	allowed, _ = guard.CheckRateLimit("emp1", models.ClockActionIn)
	assert.True(t, allowed)
	allowed, remaining := guard.CheckRateLimit("emp1", models.ClockActionOut)
	assert.False(t, allowed)
	assert.Equal(t, 30, remaining)

	// пустое действие снимает все интервалы сотрудника
	guard.ClearRateLimit("emp1", "")
	allowed, _ = guard.CheckRateLimit("emp1", models.ClockActionOut)
	assert.True(t, allowed)
}

func TestVerifyClockAction_Outside(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	zone := hqZone()
	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{zone}, nil)

	verdict, err := guard.VerifyClockAction(ctx, models.ClockRequest{
		EmployeeID: "emp1",
		LocationID: "hq",
		Action:     models.ClockActionOut,
		Coordinate: north(hqCenter, 150),
	})
	require.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Nil(t, verdict.MatchedZoneID)
	require.NotNil(t, verdict.Closest)
	assert.Equal(t, zone.ID, verdict.Closest.ZoneID)
	require.Len(t, verdict.Reasons, 1)
	assert.Contains(t, verdict.Reasons[0], "150m away")
}

func TestVerifyClockAction_WiFi(t *testing.T) {
	const bssid = "AA:BB:CC:DD:EE:FF"

	strictZone, lenientZone := true, false
	guestNetwork := &models.WiFiNetwork{SSID: "Office-Guest", BSSID: "11:22:33:44:55:66"}

	tests := []struct {
		name           string
		strict         bool
		zoneStrict     *bool
		observed       *models.WiFiNetwork
		wantAllowed    bool
		wantConfidence models.WiFiConfidence
	}{
		{"bssid match", true, nil, &models.WiFiNetwork{SSID: "Office", BSSID: "aa-bb-cc-dd-ee-ff"}, true, models.WiFiConfidenceHigh},
		{"gps only when lenient", false, nil, nil, true, models.WiFiConfidenceUnknown},
		{"gps only when strict", true, nil, nil, false, models.WiFiConfidenceLow},
		{"ssid only when strict", true, nil, guestNetwork, false, models.WiFiConfidenceMedium},
		{"unknown network", false, nil, &models.WiFiNetwork{SSID: "Cafe", BSSID: "11:22:33:44:55:66"}, false, models.WiFiConfidenceLow},
		{"strict zone overrides lenient default", false, &strictZone, guestNetwork, false, models.WiFiConfidenceMedium},
		{"lenient zone overrides strict default", true, &lenientZone, guestNetwork, true, models.WiFiConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, deps := newTestGuard(t, Options{WiFiStrict: tt.strict})
			ctx := context.Background()
			zone := hqZone()
			zone.ExpectedBSSIDs = []string{wifi.HashBSSID(bssid)}
			zone.ExpectedSSIDs = []string{"office"}
			zone.StrictWiFi = tt.zoneStrict
			deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{zone}, nil)

			verdict, err := guard.VerifyClockAction(ctx, models.ClockRequest{
				EmployeeID: "emp1",
				LocationID: "hq",
				Action:     models.ClockActionIn,
				Coordinate: hqCenter,
				WiFi:       tt.observed,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, verdict.Allowed)
			require.NotNil(t, verdict.WiFi)
			assert.Equal(t, tt.wantConfidence, verdict.WiFi.Confidence)
		})
	}
}

func TestVerifyWiFi_StrictPerCall(t *testing.T) {
	guard, _ := newTestGuard(t, Options{WiFiStrict: false})
	guest := &models.WiFiNetwork{SSID: "Office-Guest", BSSID: "11:22:33:44:55:66"}

	lenient := guard.VerifyWiFi(guest, []string{"aa:bb:cc:dd:ee:ff"}, []string{"office"}, false)
	assert.True(t, lenient.Matched)

	strict := guard.VerifyWiFi(guest, []string{"aa:bb:cc:dd:ee:ff"}, []string{"office"}, true)
	assert.False(t, strict.Matched)
	assert.Equal(t, models.WiFiConfidenceMedium, strict.Confidence)
}

func TestVerifyClockAction_ClockOutClosesShift(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	expectBreakStore(deps)
	ctx := context.Background()
	zone := hqZone()
	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{zone}, nil)
	deps.tracker.EXPECT().StopTracking("emp1").Return(true)

	open, err := guard.StartBreak(ctx, "emp1", "te-1", models.BreakKindBreak)
	require.NoError(t, err)
	deps.clock.Advance(12 * time.Minute)

	verdict, err := guard.VerifyClockAction(ctx, models.ClockRequest{
		EmployeeID:  "emp1",
		LocationID:  "hq",
		TimeEntryID: "te-1",
		Action:      models.ClockActionOut,
		Coordinate:  hqCenter,
	})
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.True(t, verdict.TrackingStopped)
	require.NotNil(t, verdict.EndedBreak)
	assert.Equal(t, open.ID, verdict.EndedBreak.ID)
	assert.Equal(t, 12, *verdict.EndedBreak.DurationMinutes)

	summary, err := guard.BreakSummary(ctx, "te-1")
	require.NoError(t, err)
	assert.Nil(t, summary.Active)
	assert.Equal(t, 12, summary.TotalMinutes)
}

func TestVerifyClockAction_ClockOutWithoutOpenBreak(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()
	deps.repo.EXPECT().GetZonesFromCache(ctx, "hq").Return([]models.GeofenceZone{hqZone()}, nil)
	deps.tracker.EXPECT().StopTracking("emp1").Return(false)

	verdict, err := guard.VerifyClockAction(ctx, models.ClockRequest{
		EmployeeID:  "emp1",
		LocationID:  "hq",
		TimeEntryID: "te-1",
		Action:      models.ClockActionOut,
		Coordinate:  hqCenter,
	})
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Nil(t, verdict.EndedBreak)
	assert.False(t, verdict.TrackingStopped)
}

func TestVerifyClockAction_RequiresIDs(t *testing.T) {
	guard, _ := newTestGuard(t, Options{})

	_, err := guard.VerifyClockAction(context.Background(), models.ClockRequest{LocationID: "hq", Action: models.ClockActionIn})
	assert.Error(t, err)
}

func TestBreaks_Lifecycle(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	expectBreakStore(deps)
	ctx := context.Background()

	session, err := guard.StartBreak(ctx, "emp1", "te-1", models.BreakKindLunch)
	require.NoError(t, err)
	assert.Equal(t, models.BreakStatusActive, session.Status)

	_, err = guard.StartBreak(ctx, "emp1", "te-1", models.BreakKindBreak)
	assert.ErrorIs(t, err, models.ErrDuplicateActiveBreak)

	summary, err := guard.BreakSummary(ctx, "te-1")
	require.NoError(t, err)
	require.NotNil(t, summary.Active)
	assert.Equal(t, session.ID, summary.Active.ID)
	assert.Equal(t, 0, summary.TotalMinutes)

	deps.clock.Advance(30 * time.Minute)
	ended, err := guard.EndBreak(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, ended.DurationMinutes)
	assert.Equal(t, 30, *ended.DurationMinutes)

	summary, err = guard.BreakSummary(ctx, "te-1")
	require.NoError(t, err)
	assert.Nil(t, summary.Active)
	assert.Equal(t, 30, summary.TotalMinutes)
	assert.Len(t, summary.Sessions, 1)

	_, err = guard.EndBreak(ctx, session.ID)
	assert.ErrorIs(t, err, models.ErrNoActiveBreak)
}

func TestBreakSummary_StoreFailure(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()

	deps.breaks.EXPECT().ListBreaks(ctx, "te-1").Return(nil, errors.New("connection refused"))

	_, err := guard.BreakSummary(ctx, "te-1")
	assert.ErrorContains(t, err, "connection refused")
}

func TestStartTracking(t *testing.T) {
	guard, deps := newTestGuard(t, Options{})
	ctx := context.Background()

	stopped := false
	deps.tracker.EXPECT().
		StartTracking(ctx, "emp1", "hq", gomock.Any()).
		Return(tracking.CancelFunc(func() { stopped = true }), nil)

	cancel, err := guard.StartTracking(ctx, "emp1", "hq", nil)
	require.NoError(t, err)
	cancel()
	assert.True(t, stopped)

	deps.tracker.EXPECT().
		StartTracking(ctx, "emp1", "hq", gomock.Any()).
		Return(nil, models.ErrTrackingActive)

	_, err = guard.StartTracking(ctx, "emp1", "hq", nil)
	assert.ErrorIs(t, err, models.ErrTrackingActive)

	deps.tracker.EXPECT().StopTracking("emp1").Return(true)
	assert.True(t, guard.StopTracking("emp1"))
}

func TestBreakPolicyAlerter(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockAlertNotifier(ctrl)
	working := mocks.NewMockAlertNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	v := models.BreakPolicyViolation{
		SessionID:      uuid.New(),
		EmployeeID:     "emp1",
		TimeEntryID:    "te-1",
		ElapsedMinutes: 481,
		MaxMinutes:     480,
	}

	failing.EXPECT().NotifyBreakPolicy(gomock.Any(), v).Return(errors.New("queue full"))
	failing.EXPECT().Name().Return("webhook").AnyTimes()
	working.EXPECT().NotifyBreakPolicy(gomock.Any(), v).Return(nil)

	BreakPolicyAlerter([]AlertNotifier{failing, working}, logger)(v)
}
