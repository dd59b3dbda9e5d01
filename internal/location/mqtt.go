// Package location принимает отчеты о местоположении устройств через MQTT
// и отдает самый свежий замер каждого сотрудника.
package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTopic  = "attendance/+/location"
	DefaultMaxAge = 30 * time.Second

	connectTimeout = 10 * time.Second
	quiesceMillis  = 250
)

// report - сообщение устройства. EmployeeID читается, только если в топике
// нет wildcard-сегмента.
type report struct {
	EmployeeID     string    `json:"employee_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracy_meters"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type sample struct {
	coord      models.Coordinate
	receivedAt time.Time
}

// Options - параметры подключения к брокеру
type Options struct {
	BrokerURL string
	ClientID  string
	Topic     string
	MaxAge    time.Duration
}

// MQTTProvider хранит последнее местоположение каждого сотрудника
type MQTTProvider struct {
	client mqtt.Client
	topic  string
	maxAge time.Duration
	clock  clockwork.Clock
	logger *logrus.Logger

	mu       sync.RWMutex
	latest   map[string]sample
	watchers map[string]map[int]func(models.Coordinate)
	nextID   int
}

// NewMQTTProvider создает новый MQTTProvider. Подключение выполняет Connect.
func NewMQTTProvider(opts Options, clock clockwork.Clock, logger *logrus.Logger) *MQTTProvider {
	p := newProvider(opts.Topic, opts.MaxAge, clock, logger)

	clientOpts := mqtt.NewClientOptions().
		AddBroker(opts.BrokerURL).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetOnConnectHandler(p.subscribe).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.WithError(err).Warn("MQTT connection lost")
		})
	p.client = mqtt.NewClient(clientOpts)
	return p
}

func newProvider(topic string, maxAge time.Duration, clock clockwork.Clock, logger *logrus.Logger) *MQTTProvider {
	if topic == "" {
		topic = DefaultTopic
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MQTTProvider{
		topic:    topic,
		maxAge:   maxAge,
		clock:    clock,
		logger:   logger,
		latest:   make(map[string]sample),
		watchers: make(map[string]map[int]func(models.Coordinate)),
	}
}

// Connect подключается к брокеру. Подписка оформляется заново при каждом подключении.
func (p *MQTTProvider) Connect(ctx context.Context) error {
	token := p.client.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("location: mqtt connect: %w", err)
	}
	return nil
}

func (p *MQTTProvider) subscribe(c mqtt.Client) {
	token := c.Subscribe(p.topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		if err := p.ingest(msg.Topic(), msg.Payload()); err != nil {
			p.logger.WithError(err).WithField("topic", msg.Topic()).Warn("Dropping location report")
		}
	})
	if !token.WaitTimeout(connectTimeout) {
		p.logger.WithField("topic", p.topic).Error("MQTT subscribe timed out")
		return
	}
	if err := token.Error(); err != nil {
		p.logger.WithError(err).WithField("topic", p.topic).Error("MQTT subscribe failed")
		return
	}
	p.logger.WithField("topic", p.topic).Info("Subscribed to location reports")
}

// Close отключается от брокера
func (p *MQTTProvider) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(quiesceMillis)
	}
}

// ingest разбирает отчет и сохраняет его, если для сотрудника еще нет
// такого же или более нового
func (p *MQTTProvider) ingest(topic string, payload []byte) error {
	var r report
	if err := json.Unmarshal(payload, &r); err != nil {
		return fmt.Errorf("location: decode report: %w", err)
	}

	employeeID := p.employeeFromTopic(topic)
	if employeeID == "" {
		employeeID = r.EmployeeID
	}
	if employeeID == "" {
		return errors.New("location: report has no employee")
	}
	if !validCoordinate(r.Latitude, r.Longitude) {
		return fmt.Errorf("location: coordinate out of range (%f, %f)", r.Latitude, r.Longitude)
	}

	now := p.clock.Now()
	coord := models.Coordinate{
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		AccuracyMeters: r.AccuracyMeters,
		RecordedAt:     r.RecordedAt,
	}
	if coord.RecordedAt.IsZero() {
		coord.RecordedAt = now
	}

	p.mu.Lock()
	if prev, ok := p.latest[employeeID]; ok && !coord.RecordedAt.After(prev.coord.RecordedAt) {
		p.mu.Unlock()
		return nil
	}
	p.latest[employeeID] = sample{coord: coord, receivedAt: now}
	callbacks := make([]func(models.Coordinate), 0, len(p.watchers[employeeID]))
	for _, fn := range p.watchers[employeeID] {
		callbacks = append(callbacks, fn)
	}
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(coord)
	}
	return nil
}

// employeeFromTopic берет сегмент, совпавший с одноуровневым wildcard
func (p *MQTTProvider) employeeFromTopic(topic string) string {
	pattern := strings.Split(p.topic, "/")
	parts := strings.Split(topic, "/")
	if len(pattern) != len(parts) {
		return ""
	}
	for i, seg := range pattern {
		if seg == "+" {
			return parts[i]
		}
	}
	return ""
}

// CurrentLocation возвращает последний замер сотрудника, если он не устарел
func (p *MQTTProvider) CurrentLocation(_ context.Context, employeeID string) (models.Coordinate, error) {
	p.mu.RLock()
	s, ok := p.latest[employeeID]
	p.mu.RUnlock()

	if !ok {
		return models.Coordinate{}, fmt.Errorf("location: no report for employee %s: %w", employeeID, models.ErrLocationUnavailable)
	}
	if age := p.clock.Since(s.receivedAt); age > p.maxAge {
		return models.Coordinate{}, fmt.Errorf("location: last report for employee %s is %s old: %w",
			employeeID, age.Truncate(time.Second), models.ErrLocationUnavailable)
	}
	return s.coord, nil
}

// WatchLocation вызывает onUpdate на каждый новый отчет сотрудника, пока не
// вызвана возвращенная функция
func (p *MQTTProvider) WatchLocation(employeeID string, onUpdate func(models.Coordinate)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	if p.watchers[employeeID] == nil {
		p.watchers[employeeID] = make(map[int]func(models.Coordinate))
	}
	p.watchers[employeeID][id] = onUpdate
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.watchers[employeeID], id)
		if len(p.watchers[employeeID]) == 0 {
			delete(p.watchers, employeeID)
		}
	}
}

func validCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
