package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/attendance_guard/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "attendance_guard:webhook_alerts"
)

// Publisher ставит оповещения в очередь на доставку вебхуком
type Publisher interface {
	Publish(ctx context.Context, alert models.Alert) error
}

// RedisPublisher - Publisher поверх списка Redis, который разбирает Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет оповещение в левый конец очереди
func (p *RedisPublisher) Publish(ctx context.Context, alert models.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook alert: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook alert to Redis: %w", err)
	}
	return nil
}

// Notifier передает нарушения геозон и превышения перерывов в очередь вебхуков
type Notifier struct {
	publisher Publisher
}

// NewNotifier создает новый Notifier поверх Publisher
func NewNotifier(publisher Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

func (n *Notifier) Name() string { return "webhook" }

func (n *Notifier) NotifyViolation(ctx context.Context, event models.ViolationEvent) error {
	return n.publisher.Publish(ctx, models.NewViolationAlert(event))
}

func (n *Notifier) NotifyBreakPolicy(ctx context.Context, v models.BreakPolicyViolation) error {
	return n.publisher.Publish(ctx, models.NewBreakPolicyAlert(v))
}
