// Package stream публикует оповещения учета времени в топик Kafka для
// расчета зарплаты и отчетности.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/shenikar/attendance_guard/internal/models"
)

const kindHeader = "alert-kind"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier пишет одно сообщение на оповещение с ключом по сотруднику, чтобы
// оповещения одного сотрудника сохраняли порядок в партиции.
type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaNotifier создает новый KafkaNotifier. Нужен хотя бы один брокер.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if topic == "" {
		return nil, errors.New("KAFKA_TOPIC is required")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,
		Transport: &kafka.Transport{
			ClientID: "attendance-guard",
		},
	}
	return &KafkaNotifier{writer: w}, nil
}

func (n *KafkaNotifier) Name() string { return "kafka" }

func (n *KafkaNotifier) NotifyViolation(ctx context.Context, event models.ViolationEvent) error {
	return n.publish(ctx, models.NewViolationAlert(event))
}

func (n *KafkaNotifier) NotifyBreakPolicy(ctx context.Context, v models.BreakPolicyViolation) error {
	return n.publish(ctx, models.NewBreakPolicyAlert(v))
}

func (n *KafkaNotifier) publish(ctx context.Context, alert models.Alert) error {
	msg, err := buildMessage(alert)
	if err != nil {
		return err
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("stream: write %s alert: %w", alert.Kind, err)
	}
	return nil
}

func buildMessage(alert models.Alert) (kafka.Message, error) {
	value, err := json.Marshal(alert)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("stream: marshal alert: %w", err)
	}
	return kafka.Message{
		Key:   []byte(alert.EmployeeID),
		Value: value,
		Time:  alert.Timestamp,
		Headers: []kafka.Header{
			{Key: kindHeader, Value: []byte(alert.Kind)},
		},
	}, nil
}

// Close дожидается отправки буфера и закрывает writer
func (n *KafkaNotifier) Close() error {
	if n == nil || n.writer == nil {
		return nil
	}
	return n.writer.Close()
}
