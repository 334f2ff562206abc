package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/config"
	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Notification - сообщение для внешнего почтового сервиса.
type Notification struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	HTMLBody  string    `json:"html_body"`
	TextBody  string    `json:"text_body"`
	CreatedAt time.Time `json:"created_at"`
}

type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

// NewKafkaNotifier публикует уведомления асинхронно: ошибки доставки только логируются
// и никогда не возвращаются вызывающему.
func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	n := &kafkaNotifier{
		logger: logger.With(slog.String("component", "notifier")),
	}
	n.writer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		Async:        true,
		Completion:   n.completion,
	}
	return n
}

func (n *kafkaNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	payload, err := json.Marshal(Notification{
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		HTMLBody:  msg.HTMLBody,
		TextBody:  msg.TextBody,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Recipient),
		Value: payload,
	})
}

func (n *kafkaNotifier) completion(messages []kafka.Message, err error) {
	if err != nil {
		n.logger.Error("failed to deliver notifications", slog.Int("count", len(messages)), slog.Any("error", err))
	}
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
