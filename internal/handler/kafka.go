package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/config"
	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderService interface {
	SaveOrder(ctx context.Context, order entities.Order) error
}

type SettlementService interface {
	ReleaseEscrow(ctx context.Context, in entities.SettlementInstruction) (entities.WalletTransaction, error)
}

// Processor обрабатывает одно сообщение. Ошибка отправляет сообщение в DLQ.
type Processor interface {
	Process(ctx context.Context, m kafka.Message) error
}

// IsTransient отделяет временные сбои сети и базы от ошибок бизнес-правил.
// Повторять имеет смысл только первые.
func IsTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return entities.KindOf(err) == entities.KindInternal
}

// ProcessRetry - повтор вызова сервиса до отправки сообщения в DLQ.
func ProcessRetry(cfg config.Kafka) utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  cfg.RetryAttempts,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     cfg.RetryDelay * 20,
		Multiplier:   2,
		RetryIf:      IsTransient,
	}
}

type orderProcessor struct {
	validate *validator.Validate
	retry    utils.RetryConfig
	svc      OrderService
}

func NewOrderProcessor(svc OrderService, retry utils.RetryConfig) *orderProcessor {
	return &orderProcessor{validate: validator.New(), retry: retry, svc: svc}
}

func (p *orderProcessor) Process(ctx context.Context, m kafka.Message) error {
	var event CheckoutEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal checkout event: %w", err)
	}

	if err := p.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid checkout event: %w", err)
	}

	// Сохранение идемпотентно, поэтому повтор после сбоя не дублирует заказ
	order := CheckoutEventToEntity(event)
	return utils.Retry(ctx, p.retry, func() error {
		return p.svc.SaveOrder(ctx, order)
	})
}

type settlementProcessor struct {
	logger   *slog.Logger
	validate *validator.Validate
	retry    utils.RetryConfig
	svc      SettlementService
}

func NewSettlementProcessor(logger *slog.Logger, svc SettlementService, retry utils.RetryConfig) *settlementProcessor {
	return &settlementProcessor{
		logger:   logger.With(slog.String("processor", "settlement")),
		validate: validator.New(),
		retry:    retry,
		svc:      svc,
	}
}

func (p *settlementProcessor) Process(ctx context.Context, m kafka.Message) error {
	var event SettlementEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal settlement event: %w", err)
	}

	if err := p.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid settlement event: %w", err)
	}

	var tx entities.WalletTransaction
	in := SettlementEventToEntity(event)
	err := utils.Retry(ctx, p.retry, func() error {
		var err error
		tx, err = p.svc.ReleaseEscrow(ctx, in)
		return err
	})
	if errors.Is(err, entities.ErrAlreadySettled) {
		// повторная доставка уже проведённой инструкции
		p.logger.WarnContext(ctx, "escrow already released", slog.String("sub_order_id", event.SubOrderID))
		return nil
	}
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "escrow released",
		slog.String("sub_order_id", event.SubOrderID),
		slog.String("transaction_id", tx.ID),
		slog.Int64("amount", tx.Amount),
	)
	return nil
}

type kafkaHandler struct {
	topic     string
	dlq       *kafka.Writer
	reader    *kafka.Reader
	logger    *slog.Logger
	processor Processor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, topic string, processor Processor) *kafkaHandler {
	return &kafkaHandler{
		topic:  topic,
		logger: logger.With(slog.String("handler", "kafka"), slog.String("topic", topic)),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		processor: processor,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handle(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			messagesDLQ.WithLabelValues(h.topic).Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.WithLabelValues(h.topic).Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handle(ctx context.Context, m kafka.Message) error {
	messagesInProgress.WithLabelValues(h.topic).Inc()
	defer messagesInProgress.WithLabelValues(h.topic).Dec()

	start := time.Now()
	err := h.processor.Process(ctx, m)
	messageProcessingDuration.WithLabelValues(h.topic).Observe(time.Since(start).Seconds())

	if err != nil {
		messagesFailed.WithLabelValues(h.topic).Inc()
		return err
	}
	messagesProcessed.WithLabelValues(h.topic).Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   m.Topic,
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
