package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
)

type OrderRepo interface {
	// Идемпотентна, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) (bool, error)
	SaveSubOrder(ctx context.Context, s entities.SubOrder) error
	SaveLineItems(ctx context.Context, subOrderID string, items []entities.LineItem) error
	AppendSubOrderHistory(ctx context.Context, subOrderID string, e entities.HistoryEntry) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
	}
}

// SaveOrder сохраняет оформленный заказ: каждый подзаказ стартует в OrderPlaced
// со средствами покупателя в эскроу.
func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	if err := order.Validate(); err != nil {
		ordersIngested.WithLabelValues("invalid").Inc()
		return err
	}

	created := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.SaveOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if !created {
			return nil
		}

		for _, sub := range order.SubOrders {
			sub.OrderID = order.ID
			sub.BuyerID = order.BuyerID
			sub.DeliveryStatus = entities.StatusOrderPlaced
			sub.Escrow = entities.Escrow{Held: true}
			sub.CreatedAt = order.CreatedAt
			sub.UpdatedAt = order.CreatedAt

			if err := s.repo.SaveSubOrder(ctx, sub); err != nil {
				return fmt.Errorf("failed to save sub-order: %w", err)
			}
			if err := s.repo.SaveLineItems(ctx, sub.ID, sub.Items); err != nil {
				return fmt.Errorf("failed to save line items: %w", err)
			}
			entry := entities.HistoryEntry{
				Status:    string(entities.StatusOrderPlaced),
				Notes:     "Order placed, payment held in escrow",
				ActorID:   order.BuyerID,
				CreatedAt: order.CreatedAt,
			}
			if err := s.repo.AppendSubOrderHistory(ctx, sub.ID, entry); err != nil {
				return fmt.Errorf("failed to append history: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		ordersIngested.WithLabelValues("failed").Inc()
		return err
	}

	if created {
		ordersIngested.WithLabelValues("created").Inc()
		s.logger.Debug("order saved", slog.String("order_id", order.ID), slog.Int("sub_orders", len(order.SubOrders)))
	} else {
		ordersIngested.WithLabelValues("duplicate").Inc()
		s.logger.Debug("order already saved", slog.String("order_id", order.ID))
	}
	return nil
}
