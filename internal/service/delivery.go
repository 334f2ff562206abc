package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
)

type SubOrderRepo interface {
	// lock=true берёт строку FOR UPDATE, вызывать внутри транзакции
	GetSubOrder(ctx context.Context, id string, lock bool) (entities.SubOrder, error)
	UpdateSubOrder(ctx context.Context, s entities.SubOrder) error
	AppendSubOrderHistory(ctx context.Context, subOrderID string, e entities.HistoryEntry) error
	ListAutoConfirmEligible(ctx context.Context, cutoff time.Time, f entities.EligibleFilter) (entities.PageResult[entities.EligibleSubOrder], error)
}

type deliveryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      SubOrderRepo
	policy    entities.DeliveryPolicy
	now       func() time.Time
}

func NewDeliveryService(logger *slog.Logger, txManager trm.Manager, repo SubOrderRepo, policy entities.DeliveryPolicy, clock func() time.Time) *deliveryService {
	if clock == nil {
		clock = time.Now
	}
	return &deliveryService{
		logger:    logger.With(slog.String("service", "delivery")),
		txManager: txManager,
		repo:      repo,
		policy:    policy,
		now:       clock,
	}
}

func (s *deliveryService) GetSubOrder(ctx context.Context, actor entities.Actor, id string) (entities.SubOrder, error) {
	sub, err := s.repo.GetSubOrder(ctx, id, false)
	if err != nil {
		return entities.SubOrder{}, err
	}
	if !canView(actor, sub) {
		return entities.SubOrder{}, entities.ErrForbidden
	}
	return sub, nil
}

func canView(actor entities.Actor, sub entities.SubOrder) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleStore:
		return actor.OwnsStore(sub.StoreID)
	case entities.RoleCustomer:
		return actor.ID != "" && actor.ID == sub.BuyerID
	}
	return false
}

// UpdateDeliveryStatus меняет статус доставки подзаказа от имени продавца или администратора.
func (s *deliveryService) UpdateDeliveryStatus(ctx context.Context, actor entities.Actor, id string, status entities.DeliveryStatus, notes string) (entities.StatusChange, error) {
	if !status.Valid() {
		return entities.StatusChange{}, entities.NewError(entities.KindBadRequest, "unknown delivery status %q", status)
	}

	var change entities.StatusChange
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		sub, err := s.repo.GetSubOrder(ctx, id, true)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && !actor.OwnsStore(sub.StoreID) {
			return entities.ErrForbidden
		}

		change, err = sub.Transition(actor, status, notes, s.now(), s.policy)
		if err != nil {
			return err
		}
		return s.persist(ctx, sub, change.Entry)
	})
	if err != nil {
		return entities.StatusChange{}, err
	}

	deliveryTransitions.WithLabelValues(string(change.NewStatus)).Inc()
	s.logger.Info("delivery status changed",
		slog.String("sub_order_id", id),
		slog.String("from", string(change.PreviousStatus)),
		slog.String("to", string(change.NewStatus)),
		slog.String("escrow_effect", string(change.EscrowEffect)),
	)
	return change, nil
}

// RefundSubOrder возвращает удержанные средства покупателю. Только для администратора.
func (s *deliveryService) RefundSubOrder(ctx context.Context, actor entities.Actor, id, reason string) (entities.StatusChange, error) {
	if !actor.IsAdmin() {
		return entities.StatusChange{}, entities.ErrAdminOnly
	}

	var change entities.StatusChange
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		sub, err := s.repo.GetSubOrder(ctx, id, true)
		if err != nil {
			return err
		}
		change, err = sub.Refund(actor, reason, s.now())
		if err != nil {
			return err
		}
		return s.persist(ctx, sub, change.Entry)
	})
	if err != nil {
		return entities.StatusChange{}, err
	}

	deliveryTransitions.WithLabelValues(string(entities.StatusRefunded)).Inc()
	s.logger.Info("sub-order refunded", slog.String("sub_order_id", id), slog.String("from", string(change.PreviousStatus)))
	return change, nil
}

// ConfirmDelivery - подтверждение получения покупателем.
func (s *deliveryService) ConfirmDelivery(ctx context.Context, actor entities.Actor, id string) (entities.SubOrder, error) {
	var sub entities.SubOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.repo.GetSubOrder(ctx, id, true)
		if err != nil {
			return err
		}
		if actor.Role != entities.RoleCustomer || actor.ID != sub.BuyerID {
			return entities.ErrForbidden
		}

		entry, err := sub.ConfirmByBuyer(actor, s.now())
		if err != nil {
			return err
		}
		return s.persist(ctx, sub, entry)
	})
	if err != nil {
		return entities.SubOrder{}, err
	}

	s.logger.Info("delivery confirmed by customer", slog.String("sub_order_id", id))
	return sub, nil
}

// persist пишет запись журнала и новое состояние в одной транзакции.
func (s *deliveryService) persist(ctx context.Context, sub entities.SubOrder, entry entities.HistoryEntry) error {
	if err := s.repo.AppendSubOrderHistory(ctx, sub.ID, entry); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	if err := s.repo.UpdateSubOrder(ctx, sub); err != nil {
		return fmt.Errorf("failed to update sub-order: %w", err)
	}
	return nil
}
