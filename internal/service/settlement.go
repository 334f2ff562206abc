package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
)

type Earnings interface {
	Credit(ctx context.Context, p Posting) (entities.WalletTransaction, error)
}

type settlementService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      SubOrderRepo
	ledger    Earnings
	now       func() time.Time
}

func NewSettlementService(logger *slog.Logger, txManager trm.Manager, repo SubOrderRepo, ledger Earnings, clock func() time.Time) *settlementService {
	if clock == nil {
		clock = time.Now
	}
	return &settlementService{
		logger:    logger.With(slog.String("service", "settlement")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		now:       clock,
	}
}

// ReleaseEscrow освобождает эскроу подзаказа и зачисляет выручку магазину в одной транзакции.
// Повторная инструкция для того же подзаказа возвращает ErrAlreadySettled.
func (s *settlementService) ReleaseEscrow(ctx context.Context, in entities.SettlementInstruction) (entities.WalletTransaction, error) {
	var credit entities.WalletTransaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		sub, err := s.repo.GetSubOrder(ctx, in.SubOrderID, true)
		if err != nil {
			return err
		}
		entry, err := sub.Release(in, s.now())
		if err != nil {
			return err
		}
		if err := s.repo.AppendSubOrderHistory(ctx, sub.ID, entry); err != nil {
			return fmt.Errorf("failed to append history: %w", err)
		}
		if err := s.repo.UpdateSubOrder(ctx, sub); err != nil {
			return fmt.Errorf("failed to update sub-order: %w", err)
		}

		credit, err = s.ledger.Credit(ctx, Posting{
			StoreID:     sub.StoreID,
			Amount:      in.Amount + in.ShippingPrice,
			Source:      entities.SourceOrder,
			Description: fmt.Sprintf("Earnings for sub-order %s", sub.ID),
			Document:    entities.DocumentRef{ID: sub.ID, Type: entities.DocumentOrder},
		})
		return err
	})
	if err != nil {
		return entities.WalletTransaction{}, err
	}

	escrowReleases.Inc()
	s.logger.Info("escrow released",
		slog.String("sub_order_id", in.SubOrderID),
		slog.Int64("amount", credit.Amount),
	)
	return credit, nil
}
