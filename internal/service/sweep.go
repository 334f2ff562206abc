package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
)

// AutoConfirm подтверждает доставку от имени системы, если покупатель молчит дольше льготного периода.
func (s *deliveryService) AutoConfirm(ctx context.Context, id string) (entities.SubOrder, error) {
	var sub entities.SubOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.repo.GetSubOrder(ctx, id, true)
		if err != nil {
			return err
		}
		entry, err := sub.AutoConfirm(s.now(), s.policy.AutoConfirmGrace)
		if err != nil {
			return err
		}
		return s.persist(ctx, sub, entry)
	})
	if err != nil {
		return entities.SubOrder{}, err
	}

	autoConfirmations.Inc()
	s.logger.Info("delivery auto-confirmed", slog.String("sub_order_id", id))
	return sub, nil
}

func (s *deliveryService) ListAutoConfirmEligible(ctx context.Context, f entities.EligibleFilter) (entities.PageResult[entities.EligibleSubOrder], error) {
	f.Page = f.Page.Normalize()
	cutoff := s.now().Add(-s.policy.AutoConfirmGrace)
	return s.repo.ListAutoConfirmEligible(ctx, cutoff, f)
}

// Sweep подтверждает все подходящие подзаказы пачками по batchSize.
// Подтверждённые выпадают из выборки, а пропущенные исключаются из неё явно,
// поэтому всегда читается первая страница и застрявшие строки не закрывают очередь.
func (s *deliveryService) Sweep(ctx context.Context, batchSize int) (int, error) {
	confirmed := 0
	var skipped []string
	for {
		if err := ctx.Err(); err != nil {
			return confirmed, err
		}

		page, err := s.ListAutoConfirmEligible(ctx, entities.EligibleFilter{
			Exclude: skipped,
			Page:    entities.Page{Page: 1, Limit: batchSize},
		})
		if err != nil {
			return confirmed, err
		}

		for _, item := range page.Items {
			if _, err := s.AutoConfirm(ctx, item.SubOrderID); err != nil {
				skipped = append(skipped, item.SubOrderID)
				// подзаказ мог быть подтверждён покупателем между выборкой и блокировкой
				if errors.Is(err, entities.ErrNotEligibleToConfirm) {
					continue
				}
				s.logger.Error("failed to auto-confirm delivery", slog.String("sub_order_id", item.SubOrderID), slog.Any("error", err))
				continue
			}
			confirmed++
		}

		if len(page.Items) < page.Page.Limit {
			if len(skipped) > 0 {
				s.logger.Warn("auto-confirm sweep skipped sub-orders", slog.Int("count", len(skipped)))
			}
			return confirmed, nil
		}
	}
}

type Sweeper interface {
	Sweep(ctx context.Context, batchSize int) (int, error)
}

// AutoConfirmScheduler периодически запускает Sweep до отмены контекста.
type AutoConfirmScheduler struct {
	logger    *slog.Logger
	sweeper   Sweeper
	interval  time.Duration
	batchSize int
}

func NewAutoConfirmScheduler(logger *slog.Logger, sweeper Sweeper, interval time.Duration, batchSize int) *AutoConfirmScheduler {
	return &AutoConfirmScheduler{
		logger:    logger.With(slog.String("worker", "auto-confirm")),
		sweeper:   sweeper,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (w *AutoConfirmScheduler) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.run(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (w *AutoConfirmScheduler) run(ctx context.Context) {
	n, err := w.sweeper.Sweep(ctx, w.batchSize)
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Error("auto-confirm sweep failed", slog.Any("error", err), slog.Int("confirmed", n))
		return
	}
	if n > 0 {
		w.logger.Info("auto-confirm sweep finished", slog.Int("confirmed", n))
	}
}
