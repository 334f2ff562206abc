package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type WithdrawalRepo interface {
	// ErrDuplicateNumber, если номер заявки уже занят
	CreateWithdrawal(ctx context.Context, w entities.WithdrawalRequest) error
	GetWithdrawal(ctx context.Context, id string, lock bool) (entities.WithdrawalRequest, error)
	UpdateWithdrawal(ctx context.Context, w entities.WithdrawalRequest) error
	AppendWithdrawalHistory(ctx context.Context, withdrawalID string, e entities.HistoryEntry) error
	ListWithdrawals(ctx context.Context, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error)
	GetPayoutAccount(ctx context.Context, storeID, accountID string) (entities.PayoutAccount, error)
	GetStore(ctx context.Context, id string) (entities.StoreInfo, error)
	GetAdmin(ctx context.Context, id string) (entities.AdminInfo, error)
}

type Ledger interface {
	GetWallet(ctx context.Context, storeID string) (entities.Wallet, error)
	Reserve(ctx context.Context, p Posting) (entities.WalletTransaction, error)
	ReleaseReservation(ctx context.Context, p Posting) (entities.WalletTransaction, error)
	SettleReservation(ctx context.Context, storeID string, amount int64) (entities.Wallet, error)
	Reinstate(ctx context.Context, p Posting) (entities.WalletTransaction, error)
}

type Notifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}

// Template готовит уведомление магазину о заявке.
type Template func(store entities.StoreInfo, req entities.WithdrawalRequest) (entities.Notification, error)

type WithdrawalTemplates struct {
	Created  Template
	Approved Template
	Rejected Template
	Failed   Template
}

type WithdrawalPolicy struct {
	Fees      entities.FeeSchedule
	MinAmount int64
}

const createAttempts = 3

type withdrawalService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      WithdrawalRepo
	ledger    Ledger
	notifier  Notifier
	templates WithdrawalTemplates
	policy    WithdrawalPolicy
	now       func() time.Time
}

func NewWithdrawalService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo WithdrawalRepo,
	ledger Ledger,
	notifier Notifier,
	templates WithdrawalTemplates,
	policy WithdrawalPolicy,
	clock func() time.Time,
) *withdrawalService {
	if clock == nil {
		clock = time.Now
	}
	return &withdrawalService{
		logger:    logger.With(slog.String("service", "withdrawal")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		notifier:  notifier,
		templates: templates,
		policy:    policy,
		now:       clock,
	}
}

// Create резервирует средства магазина и заводит заявку на вывод в статусе pending.
func (s *withdrawalService) Create(ctx context.Context, actor entities.Actor, in entities.WithdrawalDraft) (entities.WithdrawalRequest, error) {
	if actor.Role != entities.RoleStore || actor.StoreID == "" {
		return entities.WithdrawalRequest{}, entities.ErrForbidden
	}
	if in.Amount < s.policy.MinAmount {
		return entities.WithdrawalRequest{}, entities.NewError(entities.KindBadRequest, "minimum withdrawal amount is %d", s.policy.MinAmount)
	}

	account, err := s.repo.GetPayoutAccount(ctx, actor.StoreID, in.PayoutAccountID)
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}
	wallet, err := s.ledger.GetWallet(ctx, actor.StoreID)
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}
	// предварительная проверка; окончательная - атомарно при резервировании
	if wallet.Balance < in.Amount {
		return entities.WithdrawalRequest{}, entities.ErrInsufficientFunds
	}

	fee, net := s.policy.Fees.Compute(in.Amount)
	if net <= 0 {
		return entities.WithdrawalRequest{}, entities.NewError(entities.KindBadRequest, "amount %d does not cover processing fee %d", in.Amount, fee)
	}

	var req entities.WithdrawalRequest
	for attempt := 1; attempt <= createAttempts; attempt++ {
		now := s.now()
		req = entities.WithdrawalRequest{
			ID:              uuid.NewString(),
			RequestNumber:   entities.NewRequestNumber(now),
			StoreID:         actor.StoreID,
			PayoutAccountID: account.ID,
			RequestedAmount: in.Amount,
			ProcessingFee:   fee,
			NetAmount:       net,
			Description:     strings.TrimSpace(in.Description),
			Bank:            account.Bank,
			Status:          entities.WithdrawalPending,
			StatusHistory: []entities.HistoryEntry{{
				Status:    string(entities.WithdrawalPending),
				Notes:     "Withdrawal request created",
				ActorID:   actor.ID,
				CreatedAt: now,
			}},
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.CreateWithdrawal(ctx, req); err != nil {
				return err
			}
			if err := s.repo.AppendWithdrawalHistory(ctx, req.ID, req.StatusHistory[0]); err != nil {
				return fmt.Errorf("failed to append history: %w", err)
			}
			_, err := s.ledger.Reserve(ctx, Posting{
				StoreID:     req.StoreID,
				Amount:      req.RequestedAmount,
				Source:      entities.SourceWithdrawal,
				Description: fmt.Sprintf("Withdrawal request %s", req.RequestNumber),
				Document:    entities.DocumentRef{ID: req.ID, Type: entities.DocumentWithdrawal},
			})
			return err
		})
		if !errors.Is(err, entities.ErrDuplicateNumber) {
			break
		}
		s.logger.Warn("withdrawal request number collision", slog.String("number", req.RequestNumber), slog.Int("attempt", attempt))
	}
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}

	s.recordTransition(req)
	s.logger.Info("withdrawal request created",
		slog.String("withdrawal_id", req.ID),
		slog.String("store_id", req.StoreID),
		slog.Int64("amount", req.RequestedAmount),
	)
	s.notify(ctx, req, s.templates.Created)
	return req, nil
}

func (s *withdrawalService) StartReview(ctx context.Context, actor entities.Actor, id, notes string) (entities.WithdrawalRequest, error) {
	return s.mutate(ctx, actor, id, func(ctx context.Context, req *entities.WithdrawalRequest) error {
		return req.StartReview(actor.ID, notes, s.now())
	})
}

// Approve фиксирует внешнюю выплату: резерв списывается, дебет был записан при создании.
func (s *withdrawalService) Approve(ctx context.Context, actor entities.Actor, id, reference, notes string) (entities.WithdrawalRequest, error) {
	if strings.TrimSpace(reference) == "" {
		return entities.WithdrawalRequest{}, entities.NewError(entities.KindBadRequest, "transaction reference is required")
	}
	req, err := s.mutate(ctx, actor, id, func(ctx context.Context, req *entities.WithdrawalRequest) error {
		if err := req.Approve(actor.ID, reference, notes, s.now()); err != nil {
			return err
		}
		_, err := s.ledger.SettleReservation(ctx, req.StoreID, req.RequestedAmount)
		return err
	})
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}
	s.notify(ctx, req, s.templates.Approved)
	return req, nil
}

// Reject возвращает резерв на баланс магазина.
func (s *withdrawalService) Reject(ctx context.Context, actor entities.Actor, id, reason, notes string) (entities.WithdrawalRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.WithdrawalRequest{}, entities.NewError(entities.KindBadRequest, "rejection reason is required")
	}
	req, err := s.mutate(ctx, actor, id, func(ctx context.Context, req *entities.WithdrawalRequest) error {
		if err := req.Reject(actor.ID, reason, notes, s.now()); err != nil {
			return err
		}
		_, err := s.ledger.ReleaseReservation(ctx, Posting{
			StoreID:     req.StoreID,
			Amount:      req.RequestedAmount,
			Source:      entities.SourceAdjustment,
			Description: fmt.Sprintf("Withdrawal request %s rejected: %s", req.RequestNumber, reason),
			Document:    entities.DocumentRef{ID: req.ID, Type: entities.DocumentWithdrawal},
		})
		return err
	})
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}
	s.notify(ctx, req, s.templates.Rejected)
	return req, nil
}

func (s *withdrawalService) MarkProcessing(ctx context.Context, actor entities.Actor, id, notes string) (entities.WithdrawalRequest, error) {
	return s.mutate(ctx, actor, id, func(ctx context.Context, req *entities.WithdrawalRequest) error {
		return req.MarkProcessing(actor.ID, notes, s.now())
	})
}

func (s *withdrawalService) Complete(ctx context.Context, actor entities.Actor, id, reference, notes string) (entities.WithdrawalRequest, error) {
	return s.mutate(ctx, actor, id, func(ctx context.Context, req *entities.WithdrawalRequest) error {
		return req.Complete(actor.ID, reference, notes, s.now())
	})
}

// Fail отмечает несостоявшуюся выплату и возвращает деньги на баланс магазина.
func (s *withdrawalService) Fail(ctx context.Context, actor entities.Actor, id, reason string) (entities.WithdrawalRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.WithdrawalRequest{}, entities.NewError(entities.KindBadRequest, "failure reason is required")
	}
	req, err := s.mutate(ctx, actor, id, func(ctx context.Context, req *entities.WithdrawalRequest) error {
		if err := req.Fail(actor.ID, reason, s.now()); err != nil {
			return err
		}
		_, err := s.ledger.Reinstate(ctx, Posting{
			StoreID:     req.StoreID,
			Amount:      req.RequestedAmount,
			Source:      entities.SourceRefund,
			Description: fmt.Sprintf("Payout of withdrawal request %s failed: %s", req.RequestNumber, reason),
			Document:    entities.DocumentRef{ID: req.ID, Type: entities.DocumentWithdrawal},
		})
		return err
	})
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}
	s.notify(ctx, req, s.templates.Failed)
	return req, nil
}

// mutate блокирует заявку, применяет переход вместе с движением по кошельку и сохраняет
// новые записи журнала. Любая ошибка откатывает всё целиком.
func (s *withdrawalService) mutate(ctx context.Context, actor entities.Actor, id string, apply func(ctx context.Context, req *entities.WithdrawalRequest) error) (entities.WithdrawalRequest, error) {
	if !actor.IsAdmin() {
		return entities.WithdrawalRequest{}, entities.ErrAdminOnly
	}

	var req entities.WithdrawalRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.repo.GetWithdrawal(ctx, id, true)
		if err != nil {
			return err
		}
		before := len(req.StatusHistory)
		if err := apply(ctx, &req); err != nil {
			return err
		}
		if err := s.repo.UpdateWithdrawal(ctx, req); err != nil {
			return fmt.Errorf("failed to update withdrawal request: %w", err)
		}
		for _, e := range req.StatusHistory[before:] {
			if err := s.repo.AppendWithdrawalHistory(ctx, req.ID, e); err != nil {
				return fmt.Errorf("failed to append history: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}

	s.recordTransition(req)
	s.logger.Info("withdrawal request status changed",
		slog.String("withdrawal_id", req.ID),
		slog.String("status", string(req.Status)),
		slog.String("admin_id", actor.ID),
	)
	return req, nil
}

func (s *withdrawalService) recordTransition(req entities.WithdrawalRequest) {
	withdrawalTransitions.WithLabelValues(string(req.Status)).Inc()
	withdrawalAmount.WithLabelValues(string(req.Status)).Add(float64(req.RequestedAmount))
}

// notify не влияет на результат операции: ошибки только логируются.
func (s *withdrawalService) notify(ctx context.Context, req entities.WithdrawalRequest, tmpl Template) {
	if tmpl == nil || s.notifier == nil {
		return
	}
	logger := s.logger.With(slog.String("withdrawal_id", req.ID))

	store, err := s.repo.GetStore(ctx, req.StoreID)
	if err != nil {
		notificationFailures.Inc()
		logger.Warn("failed to load store for notification", slog.Any("error", err))
		return
	}
	msg, err := tmpl(store, req)
	if err != nil {
		notificationFailures.Inc()
		logger.Warn("failed to render notification", slog.Any("error", err))
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		notificationFailures.Inc()
		logger.Warn("failed to send notification", slog.Any("error", err))
	}
}

func (s *withdrawalService) StoreList(ctx context.Context, actor entities.Actor, storeID string, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error) {
	if !actor.OwnsStore(storeID) {
		return entities.PageResult[entities.WithdrawalListItem]{}, entities.ErrForbidden
	}
	f.StoreID = storeID
	return s.list(ctx, f)
}

func (s *withdrawalService) StoreDetail(ctx context.Context, actor entities.Actor, storeID, id string) (entities.WithdrawalRequest, error) {
	if !actor.OwnsStore(storeID) {
		return entities.WithdrawalRequest{}, entities.ErrForbidden
	}
	req, err := s.repo.GetWithdrawal(ctx, id, false)
	if err != nil {
		return entities.WithdrawalRequest{}, err
	}
	if req.StoreID != storeID {
		return entities.WithdrawalRequest{}, entities.ErrWithdrawalNotFound
	}
	return req, nil
}

func (s *withdrawalService) AdminList(ctx context.Context, actor entities.Actor, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error) {
	if !actor.IsAdmin() {
		return entities.PageResult[entities.WithdrawalListItem]{}, entities.ErrAdminOnly
	}
	return s.list(ctx, f)
}

func (s *withdrawalService) list(ctx context.Context, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error) {
	if f.Status != "" && !f.Status.Valid() {
		return entities.PageResult[entities.WithdrawalListItem]{}, entities.NewError(entities.KindBadRequest, "unknown withdrawal status %q", f.Status)
	}
	f.Page = f.Page.Normalize()
	return s.repo.ListWithdrawals(ctx, f)
}

// AdminDetail собирает карточку заявки: магазин, кошелёк и администраторов грузим параллельно.
func (s *withdrawalService) AdminDetail(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalDetails, error) {
	if !actor.IsAdmin() {
		return entities.WithdrawalDetails{}, entities.ErrAdminOnly
	}
	req, err := s.repo.GetWithdrawal(ctx, id, false)
	if err != nil {
		return entities.WithdrawalDetails{}, err
	}

	details := entities.WithdrawalDetails{Request: req}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		store, err := s.repo.GetStore(gctx, req.StoreID)
		details.Store = store
		return err
	})
	g.Go(func() error {
		wallet, err := s.ledger.GetWallet(gctx, req.StoreID)
		details.Wallet = wallet
		return err
	})
	if req.ReviewedBy != "" {
		g.Go(func() error {
			admin, err := s.optionalAdmin(gctx, req.ReviewedBy)
			details.Reviewer = admin
			return err
		})
	}
	if req.ProcessedBy != "" {
		g.Go(func() error {
			admin, err := s.optionalAdmin(gctx, req.ProcessedBy)
			details.Processor = admin
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return entities.WithdrawalDetails{}, err
	}
	return details, nil
}

// optionalAdmin: удалённый администратор не должен ломать карточку заявки.
func (s *withdrawalService) optionalAdmin(ctx context.Context, id string) (*entities.AdminInfo, error) {
	admin, err := s.repo.GetAdmin(ctx, id)
	if errors.Is(err, entities.ErrAdminNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
