package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
	"github.com/google/uuid"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, storeID string) (entities.Wallet, error)
	// Применяет изменение одним условным UPDATE; ErrInsufficientFunds, если баланс или резерв уходят в минус.
	AdjustWallet(ctx context.Context, storeID string, d entities.WalletDelta) (entities.Wallet, error)
	InsertTransaction(ctx context.Context, t entities.WalletTransaction) error
	ListTransactions(ctx context.Context, walletID string, f entities.TransactionFilter) (entities.PageResult[entities.WalletTransaction], error)
	GetTransaction(ctx context.Context, walletID, id string) (entities.WalletTransaction, error)
	OrderSummaries(ctx context.Context, subOrderIDs []string) (map[string]entities.OrderSummary, error)
	WithdrawalSummaries(ctx context.Context, ids []string) (map[string]entities.WithdrawalSummary, error)
}

type DocumentCache interface {
	Get(key string) (entities.RelatedDocument, bool)
	Set(key string, value entities.RelatedDocument)
}

// Posting описывает одно движение денег по кошельку магазина.
type Posting struct {
	StoreID     string
	Amount      int64
	Source      entities.TransactionSource
	Description string
	Document    entities.DocumentRef
}

type walletService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      WalletRepo
	cache     DocumentCache
	now       func() time.Time
}

func NewWalletService(logger *slog.Logger, txManager trm.Manager, repo WalletRepo, cache DocumentCache, clock func() time.Time) *walletService {
	if clock == nil {
		clock = time.Now
	}
	return &walletService{
		logger:    logger.With(slog.String("service", "wallet")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		now:       clock,
	}
}

// Credit зачисляет заработок магазина: растут баланс и суммарный доход.
func (s *walletService) Credit(ctx context.Context, p Posting) (entities.WalletTransaction, error) {
	return s.post(ctx, p, entities.TransactionCredit, entities.WalletDelta{
		Balance:     p.Amount,
		TotalEarned: p.Amount,
	})
}

func (s *walletService) Debit(ctx context.Context, p Posting) (entities.WalletTransaction, error) {
	return s.post(ctx, p, entities.TransactionDebit, entities.WalletDelta{Balance: -p.Amount})
}

// Reserve переносит сумму из доступного баланса в резерв под заявку на вывод.
func (s *walletService) Reserve(ctx context.Context, p Posting) (entities.WalletTransaction, error) {
	return s.post(ctx, p, entities.TransactionDebit, entities.WalletDelta{
		Balance: -p.Amount,
		Pending: p.Amount,
	})
}

// ReleaseReservation возвращает зарезервированную сумму на баланс.
func (s *walletService) ReleaseReservation(ctx context.Context, p Posting) (entities.WalletTransaction, error) {
	return s.post(ctx, p, entities.TransactionCredit, entities.WalletDelta{
		Balance: p.Amount,
		Pending: -p.Amount,
	})
}

// SettleReservation списывает резерв после одобрения выплаты. Дебет уже записан при резервировании.
func (s *walletService) SettleReservation(ctx context.Context, storeID string, amount int64) (entities.Wallet, error) {
	if amount <= 0 {
		return entities.Wallet{}, entities.ErrInvalidAmount
	}
	return s.repo.AdjustWallet(ctx, storeID, entities.WalletDelta{Pending: -amount})
}

// Reinstate возвращает на баланс деньги несостоявшейся выплаты, не увеличивая доход.
func (s *walletService) Reinstate(ctx context.Context, p Posting) (entities.WalletTransaction, error) {
	return s.post(ctx, p, entities.TransactionCredit, entities.WalletDelta{Balance: p.Amount})
}

func (s *walletService) post(ctx context.Context, p Posting, typ entities.TransactionType, delta entities.WalletDelta) (entities.WalletTransaction, error) {
	if p.Amount <= 0 {
		return entities.WalletTransaction{}, entities.ErrInvalidAmount
	}

	var t entities.WalletTransaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.AdjustWallet(ctx, p.StoreID, delta)
		if err != nil {
			return err
		}

		t = entities.WalletTransaction{
			ID:                  uuid.NewString(),
			WalletID:            wallet.ID,
			Type:                typ,
			Amount:              p.Amount,
			Source:              p.Source,
			Description:         p.Description,
			RelatedDocumentID:   p.Document.ID,
			RelatedDocumentType: p.Document.Type,
			CreatedAt:           s.now(),
		}
		if err := s.repo.InsertTransaction(ctx, t); err != nil {
			return fmt.Errorf("failed to insert wallet transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.WalletTransaction{}, err
	}

	walletMovements.WithLabelValues(string(typ), string(p.Source)).Inc()
	s.logger.Debug("wallet posting",
		slog.String("store_id", p.StoreID),
		slog.String("type", string(typ)),
		slog.String("source", string(p.Source)),
		slog.Int64("amount", p.Amount),
	)
	return t, nil
}

func (s *walletService) GetWallet(ctx context.Context, storeID string) (entities.Wallet, error) {
	return s.repo.GetWallet(ctx, storeID)
}

func (s *walletService) ListTransactions(ctx context.Context, storeID string, f entities.TransactionFilter) (entities.PageResult[entities.WalletTransaction], error) {
	if f.Type != "" && !f.Type.Valid() {
		return entities.PageResult[entities.WalletTransaction]{}, entities.NewError(entities.KindBadRequest, "unknown transaction type %q", f.Type)
	}
	if f.Source != "" && !f.Source.Valid() {
		return entities.PageResult[entities.WalletTransaction]{}, entities.NewError(entities.KindBadRequest, "unknown transaction source %q", f.Source)
	}
	f.Page = f.Page.Normalize()

	wallet, err := s.repo.GetWallet(ctx, storeID)
	if err != nil {
		return entities.PageResult[entities.WalletTransaction]{}, err
	}
	res, err := s.repo.ListTransactions(ctx, wallet.ID, f)
	if err != nil {
		return entities.PageResult[entities.WalletTransaction]{}, err
	}
	if err := s.attachDocuments(ctx, res.Items); err != nil {
		return entities.PageResult[entities.WalletTransaction]{}, err
	}
	return res, nil
}

func (s *walletService) GetTransaction(ctx context.Context, storeID, id string) (entities.WalletTransaction, error) {
	wallet, err := s.repo.GetWallet(ctx, storeID)
	if err != nil {
		return entities.WalletTransaction{}, err
	}
	t, err := s.repo.GetTransaction(ctx, wallet.ID, id)
	if err != nil {
		return entities.WalletTransaction{}, err
	}
	items := []entities.WalletTransaction{t}
	if err := s.attachDocuments(ctx, items); err != nil {
		return entities.WalletTransaction{}, err
	}
	return items[0], nil
}

func documentKey(typ entities.DocumentType, id string) string {
	return string(typ) + ":" + id
}

// attachDocuments подгружает связанный документ по его типу: сначала из кэша, затем пачкой из БД.
func (s *walletService) attachDocuments(ctx context.Context, items []entities.WalletTransaction) error {
	var orderIDs, withdrawalIDs []string
	fetched := make(map[string]entities.RelatedDocument)
	for i := range items {
		t := &items[i]
		if t.RelatedDocumentID == "" {
			continue
		}
		if doc, ok := s.cache.Get(documentKey(t.RelatedDocumentType, t.RelatedDocumentID)); ok {
			t.Related = &doc
			continue
		}
		switch t.RelatedDocumentType {
		case entities.DocumentOrder:
			orderIDs = append(orderIDs, t.RelatedDocumentID)
		case entities.DocumentWithdrawal:
			withdrawalIDs = append(withdrawalIDs, t.RelatedDocumentID)
		}
	}

	if len(orderIDs) > 0 {
		orders, err := s.repo.OrderSummaries(ctx, orderIDs)
		if err != nil {
			return fmt.Errorf("failed to load related orders: %w", err)
		}
		for id, o := range orders {
			doc := entities.RelatedDocument{Order: &o}
			fetched[documentKey(entities.DocumentOrder, id)] = doc
			s.cache.Set(documentKey(entities.DocumentOrder, id), doc)
		}
	}
	if len(withdrawalIDs) > 0 {
		withdrawals, err := s.repo.WithdrawalSummaries(ctx, withdrawalIDs)
		if err != nil {
			return fmt.Errorf("failed to load related withdrawals: %w", err)
		}
		for id, w := range withdrawals {
			doc := entities.RelatedDocument{Withdrawal: &w}
			fetched[documentKey(entities.DocumentWithdrawal, id)] = doc
			s.cache.Set(documentKey(entities.DocumentWithdrawal, id), doc)
		}
	}

	for i := range items {
		t := &items[i]
		if t.Related != nil || t.RelatedDocumentID == "" {
			continue
		}
		// документ мог быть удалён, тогда связь остаётся пустой
		if doc, ok := fetched[documentKey(t.RelatedDocumentType, t.RelatedDocumentID)]; ok {
			t.Related = &doc
		}
	}
	return nil
}
