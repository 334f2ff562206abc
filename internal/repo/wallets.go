package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/postgres"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var walletColumns = []string{"wallet_id", "store_id", "balance", "pending", "total_earned", "created_at", "updated_at"}

var transactionColumns = []string{
	"transaction_id", "wallet_id", "type", "amount", "source", "description",
	"related_document_id", "related_document_type", "created_at",
}

type walletRepo struct {
	base
}

func NewWalletRepo(db *sqlx.DB) *walletRepo {
	return &walletRepo{base: newBase(db)}
}

func (r *walletRepo) GetWallet(ctx context.Context, storeID string) (entities.Wallet, error) {
	query, args := r.qb.Select(walletColumns...).
		From("wallets").
		Where(sq.Eq{"store_id": storeID}).
		MustSql()

	var w Wallet
	err := r.getContext(ctx, &w, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Wallet{}, entities.ErrWalletNotFound
	}
	if err != nil {
		return entities.Wallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}
	return WalletToEntity(w), nil
}

// AdjustWallet применяет изменение одним условным UPDATE: проверка неотрицательности
// и запись происходят атомарно, конкурирующие списания сериализуются на строке.
func (r *walletRepo) AdjustWallet(ctx context.Context, storeID string, d entities.WalletDelta) (entities.Wallet, error) {
	query, args := r.qb.Update("wallets").
		Set("balance", sq.Expr("balance + ?", d.Balance)).
		Set("pending", sq.Expr("pending + ?", d.Pending)).
		Set("total_earned", sq.Expr("total_earned + ?", d.TotalEarned)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"store_id": storeID}).
		Where(sq.Expr("balance + ? >= 0", d.Balance)).
		Where(sq.Expr("pending + ? >= 0", d.Pending)).
		Suffix("RETURNING wallet_id, store_id, balance, pending, total_earned, created_at, updated_at").
		MustSql()

	var w Wallet
	err := r.getContext(ctx, &w, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		exists, existsErr := r.walletExists(ctx, storeID)
		if existsErr != nil {
			return entities.Wallet{}, existsErr
		}
		if !exists {
			return entities.Wallet{}, entities.ErrWalletNotFound
		}
		return entities.Wallet{}, entities.ErrInsufficientFunds
	}
	if postgres.IsCheckViolation(err) {
		return entities.Wallet{}, entities.ErrInsufficientFunds
	}
	if err != nil {
		return entities.Wallet{}, fmt.Errorf("failed to adjust wallet: %w", err)
	}
	return WalletToEntity(w), nil
}

func (r *walletRepo) walletExists(ctx context.Context, storeID string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("wallets").
		Where(sq.Eq{"store_id": storeID}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check wallet: %w", err)
	}
	return exists, nil
}

func (r *walletRepo) InsertTransaction(ctx context.Context, t entities.WalletTransaction) error {
	query, args := r.qb.Insert("wallet_transactions").
		Columns(transactionColumns...).
		Values(
			t.ID, t.WalletID, string(t.Type), t.Amount, string(t.Source), t.Description,
			nullString(t.RelatedDocumentID), nullString(string(t.RelatedDocumentType)), t.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert wallet transaction: %w", err)
	}
	return nil
}

func (r *walletRepo) transactionsQuery(walletID string, f entities.TransactionFilter, columns ...string) sq.SelectBuilder {
	q := r.qb.Select(columns...).
		From("wallet_transactions").
		Where(sq.Eq{"wallet_id": walletID})

	if f.Type != "" {
		q = q.Where(sq.Eq{"type": string(f.Type)})
	}
	if f.Source != "" {
		q = q.Where(sq.Eq{"source": string(f.Source)})
	}
	if !f.Created.From.IsZero() {
		q = q.Where(sq.GtOrEq{"created_at": f.Created.From})
	}
	if !f.Created.To.IsZero() {
		q = q.Where(sq.Lt{"created_at": f.Created.To})
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(sq.Or{
			sq.ILike{"description": pattern},
			sq.ILike{"source": pattern},
		})
	}
	return q
}

func (r *walletRepo) ListTransactions(ctx context.Context, walletID string, f entities.TransactionFilter) (entities.PageResult[entities.WalletTransaction], error) {
	page := f.Page.Normalize()

	total, err := r.count(ctx, r.transactionsQuery(walletID, f, "COUNT(*)"))
	if err != nil {
		return entities.PageResult[entities.WalletTransaction]{}, fmt.Errorf("failed to count wallet transactions: %w", err)
	}

	query, args := r.transactionsQuery(walletID, f, transactionColumns...).
		OrderBy("created_at DESC", "transaction_id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var rows []WalletTransaction
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return entities.PageResult[entities.WalletTransaction]{}, fmt.Errorf("failed to select wallet transactions: %w", err)
	}

	items := make([]entities.WalletTransaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, TransactionToEntity(row))
	}
	return entities.PageResult[entities.WalletTransaction]{Items: items, Total: total, Page: page}, nil
}

func (r *walletRepo) GetTransaction(ctx context.Context, walletID, id string) (entities.WalletTransaction, error) {
	query, args := r.qb.Select(transactionColumns...).
		From("wallet_transactions").
		Where(sq.Eq{"wallet_id": walletID, "transaction_id": id}).
		MustSql()

	var t WalletTransaction
	err := r.getContext(ctx, &t, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WalletTransaction{}, entities.ErrTransactionNotFound
	}
	if err != nil {
		return entities.WalletTransaction{}, fmt.Errorf("failed to get wallet transaction: %w", err)
	}
	return TransactionToEntity(t), nil
}

// OrderSummaries - проекции подзаказов для обогащения списка транзакций.
func (r *walletRepo) OrderSummaries(ctx context.Context, subOrderIDs []string) (map[string]entities.OrderSummary, error) {
	if len(subOrderIDs) == 0 {
		return map[string]entities.OrderSummary{}, nil
	}

	query, args := r.qb.Select(
		"s.sub_order_id", "s.order_id", "o.buyer_name", "s.total", "s.delivery_status", "s.created_at").
		From("sub_orders s").
		Join("orders o ON o.order_id = s.order_id").
		Where(sq.Eq{"s.sub_order_id": subOrderIDs}).
		MustSql()

	var rows []OrderSummary
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order summaries: %w", err)
	}

	res := make(map[string]entities.OrderSummary, len(rows))
	for _, row := range rows {
		res[row.SubOrderID] = entities.OrderSummary{
			SubOrderID:     row.SubOrderID,
			OrderID:        row.OrderID,
			BuyerName:      row.BuyerName,
			Total:          row.Total,
			DeliveryStatus: entities.DeliveryStatus(row.DeliveryStatus),
			CreatedAt:      row.CreatedAt,
		}
	}
	return res, nil
}

func (r *walletRepo) WithdrawalSummaries(ctx context.Context, ids []string) (map[string]entities.WithdrawalSummary, error) {
	if len(ids) == 0 {
		return map[string]entities.WithdrawalSummary{}, nil
	}

	query, args := r.qb.Select(
		"withdrawal_id", "request_number", "status", "requested_amount", "net_amount", "created_at").
		From("withdrawal_requests").
		Where(sq.Eq{"withdrawal_id": ids}).
		MustSql()

	var rows []WithdrawalSummary
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select withdrawal summaries: %w", err)
	}

	res := make(map[string]entities.WithdrawalSummary, len(rows))
	for _, row := range rows {
		res[row.WithdrawalID] = entities.WithdrawalSummary{
			ID:              row.WithdrawalID,
			RequestNumber:   row.RequestNumber,
			Status:          entities.WithdrawalStatus(row.Status),
			RequestedAmount: row.RequestedAmount,
			NetAmount:       row.NetAmount,
			CreatedAt:       row.CreatedAt,
		}
	}
	return res, nil
}
