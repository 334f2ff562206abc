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

var withdrawalColumns = []string{
	"w.withdrawal_id", "w.request_number", "w.store_id", "w.payout_account_id",
	"w.requested_amount", "w.processing_fee", "w.net_amount", "w.description",
	"w.bank_name", "w.bank_code", "w.account_number", "w.account_name", "w.status",
	"w.reviewed_by", "w.reviewed_at", "w.review_notes", "w.rejection_reason",
	"w.processed_by", "w.processed_at", "w.transaction_reference", "w.failure_reason",
	"w.created_at", "w.updated_at",
}

type withdrawalRepo struct {
	base
}

func NewWithdrawalRepo(db *sqlx.DB) *withdrawalRepo {
	return &withdrawalRepo{base: newBase(db)}
}

func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, w entities.WithdrawalRequest) error {
	query, args := r.qb.Insert("withdrawal_requests").
		Columns(
			"withdrawal_id", "request_number", "store_id", "payout_account_id",
			"requested_amount", "processing_fee", "net_amount", "description",
			"bank_name", "bank_code", "account_number", "account_name", "status",
			"created_at", "updated_at",
		).
		Values(
			w.ID, w.RequestNumber, w.StoreID, w.PayoutAccountID,
			w.RequestedAmount, w.ProcessingFee, w.NetAmount, nullString(w.Description),
			w.Bank.BankName, w.Bank.BankCode, w.Bank.AccountNumber, w.Bank.AccountName, string(w.Status),
			w.CreatedAt, w.UpdatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if postgres.IsUniqueViolation(err) {
		return entities.ErrDuplicateNumber
	}
	if err != nil {
		return fmt.Errorf("failed to create withdrawal request: %w", err)
	}
	return nil
}

// GetWithdrawal загружает заявку с историей. lock блокирует строку заявки, поэтому
// проверка статуса и запись выполняются в одной транзакции.
func (r *withdrawalRepo) GetWithdrawal(ctx context.Context, id string, lock bool) (entities.WithdrawalRequest, error) {
	q := r.qb.Select(withdrawalColumns...).
		From("withdrawal_requests w").
		Where(sq.Eq{"w.withdrawal_id": id})
	query, args := forUpdate(q, lock, "w").MustSql()

	var w WithdrawalRequest
	err := r.getContext(ctx, &w, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WithdrawalRequest{}, entities.ErrWithdrawalNotFound
	}
	if err != nil {
		return entities.WithdrawalRequest{}, fmt.Errorf("failed to get withdrawal request: %w", err)
	}

	query, args = r.qb.Select("id", "status", "notes", "actor_id", "created_at").
		From("withdrawal_status_history").
		Where(sq.Eq{"withdrawal_id": id}).
		OrderBy("id").
		MustSql()

	var history []HistoryEntry
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return entities.WithdrawalRequest{}, fmt.Errorf("failed to get withdrawal history: %w", err)
	}

	return WithdrawalToEntity(w, history), nil
}

func (r *withdrawalRepo) UpdateWithdrawal(ctx context.Context, w entities.WithdrawalRequest) error {
	query, args := r.qb.Update("withdrawal_requests").
		Set("status", string(w.Status)).
		Set("reviewed_by", nullString(w.ReviewedBy)).
		Set("reviewed_at", nullTime(w.ReviewedAt)).
		Set("review_notes", nullString(w.ReviewNotes)).
		Set("rejection_reason", nullString(w.RejectionReason)).
		Set("processed_by", nullString(w.ProcessedBy)).
		Set("processed_at", nullTime(w.ProcessedAt)).
		Set("transaction_reference", nullString(w.TransactionReference)).
		Set("failure_reason", nullString(w.FailureReason)).
		Set("updated_at", w.UpdatedAt).
		Where(sq.Eq{"withdrawal_id": w.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrWithdrawalNotFound
	}
	return nil
}

func (r *withdrawalRepo) AppendWithdrawalHistory(ctx context.Context, withdrawalID string, e entities.HistoryEntry) error {
	query, args := r.qb.Insert("withdrawal_status_history").
		Columns("withdrawal_id", "status", "notes", "actor_id", "created_at").
		Values(withdrawalID, e.Status, e.Notes, nullString(e.ActorID), e.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append withdrawal history: %w", err)
	}
	return nil
}

func (r *withdrawalRepo) listQuery(f entities.WithdrawalFilter, columns ...string) sq.SelectBuilder {
	q := r.qb.Select(columns...).
		From("withdrawal_requests w").
		Join("stores st ON st.id = w.store_id").
		LeftJoin("wallets wl ON wl.store_id = w.store_id").
		LeftJoin("admins ra ON ra.id = w.reviewed_by").
		LeftJoin("admins pa ON pa.id = w.processed_by")

	if f.Status != "" {
		q = q.Where(sq.Eq{"w.status": string(f.Status)})
	}
	if f.StoreID != "" {
		q = q.Where(sq.Eq{"w.store_id": f.StoreID})
	}
	if !f.Created.From.IsZero() {
		q = q.Where(sq.GtOrEq{"w.created_at": f.Created.From})
	}
	if !f.Created.To.IsZero() {
		q = q.Where(sq.Lt{"w.created_at": f.Created.To})
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(sq.Or{
			sq.ILike{"w.request_number": pattern},
			sq.ILike{"st.name": pattern},
			sq.ILike{"w.account_name": pattern},
		})
	}
	return q
}

func (r *withdrawalRepo) ListWithdrawals(ctx context.Context, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error) {
	page := f.Page.Normalize()

	total, err := r.count(ctx, r.listQuery(f, "COUNT(*)"))
	if err != nil {
		return entities.PageResult[entities.WithdrawalListItem]{}, fmt.Errorf("failed to count withdrawal requests: %w", err)
	}

	columns := append([]string{}, withdrawalColumns...)
	columns = append(columns,
		"st.name AS store_name", "st.email AS store_email",
		"wl.balance AS wallet_balance", "wl.pending AS wallet_pending",
		"ra.name AS reviewer_name", "pa.name AS processor_name",
	)

	query, args := r.listQuery(f, columns...).
		OrderBy("w.created_at DESC", "w.withdrawal_id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var rows []WithdrawalListRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return entities.PageResult[entities.WithdrawalListItem]{}, fmt.Errorf("failed to select withdrawal requests: %w", err)
	}

	items := make([]entities.WithdrawalListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, WithdrawalListRowToEntity(row))
	}
	return entities.PageResult[entities.WithdrawalListItem]{Items: items, Total: total, Page: page}, nil
}

// GetPayoutAccount возвращает только проверенный счёт, принадлежащий магазину.
func (r *withdrawalRepo) GetPayoutAccount(ctx context.Context, storeID, accountID string) (entities.PayoutAccount, error) {
	query, args := r.qb.Select(
		"id", "store_id", "bank_name", "bank_code", "account_number", "account_name", "verified").
		From("payout_accounts").
		Where(sq.Eq{"id": accountID, "store_id": storeID, "verified": true}).
		MustSql()

	var a PayoutAccount
	err := r.getContext(ctx, &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PayoutAccount{}, entities.ErrPayoutAccountNotFound
	}
	if err != nil {
		return entities.PayoutAccount{}, fmt.Errorf("failed to get payout account: %w", err)
	}
	return PayoutAccountToEntity(a), nil
}

func (r *withdrawalRepo) GetStore(ctx context.Context, id string) (entities.StoreInfo, error) {
	query, args := r.qb.Select("id", "name", "email").
		From("stores").
		Where(sq.Eq{"id": id}).
		MustSql()

	var p Person
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.StoreInfo{}, entities.ErrStoreNotFound
	}
	if err != nil {
		return entities.StoreInfo{}, fmt.Errorf("failed to get store: %w", err)
	}
	return entities.StoreInfo{ID: p.ID, Name: p.Name, Email: p.Email}, nil
}

func (r *withdrawalRepo) GetAdmin(ctx context.Context, id string) (entities.AdminInfo, error) {
	query, args := r.qb.Select("id", "name", "email").
		From("admins").
		Where(sq.Eq{"id": id}).
		MustSql()

	var p Person
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.AdminInfo{}, entities.ErrAdminNotFound
	}
	if err != nil {
		return entities.AdminInfo{}, fmt.Errorf("failed to get admin: %w", err)
	}
	return entities.AdminInfo{ID: p.ID, Name: p.Name, Email: p.Email}, nil
}
