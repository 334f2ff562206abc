package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/notify"
	"github.com/SergeyBogomolovv/settlement-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type withdrawals interface {
	Create(ctx context.Context, actor entities.Actor, in entities.WithdrawalDraft) (entities.WithdrawalRequest, error)
	StartReview(ctx context.Context, actor entities.Actor, id, notes string) (entities.WithdrawalRequest, error)
	Approve(ctx context.Context, actor entities.Actor, id, reference, notes string) (entities.WithdrawalRequest, error)
	Reject(ctx context.Context, actor entities.Actor, id, reason, notes string) (entities.WithdrawalRequest, error)
	MarkProcessing(ctx context.Context, actor entities.Actor, id, notes string) (entities.WithdrawalRequest, error)
	Complete(ctx context.Context, actor entities.Actor, id, reference, notes string) (entities.WithdrawalRequest, error)
	Fail(ctx context.Context, actor entities.Actor, id, reason string) (entities.WithdrawalRequest, error)
	StoreList(ctx context.Context, actor entities.Actor, storeID string, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error)
	StoreDetail(ctx context.Context, actor entities.Actor, storeID, id string) (entities.WithdrawalRequest, error)
	AdminList(ctx context.Context, actor entities.Actor, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error)
	AdminDetail(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalDetails, error)
}

type withdrawalFixture struct {
	store    *memStore
	clock    *fakeClock
	notifier *recordingNotifier
	svc      withdrawals
}

var testFees = entities.FeeSchedule{Rate: decimal.RequireFromString("0.015"), Fixed: 5000}

func newWithdrawalFixture(balance int64) withdrawalFixture {
	store := newMemStore()
	store.addWallet("store-1", balance)
	store.addWallet("store-2", balance)
	store.stores["store-1"] = entities.StoreInfo{ID: "store-1", Name: "Ada Crafts", Email: "ada@example.com"}
	store.stores["store-2"] = entities.StoreInfo{ID: "store-2", Name: "Bob Goods", Email: "bob@example.com"}
	store.admins["admin-1"] = entities.AdminInfo{ID: "admin-1", Name: "Alice Admin", Email: "alice@example.com"}
	store.accounts["acc-1"] = entities.PayoutAccount{
		ID:       "acc-1",
		StoreID:  "store-1",
		Verified: true,
		Bank:     entities.BankDetails{BankName: "First Bank", AccountNumber: "0123456789", AccountName: "Ada Crafts"},
	}
	store.accounts["acc-unverified"] = entities.PayoutAccount{ID: "acc-unverified", StoreID: "store-1"}

	clock := newClock()
	notifier := &recordingNotifier{}
	ledger := newLedger(store, clock)
	svc := service.NewWithdrawalService(
		discardLogger(), store, store, ledger, notifier,
		service.WithdrawalTemplates{
			Created:  notify.WithdrawalCreated,
			Approved: notify.WithdrawalApproved,
			Rejected: notify.WithdrawalRejected,
			Failed:   notify.WithdrawalFailed,
		},
		service.WithdrawalPolicy{Fees: testFees, MinAmount: 10000},
		clock.Now,
	)
	return withdrawalFixture{store: store, clock: clock, notifier: notifier, svc: svc}
}

func (f withdrawalFixture) create(t *testing.T, amount int64) entities.WithdrawalRequest {
	t.Helper()
	req, err := f.svc.Create(context.Background(), storeActor, entities.WithdrawalDraft{
		Amount:          amount,
		PayoutAccountID: "acc-1",
	})
	require.NoError(t, err)
	return req
}

func TestWithdrawalService_Create(t *testing.T) {
	f := newWithdrawalFixture(100000)

	req := f.create(t, 50000)
	assert.Equal(t, entities.WithdrawalPending, req.Status)
	assert.Equal(t, int64(5750), req.ProcessingFee)
	assert.Equal(t, int64(44250), req.NetAmount)
	assert.Equal(t, req.RequestedAmount, req.ProcessingFee+req.NetAmount)
	assert.Regexp(t, `^WD-20250310-[0-9A-F]{8}$`, req.RequestNumber)
	assert.Equal(t, "First Bank", req.Bank.BankName)
	require.Len(t, req.StatusHistory, 1)

	w := f.store.wallet("store-1")
	assert.Equal(t, int64(50000), w.Balance)
	assert.Equal(t, int64(50000), w.Pending)
	assert.Equal(t, int64(100000), w.TotalEarned)

	txs := f.store.walletTransactions(w.ID)
	require.Len(t, txs, 1)
	assert.Equal(t, entities.TransactionDebit, txs[0].Type)
	assert.Equal(t, entities.SourceWithdrawal, txs[0].Source)
	assert.Equal(t, req.ID, txs[0].RelatedDocumentID)
	assert.Equal(t, entities.DocumentWithdrawal, txs[0].RelatedDocumentType)

	assert.Equal(t, []string{"Withdrawal request " + req.RequestNumber + " received"}, f.notifier.subjects())
}

func TestWithdrawalService_CreateValidation(t *testing.T) {
	testCases := []struct {
		name    string
		actor   entities.Actor
		in      entities.WithdrawalDraft
		wantErr error
	}{
		{
			name:    "below minimum",
			actor:   storeActor,
			in:      entities.WithdrawalDraft{Amount: 9999, PayoutAccountID: "acc-1"},
			wantErr: entities.KindBadRequest,
		},
		{
			name:    "more than balance",
			actor:   storeActor,
			in:      entities.WithdrawalDraft{Amount: 100001, PayoutAccountID: "acc-1"},
			wantErr: entities.ErrInsufficientFunds,
		},
		{
			name:    "unverified account",
			actor:   storeActor,
			in:      entities.WithdrawalDraft{Amount: 50000, PayoutAccountID: "acc-unverified"},
			wantErr: entities.ErrPayoutAccountNotFound,
		},
		{
			name:    "account of another store",
			actor:   otherStore,
			in:      entities.WithdrawalDraft{Amount: 50000, PayoutAccountID: "acc-1"},
			wantErr: entities.ErrPayoutAccountNotFound,
		},
		{
			name:    "exactly minimum",
			actor:   storeActor,
			in:      entities.WithdrawalDraft{Amount: 10000, PayoutAccountID: "acc-1"},
			wantErr: nil,
		},
		{
			name:    "admin cannot withdraw",
			actor:   adminActor,
			in:      entities.WithdrawalDraft{Amount: 50000, PayoutAccountID: "acc-1"},
			wantErr: entities.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWithdrawalFixture(100000)
			_, err := f.svc.Create(context.Background(), tc.actor, tc.in)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)

			w := f.store.wallet("store-1")
			assert.Equal(t, int64(100000), w.Balance)
			assert.Zero(t, w.Pending)
			assert.Empty(t, f.store.walletTransactions(w.ID))
		})
	}
}

func TestWithdrawalService_CreateFeeExceedsAmount(t *testing.T) {
	f := newWithdrawalFixture(100000)
	f.svc = service.NewWithdrawalService(
		discardLogger(), f.store, f.store, newLedger(f.store, f.clock), nil, service.WithdrawalTemplates{},
		service.WithdrawalPolicy{Fees: entities.FeeSchedule{Rate: decimal.Zero, Fixed: 20000}, MinAmount: 10000},
		f.clock.Now,
	)

	_, err := f.svc.Create(context.Background(), storeActor, entities.WithdrawalDraft{Amount: 15000, PayoutAccountID: "acc-1"})
	assert.ErrorIs(t, err, entities.KindBadRequest)
	assert.Equal(t, int64(100000), f.store.wallet("store-1").Balance)
}

func TestWithdrawalService_Approve(t *testing.T) {
	f := newWithdrawalFixture(100000)
	req := f.create(t, 50000)
	ctx := context.Background()

	_, err := f.svc.Approve(ctx, storeActor, req.ID, "TRX-1", "")
	assert.ErrorIs(t, err, entities.ErrAdminOnly)

	_, err = f.svc.Approve(ctx, adminActor, req.ID, "", "")
	assert.ErrorIs(t, err, entities.KindBadRequest)

	approved, err := f.svc.Approve(ctx, adminActor, req.ID, "TRX-1", "")
	require.NoError(t, err)
	assert.Equal(t, entities.WithdrawalApproved, approved.Status)
	assert.Equal(t, "admin-1", approved.ReviewedBy)
	assert.Equal(t, "TRX-1", approved.TransactionReference)
	require.NotNil(t, approved.ReviewedAt)

	w := f.store.wallet("store-1")
	assert.Equal(t, int64(50000), w.Balance)
	assert.Zero(t, w.Pending)
	assert.Len(t, f.store.walletTransactions(w.ID), 1)

	stored, err := f.svc.StoreDetail(ctx, storeActor, "store-1", req.ID)
	require.NoError(t, err)
	require.Len(t, stored.StatusHistory, 2)
	assert.Equal(t, string(entities.WithdrawalApproved), stored.StatusHistory[1].Status)

	assert.Len(t, f.notifier.subjects(), 2)
}

func TestWithdrawalService_Reject(t *testing.T) {
	f := newWithdrawalFixture(100000)
	req := f.create(t, 50000)
	ctx := context.Background()

	_, err := f.svc.Reject(ctx, adminActor, req.ID, "  ", "")
	assert.ErrorIs(t, err, entities.KindBadRequest)

	rejected, err := f.svc.Reject(ctx, adminActor, req.ID, "Bank details mismatch", "")
	require.NoError(t, err)
	assert.Equal(t, entities.WithdrawalRejected, rejected.Status)
	assert.Equal(t, "Bank details mismatch", rejected.RejectionReason)

	w := f.store.wallet("store-1")
	assert.Equal(t, int64(100000), w.Balance)
	assert.Zero(t, w.Pending)

	txs := f.store.walletTransactions(w.ID)
	require.Len(t, txs, 2)
	assert.Equal(t, entities.TransactionCredit, txs[1].Type)
	assert.Equal(t, entities.SourceAdjustment, txs[1].Source)
	assert.Equal(t, int64(50000), txs[1].Amount)

	// повторное одобрение отклонённой заявки ничего не меняет
	_, err = f.svc.Approve(ctx, adminActor, req.ID, "TRX-1", "")
	assert.ErrorIs(t, err, entities.KindBadRequest)
	assert.Equal(t, w, f.store.wallet("store-1"))
	assert.Len(t, f.store.walletTransactions(w.ID), 2)
}

func TestWithdrawalService_PayoutLifecycle(t *testing.T) {
	testCases := []struct {
		name        string
		finish      func(svc withdrawals, id string) (entities.WithdrawalRequest, error)
		wantStatus  entities.WithdrawalStatus
		wantBalance int64
	}{
		{
			name: "completed",
			finish: func(svc withdrawals, id string) (entities.WithdrawalRequest, error) {
				return svc.Complete(context.Background(), adminActor, id, "TRX-2", "")
			},
			wantStatus:  entities.WithdrawalCompleted,
			wantBalance: 50000,
		},
		{
			name: "failed",
			finish: func(svc withdrawals, id string) (entities.WithdrawalRequest, error) {
				return svc.Fail(context.Background(), adminActor, id, "Account closed")
			},
			wantStatus:  entities.WithdrawalFailed,
			wantBalance: 100000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newWithdrawalFixture(100000)
			req := f.create(t, 50000)
			ctx := context.Background()

			_, err := f.svc.StartReview(ctx, adminActor, req.ID, "")
			require.NoError(t, err)
			_, err = f.svc.MarkProcessing(ctx, adminActor, req.ID, "")
			assert.ErrorIs(t, err, entities.KindBadRequest)
			_, err = f.svc.Approve(ctx, adminActor, req.ID, "TRX-1", "")
			require.NoError(t, err)
			_, err = f.svc.MarkProcessing(ctx, adminActor, req.ID, "")
			require.NoError(t, err)

			done, err := tc.finish(f.svc, req.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, done.Status)
			assert.Equal(t, "admin-1", done.ProcessedBy)
			require.NotNil(t, done.ProcessedAt)

			w := f.store.wallet("store-1")
			assert.Equal(t, tc.wantBalance, w.Balance)
			assert.Zero(t, w.Pending)
			assert.Equal(t, int64(100000), w.TotalEarned)

			stored, err := f.svc.StoreDetail(ctx, storeActor, "store-1", req.ID)
			require.NoError(t, err)
			assert.Len(t, stored.StatusHistory, 5)
		})
	}
}

func TestWithdrawalService_ApproveRollsBack(t *testing.T) {
	f := newWithdrawalFixture(100000)
	req := f.create(t, 50000)

	// резерв потерян: списание резерва падает, заявка должна остаться pending
	f.store.mu.Lock()
	w := f.store.wallets["store-1"]
	w.Pending = 0
	f.store.wallets["store-1"] = w
	f.store.mu.Unlock()

	_, err := f.svc.Approve(context.Background(), adminActor, req.ID, "TRX-1", "")
	assert.ErrorIs(t, err, entities.ErrInsufficientFunds)

	stored, err := f.svc.StoreDetail(context.Background(), storeActor, "store-1", req.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.WithdrawalPending, stored.Status)
	assert.Len(t, stored.StatusHistory, 1)
	assert.Empty(t, stored.ReviewedBy)
}

func TestWithdrawalService_NotificationFailureIsIgnored(t *testing.T) {
	f := newWithdrawalFixture(100000)
	f.notifier.err = errors.New("broker unavailable")

	req := f.create(t, 50000)
	_, err := f.svc.Reject(context.Background(), adminActor, req.ID, "Duplicate request", "")
	require.NoError(t, err)
	assert.Empty(t, f.notifier.subjects())
}

func TestWithdrawalService_Queries(t *testing.T) {
	f := newWithdrawalFixture(200000)
	ctx := context.Background()
	first := f.create(t, 50000)
	second := f.create(t, 20000)

	_, err := f.svc.Approve(ctx, adminActor, first.ID, "TRX-1", "")
	require.NoError(t, err)

	t.Run("store list", func(t *testing.T) {
		res, err := f.svc.StoreList(ctx, storeActor, "store-1", entities.WithdrawalFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)

		res, err = f.svc.StoreList(ctx, storeActor, "store-1", entities.WithdrawalFilter{Status: entities.WithdrawalPending})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, second.ID, res.Items[0].Request.ID)

		_, err = f.svc.StoreList(ctx, otherStore, "store-1", entities.WithdrawalFilter{})
		assert.ErrorIs(t, err, entities.ErrForbidden)

		_, err = f.svc.StoreList(ctx, storeActor, "store-1", entities.WithdrawalFilter{Status: "paid"})
		assert.ErrorIs(t, err, entities.KindBadRequest)
	})

	t.Run("store detail", func(t *testing.T) {
		_, err := f.svc.StoreDetail(ctx, otherStore, "store-1", first.ID)
		assert.ErrorIs(t, err, entities.ErrForbidden)

		_, err = f.svc.StoreDetail(ctx, otherStore, "store-2", first.ID)
		assert.ErrorIs(t, err, entities.ErrWithdrawalNotFound)
	})

	t.Run("admin list", func(t *testing.T) {
		_, err := f.svc.AdminList(ctx, storeActor, entities.WithdrawalFilter{})
		assert.ErrorIs(t, err, entities.ErrAdminOnly)

		res, err := f.svc.AdminList(ctx, adminActor, entities.WithdrawalFilter{Status: entities.WithdrawalApproved})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Ada Crafts", res.Items[0].Store.Name)
		assert.Equal(t, "Alice Admin", res.Items[0].ReviewerName)
	})

	t.Run("admin detail", func(t *testing.T) {
		details, err := f.svc.AdminDetail(ctx, adminActor, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", details.Store.Email)
		assert.Equal(t, int64(130000), details.Wallet.Balance)
		assert.Equal(t, int64(20000), details.Wallet.Pending)
		require.NotNil(t, details.Reviewer)
		assert.Equal(t, "Alice Admin", details.Reviewer.Name)
		assert.Nil(t, details.Processor)

		_, err = f.svc.AdminDetail(ctx, adminActor, "missing")
		assert.ErrorIs(t, err, entities.KindNotFound)
	})

	t.Run("admin detail with removed reviewer", func(t *testing.T) {
		delete(f.store.admins, "admin-1")
		details, err := f.svc.AdminDetail(ctx, adminActor, first.ID)
		require.NoError(t, err)
		assert.Nil(t, details.Reviewer)
	})
}
