package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/settlement-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingWithdrawal() entities.WithdrawalRequest {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.WithdrawalRequest{
		ID:              "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301",
		RequestNumber:   "WD-20250310-ABCDEF",
		StoreID:         "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11",
		PayoutAccountID: "a61f0c3d-9b28-4e57-8d14-2c7e5b9f0a01",
		RequestedAmount: 50000,
		ProcessingFee:   5750,
		NetAmount:       44250,
		Bank:            entities.BankDetails{BankName: "Bank", AccountNumber: "0001", AccountName: "Store One"},
		Status:          entities.WithdrawalPending,
		StatusHistory:   []entities.HistoryEntry{{Status: "pending", Notes: "Withdrawal request created", CreatedAt: created}},
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func TestWithdrawalHandler_Create(t *testing.T) {
	testCases := []struct {
		name         string
		actor        entities.Actor
		body         string
		mockBehavior func(svc *mocks.MockWithdrawalService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "created",
			actor: storeActor,
			body:  `{"amount":50000,"bank_account_id":"a61f0c3d-9b28-4e57-8d14-2c7e5b9f0a01","description":"march payout"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Create(mock.Anything, storeActor, entities.WithdrawalDraft{
					Amount:          50000,
					PayoutAccountID: "a61f0c3d-9b28-4e57-8d14-2c7e5b9f0a01",
					Description:     "march payout",
				}).Return(pendingWithdrawal(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"net_amount":44250`,
		},
		{
			name:         "missing account",
			actor:        storeActor,
			body:         `{"amount":50000}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"bankaccountid":"required"`,
		},
		{
			name:         "malformed bank account id",
			actor:        storeActor,
			body:         `{"amount":50000,"bank_account_id":"acc-1"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"bankaccountid":"uuid"`,
		},
		{
			name:         "admin cannot create",
			actor:        adminActor,
			body:         `{"amount":50000,"bank_account_id":"a61f0c3d-9b28-4e57-8d14-2c7e5b9f0a01"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:  "insufficient funds",
			actor: storeActor,
			body:  `{"amount":500000,"bank_account_id":"a61f0c3d-9b28-4e57-8d14-2c7e5b9f0a01"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Create(mock.Anything, storeActor, mock.Anything).
					Return(entities.WithdrawalRequest{}, entities.ErrInsufficientFunds).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `insufficient wallet balance`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWithdrawalService(t)
			tc.mockBehavior(svc)

			rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), tc.actor, http.MethodPost, "/withdrawals", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestWithdrawalHandler_StoreQueries(t *testing.T) {
	t.Run("list with status filter", func(t *testing.T) {
		svc := mocks.NewMockWithdrawalService(t)
		svc.EXPECT().StoreList(mock.Anything, storeActor, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", entities.WithdrawalFilter{
			Status: entities.WithdrawalPending,
			Page:   entities.Page{Page: 1, Limit: 20},
		}).Return(entities.PageResult[entities.WithdrawalListItem]{
			Items: []entities.WithdrawalListItem{{Request: pendingWithdrawal()}},
			Total: 1,
			Page:  entities.Page{Page: 1, Limit: 20},
		}, nil).Once()

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), storeActor, http.MethodGet, "/stores/0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11/withdrawals?status=pending&page=1&limit=20", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"request_number":"WD-20250310-ABCDEF"`)
		assert.NotContains(t, rr.Body.String(), `"status_history"`)
	})

	t.Run("other store", func(t *testing.T) {
		svc := mocks.NewMockWithdrawalService(t)
		svc.EXPECT().StoreList(mock.Anything, storeActor, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f12", mock.Anything).
			Return(entities.PageResult[entities.WithdrawalListItem]{}, entities.ErrForbidden).Once()

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), storeActor, http.MethodGet, "/stores/0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f12/withdrawals", "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("detail hides admin ids", func(t *testing.T) {
		wd := pendingWithdrawal()
		wd.Status = entities.WithdrawalApproved
		wd.ReviewedBy = "admin-1"

		svc := mocks.NewMockWithdrawalService(t)
		svc.EXPECT().StoreDetail(mock.Anything, storeActor, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301").Return(wd, nil).Once()

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), storeActor, http.MethodGet, "/stores/0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"approved"`)
		assert.NotContains(t, rr.Body.String(), "admin-1")
	})
}

func TestWithdrawalHandler_AdminQueries(t *testing.T) {
	t.Run("list across stores", func(t *testing.T) {
		svc := mocks.NewMockWithdrawalService(t)
		svc.EXPECT().AdminList(mock.Anything, adminActor, entities.WithdrawalFilter{
			StoreID: "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11",
			Search:  "WD-2025",
		}).Return(entities.PageResult[entities.WithdrawalListItem]{
			Items: []entities.WithdrawalListItem{{
				Request:       pendingWithdrawal(),
				Store:         entities.StoreInfo{ID: "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", Name: "Store One", Email: "one@example.com"},
				WalletBalance: 100000,
				WalletPending: 50000,
			}},
			Total: 1,
			Page:  entities.Page{Page: 1, Limit: 20},
		}, nil).Once()

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), adminActor, http.MethodGet, "/admin/withdrawals?store_id=0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11&search=WD-2025", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"store_name":"Store One"`)
		assert.Contains(t, rr.Body.String(), `"wallet_pending":50000`)
	})

	t.Run("malformed store filter", func(t *testing.T) {
		svc := mocks.NewMockWithdrawalService(t)

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), adminActor, http.MethodGet, "/admin/withdrawals?store_id=store-1", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid query parameter store_id")
	})

	t.Run("store cannot list all", func(t *testing.T) {
		svc := mocks.NewMockWithdrawalService(t)

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), storeActor, http.MethodGet, "/admin/withdrawals", "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("detail", func(t *testing.T) {
		wd := pendingWithdrawal()
		wd.Status = entities.WithdrawalUnderReview
		wd.ReviewedBy = "admin-1"

		svc := mocks.NewMockWithdrawalService(t)
		svc.EXPECT().AdminDetail(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301").Return(entities.WithdrawalDetails{
			Request:  wd,
			Store:    entities.StoreInfo{ID: "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", Name: "Store One"},
			Wallet:   entities.Wallet{StoreID: "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", Balance: 100000, Pending: 50000},
			Reviewer: &entities.AdminInfo{ID: "admin-1", Name: "Alice"},
		}, nil).Once()

		rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), adminActor, http.MethodGet, "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"reviewed_by":"admin-1"`)
		assert.Contains(t, rr.Body.String(), `"reviewer":{"id":"admin-1","name":"Alice"`)
		assert.NotContains(t, rr.Body.String(), `"processor"`)
	})
}

func TestWithdrawalHandler_AdminActions(t *testing.T) {
	result := pendingWithdrawal()

	testCases := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockWithdrawalService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "review",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/review",
			body: `{"notes":"checking"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().StartReview(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "checking").Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "approve",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/approve",
			body: `{"transaction_reference":"TRX-1","notes":"ok"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Approve(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "TRX-1", "ok").Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "approve without reference",
			path:         "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/approve",
			body:         `{"notes":"ok"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"transactionreference":"required"`,
		},
		{
			name: "reject",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/reject",
			body: `{"reason":"wrong account"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Reject(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "wrong account", "").Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "reject without reason",
			path:         "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/reject",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "processing",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/processing",
			body: `{}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().MarkProcessing(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "").Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "complete",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/complete",
			body: `{"transaction_reference":"TRX-2"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Complete(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "TRX-2", "").Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "fail",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/fail",
			body: `{"reason":"bank bounced"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Fail(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "bank bounced").Return(result, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid transition",
			path: "/admin/withdrawals/c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301/approve",
			body: `{"transaction_reference":"TRX-1"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Approve(mock.Anything, adminActor, "c43a8e19-2f6b-4d70-a5c9-81e2b7d4f301", "TRX-1", "").
					Return(entities.WithdrawalRequest{}, entities.NewError(entities.KindBadRequest, "cannot approve a %s request", "rejected")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cannot approve a rejected request"`,
		},
		{
			name: "not found",
			path: "/admin/withdrawals/wd-x/fail",
			body: `{"reason":"bank bounced"}`,
			mockBehavior: func(svc *mocks.MockWithdrawalService) {
				svc.EXPECT().Fail(mock.Anything, adminActor, "wd-x", "bank bounced").
					Return(entities.WithdrawalRequest{}, entities.ErrWithdrawalNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWithdrawalService(t)
			tc.mockBehavior(svc)

			rr := serve(handler.NewWithdrawalHandler(discardLogger(), svc), adminActor, http.MethodPost, tc.path, tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
