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
)

func TestWalletHandler_GetWallet(t *testing.T) {
	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior func(svc *mocks.MockWalletService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			actor: storeActor,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().GetWallet(mock.Anything, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11").
					Return(entities.Wallet{ID: "w-1", StoreID: "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", Balance: 150000, Pending: 50000, TotalEarned: 200000}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"balance":150000,"pending":50000,"total_earned":200000`,
		},
		{
			name:         "store without store id",
			actor:        entities.Actor{ID: "user-2", Role: entities.RoleStore},
			mockBehavior: func(svc *mocks.MockWalletService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "admin has no wallet",
			actor:        adminActor,
			mockBehavior: func(svc *mocks.MockWalletService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:  "wallet missing",
			actor: storeActor,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().GetWallet(mock.Anything, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11").Return(entities.Wallet{}, entities.ErrWalletNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"wallet not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			tc.mockBehavior(svc)

			rr := serve(handler.NewWalletHandler(discardLogger(), svc), tc.actor, http.MethodGet, "/wallet", "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("filters and related document", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		svc.EXPECT().ListTransactions(mock.Anything, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", entities.TransactionFilter{
			Type:   entities.TransactionCredit,
			Source: entities.SourceOrder,
			Page:   entities.Page{Page: 1, Limit: 5},
		}).Return(entities.PageResult[entities.WalletTransaction]{
			Items: []entities.WalletTransaction{{
				ID:                  "e2d7b4a0-6c19-4e83-9f5a-0d3b8c1e7a01",
				Type:                entities.TransactionCredit,
				Amount:              105000,
				Source:              entities.SourceOrder,
				RelatedDocumentID:   "5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01",
				RelatedDocumentType: entities.DocumentOrder,
				CreatedAt:           created,
				Related: &entities.RelatedDocument{Order: &entities.OrderSummary{
					SubOrderID:     "5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01",
					OrderID:        "3e8a5c1f-0d27-4b96-a4e3-7f2c6d9b8a01",
					Total:          105000,
					DeliveryStatus: entities.StatusDelivered,
				}},
			}},
			Total: 1,
			Page:  entities.Page{Page: 1, Limit: 5},
		}, nil).Once()

		rr := serve(handler.NewWalletHandler(discardLogger(), svc), storeActor, http.MethodGet, "/wallet/transactions?type=credit&source=order&page=1&limit=5", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"related_document_type":"order"`)
		assert.Contains(t, rr.Body.String(), `"order_id":"3e8a5c1f-0d27-4b96-a4e3-7f2c6d9b8a01"`)
	})

	t.Run("invalid type reported by service", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		svc.EXPECT().ListTransactions(mock.Anything, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", mock.Anything).
			Return(entities.PageResult[entities.WalletTransaction]{}, entities.NewError(entities.KindBadRequest, "unknown transaction type %q", "gift")).Once()

		rr := serve(handler.NewWalletHandler(discardLogger(), svc), storeActor, http.MethodGet, "/wallet/transactions?type=gift", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)

		rr := serve(handler.NewWalletHandler(discardLogger(), svc), storeActor, http.MethodGet, "/wallet/transactions?from=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"invalid query parameter from"`)
	})
}

func TestWalletHandler_GetTransaction(t *testing.T) {
	svc := mocks.NewMockWalletService(t)
	svc.EXPECT().GetTransaction(mock.Anything, "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", "e2d7b4a0-6c19-4e83-9f5a-0d3b8c1e7a09").
		Return(entities.WalletTransaction{}, entities.ErrTransactionNotFound).Once()

	rr := serve(handler.NewWalletHandler(discardLogger(), svc), storeActor, http.MethodGet, "/wallet/transactions/e2d7b4a0-6c19-4e83-9f5a-0d3b8c1e7a09", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"wallet transaction not found"`)
}
