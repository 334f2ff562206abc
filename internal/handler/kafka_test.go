package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/settlement-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/settlement-service/pkg/utils"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const checkoutPayload = `{
	"order_id": "3e8a5c1f-0d27-4b96-a4e3-7f2c6d9b8a01",
	"buyer_id": "buyer-1",
	"buyer_name": "Ann",
	"buyer_email": "ann@example.com",
	"total_amount": 130000,
	"shipping": {"name": "Ann", "phone": "+15550100", "address": "1 Main St", "city": "Springfield"},
	"sub_orders": [
		{"sub_order_id": "5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01", "store_id": "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11", "items": [{"product_id": "p-1", "name": "Mug", "quantity": 2, "unit_price": 50000}], "subtotal": 100000, "shipping_price": 5000, "total": 105000},
		{"sub_order_id": "5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e02", "store_id": "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f12", "items": [{"product_id": "p-2", "name": "Tea", "quantity": 1, "unit_price": 20000}], "subtotal": 20000, "shipping_price": 5000, "total": 25000}
	],
	"created_at": "2025-03-10T12:00:00Z"
}`

var testRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	Multiplier:   2,
	RetryIf:      handler.IsTransient,
}

func connReset() error {
	return &net.OpError{Op: "read", Net: "tcp", Err: errors.New("use of closed network connection")}
}

func TestIsTransient(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "network", err: fmt.Errorf("failed to save order: %w", connReset()), want: true},
		{name: "storage", err: errors.New("db down"), want: true},
		{name: "business rule", err: entities.ErrInvalidOrder, want: false},
		{name: "conflict", err: entities.ErrAlreadySettled, want: false},
		{name: "canceled", err: fmt.Errorf("begin tx: %w", context.Canceled), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, handler.IsTransient(tc.err))
		})
	}
}

func TestOrderProcessor_Process(t *testing.T) {
	testCases := []struct {
		name         string
		payload      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantErr      bool
	}{
		{
			name:    "saved",
			payload: checkoutPayload,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.ID == "3e8a5c1f-0d27-4b96-a4e3-7f2c6d9b8a01" &&
						len(o.SubOrders) == 2 &&
						o.SubOrders[0].StoreID == "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11" &&
						o.SubOrders[0].Items[0].UnitPrice == 50000 &&
						o.CreatedAt.Equal(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
				})).Return(nil).Once()
			},
		},
		{
			name:         "broken json",
			payload:      `{"order_id":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantErr:      true,
		},
		{
			name:         "no sub-orders",
			payload:      `{"order_id":"3e8a5c1f-0d27-4b96-a4e3-7f2c6d9b8a01","buyer_id":"b","buyer_name":"Ann","buyer_email":"ann@example.com","total_amount":1,"sub_orders":[],"created_at":"2025-03-10T12:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantErr:      true,
		},
		{
			name:    "business error is not retried",
			payload: checkoutPayload,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(entities.ErrInvalidOrder).Once()
			},
			wantErr: true,
		},
		{
			name:    "network blip is retried",
			payload: checkoutPayload,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(connReset()).Once()
				svc.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "persistent failure",
			payload: checkoutPayload,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(connReset()).Times(3)
			},
			wantErr: true,
		},
		{
			name:         "malformed ids",
			payload:      `{"order_id":"order-1","buyer_id":"b","buyer_name":"Ann","buyer_email":"ann@example.com","total_amount":1,"sub_orders":[{"sub_order_id":"sub-1","store_id":"store-1","items":[{"product_id":"p","name":"n","quantity":1,"unit_price":1}],"total":1}],"created_at":"2025-03-10T12:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			err := handler.NewOrderProcessor(svc, testRetry).Process(t.Context(), kafka.Message{Topic: "orders", Value: []byte(tc.payload)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettlementProcessor_Process(t *testing.T) {
	payload := `{"sub_order_id":"5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01","amount":100000,"shipping_price":5000,"notes":"window closed"}`
	want := entities.SettlementInstruction{SubOrderID: "5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01", Amount: 100000, ShippingPrice: 5000, Notes: "window closed"}

	testCases := []struct {
		name         string
		payload      string
		mockBehavior func(svc *mocks.MockSettlementService)
		wantErr      error
		anyErr       bool
	}{
		{
			name:    "released",
			payload: payload,
			mockBehavior: func(svc *mocks.MockSettlementService) {
				svc.EXPECT().ReleaseEscrow(mock.Anything, want).
					Return(entities.WalletTransaction{ID: "e2d7b4a0-6c19-4e83-9f5a-0d3b8c1e7a01", Amount: 105000}, nil).Once()
			},
		},
		{
			name:    "redelivered instruction is acknowledged",
			payload: payload,
			mockBehavior: func(svc *mocks.MockSettlementService) {
				svc.EXPECT().ReleaseEscrow(mock.Anything, want).
					Return(entities.WalletTransaction{}, entities.ErrAlreadySettled).Once()
			},
		},
		{
			name:    "wallet missing",
			payload: payload,
			mockBehavior: func(svc *mocks.MockSettlementService) {
				svc.EXPECT().ReleaseEscrow(mock.Anything, want).
					Return(entities.WalletTransaction{}, entities.ErrWalletNotFound).Once()
			},
			wantErr: entities.ErrWalletNotFound,
		},
		{
			name:         "zero amount",
			payload:      `{"sub_order_id":"5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01","amount":0}`,
			mockBehavior: func(svc *mocks.MockSettlementService) {},
			anyErr:       true,
		},
		{
			name:    "storage error after retries",
			payload: payload,
			mockBehavior: func(svc *mocks.MockSettlementService) {
				svc.EXPECT().ReleaseEscrow(mock.Anything, want).
					Return(entities.WalletTransaction{}, errors.New("db down")).Times(3)
			},
			anyErr: true,
		},
		{
			name:    "released after network blip",
			payload: payload,
			mockBehavior: func(svc *mocks.MockSettlementService) {
				svc.EXPECT().ReleaseEscrow(mock.Anything, want).
					Return(entities.WalletTransaction{}, connReset()).Once()
				svc.EXPECT().ReleaseEscrow(mock.Anything, want).
					Return(entities.WalletTransaction{ID: "e2d7b4a0-6c19-4e83-9f5a-0d3b8c1e7a01", Amount: 105000}, nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockSettlementService(t)
			tc.mockBehavior(svc)

			err := handler.NewSettlementProcessor(discardLogger(), svc, testRetry).
				Process(t.Context(), kafka.Message{Topic: "settlements", Value: []byte(tc.payload)})

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}
