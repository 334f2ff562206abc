package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/service"
	mocks "github.com/SergeyBogomolovv/settlement-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/settlement-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validOrder() entities.Order {
	return entities.Order{
		ID:          "order-1",
		BuyerID:     "buyer-1",
		TotalAmount: 17000,
		CreatedAt:   baseTime,
		SubOrders: []entities.SubOrder{
			{
				ID:            "sub-1",
				StoreID:       "store-1",
				Items:         []entities.LineItem{{ProductID: "p-1", Quantity: 2, UnitPrice: 5000}},
				Subtotal:      10000,
				ShippingPrice: 2000,
				Total:         12000,
			},
			{
				ID:       "sub-2",
				StoreID:  "store-2",
				Items:    []entities.LineItem{{ProductID: "p-2", Quantity: 1, UnitPrice: 5000}},
				Subtotal: 5000,
				Total:    5000,
			},
		},
	}
}

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")

	placed := mock.MatchedBy(func(s entities.SubOrder) bool {
		return s.OrderID == "order-1" &&
			s.DeliveryStatus == entities.StatusOrderPlaced &&
			s.Escrow == entities.Escrow{Held: true}
	})

	testCases := []struct {
		name         string
		order        func() entities.Order
		withTx       bool
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "OK",
			order:  validOrder,
			withTx: true,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil).Once()
				orderRepo.EXPECT().SaveSubOrder(mock.Anything, placed).Return(nil).Twice()
				orderRepo.EXPECT().SaveLineItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
				orderRepo.EXPECT().AppendSubOrderHistory(mock.Anything, mock.Anything,
					mock.MatchedBy(func(e entities.HistoryEntry) bool {
						return e.Status == string(entities.StatusOrderPlaced) && e.ActorID == "buyer-1"
					})).Return(nil).Twice()
			},
		},
		{
			name:   "Already saved",
			order:  validOrder,
			withTx: true,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
		},
		{
			name:   "SaveOrder fails",
			order:  validOrder,
			withTx: true,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(false, dbError)
			},
			wantErr: dbError,
		},
		{
			name:   "SaveLineItems fails",
			order:  validOrder,
			withTx: true,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil)
				orderRepo.EXPECT().SaveSubOrder(mock.Anything, mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().SaveLineItems(mock.Anything, "sub-1", mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "Totals do not add up",
			order: func() entities.Order {
				o := validOrder()
				o.TotalAmount = 1
				return o
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {},
			wantErr:      entities.KindBadRequest,
		},
		{
			name: "No sub-orders",
			order: func() entities.Order {
				return entities.Order{ID: "order-1"}
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {},
			wantErr:      entities.KindBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			tx := txMocks.NewMockManager(t)

			if tc.withTx {
				tx.EXPECT().
					Do(mock.Anything, mock.Anything).
					RunAndReturn(
						func(ctx context.Context, cb func(ctx context.Context) error) error {
							return cb(ctx)
						})
			}

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(discardLogger(), tx, orderRepo)

			err := svc.SaveOrder(context.Background(), tc.order())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
