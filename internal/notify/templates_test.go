package notify

import (
	"testing"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "500.00", formatMoney(50000))
	assert.Equal(t, "57.50", formatMoney(5750))
	assert.Equal(t, "0.05", formatMoney(5))
	assert.Equal(t, "-1.20", formatMoney(-120))
}

func TestWithdrawalNotifications(t *testing.T) {
	store := entities.StoreInfo{ID: "store-1", Name: "Ada & Sons", Email: "owner@ada.example"}
	req := entities.WithdrawalRequest{
		RequestNumber:        "WD-20261015-ABCDEF12",
		RequestedAmount:      50000,
		ProcessingFee:        5750,
		NetAmount:            44250,
		Bank:                 entities.BankDetails{BankName: "First Bank", AccountNumber: "0123456789"},
		RejectionReason:      "bank details invalid",
		TransactionReference: "TRX-1",
	}

	created, err := WithdrawalCreated(store, req)
	require.NoError(t, err)
	assert.Equal(t, "owner@ada.example", created.Recipient)
	assert.Equal(t, "Withdrawal request WD-20261015-ABCDEF12 received", created.Subject)
	assert.Contains(t, created.TextBody, "Hello Ada & Sons")
	assert.Contains(t, created.TextBody, "442.50")
	assert.Contains(t, created.HTMLBody, "Ada &amp; Sons")

	approved, err := WithdrawalApproved(store, req)
	require.NoError(t, err)
	assert.Contains(t, approved.TextBody, "TRX-1")

	rejected, err := WithdrawalRejected(store, req)
	require.NoError(t, err)
	assert.Contains(t, rejected.Subject, "rejected")
	assert.Contains(t, rejected.TextBody, "bank details invalid")
	assert.Contains(t, rejected.TextBody, "500.00")
}

func TestNewMessage(t *testing.T) {
	// шаблоны разбираются один раз при старте, ошибка в теме не доживает до отправки
	assert.Panics(t, func() { newMessage("Request {{.Request.RequestNumber", "body") })

	m := newMessage("Request {{.Request.RequestNumber}} for {{money .Request.RequestedAmount}}", "body")
	store := entities.StoreInfo{Name: "Ada", Email: "owner@ada.example"}
	for _, number := range []string{"WD-1", "WD-2"} {
		n, err := render(m, store, entities.WithdrawalRequest{RequestNumber: number, RequestedAmount: 120})
		require.NoError(t, err)
		assert.Equal(t, "Request "+number+" for 1.20", n.Subject)
	}
}
