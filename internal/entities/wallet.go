package entities

import "time"

type Wallet struct {
	ID          string
	StoreID     string
	Balance     int64
	Pending     int64
	TotalEarned int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

type TransactionSource string

const (
	SourceOrder      TransactionSource = "order"
	SourceWithdrawal TransactionSource = "withdrawal"
	SourceRefund     TransactionSource = "refund"
	SourceAdjustment TransactionSource = "adjustment"
)

func (s TransactionSource) Valid() bool {
	switch s {
	case SourceOrder, SourceWithdrawal, SourceRefund, SourceAdjustment:
		return true
	}
	return false
}

type DocumentType string

const (
	DocumentOrder      DocumentType = "order"
	DocumentWithdrawal DocumentType = "withdrawal_request"
)

type DocumentRef struct {
	ID   string
	Type DocumentType
}

type WalletTransaction struct {
	ID                  string
	WalletID            string
	Type                TransactionType
	Amount              int64
	Source              TransactionSource
	Description         string
	RelatedDocumentID   string
	RelatedDocumentType DocumentType
	CreatedAt           time.Time

	// Related заполняется только при выдаче списка, по RelatedDocumentType.
	Related *RelatedDocument
}

type RelatedDocument struct {
	Order      *OrderSummary
	Withdrawal *WithdrawalSummary
}

type OrderSummary struct {
	SubOrderID     string
	OrderID        string
	BuyerName      string
	Total          int64
	DeliveryStatus DeliveryStatus
	CreatedAt      time.Time
}

type WithdrawalSummary struct {
	ID              string
	RequestNumber   string
	Status          WithdrawalStatus
	RequestedAmount int64
	NetAmount       int64
	CreatedAt       time.Time
}

// WalletDelta - атомарное изменение кошелька. Хранилище применяет его одним условным
// UPDATE и отклоняет, если баланс или резерв уходят в минус.
type WalletDelta struct {
	Balance     int64
	Pending     int64
	TotalEarned int64
}

type TransactionFilter struct {
	Type    TransactionType
	Source  TransactionSource
	Created DateRange
	Search  string
	Page    Page
}
