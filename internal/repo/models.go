package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
)

type Order struct {
	OrderID         string         `db:"order_id"`
	BuyerID         string         `db:"buyer_id"`
	BuyerName       string         `db:"buyer_name"`
	BuyerEmail      string         `db:"buyer_email"`
	TotalAmount     int64          `db:"total_amount"`
	ShippingName    sql.NullString `db:"shipping_name"`
	ShippingPhone   sql.NullString `db:"shipping_phone"`
	ShippingAddress sql.NullString `db:"shipping_address"`
	ShippingCity    sql.NullString `db:"shipping_city"`
	ShippingRegion  sql.NullString `db:"shipping_region"`
	ShippingZIP     sql.NullString `db:"shipping_zip"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type SubOrder struct {
	SubOrderID     string `db:"sub_order_id"`
	OrderID        string `db:"order_id"`
	StoreID        string `db:"store_id"`
	BuyerID        string `db:"buyer_id"`
	Subtotal       int64  `db:"subtotal"`
	ShippingPrice  int64  `db:"shipping_price"`
	Total          int64  `db:"total"`
	DeliveryStatus string `db:"delivery_status"`

	DeliveryDate sql.NullTime `db:"delivery_date"`
	ReturnWindow sql.NullTime `db:"return_window"`

	Confirmed     bool         `db:"confirmed"`
	ConfirmedAt   sql.NullTime `db:"confirmed_at"`
	AutoConfirmed bool         `db:"auto_confirmed"`

	EscrowHeld     bool           `db:"escrow_held"`
	EscrowReleased bool           `db:"escrow_released"`
	ReleasedAt     sql.NullTime   `db:"released_at"`
	EscrowRefunded bool           `db:"escrow_refunded"`
	RefundReason   sql.NullString `db:"refund_reason"`

	SettlementAmount        sql.NullInt64  `db:"settlement_amount"`
	SettlementShippingPrice sql.NullInt64  `db:"settlement_shipping_price"`
	SettlementNotes         sql.NullString `db:"settlement_notes"`
	SettledAt               sql.NullTime   `db:"settled_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type LineItem struct {
	SubOrderID string `db:"sub_order_id"`
	ProductID  string `db:"product_id"`
	Name       string `db:"name"`
	Quantity   int    `db:"quantity"`
	UnitPrice  int64  `db:"unit_price"`
}

type HistoryEntry struct {
	ID        int64          `db:"id"`
	Status    string         `db:"status"`
	Notes     string         `db:"notes"`
	ActorID   sql.NullString `db:"actor_id"`
	CreatedAt time.Time      `db:"created_at"`
}

type EligibleSubOrder struct {
	SubOrderID   string    `db:"sub_order_id"`
	OrderID      string    `db:"order_id"`
	StoreID      string    `db:"store_id"`
	BuyerName    string    `db:"buyer_name"`
	BuyerEmail   string    `db:"buyer_email"`
	Total        int64     `db:"total"`
	DeliveryDate time.Time `db:"delivery_date"`
}

type OrderSummary struct {
	SubOrderID     string    `db:"sub_order_id"`
	OrderID        string    `db:"order_id"`
	BuyerName      string    `db:"buyer_name"`
	Total          int64     `db:"total"`
	DeliveryStatus string    `db:"delivery_status"`
	CreatedAt      time.Time `db:"created_at"`
}

type Wallet struct {
	WalletID    string    `db:"wallet_id"`
	StoreID     string    `db:"store_id"`
	Balance     int64     `db:"balance"`
	Pending     int64     `db:"pending"`
	TotalEarned int64     `db:"total_earned"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type WalletTransaction struct {
	TransactionID       string         `db:"transaction_id"`
	WalletID            string         `db:"wallet_id"`
	Type                string         `db:"type"`
	Amount              int64          `db:"amount"`
	Source              string         `db:"source"`
	Description         string         `db:"description"`
	RelatedDocumentID   sql.NullString `db:"related_document_id"`
	RelatedDocumentType sql.NullString `db:"related_document_type"`
	CreatedAt           time.Time      `db:"created_at"`
}

type WithdrawalRequest struct {
	WithdrawalID    string         `db:"withdrawal_id"`
	RequestNumber   string         `db:"request_number"`
	StoreID         string         `db:"store_id"`
	PayoutAccountID string         `db:"payout_account_id"`
	RequestedAmount int64          `db:"requested_amount"`
	ProcessingFee   int64          `db:"processing_fee"`
	NetAmount       int64          `db:"net_amount"`
	Description     sql.NullString `db:"description"`
	BankName        string         `db:"bank_name"`
	BankCode        string         `db:"bank_code"`
	AccountNumber   string         `db:"account_number"`
	AccountName     string         `db:"account_name"`
	Status          string         `db:"status"`

	ReviewedBy      sql.NullString `db:"reviewed_by"`
	ReviewedAt      sql.NullTime   `db:"reviewed_at"`
	ReviewNotes     sql.NullString `db:"review_notes"`
	RejectionReason sql.NullString `db:"rejection_reason"`

	ProcessedBy          sql.NullString `db:"processed_by"`
	ProcessedAt          sql.NullTime   `db:"processed_at"`
	TransactionReference sql.NullString `db:"transaction_reference"`
	FailureReason        sql.NullString `db:"failure_reason"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WithdrawalListRow - заявка вместе с присоединёнными магазином, кошельком и администраторами.
type WithdrawalListRow struct {
	WithdrawalRequest
	StoreName     string         `db:"store_name"`
	StoreEmail    string         `db:"store_email"`
	WalletBalance sql.NullInt64  `db:"wallet_balance"`
	WalletPending sql.NullInt64  `db:"wallet_pending"`
	ReviewerName  sql.NullString `db:"reviewer_name"`
	ProcessorName sql.NullString `db:"processor_name"`
}

type WithdrawalSummary struct {
	WithdrawalID    string    `db:"withdrawal_id"`
	RequestNumber   string    `db:"request_number"`
	Status          string    `db:"status"`
	RequestedAmount int64     `db:"requested_amount"`
	NetAmount       int64     `db:"net_amount"`
	CreatedAt       time.Time `db:"created_at"`
}

type PayoutAccount struct {
	ID            string `db:"id"`
	StoreID       string `db:"store_id"`
	BankName      string `db:"bank_name"`
	BankCode      string `db:"bank_code"`
	AccountNumber string `db:"account_number"`
	AccountName   string `db:"account_name"`
	Verified      bool   `db:"verified"`
}

type Person struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func SubOrderToEntity(s SubOrder, items []LineItem, history []HistoryEntry) entities.SubOrder {
	sub := entities.SubOrder{
		ID:             s.SubOrderID,
		OrderID:        s.OrderID,
		StoreID:        s.StoreID,
		BuyerID:        s.BuyerID,
		Subtotal:       s.Subtotal,
		ShippingPrice:  s.ShippingPrice,
		Total:          s.Total,
		DeliveryStatus: entities.DeliveryStatus(s.DeliveryStatus),
		DeliveryDate:   nullTimeToPtr(s.DeliveryDate),
		ReturnWindow:   nullTimeToPtr(s.ReturnWindow),
		Confirmation: entities.Confirmation{
			Confirmed:     s.Confirmed,
			ConfirmedAt:   nullTimeToPtr(s.ConfirmedAt),
			AutoConfirmed: s.AutoConfirmed,
		},
		Escrow: entities.Escrow{
			Held:         s.EscrowHeld,
			Released:     s.EscrowReleased,
			ReleasedAt:   nullTimeToPtr(s.ReleasedAt),
			Refunded:     s.EscrowRefunded,
			RefundReason: nullStringToString(s.RefundReason),
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.SettlementAmount.Valid {
		sub.Settlement = &entities.Settlement{
			Amount:        s.SettlementAmount.Int64,
			ShippingPrice: s.SettlementShippingPrice.Int64,
			Notes:         nullStringToString(s.SettlementNotes),
			SettledAt:     s.SettledAt.Time,
		}
	}

	sub.Items = make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		sub.Items = append(sub.Items, entities.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	sub.StatusHistory = HistoryToEntity(history)
	return sub
}

func HistoryToEntity(history []HistoryEntry) []entities.HistoryEntry {
	res := make([]entities.HistoryEntry, 0, len(history))
	for _, h := range history {
		res = append(res, entities.HistoryEntry{
			Status:    h.Status,
			Notes:     h.Notes,
			ActorID:   nullStringToString(h.ActorID),
			CreatedAt: h.CreatedAt,
		})
	}
	return res
}

func WalletToEntity(w Wallet) entities.Wallet {
	return entities.Wallet{
		ID:          w.WalletID,
		StoreID:     w.StoreID,
		Balance:     w.Balance,
		Pending:     w.Pending,
		TotalEarned: w.TotalEarned,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func TransactionToEntity(t WalletTransaction) entities.WalletTransaction {
	return entities.WalletTransaction{
		ID:                  t.TransactionID,
		WalletID:            t.WalletID,
		Type:                entities.TransactionType(t.Type),
		Amount:              t.Amount,
		Source:              entities.TransactionSource(t.Source),
		Description:         t.Description,
		RelatedDocumentID:   nullStringToString(t.RelatedDocumentID),
		RelatedDocumentType: entities.DocumentType(nullStringToString(t.RelatedDocumentType)),
		CreatedAt:           t.CreatedAt,
	}
}

func WithdrawalToEntity(w WithdrawalRequest, history []HistoryEntry) entities.WithdrawalRequest {
	return entities.WithdrawalRequest{
		ID:              w.WithdrawalID,
		RequestNumber:   w.RequestNumber,
		StoreID:         w.StoreID,
		PayoutAccountID: w.PayoutAccountID,
		RequestedAmount: w.RequestedAmount,
		ProcessingFee:   w.ProcessingFee,
		NetAmount:       w.NetAmount,
		Description:     nullStringToString(w.Description),
		Bank: entities.BankDetails{
			BankName:      w.BankName,
			BankCode:      w.BankCode,
			AccountNumber: w.AccountNumber,
			AccountName:   w.AccountName,
		},
		Status:               entities.WithdrawalStatus(w.Status),
		StatusHistory:        HistoryToEntity(history),
		ReviewedBy:           nullStringToString(w.ReviewedBy),
		ReviewedAt:           nullTimeToPtr(w.ReviewedAt),
		ReviewNotes:          nullStringToString(w.ReviewNotes),
		RejectionReason:      nullStringToString(w.RejectionReason),
		ProcessedBy:          nullStringToString(w.ProcessedBy),
		ProcessedAt:          nullTimeToPtr(w.ProcessedAt),
		TransactionReference: nullStringToString(w.TransactionReference),
		FailureReason:        nullStringToString(w.FailureReason),
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}
}

func WithdrawalListRowToEntity(r WithdrawalListRow) entities.WithdrawalListItem {
	return entities.WithdrawalListItem{
		Request:       WithdrawalToEntity(r.WithdrawalRequest, nil),
		Store:         entities.StoreInfo{ID: r.StoreID, Name: r.StoreName, Email: r.StoreEmail},
		WalletBalance: r.WalletBalance.Int64,
		WalletPending: r.WalletPending.Int64,
		ReviewerName:  nullStringToString(r.ReviewerName),
		ProcessorName: nullStringToString(r.ProcessorName),
	}
}

func PayoutAccountToEntity(a PayoutAccount) entities.PayoutAccount {
	return entities.PayoutAccount{
		ID:      a.ID,
		StoreID: a.StoreID,
		Bank: entities.BankDetails{
			BankName:      a.BankName,
			BankCode:      a.BankCode,
			AccountNumber: a.AccountNumber,
			AccountName:   a.AccountName,
		},
		Verified: a.Verified,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
