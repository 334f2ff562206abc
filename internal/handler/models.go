package handler

import (
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
)

// HistoryEntry запись журнала статусов
type HistoryEntry struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	ActorID   string    `json:"actor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LineItem позиция подзаказа
type LineItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
}

type Confirmation struct {
	Confirmed     bool       `json:"confirmed"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	AutoConfirmed bool       `json:"auto_confirmed"`
}

type Escrow struct {
	Held         bool       `json:"held"`
	Released     bool       `json:"released"`
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	Refunded     bool       `json:"refunded"`
	RefundReason string     `json:"refund_reason,omitempty"`
}

type Settlement struct {
	Amount        int64     `json:"amount"`
	ShippingPrice int64     `json:"shipping_price"`
	Notes         string    `json:"notes,omitempty"`
	SettledAt     time.Time `json:"settled_at"`
}

// SubOrder часть заказа, относящаяся к одному магазину
type SubOrder struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"order_id"`
	StoreID        string         `json:"store_id"`
	BuyerID        string         `json:"buyer_id"`
	Items          []LineItem     `json:"items"`
	Subtotal       int64          `json:"subtotal"`
	ShippingPrice  int64          `json:"shipping_price"`
	Total          int64          `json:"total"`
	DeliveryStatus string         `json:"delivery_status"`
	StatusHistory  []HistoryEntry `json:"status_history"`
	DeliveryDate   *time.Time     `json:"delivery_date,omitempty"`
	ReturnWindow   *time.Time     `json:"return_window,omitempty"`
	Confirmation   Confirmation   `json:"confirmation"`
	Escrow         Escrow         `json:"escrow"`
	Settlement     *Settlement    `json:"settlement,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// StatusChange результат смены статуса доставки
type StatusChange struct {
	SubOrderID     string       `json:"sub_order_id"`
	PreviousStatus string       `json:"previous_status"`
	NewStatus      string       `json:"new_status"`
	EscrowEffect   string       `json:"escrow_effect"`
	Entry          HistoryEntry `json:"entry"`
}

type EligibleSubOrder struct {
	SubOrderID   string    `json:"sub_order_id"`
	OrderID      string    `json:"order_id"`
	StoreID      string    `json:"store_id"`
	BuyerName    string    `json:"buyer_name"`
	BuyerEmail   string    `json:"buyer_email"`
	Total        int64     `json:"total"`
	DeliveryDate time.Time `json:"delivery_date"`
}

type EligibleList struct {
	Items []EligibleSubOrder `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type Wallet struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Balance     int64     `json:"balance"`
	Pending     int64     `json:"pending"`
	TotalEarned int64     `json:"total_earned"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderSummary struct {
	SubOrderID     string    `json:"sub_order_id"`
	OrderID        string    `json:"order_id"`
	BuyerName      string    `json:"buyer_name,omitempty"`
	Total          int64     `json:"total"`
	DeliveryStatus string    `json:"delivery_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type WithdrawalSummary struct {
	ID              string    `json:"id"`
	RequestNumber   string    `json:"request_number"`
	Status          string    `json:"status"`
	RequestedAmount int64     `json:"requested_amount"`
	NetAmount       int64     `json:"net_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

// RelatedDocument заполнено ровно одно поле, по типу документа
type RelatedDocument struct {
	Order      *OrderSummary      `json:"order,omitempty"`
	Withdrawal *WithdrawalSummary `json:"withdrawal,omitempty"`
}

// Transaction запись журнала кошелька
type Transaction struct {
	ID                  string           `json:"id"`
	Type                string           `json:"type"`
	Amount              int64            `json:"amount"`
	Source              string           `json:"source"`
	Description         string           `json:"description,omitempty"`
	RelatedDocumentID   string           `json:"related_document_id,omitempty"`
	RelatedDocumentType string           `json:"related_document_type,omitempty"`
	RelatedDocument     *RelatedDocument `json:"related_document,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

type TransactionList struct {
	Items []Transaction `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type BankDetails struct {
	BankName      string `json:"bank_name"`
	BankCode      string `json:"bank_code,omitempty"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// Withdrawal заявка на вывод в том виде, в каком её видит магазин
type Withdrawal struct {
	ID                   string         `json:"id"`
	RequestNumber        string         `json:"request_number"`
	StoreID              string         `json:"store_id"`
	RequestedAmount      int64          `json:"requested_amount"`
	ProcessingFee        int64          `json:"processing_fee"`
	NetAmount            int64          `json:"net_amount"`
	Description          string         `json:"description,omitempty"`
	BankDetails          BankDetails    `json:"bank_details"`
	Status               string         `json:"status"`
	StatusHistory        []HistoryEntry `json:"status_history,omitempty"`
	ReviewedAt           *time.Time     `json:"reviewed_at,omitempty"`
	ReviewNotes          string         `json:"review_notes,omitempty"`
	RejectionReason      string         `json:"rejection_reason,omitempty"`
	ProcessedAt          *time.Time     `json:"processed_at,omitempty"`
	TransactionReference string         `json:"transaction_reference,omitempty"`
	FailureReason        string         `json:"failure_reason,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

type WithdrawalList struct {
	Items []Withdrawal `json:"items"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminWithdrawal строка административного списка
type AdminWithdrawal struct {
	Withdrawal
	ReviewedBy    string `json:"reviewed_by,omitempty"`
	ProcessedBy   string `json:"processed_by,omitempty"`
	StoreName     string `json:"store_name"`
	StoreEmail    string `json:"store_email"`
	WalletBalance int64  `json:"wallet_balance"`
	WalletPending int64  `json:"wallet_pending"`
	ReviewerName  string `json:"reviewer_name,omitempty"`
	ProcessorName string `json:"processor_name,omitempty"`
}

type AdminWithdrawalList struct {
	Items []AdminWithdrawal `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// AdminWithdrawalDetails карточка заявки для администратора
type AdminWithdrawalDetails struct {
	Withdrawal
	ReviewedBy  string  `json:"reviewed_by,omitempty"`
	ProcessedBy string  `json:"processed_by,omitempty"`
	Store       Person  `json:"store"`
	Wallet      Wallet  `json:"wallet"`
	Reviewer    *Person `json:"reviewer,omitempty"`
	Processor   *Person `json:"processor,omitempty"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"max=500"`
}

type RefundRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type CreateWithdrawalRequest struct {
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	BankAccountID string `json:"bank_account_id" validate:"required,uuid"`
	Description   string `json:"description" validate:"max=500"`
}

type ReviewRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

type ApproveRequest struct {
	TransactionReference string `json:"transaction_reference" validate:"required,max=100"`
	Notes                string `json:"notes" validate:"max=500"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
	Notes  string `json:"notes" validate:"max=500"`
}

type CompleteRequest struct {
	TransactionReference string `json:"transaction_reference" validate:"max=100"`
	Notes                string `json:"notes" validate:"max=500"`
}

type FailRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// CheckoutEvent событие оформления заказа из топика заказов
type CheckoutEvent struct {
	OrderID     string          `json:"order_id" validate:"required,uuid"`
	BuyerID     string          `json:"buyer_id" validate:"required"`
	BuyerName   string          `json:"buyer_name" validate:"required"`
	BuyerEmail  string          `json:"buyer_email" validate:"required,email"`
	TotalAmount int64           `json:"total_amount" validate:"gt=0"`
	Shipping    ShippingAddress `json:"shipping" validate:"required"`
	SubOrders   []CheckoutPart  `json:"sub_orders" validate:"required,min=1,dive"`
	CreatedAt   time.Time       `json:"created_at" validate:"required"`
}

type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,e164"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Region  string `json:"region"`
	ZIP     string `json:"zip"`
}

type CheckoutPart struct {
	SubOrderID    string     `json:"sub_order_id" validate:"required,uuid"`
	StoreID       string     `json:"store_id" validate:"required,uuid"`
	Items         []LineItem `json:"items" validate:"required,min=1,dive"`
	Subtotal      int64      `json:"subtotal" validate:"gte=0"`
	ShippingPrice int64      `json:"shipping_price" validate:"gte=0"`
	Total         int64      `json:"total" validate:"gt=0"`
}

// SettlementEvent инструкция внешней задачи выплат об освобождении эскроу
type SettlementEvent struct {
	SubOrderID    string `json:"sub_order_id" validate:"required,uuid"`
	Amount        int64  `json:"amount" validate:"gt=0"`
	ShippingPrice int64  `json:"shipping_price" validate:"gte=0"`
	Notes         string `json:"notes" validate:"max=500"`
}

func historyToJSON(history []entities.HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history))
	for _, e := range history {
		out = append(out, historyEntryToJSON(e))
	}
	return out
}

func historyEntryToJSON(e entities.HistoryEntry) HistoryEntry {
	return HistoryEntry{Status: e.Status, Notes: e.Notes, ActorID: e.ActorID, CreatedAt: e.CreatedAt}
}

func SubOrderEntityToJSON(s entities.SubOrder) SubOrder {
	items := make([]LineItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	var settlement *Settlement
	if s.Settlement != nil {
		settlement = &Settlement{
			Amount:        s.Settlement.Amount,
			ShippingPrice: s.Settlement.ShippingPrice,
			Notes:         s.Settlement.Notes,
			SettledAt:     s.Settlement.SettledAt,
		}
	}

	return SubOrder{
		ID:             s.ID,
		OrderID:        s.OrderID,
		StoreID:        s.StoreID,
		BuyerID:        s.BuyerID,
		Items:          items,
		Subtotal:       s.Subtotal,
		ShippingPrice:  s.ShippingPrice,
		Total:          s.Total,
		DeliveryStatus: string(s.DeliveryStatus),
		StatusHistory:  historyToJSON(s.StatusHistory),
		DeliveryDate:   s.DeliveryDate,
		ReturnWindow:   s.ReturnWindow,
		Confirmation: Confirmation{
			Confirmed:     s.Confirmation.Confirmed,
			ConfirmedAt:   s.Confirmation.ConfirmedAt,
			AutoConfirmed: s.Confirmation.AutoConfirmed,
		},
		Escrow: Escrow{
			Held:         s.Escrow.Held,
			Released:     s.Escrow.Released,
			ReleasedAt:   s.Escrow.ReleasedAt,
			Refunded:     s.Escrow.Refunded,
			RefundReason: s.Escrow.RefundReason,
		},
		Settlement: settlement,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func StatusChangeEntityToJSON(c entities.StatusChange) StatusChange {
	return StatusChange{
		SubOrderID:     c.SubOrderID,
		PreviousStatus: string(c.PreviousStatus),
		NewStatus:      string(c.NewStatus),
		EscrowEffect:   string(c.EscrowEffect),
		Entry:          historyEntryToJSON(c.Entry),
	}
}

func EligibleListToJSON(res entities.PageResult[entities.EligibleSubOrder]) EligibleList {
	items := make([]EligibleSubOrder, 0, len(res.Items))
	for _, e := range res.Items {
		items = append(items, EligibleSubOrder{
			SubOrderID:   e.SubOrderID,
			OrderID:      e.OrderID,
			StoreID:      e.StoreID,
			BuyerName:    e.BuyerName,
			BuyerEmail:   e.BuyerEmail,
			Total:        e.Total,
			DeliveryDate: e.DeliveryDate,
		})
	}
	return EligibleList{Items: items, Total: res.Total, Page: res.Page.Page, Limit: res.Page.Limit}
}

func WalletEntityToJSON(w entities.Wallet) Wallet {
	return Wallet{
		ID:          w.ID,
		StoreID:     w.StoreID,
		Balance:     w.Balance,
		Pending:     w.Pending,
		TotalEarned: w.TotalEarned,
		UpdatedAt:   w.UpdatedAt,
	}
}

func TransactionEntityToJSON(t entities.WalletTransaction) Transaction {
	out := Transaction{
		ID:                  t.ID,
		Type:                string(t.Type),
		Amount:              t.Amount,
		Source:              string(t.Source),
		Description:         t.Description,
		RelatedDocumentID:   t.RelatedDocumentID,
		RelatedDocumentType: string(t.RelatedDocumentType),
		CreatedAt:           t.CreatedAt,
	}
	if t.Related == nil {
		return out
	}

	doc := &RelatedDocument{}
	if o := t.Related.Order; o != nil {
		doc.Order = &OrderSummary{
			SubOrderID:     o.SubOrderID,
			OrderID:        o.OrderID,
			BuyerName:      o.BuyerName,
			Total:          o.Total,
			DeliveryStatus: string(o.DeliveryStatus),
			CreatedAt:      o.CreatedAt,
		}
	}
	if wd := t.Related.Withdrawal; wd != nil {
		doc.Withdrawal = &WithdrawalSummary{
			ID:              wd.ID,
			RequestNumber:   wd.RequestNumber,
			Status:          string(wd.Status),
			RequestedAmount: wd.RequestedAmount,
			NetAmount:       wd.NetAmount,
			CreatedAt:       wd.CreatedAt,
		}
	}
	out.RelatedDocument = doc
	return out
}

func TransactionListToJSON(res entities.PageResult[entities.WalletTransaction]) TransactionList {
	items := make([]Transaction, 0, len(res.Items))
	for _, t := range res.Items {
		items = append(items, TransactionEntityToJSON(t))
	}
	return TransactionList{Items: items, Total: res.Total, Page: res.Page.Page, Limit: res.Page.Limit}
}

// WithdrawalEntityToJSON - проекция для магазина: без идентификаторов администраторов.
func WithdrawalEntityToJSON(w entities.WithdrawalRequest) Withdrawal {
	return Withdrawal{
		ID:              w.ID,
		RequestNumber:   w.RequestNumber,
		StoreID:         w.StoreID,
		RequestedAmount: w.RequestedAmount,
		ProcessingFee:   w.ProcessingFee,
		NetAmount:       w.NetAmount,
		Description:     w.Description,
		BankDetails: BankDetails{
			BankName:      w.Bank.BankName,
			BankCode:      w.Bank.BankCode,
			AccountNumber: w.Bank.AccountNumber,
			AccountName:   w.Bank.AccountName,
		},
		Status:               string(w.Status),
		StatusHistory:        historyToJSON(w.StatusHistory),
		ReviewedAt:           w.ReviewedAt,
		ReviewNotes:          w.ReviewNotes,
		RejectionReason:      w.RejectionReason,
		ProcessedAt:          w.ProcessedAt,
		TransactionReference: w.TransactionReference,
		FailureReason:        w.FailureReason,
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}
}

func WithdrawalListToJSON(res entities.PageResult[entities.WithdrawalListItem]) WithdrawalList {
	items := make([]Withdrawal, 0, len(res.Items))
	for _, it := range res.Items {
		w := WithdrawalEntityToJSON(it.Request)
		w.StatusHistory = nil
		items = append(items, w)
	}
	return WithdrawalList{Items: items, Total: res.Total, Page: res.Page.Page, Limit: res.Page.Limit}
}

func AdminWithdrawalListToJSON(res entities.PageResult[entities.WithdrawalListItem]) AdminWithdrawalList {
	items := make([]AdminWithdrawal, 0, len(res.Items))
	for _, it := range res.Items {
		w := WithdrawalEntityToJSON(it.Request)
		w.StatusHistory = nil
		items = append(items, AdminWithdrawal{
			Withdrawal:    w,
			ReviewedBy:    it.Request.ReviewedBy,
			ProcessedBy:   it.Request.ProcessedBy,
			StoreName:     it.Store.Name,
			StoreEmail:    it.Store.Email,
			WalletBalance: it.WalletBalance,
			WalletPending: it.WalletPending,
			ReviewerName:  it.ReviewerName,
			ProcessorName: it.ProcessorName,
		})
	}
	return AdminWithdrawalList{Items: items, Total: res.Total, Page: res.Page.Page, Limit: res.Page.Limit}
}

func adminToJSON(a *entities.AdminInfo) *Person {
	if a == nil {
		return nil
	}
	return &Person{ID: a.ID, Name: a.Name, Email: a.Email}
}

func AdminWithdrawalDetailsToJSON(d entities.WithdrawalDetails) AdminWithdrawalDetails {
	return AdminWithdrawalDetails{
		Withdrawal:  WithdrawalEntityToJSON(d.Request),
		ReviewedBy:  d.Request.ReviewedBy,
		ProcessedBy: d.Request.ProcessedBy,
		Store:       Person{ID: d.Store.ID, Name: d.Store.Name, Email: d.Store.Email},
		Wallet:      WalletEntityToJSON(d.Wallet),
		Reviewer:    adminToJSON(d.Reviewer),
		Processor:   adminToJSON(d.Processor),
	}
}

func CheckoutEventToEntity(e CheckoutEvent) entities.Order {
	subOrders := make([]entities.SubOrder, 0, len(e.SubOrders))
	for _, p := range e.SubOrders {
		items := make([]entities.LineItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, entities.LineItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
		subOrders = append(subOrders, entities.SubOrder{
			ID:            p.SubOrderID,
			OrderID:       e.OrderID,
			StoreID:       p.StoreID,
			BuyerID:       e.BuyerID,
			Items:         items,
			Subtotal:      p.Subtotal,
			ShippingPrice: p.ShippingPrice,
			Total:         p.Total,
		})
	}

	return entities.Order{
		ID:          e.OrderID,
		BuyerID:     e.BuyerID,
		BuyerName:   e.BuyerName,
		BuyerEmail:  e.BuyerEmail,
		TotalAmount: e.TotalAmount,
		Shipping: entities.ShippingAddress{
			Name:    e.Shipping.Name,
			Phone:   e.Shipping.Phone,
			Address: e.Shipping.Address,
			City:    e.Shipping.City,
			Region:  e.Shipping.Region,
			ZIP:     e.Shipping.ZIP,
		},
		SubOrders: subOrders,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.CreatedAt,
	}
}

func SettlementEventToEntity(e SettlementEvent) entities.SettlementInstruction {
	return entities.SettlementInstruction{
		SubOrderID:    e.SubOrderID,
		Amount:        e.Amount,
		ShippingPrice: e.ShippingPrice,
		Notes:         e.Notes,
	}
}
