package entities

import (
	"time"
)

type ShippingAddress struct {
	Name    string
	Phone   string
	Address string
	City    string
	Region  string
	ZIP     string
}

type LineItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice int64
}

type Confirmation struct {
	Confirmed     bool
	ConfirmedAt   *time.Time
	AutoConfirmed bool
}

type Escrow struct {
	Held         bool
	Released     bool
	ReleasedAt   *time.Time
	Refunded     bool
	RefundReason string
}

// Valid проверяет инварианты флагов эскроу.
func (e Escrow) Valid() bool {
	if e.Held && e.Released {
		return false
	}
	if e.Refunded && e.Held {
		return false
	}
	return true
}

// Settlement заполняется, когда средства фактически зачислены магазину.
type Settlement struct {
	Amount        int64
	ShippingPrice int64
	Notes         string
	SettledAt     time.Time
}

type SubOrder struct {
	ID      string
	OrderID string
	StoreID string
	BuyerID string

	Items         []LineItem
	Subtotal      int64
	ShippingPrice int64
	Total         int64

	DeliveryStatus DeliveryStatus
	StatusHistory  []HistoryEntry
	DeliveryDate   *time.Time
	ReturnWindow   *time.Time

	Confirmation Confirmation
	Escrow       Escrow
	Settlement   *Settlement

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID          string
	BuyerID     string
	BuyerName   string
	BuyerEmail  string
	TotalAmount int64
	Shipping    ShippingAddress
	SubOrders   []SubOrder
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate проверяет денежные инварианты заказа: сумма заказа равна сумме подзаказов,
// а итог подзаказа складывается из позиций и доставки.
func (o Order) Validate() error {
	if len(o.SubOrders) == 0 {
		return NewError(KindBadRequest, "order %s has no sub-orders", o.ID)
	}

	var total int64
	for _, s := range o.SubOrders {
		var subtotal int64
		for _, it := range s.Items {
			if it.Quantity <= 0 || it.UnitPrice < 0 {
				return NewError(KindBadRequest, "sub-order %s has invalid line item %s", s.ID, it.ProductID)
			}
			subtotal += int64(it.Quantity) * it.UnitPrice
		}
		if subtotal != s.Subtotal || s.Subtotal+s.ShippingPrice != s.Total {
			return NewError(KindBadRequest, "sub-order %s totals do not add up", s.ID)
		}
		total += s.Total
	}

	if total != o.TotalAmount {
		return NewError(KindBadRequest, "order %s total %d does not match sub-orders total %d", o.ID, o.TotalAmount, total)
	}
	return nil
}

// EligibleSubOrder - строка очереди автоподтверждения.
type EligibleSubOrder struct {
	SubOrderID   string
	OrderID      string
	StoreID      string
	BuyerName    string
	BuyerEmail   string
	Total        int64
	DeliveryDate time.Time
}

type EligibleFilter struct {
	Delivered DateRange
	Search    string
	// Exclude - подзаказы, которые уже пробовали подтвердить в текущем проходе
	Exclude []string
	Page    Page
}

// SettlementInstruction приходит от внешней задачи выплаты по истечении окна возврата.
type SettlementInstruction struct {
	SubOrderID    string
	Amount        int64
	ShippingPrice int64
	Notes         string
}
