package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var subOrderColumns = []string{
	"s.sub_order_id", "s.order_id", "s.store_id", "o.buyer_id",
	"s.subtotal", "s.shipping_price", "s.total", "s.delivery_status",
	"s.delivery_date", "s.return_window",
	"s.confirmed", "s.confirmed_at", "s.auto_confirmed",
	"s.escrow_held", "s.escrow_released", "s.released_at", "s.escrow_refunded", "s.refund_reason",
	"s.settlement_amount", "s.settlement_shipping_price", "s.settlement_notes", "s.settled_at",
	"s.created_at", "s.updated_at",
}

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

// SaveOrder идемпотентна: повторная вставка того же заказа возвращает created=false.
func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "buyer_id", "buyer_name", "buyer_email", "total_amount",
			"shipping_name", "shipping_phone", "shipping_address",
			"shipping_city", "shipping_region", "shipping_zip",
			"created_at", "updated_at",
		).
		Values(
			o.ID, o.BuyerID, o.BuyerName, o.BuyerEmail, o.TotalAmount,
			nullString(o.Shipping.Name), nullString(o.Shipping.Phone), nullString(o.Shipping.Address),
			nullString(o.Shipping.City), nullString(o.Shipping.Region), nullString(o.Shipping.ZIP),
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

func (r *orderRepo) SaveSubOrder(ctx context.Context, s entities.SubOrder) error {
	query, args := r.qb.Insert("sub_orders").
		Columns(
			"sub_order_id", "order_id", "store_id",
			"subtotal", "shipping_price", "total", "delivery_status",
			"escrow_held", "escrow_released", "escrow_refunded",
			"created_at", "updated_at",
		).
		Values(
			s.ID, s.OrderID, s.StoreID,
			s.Subtotal, s.ShippingPrice, s.Total, string(s.DeliveryStatus),
			s.Escrow.Held, s.Escrow.Released, s.Escrow.Refunded,
			s.CreatedAt, s.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save sub-order: %w", err)
	}
	return nil
}

func (r *orderRepo) SaveLineItems(ctx context.Context, subOrderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("sub_order_items").
		Columns("sub_order_id", "product_id", "name", "quantity", "unit_price")

	for _, it := range items {
		q = q.Values(subOrderID, it.ProductID, it.Name, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save line items: %w", err)
	}
	return nil
}

func (r *orderRepo) AppendSubOrderHistory(ctx context.Context, subOrderID string, e entities.HistoryEntry) error {
	query, args := r.qb.Insert("sub_order_status_history").
		Columns("sub_order_id", "status", "notes", "actor_id", "created_at").
		Values(subOrderID, e.Status, e.Notes, nullString(e.ActorID), e.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append sub-order history: %w", err)
	}
	return nil
}

// GetSubOrder загружает подзаказ с позициями и историей. lock блокирует строку
// подзаказа до конца транзакции.
func (r *orderRepo) GetSubOrder(ctx context.Context, id string, lock bool) (entities.SubOrder, error) {
	q := r.qb.Select(subOrderColumns...).
		From("sub_orders s").
		Join("orders o ON o.order_id = s.order_id").
		Where(sq.Eq{"s.sub_order_id": id})
	query, args := forUpdate(q, lock, "s").MustSql()

	var sub SubOrder
	err := r.getContext(ctx, &sub, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.SubOrder{}, entities.ErrSubOrderNotFound
	}
	if err != nil {
		return entities.SubOrder{}, fmt.Errorf("failed to get sub-order: %w", err)
	}

	query, args = r.qb.Select("sub_order_id", "product_id", "name", "quantity", "unit_price").
		From("sub_order_items").
		Where(sq.Eq{"sub_order_id": id}).
		OrderBy("product_id").
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.SubOrder{}, fmt.Errorf("failed to get line items: %w", err)
	}

	query, args = r.qb.Select("id", "status", "notes", "actor_id", "created_at").
		From("sub_order_status_history").
		Where(sq.Eq{"sub_order_id": id}).
		OrderBy("id").
		MustSql()

	var history []HistoryEntry
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return entities.SubOrder{}, fmt.Errorf("failed to get sub-order history: %w", err)
	}

	return SubOrderToEntity(sub, items, history), nil
}

// UpdateSubOrder записывает изменяемое состояние подзаказа. История пишется отдельно.
func (r *orderRepo) UpdateSubOrder(ctx context.Context, s entities.SubOrder) error {
	q := r.qb.Update("sub_orders").
		Set("delivery_status", string(s.DeliveryStatus)).
		Set("delivery_date", nullTime(s.DeliveryDate)).
		Set("return_window", nullTime(s.ReturnWindow)).
		Set("confirmed", s.Confirmation.Confirmed).
		Set("confirmed_at", nullTime(s.Confirmation.ConfirmedAt)).
		Set("auto_confirmed", s.Confirmation.AutoConfirmed).
		Set("escrow_held", s.Escrow.Held).
		Set("escrow_released", s.Escrow.Released).
		Set("released_at", nullTime(s.Escrow.ReleasedAt)).
		Set("escrow_refunded", s.Escrow.Refunded).
		Set("refund_reason", nullString(s.Escrow.RefundReason)).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"sub_order_id": s.ID})

	if s.Settlement != nil {
		q = q.
			Set("settlement_amount", s.Settlement.Amount).
			Set("settlement_shipping_price", s.Settlement.ShippingPrice).
			Set("settlement_notes", nullString(s.Settlement.Notes)).
			Set("settled_at", s.Settlement.SettledAt)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update sub-order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrSubOrderNotFound
	}
	return nil
}

func (r *orderRepo) eligibleQuery(cutoff time.Time, f entities.EligibleFilter, columns ...string) sq.SelectBuilder {
	q := r.qb.Select(columns...).
		From("sub_orders s").
		Join("orders o ON o.order_id = s.order_id").
		Where(sq.Eq{
			"s.delivery_status": string(entities.StatusDelivered),
			"s.confirmed":       false,
			"s.auto_confirmed":  false,
		}).
		Where(sq.LtOrEq{"s.delivery_date": cutoff})

	if !f.Delivered.From.IsZero() {
		q = q.Where(sq.GtOrEq{"s.delivery_date": f.Delivered.From})
	}
	if !f.Delivered.To.IsZero() {
		q = q.Where(sq.Lt{"s.delivery_date": f.Delivered.To})
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(sq.Or{
			sq.ILike{"o.buyer_name": pattern},
			sq.ILike{"o.buyer_email": pattern},
		})
	}
	if len(f.Exclude) > 0 {
		q = q.Where(sq.NotEq{"s.sub_order_id": f.Exclude})
	}
	return q
}

// ListAutoConfirmEligible возвращает очередь автоподтверждения, старые доставки первыми.
func (r *orderRepo) ListAutoConfirmEligible(ctx context.Context, cutoff time.Time, f entities.EligibleFilter) (entities.PageResult[entities.EligibleSubOrder], error) {
	page := f.Page.Normalize()

	total, err := r.count(ctx, r.eligibleQuery(cutoff, f, "COUNT(*)"))
	if err != nil {
		return entities.PageResult[entities.EligibleSubOrder]{}, fmt.Errorf("failed to count eligible sub-orders: %w", err)
	}

	query, args := r.eligibleQuery(cutoff, f,
		"s.sub_order_id", "s.order_id", "s.store_id", "o.buyer_name", "o.buyer_email", "s.total", "s.delivery_date").
		OrderBy("s.delivery_date ASC", "s.sub_order_id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		MustSql()

	var rows []EligibleSubOrder
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return entities.PageResult[entities.EligibleSubOrder]{}, fmt.Errorf("failed to select eligible sub-orders: %w", err)
	}

	items := make([]entities.EligibleSubOrder, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.EligibleSubOrder{
			SubOrderID:   row.SubOrderID,
			OrderID:      row.OrderID,
			StoreID:      row.StoreID,
			BuyerName:    row.BuyerName,
			BuyerEmail:   row.BuyerEmail,
			Total:        row.Total,
			DeliveryDate: row.DeliveryDate,
		})
	}

	return entities.PageResult[entities.EligibleSubOrder]{Items: items, Total: total, Page: page}, nil
}
