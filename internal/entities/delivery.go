package entities

import (
	"fmt"
	"slices"
	"time"
)

type DeliveryStatus string

const (
	StatusOrderPlaced    DeliveryStatus = "OrderPlaced"
	StatusProcessing     DeliveryStatus = "Processing"
	StatusShipped        DeliveryStatus = "Shipped"
	StatusOutForDelivery DeliveryStatus = "OutForDelivery"
	StatusDelivered      DeliveryStatus = "Delivered"
	StatusCanceled       DeliveryStatus = "Canceled"
	StatusReturned       DeliveryStatus = "Returned"
	StatusFailedDelivery DeliveryStatus = "FailedDelivery"
	StatusRefunded       DeliveryStatus = "Refunded"
)

var deliveryStatuses = []DeliveryStatus{
	StatusOrderPlaced, StatusProcessing, StatusShipped, StatusOutForDelivery, StatusDelivered,
	StatusCanceled, StatusReturned, StatusFailedDelivery, StatusRefunded,
}

func (s DeliveryStatus) Valid() bool {
	return slices.Contains(deliveryStatuses, s)
}

// sellerTransitions - единственное определение графа переходов доставки.
var sellerTransitions = map[DeliveryStatus][]DeliveryStatus{
	StatusOrderPlaced:    {StatusProcessing, StatusCanceled},
	StatusProcessing:     {StatusShipped, StatusCanceled},
	StatusShipped:        {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered, StatusFailedDelivery},
	StatusFailedDelivery: {StatusDelivered},
}

// Возврат оформляет только администратор, пока открыто окно возврата.
var adminTransitions = map[DeliveryStatus][]DeliveryStatus{
	StatusDelivered: {StatusReturned},
}

var refundableStatuses = []DeliveryStatus{StatusCanceled, StatusReturned, StatusFailedDelivery}

// CanTransition сообщает, разрешён ли переход. Refunded сюда не входит: он достижим
// только через явный возврат средств.
func CanTransition(from, to DeliveryStatus, admin bool) bool {
	if slices.Contains(sellerTransitions[from], to) {
		return true
	}
	return admin && slices.Contains(adminTransitions[from], to)
}

type EscrowEffect string

const (
	EscrowEffectNone                EscrowEffect = "none"
	EscrowEffectReturnWindowStarted EscrowEffect = "return_window_started"
	EscrowEffectFlaggedForReview    EscrowEffect = "flagged_for_review"
	EscrowEffectRefunded            EscrowEffect = "refunded"
)

type StatusChange struct {
	SubOrderID     string
	PreviousStatus DeliveryStatus
	NewStatus      DeliveryStatus
	EscrowEffect   EscrowEffect
	Entry          HistoryEntry
}

// DeliveryPolicy - настраиваемые сроки, влияющие на эскроу.
type DeliveryPolicy struct {
	ReturnWindow     time.Duration
	AutoConfirmGrace time.Duration
}

// Transition проверяет и применяет смену статуса к подзаказу в памяти.
// При ошибке подзаказ не изменяется.
func (s *SubOrder) Transition(actor Actor, to DeliveryStatus, notes string, now time.Time, policy DeliveryPolicy) (StatusChange, error) {
	if !to.Valid() {
		return StatusChange{}, NewError(KindBadRequest, "unknown delivery status %q", to)
	}
	if to == StatusRefunded {
		return StatusChange{}, NewError(KindBadRequest, "status %s can only be set by a refund", StatusRefunded)
	}
	from := s.DeliveryStatus
	if !CanTransition(from, to, actor.IsAdmin()) {
		return StatusChange{}, NewError(KindBadRequest, "cannot change delivery status from %s to %s", from, to)
	}
	if to == StatusReturned && (s.ReturnWindow == nil || now.After(*s.ReturnWindow)) {
		return StatusChange{}, NewError(KindBadRequest, "return window for sub-order %s is closed", s.ID)
	}

	effect := EscrowEffectNone
	switch to {
	case StatusDelivered:
		if s.DeliveryDate == nil {
			deliveredAt := now
			window := now.Add(policy.ReturnWindow)
			s.DeliveryDate = &deliveredAt
			s.ReturnWindow = &window
		}
		effect = EscrowEffectReturnWindowStarted
	case StatusCanceled, StatusReturned, StatusFailedDelivery:
		reason := notes
		if reason == "" {
			reason = defaultRefundReason(to)
		}
		s.Escrow.RefundReason = reason
		effect = EscrowEffectFlaggedForReview
	}

	if notes == "" {
		notes = fmt.Sprintf("Status changed from %s to %s", from, to)
	}
	entry := HistoryEntry{Status: string(to), Notes: notes, ActorID: actor.ID, CreatedAt: now}

	s.DeliveryStatus = to
	s.StatusHistory = append(s.StatusHistory, entry)
	s.UpdatedAt = now

	return StatusChange{
		SubOrderID:     s.ID,
		PreviousStatus: from,
		NewStatus:      to,
		EscrowEffect:   effect,
		Entry:          entry,
	}, nil
}

func defaultRefundReason(status DeliveryStatus) string {
	switch status {
	case StatusCanceled:
		return "Sub-order canceled, awaiting refund review"
	case StatusReturned:
		return "Goods returned, awaiting refund review"
	default:
		return "Delivery failed, awaiting refund review"
	}
}

// Refund - единственный путь, снимающий удержание эскроу в пользу покупателя.
func (s *SubOrder) Refund(actor Actor, reason string, now time.Time) (StatusChange, error) {
	from := s.DeliveryStatus
	if !slices.Contains(refundableStatuses, from) {
		return StatusChange{}, NewError(KindBadRequest, "cannot refund sub-order in status %s", from)
	}
	if s.Escrow.Released {
		return StatusChange{}, NewError(KindBadRequest, "escrow of sub-order %s is already released", s.ID)
	}
	if !s.Escrow.Held {
		return StatusChange{}, NewError(KindBadRequest, "sub-order %s has no funds held in escrow", s.ID)
	}

	if reason == "" {
		reason = s.Escrow.RefundReason
	}
	if reason == "" {
		reason = fmt.Sprintf("Refunded from %s", from)
	}

	s.Escrow.Held = false
	s.Escrow.Released = false
	s.Escrow.Refunded = true
	s.Escrow.RefundReason = reason

	entry := HistoryEntry{Status: string(StatusRefunded), Notes: reason, ActorID: actor.ID, CreatedAt: now}
	s.DeliveryStatus = StatusRefunded
	s.StatusHistory = append(s.StatusHistory, entry)
	s.UpdatedAt = now

	return StatusChange{
		SubOrderID:     s.ID,
		PreviousStatus: from,
		NewStatus:      StatusRefunded,
		EscrowEffect:   EscrowEffectRefunded,
		Entry:          entry,
	}, nil
}

// ConfirmByBuyer фиксирует подтверждение получения покупателем. Эскроу не трогается.
func (s *SubOrder) ConfirmByBuyer(actor Actor, now time.Time) (HistoryEntry, error) {
	if s.DeliveryStatus != StatusDelivered {
		return HistoryEntry{}, NewError(KindBadRequest, "sub-order %s is not delivered", s.ID)
	}
	if s.Confirmation.Confirmed {
		return HistoryEntry{}, NewError(KindConflict, "delivery of sub-order %s is already confirmed", s.ID)
	}

	confirmedAt := now
	s.Confirmation.Confirmed = true
	s.Confirmation.ConfirmedAt = &confirmedAt

	entry := HistoryEntry{
		Status:    string(StatusDelivered),
		Notes:     "Delivery confirmed by customer",
		ActorID:   actor.ID,
		CreatedAt: now,
	}
	s.StatusHistory = append(s.StatusHistory, entry)
	s.UpdatedAt = now
	return entry, nil
}

// EligibleForAutoConfirm - предикат очереди автоподтверждения.
func (s SubOrder) EligibleForAutoConfirm(now time.Time, grace time.Duration) bool {
	return s.DeliveryStatus == StatusDelivered &&
		!s.Confirmation.Confirmed &&
		!s.Confirmation.AutoConfirmed &&
		s.DeliveryDate != nil &&
		!s.DeliveryDate.After(now.Add(-grace))
}

// AutoConfirm подтверждает доставку от имени системы. Confirmed остаётся false.
func (s *SubOrder) AutoConfirm(now time.Time, grace time.Duration) (HistoryEntry, error) {
	if !s.EligibleForAutoConfirm(now, grace) {
		return HistoryEntry{}, ErrNotEligibleToConfirm
	}

	confirmedAt := now
	s.Confirmation.AutoConfirmed = true
	s.Confirmation.ConfirmedAt = &confirmedAt

	entry := HistoryEntry{
		Status:    string(StatusDelivered),
		Notes:     fmt.Sprintf("Delivery auto-confirmed by system after %s without customer confirmation", grace),
		CreatedAt: now,
	}
	s.StatusHistory = append(s.StatusHistory, entry)
	s.UpdatedAt = now
	return entry, nil
}

// Release освобождает эскроу в пользу магазина по инструкции внешней задачи выплат.
func (s *SubOrder) Release(in SettlementInstruction, now time.Time) (HistoryEntry, error) {
	if s.Escrow.Released {
		return HistoryEntry{}, ErrAlreadySettled
	}
	if in.Amount <= 0 || in.ShippingPrice < 0 {
		return HistoryEntry{}, ErrInvalidAmount
	}
	if in.Amount+in.ShippingPrice > s.Total {
		return HistoryEntry{}, NewError(KindBadRequest, "settlement of %d exceeds sub-order total %d", in.Amount+in.ShippingPrice, s.Total)
	}
	if s.DeliveryStatus != StatusDelivered {
		return HistoryEntry{}, NewError(KindBadRequest, "sub-order %s is not delivered", s.ID)
	}
	if !s.Escrow.Held || s.Escrow.Refunded {
		return HistoryEntry{}, NewError(KindBadRequest, "sub-order %s has no funds held in escrow", s.ID)
	}
	if s.ReturnWindow == nil || now.Before(*s.ReturnWindow) {
		return HistoryEntry{}, NewError(KindBadRequest, "return window of sub-order %s is still open", s.ID)
	}

	releasedAt := now
	s.Escrow.Held = false
	s.Escrow.Released = true
	s.Escrow.ReleasedAt = &releasedAt
	s.Settlement = &Settlement{
		Amount:        in.Amount,
		ShippingPrice: in.ShippingPrice,
		Notes:         in.Notes,
		SettledAt:     now,
	}

	notes := in.Notes
	if notes == "" {
		notes = fmt.Sprintf("Escrow released, %d credited to store wallet", in.Amount+in.ShippingPrice)
	}
	entry := HistoryEntry{Status: string(s.DeliveryStatus), Notes: notes, CreatedAt: now}
	s.StatusHistory = append(s.StatusHistory, entry)
	s.UpdatedAt = now
	return entry, nil
}
