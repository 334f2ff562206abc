package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending     WithdrawalStatus = "pending"
	WithdrawalUnderReview WithdrawalStatus = "under_review"
	WithdrawalApproved    WithdrawalStatus = "approved"
	WithdrawalProcessing  WithdrawalStatus = "processing"
	WithdrawalCompleted   WithdrawalStatus = "completed"
	WithdrawalRejected    WithdrawalStatus = "rejected"
	WithdrawalFailed      WithdrawalStatus = "failed"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:     {WithdrawalUnderReview, WithdrawalApproved, WithdrawalRejected},
	WithdrawalUnderReview: {WithdrawalApproved, WithdrawalRejected},
	WithdrawalApproved:    {WithdrawalProcessing},
	WithdrawalProcessing:  {WithdrawalCompleted, WithdrawalFailed},
}

func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalPending, WithdrawalUnderReview, WithdrawalApproved, WithdrawalProcessing,
		WithdrawalCompleted, WithdrawalRejected, WithdrawalFailed:
		return true
	}
	return false
}

func (s WithdrawalStatus) CanTransitionTo(to WithdrawalStatus) bool {
	return slices.Contains(withdrawalTransitions[s], to)
}

type BankDetails struct {
	BankName      string
	BankCode      string
	AccountNumber string
	AccountName   string
}

type PayoutAccount struct {
	ID       string
	StoreID  string
	Bank     BankDetails
	Verified bool
}

type StoreInfo struct {
	ID    string
	Name  string
	Email string
}

type AdminInfo struct {
	ID    string
	Name  string
	Email string
}

type WithdrawalRequest struct {
	ID              string
	RequestNumber   string
	StoreID         string
	PayoutAccountID string
	RequestedAmount int64
	ProcessingFee   int64
	NetAmount       int64
	Description     string
	Bank            BankDetails

	Status        WithdrawalStatus
	StatusHistory []HistoryEntry

	ReviewedBy      string
	ReviewedAt      *time.Time
	ReviewNotes     string
	RejectionReason string

	ProcessedBy          string
	ProcessedAt          *time.Time
	TransactionReference string
	FailureReason        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithdrawalDraft - то, что магазин указывает при создании заявки.
type WithdrawalDraft struct {
	Amount          int64
	PayoutAccountID string
	Description     string
}

// FeeSchedule - единственное место расчёта комиссии за вывод.
type FeeSchedule struct {
	Rate  decimal.Decimal
	Fixed int64
}

// Compute возвращает комиссию round(amount*rate)+fixed и сумму к выплате.
func (f FeeSchedule) Compute(amount int64) (fee, net int64) {
	fee = decimal.NewFromInt(amount).Mul(f.Rate).Round(0).IntPart() + f.Fixed
	return fee, amount - fee
}

func NewRequestNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("WD-%s-%s", now.UTC().Format("20060102"), suffix)
}

func (w *WithdrawalRequest) transition(to WithdrawalStatus, actorID, notes string, now time.Time) error {
	if !w.Status.CanTransitionTo(to) {
		return NewError(KindBadRequest, "cannot move withdrawal request %s from %s to %s", w.RequestNumber, w.Status, to)
	}
	if notes == "" {
		notes = fmt.Sprintf("Status changed from %s to %s", w.Status, to)
	}
	w.Status = to
	w.StatusHistory = append(w.StatusHistory, HistoryEntry{
		Status:    string(to),
		Notes:     notes,
		ActorID:   actorID,
		CreatedAt: now,
	})
	w.UpdatedAt = now
	return nil
}

func (w *WithdrawalRequest) StartReview(adminID, notes string, now time.Time) error {
	if err := w.transition(WithdrawalUnderReview, adminID, notes, now); err != nil {
		return err
	}
	w.ReviewedBy = adminID
	w.ReviewNotes = notes
	return nil
}

func (w *WithdrawalRequest) Approve(adminID, reference, notes string, now time.Time) error {
	if notes == "" {
		notes = "Withdrawal request approved"
	}
	if err := w.transition(WithdrawalApproved, adminID, notes, now); err != nil {
		return err
	}
	reviewedAt := now
	w.ReviewedBy = adminID
	w.ReviewedAt = &reviewedAt
	w.ReviewNotes = notes
	w.TransactionReference = reference
	return nil
}

func (w *WithdrawalRequest) Reject(adminID, reason, notes string, now time.Time) error {
	if notes == "" {
		notes = "Withdrawal request rejected: " + reason
	}
	if err := w.transition(WithdrawalRejected, adminID, notes, now); err != nil {
		return err
	}
	reviewedAt := now
	w.ReviewedBy = adminID
	w.ReviewedAt = &reviewedAt
	w.ReviewNotes = notes
	w.RejectionReason = reason
	return nil
}

func (w *WithdrawalRequest) MarkProcessing(adminID, notes string, now time.Time) error {
	if err := w.transition(WithdrawalProcessing, adminID, notes, now); err != nil {
		return err
	}
	w.ProcessedBy = adminID
	return nil
}

func (w *WithdrawalRequest) Complete(adminID, reference, notes string, now time.Time) error {
	if err := w.transition(WithdrawalCompleted, adminID, notes, now); err != nil {
		return err
	}
	processedAt := now
	w.ProcessedBy = adminID
	w.ProcessedAt = &processedAt
	if reference != "" {
		w.TransactionReference = reference
	}
	return nil
}

func (w *WithdrawalRequest) Fail(adminID, reason string, now time.Time) error {
	if err := w.transition(WithdrawalFailed, adminID, "Payout failed: "+reason, now); err != nil {
		return err
	}
	processedAt := now
	w.ProcessedBy = adminID
	w.ProcessedAt = &processedAt
	w.FailureReason = reason
	return nil
}

// WithdrawalListItem - строка административного списка.
type WithdrawalListItem struct {
	Request       WithdrawalRequest
	Store         StoreInfo
	WalletBalance int64
	WalletPending int64
	ReviewerName  string
	ProcessorName string
}

// WithdrawalDetails - административная карточка заявки.
type WithdrawalDetails struct {
	Request   WithdrawalRequest
	Store     StoreInfo
	Wallet    Wallet
	Reviewer  *AdminInfo
	Processor *AdminInfo
}

type WithdrawalFilter struct {
	Status  WithdrawalStatus
	StoreID string
	Created DateRange
	Search  string
	Page    Page
}
