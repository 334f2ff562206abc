package entities

import (
	"errors"
	"fmt"
	"time"
)

// Kind классифицирует ошибки движка. Каждая доменная ошибка разворачивается в свой Kind,
// поэтому errors.Is(err, KindNotFound) работает для любой ошибки "не найдено".
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindBadRequest   Kind = "bad_request"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

func (k Kind) Error() string {
	return string(k)
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf возвращает класс ошибки; всё, что не является доменной ошибкой, считается Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return KindInternal
}

var (
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "caller identity is missing"}
	ErrForbidden    = &Error{Kind: KindForbidden, Message: "access denied"}
	ErrAdminOnly    = &Error{Kind: KindForbidden, Message: "operation is allowed for admins only"}

	ErrOrderNotFound        = &Error{Kind: KindNotFound, Message: "order not found"}
	ErrSubOrderNotFound     = &Error{Kind: KindNotFound, Message: "sub-order not found"}
	ErrWalletNotFound       = &Error{Kind: KindNotFound, Message: "wallet not found"}
	ErrTransactionNotFound  = &Error{Kind: KindNotFound, Message: "wallet transaction not found"}
	ErrWithdrawalNotFound   = &Error{Kind: KindNotFound, Message: "withdrawal request not found"}
	ErrStoreNotFound        = &Error{Kind: KindNotFound, Message: "store not found"}
	ErrAdminNotFound        = &Error{Kind: KindNotFound, Message: "admin not found"}
	ErrNotEligibleToConfirm = &Error{Kind: KindNotFound, Message: "sub-order is not eligible for auto-confirmation"}

	ErrInvalidAmount         = &Error{Kind: KindBadRequest, Message: "amount must be positive"}
	ErrInsufficientFunds     = &Error{Kind: KindBadRequest, Message: "insufficient wallet balance, retry after refreshing the wallet"}
	ErrPayoutAccountNotFound = &Error{Kind: KindBadRequest, Message: "verified payout account not found"}
	ErrInvalidOrder          = &Error{Kind: KindBadRequest, Message: "invalid order"}

	ErrAlreadySettled  = &Error{Kind: KindConflict, Message: "sub-order escrow already released"}
	ErrDuplicateNumber = &Error{Kind: KindConflict, Message: "withdrawal request number already exists"}
)

type Role string

const (
	RoleStore    Role = "store"
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStore, RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

// Actor - аутентифицированный вызывающий, полученный от шлюза.
type Actor struct {
	ID      string
	Role    Role
	StoreID string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// OwnsStore сообщает, может ли вызывающий действовать от имени магазина.
func (a Actor) OwnsStore(storeID string) bool {
	return a.Role == RoleStore && a.StoreID != "" && a.StoreID == storeID
}

// HistoryEntry - неизменяемая запись журнала статусов.
type HistoryEntry struct {
	Status    string
	Notes     string
	ActorID   string
	CreatedAt time.Time
}

type Page struct {
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p Page) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Limit
}

type PageResult[T any] struct {
	Items []T
	Total int
	Page  Page
}

// DateRange - полуинтервал [From, To); нулевые границы не ограничивают выборку.
type DateRange struct {
	From time.Time
	To   time.Time
}

type Notification struct {
	Recipient string
	Subject   string
	HTMLBody  string
	TextBody  string
}
