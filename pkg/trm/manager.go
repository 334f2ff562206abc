package trm

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/pkg/utils"
	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db: db,
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	// Вложенный Do переиспользует уже открытую транзакцию.
	if tx := ExtractTx(ctx); tx != nil {
		return ctx, nopTx{}, nil
	}
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

type retryingManager struct {
	Manager
	cfg utils.RetryConfig
}

// WithRetry повторяет транзакцию целиком, если retryable признаёт ошибку временной
// (конфликт сериализации, взаимоблокировка). Колбэк должен перечитывать данные внутри.
func WithRetry(m Manager, retryable func(error) bool) Manager {
	return &retryingManager{
		Manager: m,
		cfg: utils.RetryConfig{
			MaxAttempts:  5,
			InitialDelay: 20 * time.Millisecond,
			MaxDelay:     500 * time.Millisecond,
			Multiplier:   2,
			RetryIf:      retryable,
		},
	}
}

func (m *retryingManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return m.Manager.Do(ctx, callback)
	}
	return utils.Retry(ctx, m.cfg, func() error {
		return m.Manager.Do(ctx, callback)
	})
}
