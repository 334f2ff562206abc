package service_test

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
)

var baseTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *fakeClock {
	return &fakeClock{t: baseTime}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type memState struct {
	subOrders    map[string]entities.SubOrder
	subHistory   map[string][]entities.HistoryEntry
	wallets      map[string]entities.Wallet
	transactions []entities.WalletTransaction
	withdrawals  map[string]entities.WithdrawalRequest
	wdHistory    map[string][]entities.HistoryEntry
}

func (s memState) clone() memState {
	return memState{
		subOrders:    maps.Clone(s.subOrders),
		subHistory:   maps.Clone(s.subHistory),
		wallets:      maps.Clone(s.wallets),
		transactions: slices.Clone(s.transactions),
		withdrawals:  maps.Clone(s.withdrawals),
		wdHistory:    maps.Clone(s.wdHistory),
	}
}

// memStore - хранилище в памяти с семантикой транзакций: состояние откатывается при ошибке,
// транзакции выполняются по одной.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex
	memState

	accounts map[string]entities.PayoutAccount
	stores   map[string]entities.StoreInfo
	admins   map[string]entities.AdminInfo

	orderSummaryCalls int
	// failUpdate - ошибки записи подзаказов по id
	failUpdate map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		memState: memState{
			subOrders:   make(map[string]entities.SubOrder),
			subHistory:  make(map[string][]entities.HistoryEntry),
			wallets:     make(map[string]entities.Wallet),
			withdrawals: make(map[string]entities.WithdrawalRequest),
			wdHistory:   make(map[string][]entities.HistoryEntry),
		},
		accounts: make(map[string]entities.PayoutAccount),
		stores:   make(map[string]entities.StoreInfo),
		admins:   make(map[string]entities.AdminInfo),

		failUpdate: make(map[string]error),
	}
}

type inTxKey struct{}

type memTx struct{}

func (memTx) Commit() error   { return nil }
func (memTx) Rollback() error { return nil }

func (m *memStore) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, memTx{}, nil
}

func (m *memStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return callback(ctx)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := m.memState.clone()
	m.mu.Unlock()

	if err := callback(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		m.mu.Lock()
		m.memState = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) addWallet(storeID string, balance int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[storeID] = entities.Wallet{
		ID:          "wallet-" + storeID,
		StoreID:     storeID,
		Balance:     balance,
		TotalEarned: balance,
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
	}
}

func (m *memStore) addSubOrder(s entities.SubOrder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subOrders[s.ID] = s
}

func (m *memStore) wallet(storeID string) entities.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wallets[storeID]
}

func (m *memStore) subOrder(id string) entities.SubOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.subOrders[id]
	s.StatusHistory = slices.Clone(m.subHistory[id])
	return s
}

func (m *memStore) walletTransactions(walletID string) []entities.WalletTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.WalletTransaction
	for _, t := range m.transactions {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	return out
}

// orders

func (m *memStore) SaveOrder(ctx context.Context, o entities.Order) (bool, error) {
	return true, nil
}

func (m *memStore) SaveSubOrder(ctx context.Context, s entities.SubOrder) error {
	m.addSubOrder(s)
	return nil
}

func (m *memStore) SaveLineItems(ctx context.Context, subOrderID string, items []entities.LineItem) error {
	return nil
}

func (m *memStore) AppendSubOrderHistory(ctx context.Context, subOrderID string, e entities.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subHistory[subOrderID] = append(slices.Clone(m.subHistory[subOrderID]), e)
	return nil
}

func (m *memStore) GetSubOrder(ctx context.Context, id string, lock bool) (entities.SubOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subOrders[id]
	if !ok {
		return entities.SubOrder{}, entities.ErrSubOrderNotFound
	}
	s.StatusHistory = slices.Clone(m.subHistory[id])
	return s, nil
}

func (m *memStore) UpdateSubOrder(ctx context.Context, s entities.SubOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subOrders[s.ID]; !ok {
		return entities.ErrSubOrderNotFound
	}
	if err := m.failUpdate[s.ID]; err != nil {
		return err
	}
	s.StatusHistory = nil
	m.subOrders[s.ID] = s
	return nil
}

func (m *memStore) ListAutoConfirmEligible(ctx context.Context, cutoff time.Time, f entities.EligibleFilter) (entities.PageResult[entities.EligibleSubOrder], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []entities.EligibleSubOrder
	for _, s := range m.subOrders {
		if s.DeliveryStatus != entities.StatusDelivered || s.Confirmation.Confirmed || s.Confirmation.AutoConfirmed {
			continue
		}
		if s.DeliveryDate == nil || s.DeliveryDate.After(cutoff) || slices.Contains(f.Exclude, s.ID) {
			continue
		}
		items = append(items, entities.EligibleSubOrder{
			SubOrderID:   s.ID,
			OrderID:      s.OrderID,
			StoreID:      s.StoreID,
			Total:        s.Total,
			DeliveryDate: *s.DeliveryDate,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].DeliveryDate.Equal(items[j].DeliveryDate) {
			return items[i].DeliveryDate.Before(items[j].DeliveryDate)
		}
		return items[i].SubOrderID < items[j].SubOrderID
	})
	return paginate(items, f.Page), nil
}

func paginate[T any](items []T, p entities.Page) entities.PageResult[T] {
	p = p.Normalize()
	total := len(items)
	from := min(p.Offset(), total)
	to := min(from+p.Limit, total)
	return entities.PageResult[T]{Items: items[from:to], Total: total, Page: p}
}

// wallets

func (m *memStore) GetWallet(ctx context.Context, storeID string) (entities.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallets[storeID]
	if !ok {
		return entities.Wallet{}, entities.ErrWalletNotFound
	}
	return w, nil
}

func (m *memStore) AdjustWallet(ctx context.Context, storeID string, d entities.WalletDelta) (entities.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallets[storeID]
	if !ok {
		return entities.Wallet{}, entities.ErrWalletNotFound
	}
	if w.Balance+d.Balance < 0 || w.Pending+d.Pending < 0 {
		return entities.Wallet{}, entities.ErrInsufficientFunds
	}
	w.Balance += d.Balance
	w.Pending += d.Pending
	w.TotalEarned += d.TotalEarned
	m.wallets[storeID] = w
	return w, nil
}

func (m *memStore) InsertTransaction(ctx context.Context, t entities.WalletTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, t)
	return nil
}

func (m *memStore) ListTransactions(ctx context.Context, walletID string, f entities.TransactionFilter) (entities.PageResult[entities.WalletTransaction], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []entities.WalletTransaction
	for _, t := range slices.Backward(m.transactions) {
		if t.WalletID != walletID {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Source != "" && t.Source != f.Source {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
			continue
		}
		items = append(items, t)
	}
	return paginate(items, f.Page), nil
}

func (m *memStore) GetTransaction(ctx context.Context, walletID, id string) (entities.WalletTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.transactions {
		if t.ID == id && t.WalletID == walletID {
			return t, nil
		}
	}
	return entities.WalletTransaction{}, entities.ErrTransactionNotFound
}

func (m *memStore) OrderSummaries(ctx context.Context, subOrderIDs []string) (map[string]entities.OrderSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orderSummaryCalls++
	out := make(map[string]entities.OrderSummary)
	for _, id := range subOrderIDs {
		if s, ok := m.subOrders[id]; ok {
			out[id] = entities.OrderSummary{
				SubOrderID:     s.ID,
				OrderID:        s.OrderID,
				Total:          s.Total,
				DeliveryStatus: s.DeliveryStatus,
				CreatedAt:      s.CreatedAt,
			}
		}
	}
	return out, nil
}

func (m *memStore) WithdrawalSummaries(ctx context.Context, ids []string) (map[string]entities.WithdrawalSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]entities.WithdrawalSummary)
	for _, id := range ids {
		if w, ok := m.withdrawals[id]; ok {
			out[id] = entities.WithdrawalSummary{
				ID:              w.ID,
				RequestNumber:   w.RequestNumber,
				Status:          w.Status,
				RequestedAmount: w.RequestedAmount,
				NetAmount:       w.NetAmount,
				CreatedAt:       w.CreatedAt,
			}
		}
	}
	return out, nil
}

// withdrawals

func (m *memStore) CreateWithdrawal(ctx context.Context, w entities.WithdrawalRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.withdrawals {
		if existing.RequestNumber == w.RequestNumber {
			return entities.ErrDuplicateNumber
		}
	}
	w.StatusHistory = nil
	m.withdrawals[w.ID] = w
	return nil
}

func (m *memStore) GetWithdrawal(ctx context.Context, id string, lock bool) (entities.WithdrawalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.withdrawals[id]
	if !ok {
		return entities.WithdrawalRequest{}, entities.ErrWithdrawalNotFound
	}
	w.StatusHistory = slices.Clone(m.wdHistory[id])
	return w, nil
}

func (m *memStore) UpdateWithdrawal(ctx context.Context, w entities.WithdrawalRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.withdrawals[w.ID]; !ok {
		return entities.ErrWithdrawalNotFound
	}
	w.StatusHistory = nil
	m.withdrawals[w.ID] = w
	return nil
}

func (m *memStore) AppendWithdrawalHistory(ctx context.Context, withdrawalID string, e entities.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wdHistory[withdrawalID] = append(slices.Clone(m.wdHistory[withdrawalID]), e)
	return nil
}

func (m *memStore) ListWithdrawals(ctx context.Context, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []entities.WithdrawalListItem
	for _, w := range m.withdrawals {
		if f.StoreID != "" && w.StoreID != f.StoreID {
			continue
		}
		if f.Status != "" && w.Status != f.Status {
			continue
		}
		wallet := m.wallets[w.StoreID]
		items = append(items, entities.WithdrawalListItem{
			Request:       w,
			Store:         m.stores[w.StoreID],
			WalletBalance: wallet.Balance,
			WalletPending: wallet.Pending,
			ReviewerName:  m.admins[w.ReviewedBy].Name,
			ProcessorName: m.admins[w.ProcessedBy].Name,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Request.RequestNumber < items[j].Request.RequestNumber })
	return paginate(items, f.Page), nil
}

func (m *memStore) GetPayoutAccount(ctx context.Context, storeID, accountID string) (entities.PayoutAccount, error) {
	a, ok := m.accounts[accountID]
	if !ok || a.StoreID != storeID || !a.Verified {
		return entities.PayoutAccount{}, entities.ErrPayoutAccountNotFound
	}
	return a, nil
}

func (m *memStore) GetStore(ctx context.Context, id string) (entities.StoreInfo, error) {
	s, ok := m.stores[id]
	if !ok {
		return entities.StoreInfo{}, entities.ErrStoreNotFound
	}
	return s, nil
}

func (m *memStore) GetAdmin(ctx context.Context, id string) (entities.AdminInfo, error) {
	a, ok := m.admins[id]
	if !ok {
		return entities.AdminInfo{}, entities.ErrAdminNotFound
	}
	return a, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []entities.Notification
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, msg entities.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) subjects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, msg := range n.sent {
		out = append(out, msg.Subject)
	}
	return out
}
