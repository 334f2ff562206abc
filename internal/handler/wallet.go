package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/middleware"
	"github.com/SergeyBogomolovv/settlement-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type WalletService interface {
	GetWallet(ctx context.Context, storeID string) (entities.Wallet, error)
	ListTransactions(ctx context.Context, storeID string, f entities.TransactionFilter) (entities.PageResult[entities.WalletTransaction], error)
	GetTransaction(ctx context.Context, storeID, id string) (entities.WalletTransaction, error)
}

type WalletHandler struct {
	base
	svc WalletService
}

func NewWalletHandler(logger *slog.Logger, svc WalletService) *WalletHandler {
	return &WalletHandler{
		base: newBase(logger, "wallet"),
		svc:  svc,
	}
}

func (h *WalletHandler) Init(r chi.Router) {
	r.Route("/wallet", func(r chi.Router) {
		r.Use(middleware.Identity, middleware.RequireRole(entities.RoleStore))
		r.Get("/", h.GetWallet)
		r.Get("/transactions", h.ListTransactions)
		r.Get("/transactions/{id}", h.GetTransaction)
	})
}

// storeID - магазин вызывающего; кошелёк всегда свой.
func (h *WalletHandler) storeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor, ok := h.actor(w, r)
	if !ok {
		return "", false
	}
	if actor.StoreID == "" {
		h.writeError(w, r, entities.ErrForbidden, "resolve store")
		return "", false
	}
	return actor.StoreID, true
}

// GetWallet возвращает кошелёк магазина.
// @Summary      Кошелёк магазина
// @Tags         wallet
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль: store"
// @Param        X-Store-ID   header  string  true  "Магазин"
// @Success      200  {object}  Wallet
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Кошелёк не найден"
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}

	wallet, err := h.svc.GetWallet(r.Context(), storeID)
	if err != nil {
		h.writeError(w, r, err, "get wallet")
		return
	}
	utils.WriteJSON(w, WalletEntityToJSON(wallet), http.StatusOK)
}

// ListTransactions журнал кошелька.
// @Summary      История операций кошелька
// @Description  Каждая запись дополнена сводкой связанного документа: подзаказа или заявки на вывод
// @Tags         wallet
// @Param        X-User-ID    header  string  true   "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true   "Роль: store"
// @Param        X-Store-ID   header  string  true   "Магазин"
// @Param        type    query  string  false  "credit или debit"
// @Param        source  query  string  false  "order, withdrawal, refund, adjustment"
// @Param        page    query  int     false  "Страница, с 1"
// @Param        limit   query  int     false  "Размер страницы, до 100"
// @Param        from    query  string  false  "Создано не раньше"
// @Param        to      query  string  false  "Создано раньше"
// @Param        search  query  string  false  "Поиск по описанию"
// @Success      200  {object}  TransactionList
// @Failure      400  {object}  utils.ErrorResponse "Неверные параметры"
// @Router       /wallet/transactions [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, err)
		return
	}

	res, err := h.svc.ListTransactions(r.Context(), storeID, entities.TransactionFilter{
		Type:    entities.TransactionType(r.URL.Query().Get("type")),
		Source:  entities.TransactionSource(r.URL.Query().Get("source")),
		Created: q.Range,
		Search:  q.Search,
		Page:    q.Page,
	})
	if err != nil {
		h.writeError(w, r, err, "list wallet transactions")
		return
	}
	utils.WriteJSON(w, TransactionListToJSON(res), http.StatusOK)
}

// GetTransaction одна запись журнала кошелька.
// @Summary      Операция кошелька
// @Tags         wallet
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль: store"
// @Param        X-Store-ID   header  string  true  "Магазин"
// @Param        id   path      string  true  "Идентификатор операции"
// @Success      200  {object}  Transaction
// @Failure      404  {object}  utils.ErrorResponse "Операция не найдена"
// @Router       /wallet/transactions/{id} [get]
func (h *WalletHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}

	t, err := h.svc.GetTransaction(r.Context(), storeID, id)
	if err != nil {
		h.writeError(w, r, err, "get wallet transaction")
		return
	}
	utils.WriteJSON(w, TransactionEntityToJSON(t), http.StatusOK)
}
