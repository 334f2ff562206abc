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

type WithdrawalService interface {
	Create(ctx context.Context, actor entities.Actor, in entities.WithdrawalDraft) (entities.WithdrawalRequest, error)
	StartReview(ctx context.Context, actor entities.Actor, id, notes string) (entities.WithdrawalRequest, error)
	Approve(ctx context.Context, actor entities.Actor, id, reference, notes string) (entities.WithdrawalRequest, error)
	Reject(ctx context.Context, actor entities.Actor, id, reason, notes string) (entities.WithdrawalRequest, error)
	MarkProcessing(ctx context.Context, actor entities.Actor, id, notes string) (entities.WithdrawalRequest, error)
	Complete(ctx context.Context, actor entities.Actor, id, reference, notes string) (entities.WithdrawalRequest, error)
	Fail(ctx context.Context, actor entities.Actor, id, reason string) (entities.WithdrawalRequest, error)
	StoreList(ctx context.Context, actor entities.Actor, storeID string, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error)
	StoreDetail(ctx context.Context, actor entities.Actor, storeID, id string) (entities.WithdrawalRequest, error)
	AdminList(ctx context.Context, actor entities.Actor, f entities.WithdrawalFilter) (entities.PageResult[entities.WithdrawalListItem], error)
	AdminDetail(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalDetails, error)
}

type WithdrawalHandler struct {
	base
	svc WithdrawalService
}

func NewWithdrawalHandler(logger *slog.Logger, svc WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{
		base: newBase(logger, "withdrawal"),
		svc:  svc,
	}
}

func (h *WithdrawalHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleStore))
			r.Post("/withdrawals", h.Create)
			r.Get("/stores/{store_id}/withdrawals", h.StoreList)
			r.Get("/stores/{store_id}/withdrawals/{id}", h.StoreDetail)
		})

		r.Route("/admin/withdrawals", func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleAdmin))
			r.Get("/", h.AdminList)
			r.Get("/{id}", h.AdminDetail)
			r.Post("/{id}/review", h.StartReview)
			r.Post("/{id}/approve", h.Approve)
			r.Post("/{id}/reject", h.Reject)
			r.Post("/{id}/processing", h.MarkProcessing)
			r.Post("/{id}/complete", h.Complete)
			r.Post("/{id}/fail", h.Fail)
		})
	})
}

// Create заявка на вывод средств.
// @Summary      Создать заявку на вывод
// @Description  Сумма резервируется с баланса кошелька; комиссия считается сразу
// @Tags         withdrawals
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль: store"
// @Param        X-Store-ID   header  string  true  "Магазин"
// @Param        request  body  CreateWithdrawalRequest  true  "Заявка"
// @Success      201  {object}  Withdrawal
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации, мало средств или нет счёта"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      409  {object}  utils.ErrorResponse "Конфликт номера заявки"
// @Router       /withdrawals [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var req CreateWithdrawalRequest
	if !h.decode(w, r, &req) {
		return
	}

	wd, err := h.svc.Create(r.Context(), actor, entities.WithdrawalDraft{
		Amount:          req.Amount,
		PayoutAccountID: req.BankAccountID,
		Description:     req.Description,
	})
	if err != nil {
		h.writeError(w, r, err, "create withdrawal request")
		return
	}
	utils.WriteJSON(w, WithdrawalEntityToJSON(wd), http.StatusCreated)
}

func (h *WithdrawalHandler) filter(w http.ResponseWriter, r *http.Request) (entities.WithdrawalFilter, bool) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, err)
		return entities.WithdrawalFilter{}, false
	}
	storeID, err := queryUUID(r.URL.Query(), "store_id")
	if err != nil {
		writeQueryError(w, err)
		return entities.WithdrawalFilter{}, false
	}
	return entities.WithdrawalFilter{
		Status:  entities.WithdrawalStatus(r.URL.Query().Get("status")),
		StoreID: storeID,
		Created: q.Range,
		Search:  q.Search,
		Page:    q.Page,
	}, true
}

// StoreList заявки магазина.
// @Summary      Заявки магазина на вывод
// @Tags         withdrawals
// @Param        X-User-ID    header  string  true   "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true   "Роль: store"
// @Param        X-Store-ID   header  string  true   "Магазин"
// @Param        store_id  path   string  true   "Магазин"
// @Param        status    query  string  false  "Статус заявки"
// @Param        page      query  int     false  "Страница, с 1"
// @Param        limit     query  int     false  "Размер страницы, до 100"
// @Param        from      query  string  false  "Создано не раньше"
// @Param        to        query  string  false  "Создано раньше"
// @Param        search    query  string  false  "Поиск по номеру или описанию"
// @Success      200  {object}  WithdrawalList
// @Failure      403  {object}  utils.ErrorResponse "Чужой магазин"
// @Router       /stores/{store_id}/withdrawals [get]
func (h *WithdrawalHandler) StoreList(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	storeID := chi.URLParam(r, "store_id")
	if !h.pathParam(w, storeID) {
		return
	}
	f, ok := h.filter(w, r)
	if !ok {
		return
	}

	res, err := h.svc.StoreList(r.Context(), actor, storeID, f)
	if err != nil {
		h.writeError(w, r, err, "list store withdrawals")
		return
	}
	utils.WriteJSON(w, WithdrawalListToJSON(res), http.StatusOK)
}

// StoreDetail заявка магазина.
// @Summary      Заявка магазина на вывод
// @Tags         withdrawals
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль: store"
// @Param        X-Store-ID   header  string  true  "Магазин"
// @Param        store_id  path  string  true  "Магазин"
// @Param        id        path  string  true  "Заявка"
// @Success      200  {object}  Withdrawal
// @Failure      403  {object}  utils.ErrorResponse "Чужой магазин"
// @Failure      404  {object}  utils.ErrorResponse "Заявка не найдена"
// @Router       /stores/{store_id}/withdrawals/{id} [get]
func (h *WithdrawalHandler) StoreDetail(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	storeID, id := chi.URLParam(r, "store_id"), chi.URLParam(r, "id")
	if !h.pathParam(w, storeID) || !h.pathParam(w, id) {
		return
	}

	wd, err := h.svc.StoreDetail(r.Context(), actor, storeID, id)
	if err != nil {
		h.writeError(w, r, err, "get store withdrawal")
		return
	}
	utils.WriteJSON(w, WithdrawalEntityToJSON(wd), http.StatusOK)
}

// AdminList заявки всех магазинов.
// @Summary      Все заявки на вывод
// @Tags         admin
// @Param        X-User-ID    header  string  true   "Идентификатор администратора"
// @Param        X-User-Role  header  string  true   "Роль: admin"
// @Param        status    query  string  false  "Статус заявки"
// @Param        store_id  query  string  false  "Магазин"
// @Param        page      query  int     false  "Страница, с 1"
// @Param        limit     query  int     false  "Размер страницы, до 100"
// @Param        from      query  string  false  "Создано не раньше"
// @Param        to        query  string  false  "Создано раньше"
// @Param        search    query  string  false  "Поиск по номеру, описанию или магазину"
// @Success      200  {object}  AdminWithdrawalList
// @Router       /admin/withdrawals [get]
func (h *WithdrawalHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	f, ok := h.filter(w, r)
	if !ok {
		return
	}

	res, err := h.svc.AdminList(r.Context(), actor, f)
	if err != nil {
		h.writeError(w, r, err, "list withdrawals")
		return
	}
	utils.WriteJSON(w, AdminWithdrawalListToJSON(res), http.StatusOK)
}

// AdminDetail карточка заявки.
// @Summary      Заявка на вывод с магазином, кошельком и администраторами
// @Tags         admin
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id   path      string  true  "Заявка"
// @Success      200  {object}  AdminWithdrawalDetails
// @Failure      404  {object}  utils.ErrorResponse "Заявка не найдена"
// @Router       /admin/withdrawals/{id} [get]
func (h *WithdrawalHandler) AdminDetail(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}

	details, err := h.svc.AdminDetail(r.Context(), actor, id)
	if err != nil {
		h.writeError(w, r, err, "get withdrawal details")
		return
	}
	utils.WriteJSON(w, AdminWithdrawalDetailsToJSON(details), http.StatusOK)
}

type withdrawalAction func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error)

// act - общий путь административных переходов.
func (h *WithdrawalHandler) act(w http.ResponseWriter, r *http.Request, op string, body any, fn withdrawalAction) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}
	if body != nil && !h.decode(w, r, body) {
		return
	}

	wd, err := fn(r.Context(), actor, id)
	if err != nil {
		h.writeError(w, r, err, op)
		return
	}
	utils.WriteJSON(w, WithdrawalEntityToJSON(wd), http.StatusOK)
}

// StartReview взять заявку на рассмотрение.
// @Summary      Начать рассмотрение заявки
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string         true  "Заявка"
// @Param        request  body  ReviewRequest  true  "Комментарий"
// @Success      200  {object}  Withdrawal
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /admin/withdrawals/{id}/review [post]
func (h *WithdrawalHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	h.act(w, r, "start withdrawal review", &req, func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error) {
		return h.svc.StartReview(ctx, actor, id, req.Notes)
	})
}

// Approve одобрение выплаты.
// @Summary      Одобрить заявку
// @Description  Выплата проведена вне системы; резерв списывается
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string          true  "Заявка"
// @Param        request  body  ApproveRequest  true  "Номер платежа"
// @Success      200  {object}  Withdrawal
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req ApproveRequest
	h.act(w, r, "approve withdrawal", &req, func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error) {
		return h.svc.Approve(ctx, actor, id, req.TransactionReference, req.Notes)
	})
}

// Reject отклонение заявки.
// @Summary      Отклонить заявку
// @Description  Резерв возвращается на баланс магазина
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string         true  "Заявка"
// @Param        request  body  RejectRequest  true  "Причина"
// @Success      200  {object}  Withdrawal
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req RejectRequest
	h.act(w, r, "reject withdrawal", &req, func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error) {
		return h.svc.Reject(ctx, actor, id, req.Reason, req.Notes)
	})
}

// MarkProcessing выплата передана в банк.
// @Summary      Отметить выплату в обработке
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string         true  "Заявка"
// @Param        request  body  ReviewRequest  true  "Комментарий"
// @Success      200  {object}  Withdrawal
// @Router       /admin/withdrawals/{id}/processing [post]
func (h *WithdrawalHandler) MarkProcessing(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	h.act(w, r, "mark withdrawal processing", &req, func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error) {
		return h.svc.MarkProcessing(ctx, actor, id, req.Notes)
	})
}

// Complete выплата дошла.
// @Summary      Завершить выплату
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string           true  "Заявка"
// @Param        request  body  CompleteRequest  true  "Номер платежа"
// @Success      200  {object}  Withdrawal
// @Router       /admin/withdrawals/{id}/complete [post]
func (h *WithdrawalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req CompleteRequest
	h.act(w, r, "complete withdrawal", &req, func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error) {
		return h.svc.Complete(ctx, actor, id, req.TransactionReference, req.Notes)
	})
}

// Fail выплата не прошла.
// @Summary      Отметить выплату несостоявшейся
// @Description  Сумма возвращается на баланс магазина
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string       true  "Заявка"
// @Param        request  body  FailRequest  true  "Причина"
// @Success      200  {object}  Withdrawal
// @Router       /admin/withdrawals/{id}/fail [post]
func (h *WithdrawalHandler) Fail(w http.ResponseWriter, r *http.Request) {
	var req FailRequest
	h.act(w, r, "fail withdrawal", &req, func(ctx context.Context, actor entities.Actor, id string) (entities.WithdrawalRequest, error) {
		return h.svc.Fail(ctx, actor, id, req.Reason)
	})
}
