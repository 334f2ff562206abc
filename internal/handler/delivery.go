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

type DeliveryService interface {
	GetSubOrder(ctx context.Context, actor entities.Actor, id string) (entities.SubOrder, error)
	UpdateDeliveryStatus(ctx context.Context, actor entities.Actor, id string, status entities.DeliveryStatus, notes string) (entities.StatusChange, error)
	RefundSubOrder(ctx context.Context, actor entities.Actor, id, reason string) (entities.StatusChange, error)
	ConfirmDelivery(ctx context.Context, actor entities.Actor, id string) (entities.SubOrder, error)
	AutoConfirm(ctx context.Context, id string) (entities.SubOrder, error)
	ListAutoConfirmEligible(ctx context.Context, f entities.EligibleFilter) (entities.PageResult[entities.EligibleSubOrder], error)
}

type DeliveryHandler struct {
	base
	svc DeliveryService
}

func NewDeliveryHandler(logger *slog.Logger, svc DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		base: newBase(logger, "delivery"),
		svc:  svc,
	}
}

func (h *DeliveryHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Get("/sub-orders/{id}", h.GetSubOrder)
		r.With(middleware.RequireRole(entities.RoleStore, entities.RoleAdmin)).
			Patch("/sub-orders/{id}/delivery-status", h.UpdateDeliveryStatus)
		r.With(middleware.RequireRole(entities.RoleCustomer)).
			Post("/sub-orders/{id}/confirm-delivery", h.ConfirmDelivery)

		r.Route("/admin/sub-orders", func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleAdmin))
			r.Get("/auto-confirm", h.ListAutoConfirmEligible)
			r.Post("/{id}/refund", h.RefundSubOrder)
			r.Post("/{id}/auto-confirm", h.AutoConfirm)
		})
	})
}

// GetSubOrder возвращает подзаказ.
// @Summary      Получить подзаказ
// @Description  Доступен магазину-владельцу, покупателю и администратору
// @Tags         delivery
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль: store, admin, customer"
// @Param        X-Store-ID   header  string  false "Магазин пользователя с ролью store"
// @Param        id   path      string  true  "Идентификатор подзаказа"
// @Success      200  {object}  SubOrder
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Подзаказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sub-orders/{id} [get]
func (h *DeliveryHandler) GetSubOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}

	sub, err := h.svc.GetSubOrder(r.Context(), actor, id)
	if err != nil {
		h.writeError(w, r, err, "get sub-order")
		return
	}
	utils.WriteJSON(w, SubOrderEntityToJSON(sub), http.StatusOK)
}

// UpdateDeliveryStatus меняет статус доставки.
// @Summary      Сменить статус доставки
// @Description  Продавец двигает подзаказ по графу статусов; Returned доступен только администратору в окне возврата
// @Tags         delivery
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль: store или admin"
// @Param        X-Store-ID   header  string  false "Магазин пользователя с ролью store"
// @Param        id       path  string                       true  "Идентификатор подзаказа"
// @Param        request  body  UpdateDeliveryStatusRequest  true  "Новый статус"
// @Success      200  {object}  StatusChange
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Подзаказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sub-orders/{id}/delivery-status [patch]
func (h *DeliveryHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}
	var req UpdateDeliveryStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	change, err := h.svc.UpdateDeliveryStatus(r.Context(), actor, id, entities.DeliveryStatus(req.Status), req.Notes)
	if err != nil {
		h.writeError(w, r, err, "update delivery status")
		return
	}
	utils.WriteJSON(w, StatusChangeEntityToJSON(change), http.StatusOK)
}

// ConfirmDelivery подтверждение получения покупателем.
// @Summary      Подтвердить получение
// @Tags         delivery
// @Param        X-User-ID    header  string  true  "Идентификатор покупателя"
// @Param        X-User-Role  header  string  true  "Роль: customer"
// @Param        id   path      string  true  "Идентификатор подзаказа"
// @Success      200  {object}  SubOrder
// @Failure      400  {object}  utils.ErrorResponse "Подзаказ не доставлен"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      409  {object}  utils.ErrorResponse "Уже подтверждён"
// @Router       /sub-orders/{id}/confirm-delivery [post]
func (h *DeliveryHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}

	sub, err := h.svc.ConfirmDelivery(r.Context(), actor, id)
	if err != nil {
		h.writeError(w, r, err, "confirm delivery")
		return
	}
	utils.WriteJSON(w, SubOrderEntityToJSON(sub), http.StatusOK)
}

// RefundSubOrder возврат средств покупателю.
// @Summary      Вернуть средства по подзаказу
// @Description  Доступно из Canceled, Returned и FailedDelivery, пока эскроу не освобождён
// @Tags         admin
// @Accept       json
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id       path  string         true   "Идентификатор подзаказа"
// @Param        request  body  RefundRequest  false  "Причина возврата"
// @Success      200  {object}  StatusChange
// @Failure      400  {object}  utils.ErrorResponse "Возврат невозможен"
// @Failure      403  {object}  utils.ErrorResponse "Только для администратора"
// @Failure      404  {object}  utils.ErrorResponse "Подзаказ не найден"
// @Router       /admin/sub-orders/{id}/refund [post]
func (h *DeliveryHandler) RefundSubOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}
	var req RefundRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	change, err := h.svc.RefundSubOrder(r.Context(), actor, id, req.Reason)
	if err != nil {
		h.writeError(w, r, err, "refund sub-order")
		return
	}
	utils.WriteJSON(w, StatusChangeEntityToJSON(change), http.StatusOK)
}

// AutoConfirm ручной запуск автоподтверждения.
// @Summary      Автоподтвердить доставку
// @Tags         admin
// @Param        X-User-ID    header  string  true  "Идентификатор администратора"
// @Param        X-User-Role  header  string  true  "Роль: admin"
// @Param        id   path      string  true  "Идентификатор подзаказа"
// @Success      200  {object}  SubOrder
// @Failure      404  {object}  utils.ErrorResponse "Подзаказ не найден или не подходит"
// @Router       /admin/sub-orders/{id}/auto-confirm [post]
func (h *DeliveryHandler) AutoConfirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.pathParam(w, id) {
		return
	}

	sub, err := h.svc.AutoConfirm(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "auto-confirm delivery")
		return
	}
	utils.WriteJSON(w, SubOrderEntityToJSON(sub), http.StatusOK)
}

// ListAutoConfirmEligible очередь автоподтверждения.
// @Summary      Подзаказы, ожидающие автоподтверждения
// @Tags         admin
// @Param        X-User-ID    header  string  true   "Идентификатор администратора"
// @Param        X-User-Role  header  string  true   "Роль: admin"
// @Param        page    query  int     false  "Страница, с 1"
// @Param        limit   query  int     false  "Размер страницы, до 100"
// @Param        from    query  string  false  "Доставлено не раньше (RFC 3339 или YYYY-MM-DD)"
// @Param        to      query  string  false  "Доставлено раньше (RFC 3339 или YYYY-MM-DD включительно)"
// @Param        search  query  string  false  "Поиск по имени или email покупателя"
// @Success      200  {object}  EligibleList
// @Failure      400  {object}  utils.ErrorResponse "Неверные параметры"
// @Router       /admin/sub-orders/auto-confirm [get]
func (h *DeliveryHandler) ListAutoConfirmEligible(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, err)
		return
	}

	res, err := h.svc.ListAutoConfirmEligible(r.Context(), entities.EligibleFilter{
		Delivered: q.Range,
		Search:    q.Search,
		Page:      q.Page,
	})
	if err != nil {
		h.writeError(w, r, err, "list auto-confirm queue")
		return
	}
	utils.WriteJSON(w, EligibleListToJSON(res), http.StatusOK)
}
