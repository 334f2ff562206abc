package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/middleware"
	"github.com/SergeyBogomolovv/settlement-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var kindStatus = map[entities.Kind]int{
	entities.KindUnauthorized: http.StatusUnauthorized,
	entities.KindForbidden:    http.StatusForbidden,
	entities.KindNotFound:     http.StatusNotFound,
	entities.KindBadRequest:   http.StatusBadRequest,
	entities.KindConflict:     http.StatusConflict,
}

// base - общее для HTTP-обработчиков: логгер, валидатор и разбор ошибок.
type base struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func newBase(logger *slog.Logger, name string) base {
	return base{
		logger:   logger.With(slog.String("handler", name)),
		validate: validator.New(),
	}
}

func (h base) writeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	kind := entities.KindOf(err)
	code, ok := kindStatus[kind]
	if !ok {
		h.logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, string(entities.KindInternal), "internal server error", http.StatusInternalServerError)
		return
	}

	message := err.Error()
	var de *entities.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	utils.WriteError(w, string(kind), message, code)
}

func (h base) actor(w http.ResponseWriter, r *http.Request) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, string(entities.KindUnauthorized), entities.ErrUnauthorized.Message, http.StatusUnauthorized)
	}
	return actor, ok
}

// decode читает и валидирует тело запроса; при ошибке ответ уже записан.
func (h base) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, string(entities.KindBadRequest), "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// pathParam проверяет идентификатор из пути: ключи в базе - UUID.
func (h base) pathParam(w http.ResponseWriter, value string) bool {
	if err := h.validate.Var(value, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

type queryError struct {
	param string
}

func (e queryError) Error() string {
	return fmt.Sprintf("invalid query parameter %s", e.param)
}

func queryInt(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, queryError{param: key}
	}
	return n, nil
}

func queryUUID(q url.Values, key string) (string, error) {
	v := q.Get(key)
	if v == "" {
		return "", nil
	}
	if err := uuid.Validate(v); err != nil {
		return "", queryError{param: key}
	}
	return v, nil
}

// queryTime принимает RFC 3339 или дату YYYY-MM-DD.
func queryTime(q url.Values, key string) (time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, queryError{param: key}
	}
	return t, nil
}

type listQuery struct {
	Page   entities.Page
	Range  entities.DateRange
	Search string
}

// parseListQuery разбирает общие параметры списков: page, limit, from, to, search.
// Граница to в виде даты включает весь день.
func parseListQuery(q url.Values) (listQuery, error) {
	page, err := queryInt(q, "page")
	if err != nil {
		return listQuery{}, err
	}
	limit, err := queryInt(q, "limit")
	if err != nil {
		return listQuery{}, err
	}
	from, err := queryTime(q, "from")
	if err != nil {
		return listQuery{}, err
	}
	to, err := queryTime(q, "to")
	if err != nil {
		return listQuery{}, err
	}
	if raw := q.Get("to"); raw != "" && len(raw) == len(time.DateOnly) {
		to = to.AddDate(0, 0, 1)
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return listQuery{}, queryError{param: "to"}
	}

	return listQuery{
		Page:   entities.Page{Page: page, Limit: limit},
		Range:  entities.DateRange{From: from, To: to},
		Search: q.Get("search"),
	}, nil
}

func writeQueryError(w http.ResponseWriter, err error) {
	utils.WriteError(w, string(entities.KindBadRequest), err.Error(), http.StatusBadRequest)
}
