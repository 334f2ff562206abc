package handler_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/middleware"
	"github.com/go-chi/chi/v5"
)

var (
	storeActor    = entities.Actor{ID: "user-1", Role: entities.RoleStore, StoreID: "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11"}
	adminActor    = entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
	customerActor = entities.Actor{ID: "buyer-1", Role: entities.RoleCustomer}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

// serve прогоняет запрос через роутер с заголовками идентичности актора.
// Пустой ID актора означает анонимный запрос.
func serve(h initer, actor entities.Actor, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if actor.ID != "" {
		req.Header.Set(middleware.HeaderUserID, actor.ID)
		req.Header.Set(middleware.HeaderUserRole, string(actor.Role))
		req.Header.Set(middleware.HeaderStoreID, actor.StoreID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

