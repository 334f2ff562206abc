package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/settlement-service/internal/entities"
	"github.com/SergeyBogomolovv/settlement-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	const storeID = "0b9e6d52-47a1-4f3c-b8d2-6e15c9a07f11"

	testCases := []struct {
		name       string
		headers    map[string]string
		roles      []entities.Role
		wantStatus int
		wantActor  entities.Actor
	}{
		{
			name:       "store",
			headers:    map[string]string{"X-User-ID": "u-1", "X-User-Role": "store", "X-Store-ID": storeID},
			roles:      []entities.Role{entities.RoleStore},
			wantStatus: http.StatusOK,
			wantActor:  entities.Actor{ID: "u-1", Role: entities.RoleStore, StoreID: storeID},
		},
		{
			name:       "malformed store id",
			headers:    map[string]string{"X-User-ID": "u-1", "X-User-Role": "store", "X-Store-ID": "s-1"},
			roles:      []entities.Role{entities.RoleStore},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin ignores store header",
			headers:    map[string]string{"X-User-ID": "a-1", "X-User-Role": "admin", "X-Store-ID": "s-1"},
			roles:      []entities.Role{entities.RoleAdmin},
			wantStatus: http.StatusOK,
			wantActor:  entities.Actor{ID: "a-1", Role: entities.RoleAdmin},
		},
		{
			name:       "missing user",
			headers:    map[string]string{"X-User-Role": "admin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown role",
			headers:    map[string]string{"X-User-ID": "u-1", "X-User-Role": "root"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "role not allowed",
			headers:    map[string]string{"X-User-ID": "c-1", "X-User-Role": "customer"},
			roles:      []entities.Role{entities.RoleAdmin},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got entities.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actor, ok := middleware.ActorFromContext(r.Context())
				require.True(t, ok)
				got = actor
				w.WriteHeader(http.StatusOK)
			})

			var h http.Handler = next
			if len(tc.roles) > 0 {
				h = middleware.RequireRole(tc.roles...)(h)
			}
			h = middleware.Identity(h)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantActor, got)
			}
		})
	}
}
