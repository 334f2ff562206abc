package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/sub-orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	testCases := []struct {
		name string
		role string
		want string
	}{
		{name: "store", role: "store", want: "store"},
		{name: "no header", want: "anonymous"},
		{name: "unknown role", role: "root", want: "anonymous"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/sub-orders/{id}", tc.want, "404")
			before := testutil.ToFloat64(counter)

			req := httptest.NewRequest(http.MethodGet, "/sub-orders/5f1c2a7e-8d34-4b6a-9e21-3c7d0a4b1e01", nil)
			if tc.role != "" {
				req.Header.Set(HeaderUserRole, tc.role)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
			assert.Zero(t, testutil.ToFloat64(httpInFlight.WithLabelValues(tc.want)))
		})
	}
}
