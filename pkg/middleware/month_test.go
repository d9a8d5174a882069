package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRequireMonth(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCalled bool
	}{
		{name: "mês válido", path: "/schedule/2024-05", wantStatus: http.StatusOK, wantCalled: true},
		{name: "mês 13 passa pelo formato", path: "/schedule/2024-13", wantStatus: http.StatusOK, wantCalled: true},
		{name: "mês com um dígito", path: "/schedule/2024-5", wantStatus: http.StatusSeeOther},
		{name: "texto", path: "/schedule/maio", wantStatus: http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			rt := httprouter.New()
			rt.Handler(http.MethodGet, "/schedule/:month", RequireMonth()(next))

			rr := httptest.NewRecorder()
			rt.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Equal(t, "/", rr.Header().Get("Location"))
			}
		})
	}
}

func TestRequireMonth_WithoutParams(t *testing.T) {
	called := false
	handler := RequireMonth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/schedule", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, called)
}
