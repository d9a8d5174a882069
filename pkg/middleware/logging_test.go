package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/import", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.NotEmpty(t, correlationID)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/schedule/2024-05", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "120 ms", formatDuration(120*time.Millisecond))
	assert.Equal(t, "2.50 s", formatDuration(2500*time.Millisecond))
}
