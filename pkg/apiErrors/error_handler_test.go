package apiErrors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ErrInternalServer},
		{name: "timeout", err: errors.WithMessage(apiclient.ErrTimeout, "GET /months"), want: ErrCommunication},
		{name: "comunicação", err: fmt.Errorf("listando: %w", apiclient.ErrCommunication), want: ErrCommunication},
		{name: "decodificação", err: apiclient.ErrDecode, want: ErrExternalService},
		{name: "404", err: &apiclient.Error{StatusCode: http.StatusNotFound}, want: ErrNotFound},
		{name: "400", err: &apiclient.Error{StatusCode: http.StatusBadRequest}, want: ErrInvalidRequest},
		{name: "422", err: &apiclient.Error{StatusCode: http.StatusUnprocessableEntity}, want: ErrInvalidRequest},
		{name: "500", err: &apiclient.Error{StatusCode: http.StatusInternalServerError}, want: ErrExternalService},
		{name: "desconhecido", err: errors.New("boom"), want: ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromError(tt.err).Code)
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, ErrCommunication, "API indisponível", map[string]string{"api_url": "http://localhost:8000"})

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"SRV_004","message":"API indisponível","details":{"api_url":"http://localhost:8000"}}`, rr.Body.String())
}

func TestStatus_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status("XXX_999"))
}
