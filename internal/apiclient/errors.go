package apiclient

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrTimeout       = errors.New("tempo limite da requisição à API excedido")
	ErrCommunication = errors.New("erro de comunicação com a API")
	ErrDecode        = errors.New("erro ao decodificar a resposta da API")
)

// Error é uma resposta fora da faixa 2xx da API
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound indica se a API respondeu 404
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode retorna o status da API contido em err, ou 0
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorBody cobre o formato {"detail": ...} das respostas de erro; detail pode
// ser texto ou a lista de erros de validação
type errorBody struct {
	Detail any `json:"detail"`
}

func newError(method, p string, resp *http.Response) *Error {
	apiErr := &Error{
		Method:     method,
		Path:       p,
		StatusCode: resp.StatusCode,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Detail == nil {
		apiErr.Detail = strings.TrimSpace(string(raw))
		return apiErr
	}

	switch detail := body.Detail.(type) {
	case string:
		apiErr.Detail = detail
	default:
		encoded, _ := json.Marshal(detail)
		apiErr.Detail = string(encoded)
	}

	return apiErr
}

func transportError(method, p string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.WithMessagef(ErrTimeout, "%s %s: %v", method, p, err)
	}
	return errors.WithMessagef(ErrCommunication, "%s %s: %v", method, p, err)
}
