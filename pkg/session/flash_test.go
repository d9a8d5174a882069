package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashStore_AddAndPop(t *testing.T) {
	store := NewFlashStore("segredo-de-teste")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/import/2024-05/shifts", nil)
	require.NoError(t, store.Add(rr, req, KindError, "JSON de turnos inválido"))
	require.NoError(t, store.Add(rr, req, KindSuccess, "Turnos salvos"))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "/import/2024-05", nil)
	next.AddCookie(cookies[len(cookies)-1])
	rr = httptest.NewRecorder()

	flashes := store.Pop(rr, next)

	assert.Equal(t, []Flash{
		{Kind: KindSuccess, Message: "Turnos salvos"},
		{Kind: KindError, Message: "JSON de turnos inválido"},
	}, flashes)
	assert.NotEmpty(t, rr.Result().Cookies(), "o cookie deve ser regravado sem as mensagens")
}

func TestFlashStore_PopWithoutCookie(t *testing.T) {
	store := NewFlashStore("segredo-de-teste")

	rr := httptest.NewRecorder()
	flashes := store.Pop(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, flashes)
	assert.Empty(t, rr.Result().Cookies())
}

func TestFlashStore_PopTamperedCookie(t *testing.T) {
	store := NewFlashStore("segredo-de-teste")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "adulterado"})

	assert.Empty(t, store.Pop(httptest.NewRecorder(), req))
}
