// Package session guarda mensagens de retorno (flash) entre um POST e o
// redirecionamento seguinte.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName é o nome do cookie de sessão
const SessionName = "escala_session"

// Tipos de mensagem
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Flash é uma mensagem a ser exibida uma única vez
type Flash struct {
	Kind    string
	Message string
}

type FlashStore struct {
	store sessions.Store
}

// NewFlashStore cria o armazenamento de flashes em cookie assinado
func NewFlashStore(secret string) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

// Add grava uma mensagem para a próxima página exibida
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, kind, message string) error {
	s, err := f.store.Get(r, SessionName)
	if err != nil && s == nil {
		return err
	}
	s.AddFlash(message, kind)
	return s.Save(r, w)
}

// Pop retorna e consome as mensagens pendentes. Cookie inválido é tratado como vazio.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	s, err := f.store.Get(r, SessionName)
	if err != nil || s == nil {
		return nil
	}

	var flashes []Flash
	for _, kind := range []string{KindSuccess, KindError} {
		for _, v := range s.Flashes(kind) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: msg})
			}
		}
	}

	if len(flashes) > 0 {
		_ = s.Save(r, w)
	}
	return flashes
}
