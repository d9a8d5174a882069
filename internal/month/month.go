// Package month trata o parâmetro de mês (YYYY-MM) das rotas.
//
// A validação é apenas sintática: "2024-13" é aceito.
package month

import (
	"regexp"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// Param é o nome do parâmetro de rota que carrega o mês
const Param = "month"

// Root é a tela de seleção de mês
const Root = "/"

// Pattern valida o formato do mês: quatro dígitos, hífen, dois dígitos
var Pattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsValid retorna true se s estiver no formato YYYY-MM
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	return Pattern.MatchString(s)
}

// Decision é o resultado do guard de entrada em uma rota com mês
type Decision struct {
	Proceed    bool
	RedirectTo string
}

// Guard decide se a navegação segue ou é redirecionada para a seleção de mês
func Guard(m string) Decision {
	if !IsValid(m) {
		return Decision{Proceed: false, RedirectTo: Root}
	}
	return Decision{Proceed: true}
}

// Context é a projeção do mês corrente sobre os parâmetros da rota.
// Não guarda estado próprio: é derivado de novo a cada requisição.
type Context struct {
	month string
}

// FromParams deriva o Context dos parâmetros da rota atual
func FromParams(params httprouter.Params) Context {
	return Context{month: params.ByName(Param)}
}

// Of cria um Context a partir de um valor já extraído
func Of(m string) Context {
	return Context{month: m}
}

// Month retorna o mês da rota, vazio quando ausente
func (c Context) Month() string {
	return c.month
}

// IsValidMonth indica se há mês na rota e se ele está no formato YYYY-MM
func (c Context) IsValidMonth() bool {
	return IsValid(c.month)
}

// NavigateTo monta o destino path/mês, ou volta para a seleção quando não há mês
func (c Context) NavigateTo(path string) string {
	if c.month == "" {
		return Root
	}
	return strings.TrimRight(path, "/") + "/" + c.month
}
