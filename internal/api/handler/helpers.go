package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/month"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// Limite de leitura dos formulários de importação
const maxImportSize = 32 << 20

func asAPIError(err error) *apiclient.Error {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

func monthFromRequest(r *http.Request) month.Context {
	return month.FromParams(httprouter.ParamsFromContext(r.Context()))
}

func traineeIDFromRequest(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// formText lê um campo de texto do formulário. Se houver um arquivo enviado em
// <field>_file, o conteúdo do arquivo tem prioridade.
func formText(r *http.Request, field string) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			return "", errors.Wrap(err, "erro ao ler o formulário")
		}

		file, _, err := r.FormFile(field + "_file")
		if err == nil {
			defer file.Close()

			content, err := io.ReadAll(io.LimitReader(file, maxImportSize))
			if err != nil {
				return "", errors.Wrap(err, "erro ao ler o arquivo enviado")
			}
			if text := strings.TrimSpace(string(content)); text != "" {
				return text, nil
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			return "", errors.Wrap(err, "erro ao ler o arquivo enviado")
		}
	}

	return strings.TrimSpace(r.FormValue(field)), nil
}

// splitNames separa um nome por linha, sem vazios e sem repetição
func splitNames(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func checkbox(r *http.Request, field string) bool {
	switch r.FormValue(field) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
