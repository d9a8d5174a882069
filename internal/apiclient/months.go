package apiclient

import (
	"context"
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/domain"
)

// ListMonths lista os meses com escala, do mais recente para o mais antigo
func (c *APIClient) ListMonths(ctx context.Context) ([]domain.MonthlySchedule, error) {
	var response []domain.MonthlySchedule
	if err := c.do(ctx, http.MethodGet, "/months", nil, "", &response); err != nil {
		return nil, err
	}
	return response, nil
}

// CreateMonth cria o contexto de escala do mês, ou retorna o existente
func (c *APIClient) CreateMonth(ctx context.Context, month string) (*domain.MonthlySchedule, error) {
	var response domain.MonthlySchedule
	request := struct {
		Month string `json:"month"`
	}{Month: month}

	if err := c.doJSON(ctx, http.MethodPost, "/months", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteMonth remove o mês e todos os dados associados
func (c *APIClient) DeleteMonth(ctx context.Context, month string) error {
	return c.do(ctx, http.MethodDelete, monthPath(month), nil, "", nil)
}
