package apiclient

import (
	"context"
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/domain"
)

func (c *APIClient) ListCapacity(ctx context.Context, month string) ([]domain.InstructorCapacity, error) {
	var response []domain.InstructorCapacity
	if err := c.do(ctx, http.MethodGet, monthPath(month, "/instructor-capacity"), nil, "", &response); err != nil {
		return nil, err
	}
	return response, nil
}

// ImportCapacityJSON substitui a capacidade de instrutores do mês pelos totais diários.
// Exige que as definições de turno já tenham sido importadas.
func (c *APIClient) ImportCapacityJSON(ctx context.Context, month string, data []domain.DailyAvailability) (*domain.MessageResponse, error) {
	var response domain.MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, monthPath(month, "/instructor-capacity/import-json"), data, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ImportCapacityTable envia a tabela HTML de capacidade copiada do sistema de escalas
func (c *APIClient) ImportCapacityTable(ctx context.Context, month string, html string) (*domain.MessageResponse, error) {
	var response domain.MessageResponse
	if err := c.doText(ctx, monthPath(month, "/instructor-capacity/import"), html, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *APIClient) ImportShifts(ctx context.Context, shifts []domain.ShiftDefinition) ([]domain.ShiftDefinition, error) {
	var response []domain.ShiftDefinition
	if err := c.doJSON(ctx, http.MethodPost, "/shifts/import", shifts, &response); err != nil {
		return nil, err
	}
	return response, nil
}
