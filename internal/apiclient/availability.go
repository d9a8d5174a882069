package apiclient

import (
	"context"
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/domain"
)

// ListMonthAvailability retorna a disponibilidade de todos os estagiários do mês
func (c *APIClient) ListMonthAvailability(ctx context.Context, month string) ([]domain.TraineeAvailability, error) {
	var response []domain.TraineeAvailability
	if err := c.do(ctx, http.MethodGet, monthPath(month, "/availability"), nil, "", &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *APIClient) ListTraineeAvailability(ctx context.Context, month string, traineeID int) ([]domain.TraineeAvailability, error) {
	var response []domain.TraineeAvailability
	if err := c.do(ctx, http.MethodGet, traineePath(month, traineeID, "/availability"), nil, "", &response); err != nil {
		return nil, err
	}
	return response, nil
}

// BulkAvailability grava vários dias e turnos de um estagiário de uma vez
func (c *APIClient) BulkAvailability(ctx context.Context, month string, traineeID int, items []domain.AvailabilityInput) error {
	request := struct {
		Availabilities []domain.AvailabilityInput `json:"availabilities"`
	}{Availabilities: items}

	return c.doJSON(ctx, http.MethodPost, traineePath(month, traineeID, "/availability/bulk"), request, nil)
}
