package apiclient

import (
	"context"
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/domain"
)

func (c *APIClient) GetSchedule(ctx context.Context, month string) ([]domain.TraineeAssignment, error) {
	var response []domain.TraineeAssignment
	if err := c.do(ctx, http.MethodGet, monthPath(month, "/schedule"), nil, "", &response); err != nil {
		return nil, err
	}
	return response, nil
}

// GenerateSchedule pede à API que gere as alocações do mês
func (c *APIClient) GenerateSchedule(ctx context.Context, month string) (*domain.MessageResponse, error) {
	var response domain.MessageResponse
	if err := c.do(ctx, http.MethodPost, monthPath(month, "/schedule/generate"), nil, "", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *APIClient) ClearSchedule(ctx context.Context, month string) (*domain.MessageResponse, error) {
	var response domain.MessageResponse
	if err := c.do(ctx, http.MethodDelete, monthPath(month, "/schedule"), nil, "", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *APIClient) ClearTraineeSchedule(ctx context.Context, month string, traineeID int) (*domain.MessageResponse, error) {
	var response domain.MessageResponse
	if err := c.do(ctx, http.MethodDelete, traineePath(month, traineeID, "/schedule"), nil, "", &response); err != nil {
		return nil, err
	}
	return &response, nil
}
