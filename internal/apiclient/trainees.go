package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/escala-estagiarios/escala-web/internal/domain"
)

func traineePath(month string, traineeID int, segments ...string) string {
	return monthPath(month, append([]string{"/trainees/", strconv.Itoa(traineeID)}, segments...)...)
}

func (c *APIClient) ListTrainees(ctx context.Context, month string) ([]domain.Trainee, error) {
	var response []domain.Trainee
	if err := c.do(ctx, http.MethodGet, monthPath(month, "/trainees/"), nil, "", &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *APIClient) CreateTrainee(ctx context.Context, month string, input domain.TraineeInput) (*domain.Trainee, error) {
	var response domain.Trainee
	if err := c.doJSON(ctx, http.MethodPost, monthPath(month, "/trainees/"), input, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *APIClient) UpdateTrainee(ctx context.Context, month string, traineeID int, input domain.TraineeInput) (*domain.Trainee, error) {
	var response domain.Trainee
	if err := c.doJSON(ctx, http.MethodPut, traineePath(month, traineeID), input, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *APIClient) DeleteTrainee(ctx context.Context, month string, traineeID int) error {
	return c.do(ctx, http.MethodDelete, traineePath(month, traineeID), nil, "", nil)
}

// ImportTraineeList cadastra os nomes que ainda não existem no mês
func (c *APIClient) ImportTraineeList(ctx context.Context, month string, names []string) (*domain.TraineeListImport, error) {
	var response domain.TraineeListImport
	if err := c.doJSON(ctx, http.MethodPost, monthPath(month, "/trainees/import-list"), names, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// ImportTraineesText envia o texto bruto de indisponibilidades para a API
func (c *APIClient) ImportTraineesText(ctx context.Context, month string, text string) (*domain.TraineeTextImport, error) {
	var response domain.TraineeTextImport
	if err := c.doText(ctx, monthPath(month, "/trainees/import-text"), text, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
