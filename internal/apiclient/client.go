package apiclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/escala-estagiarios/escala-web/internal/config"
	"github.com/escala-estagiarios/escala-web/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RequestTimeout é o tempo máximo de cada requisição (importações grandes são lentas)
const RequestTimeout = 120 * time.Second

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// Client é o cliente compartilhado da API de escalas
type Client interface {
	BaseURL() string
	Ping(ctx context.Context) error

	ListMonths(ctx context.Context) ([]domain.MonthlySchedule, error)
	CreateMonth(ctx context.Context, month string) (*domain.MonthlySchedule, error)
	DeleteMonth(ctx context.Context, month string) error

	ListTrainees(ctx context.Context, month string) ([]domain.Trainee, error)
	CreateTrainee(ctx context.Context, month string, input domain.TraineeInput) (*domain.Trainee, error)
	UpdateTrainee(ctx context.Context, month string, traineeID int, input domain.TraineeInput) (*domain.Trainee, error)
	DeleteTrainee(ctx context.Context, month string, traineeID int) error
	ImportTraineeList(ctx context.Context, month string, names []string) (*domain.TraineeListImport, error)
	ImportTraineesText(ctx context.Context, month string, text string) (*domain.TraineeTextImport, error)

	ListMonthAvailability(ctx context.Context, month string) ([]domain.TraineeAvailability, error)
	ListTraineeAvailability(ctx context.Context, month string, traineeID int) ([]domain.TraineeAvailability, error)
	BulkAvailability(ctx context.Context, month string, traineeID int, items []domain.AvailabilityInput) error

	ListCapacity(ctx context.Context, month string) ([]domain.InstructorCapacity, error)
	ImportCapacityJSON(ctx context.Context, month string, data []domain.DailyAvailability) (*domain.MessageResponse, error)
	ImportCapacityTable(ctx context.Context, month string, html string) (*domain.MessageResponse, error)
	ImportShifts(ctx context.Context, shifts []domain.ShiftDefinition) ([]domain.ShiftDefinition, error)

	GetSchedule(ctx context.Context, month string) ([]domain.TraineeAssignment, error)
	GenerateSchedule(ctx context.Context, month string) (*domain.MessageResponse, error)
	ClearSchedule(ctx context.Context, month string) (*domain.MessageResponse, error)
	ClearTraineeSchedule(ctx context.Context, month string, traineeID int) (*domain.MessageResponse, error)
}

type APIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente da API com a origem resolvida na configuração.
// Deve ser criado uma vez e compartilhado por todos os handlers.
func NewClient(cfg *config.Config) Client {
	return &APIClient{
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
		baseURL: cfg.API.BaseURL,
	}
}

// BaseURL retorna a origem efetiva usada nas requisições
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Ping consulta a raiz da API. Só o status importa.
func (c *APIClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, "", nil)
}

func (c *APIClient) doJSON(ctx context.Context, method, p string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "erro ao codificar o corpo da requisição")
	}
	return c.do(ctx, method, p, bytes.NewReader(body), contentTypeJSON, out)
}

func (c *APIClient) doText(ctx context.Context, p string, text string, out any) error {
	return c.do(ctx, http.MethodPost, p, strings.NewReader(text), contentTypeText, out)
}

// do executa a requisição relativa à origem base e decodifica a resposta em out
func (c *APIClient) do(ctx context.Context, method, p string, body io.Reader, contentType string, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + p

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(method, p, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newError(method, p, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WithMessagef(ErrDecode, "%s %s: %v", method, p, err)
	}

	return nil
}

func monthPath(month string, segments ...string) string {
	return "/months/" + url.PathEscape(month) + strings.Join(segments, "")
}
