package gohighlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const providerName = "gohighlevel"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для учета исходящих вызовов
type MetricsRecorder interface {
	ObserveUpstreamCall(provider, operation, status string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveUpstreamCall(string, string, string) {}

// Client клиент для работы с GoHighLevel REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента GoHighLevel
func NewClient(baseURL, apiKey string, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// UpsertContact создает или обновляет контакт и возвращает его идентификатор
func (c *Client) UpsertContact(ctx context.Context, contact *ContactRequest) (string, error) {
	body, status, err := c.post(ctx, "/v1/contacts/", "upsert_contact", contact)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		return "", &APIError{StatusCode: status, Body: string(body)}
	}

	var resp contactResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: failed to decode contact response: %v", ErrInternal, err)
	}

	id := resp.contactID()
	if id == "" {
		return "", ErrContactIDMissing
	}

	return id, nil
}

// CreateAppointment создает встречу в календаре и возвращает сырой объект
// встречи из ответа провайдера
func (c *Client) CreateAppointment(ctx context.Context, appointment *AppointmentRequest) (json.RawMessage, error) {
	body, status, err := c.post(ctx, "/v1/appointments/", "create_appointment", appointment)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
		return json.RawMessage(body), nil
	default:
		return nil, &APIError{StatusCode: status, Body: string(body)}
	}
}

// post выполняет POST запрос и возвращает тело и статус ответа
func (c *Client) post(ctx context.Context, path, operation string, payload interface{}) ([]byte, int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstreamCall(providerName, operation, "transport_error")
		c.log.Error("GoHighLevel %s request failed: %v", operation, err)
		return nil, 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstreamCall(providerName, operation, strconv.Itoa(resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read response body: %v", ErrInternal, err)
	}

	return body, resp.StatusCode, nil
}
