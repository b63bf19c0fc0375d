package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const providerName = "elevenlabs"

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

// Client клиент для работы с ElevenLabs text-to-speech API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента ElevenLabs
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

// Synthesize синтезирует речь из текста указанным голосом и возвращает
// MP3 аудио целиком. Параметры модели и голоса фиксированы
func (c *Client) Synthesize(ctx context.Context, voiceID, text string) ([]byte, error) {
	payload := SynthesizeRequest{
		Text:    text,
		ModelID: ModelMonolingualV1,
		VoiceSettings: VoiceSettings{
			Stability:       DefaultStability,
			SimilarityBoost: DefaultSimilarityBoost,
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, url.PathEscape(voiceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstreamCall(providerName, "synthesize", "transport_error")
		c.log.Error("ElevenLabs synthesize request failed: %v", err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstreamCall(providerName, "synthesize", strconv.Itoa(resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrInternal, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
