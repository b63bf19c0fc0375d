package generate_voice

import (
	"errors"

	"github.com/vappi/voicebot-backend/internal/integrations/elevenlabs"
)

var (
	// ErrMissingText возвращается, когда текст для озвучивания не задан
	ErrMissingText = errors.New("generate_voice: missing text")

	// ErrAPIKeyNotConfigured возвращается, когда не задан API ключ ElevenLabs
	ErrAPIKeyNotConfigured = errors.New("generate_voice: elevenlabs api key not configured")

	// ErrVoiceIDNotConfigured возвращается, когда не задан идентификатор голоса
	ErrVoiceIDNotConfigured = errors.New("generate_voice: elevenlabs voice id not configured")

	// ErrSynthesisFailed возвращается, когда провайдер отклонил запрос на синтез
	ErrSynthesisFailed = errors.New("generate_voice: failed to generate voice")

	// ErrInternal возвращается при прочих внутренних ошибках
	ErrInternal = errors.New("generate_voice: internal error")
)

// UpstreamError извлекает из цепочки ошибок статус и тело не-200 ответа
// провайдера. ok = false, если ошибка не содержит ответа провайдера
func UpstreamError(err error) (status int, body string, ok bool) {
	var apiErr *elevenlabs.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Body, true
	}
	return 0, "", false
}
