package generate_voice

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case синтеза речи: одиночный проксирующий вызов к ElevenLabs
// без состояния и повторов
type UseCase struct {
	client  SynthesisClient
	apiKey  string
	voiceID string
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SynthesisClient, apiKey, voiceID string, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		apiKey:  apiKey,
		voiceID: voiceID,
		logger:  logger,
	}
}

// Execute синтезирует речь из текста. Конфигурация провайдера проверяется
// на каждый запрос до сетевого вызова
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		uc.logger.Warn("GenerateVoice: missing text")
		return nil, ErrMissingText
	}

	uc.logger.Info("GenerateVoice: request received, text=%q", truncate(req.Text, 50))

	if err := uc.validateConfig(); err != nil {
		uc.logger.Error("GenerateVoice: %v", err)
		return nil, err
	}

	audio, err := uc.client.Synthesize(ctx, uc.voiceID, req.Text)
	if err != nil {
		if _, _, ok := UpstreamError(err); ok {
			uc.logger.Error("GenerateVoice: synthesis rejected: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
		}

		uc.logger.Error("GenerateVoice: synthesis failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateVoice: voice generated, %d bytes", len(audio))

	return &Response{Audio: audio}, nil
}

// validateConfig проверяет учетные данные TTS провайдера
func (uc *UseCase) validateConfig() error {
	if uc.apiKey == "" {
		return ErrAPIKeyNotConfigured
	}

	if uc.voiceID == "" {
		return ErrVoiceIDNotConfigured
	}

	return nil
}

// truncate обрезает строку для логирования
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
