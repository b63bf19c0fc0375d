package generate_voice

import (
	"context"

	generateVoice "github.com/vappi/voicebot-backend/internal/usecase/generate_voice"
)

// GenerateVoiceUseCase интерфейс use case синтеза речи
type GenerateVoiceUseCase interface {
	Execute(ctx context.Context, req *generateVoice.Request) (*generateVoice.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
