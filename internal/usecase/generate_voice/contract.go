package generate_voice

import "context"

// SynthesisClient интерфейс клиента ElevenLabs
type SynthesisClient interface {
	Synthesize(ctx context.Context, voiceID, text string) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
