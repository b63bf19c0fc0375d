package generate_voice

import (
	"errors"
	"net/http"

	"github.com/vappi/voicebot-backend/internal/api/handlers"
	generateVoice "github.com/vappi/voicebot-backend/internal/usecase/generate_voice"
)

const (
	msgMissingText           = "Missing 'text' field"
	msgAPIKeyNotConfigured   = "ElevenLabs API key not configured"
	msgVoiceIDNotConfigured  = "ElevenLabs voice ID not configured"
	msgSynthesisFailed       = "Failed to generate voice"
	attachmentFilename       = "voice.mp3"
	audioContentType         = "audio/mpeg"
	contentDispositionHeader = `attachment; filename=` + attachmentFilename
)

type Handler struct {
	useCase GenerateVoiceUseCase
	logger  Logger
}

func NewHandler(useCase GenerateVoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /voice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateVoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /voice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingText)
		return
	}

	if req.Text == nil {
		h.logger.Warn("POST /voice - Missing 'text' field")
		handlers.RespondBadRequest(w, msgMissingText)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateVoice.Request{Text: *req.Text})
	if err != nil {
		switch {
		case errors.Is(err, generateVoice.ErrMissingText):
			handlers.RespondBadRequest(w, msgMissingText)

		case errors.Is(err, generateVoice.ErrAPIKeyNotConfigured):
			handlers.RespondError(w, http.StatusInternalServerError, msgAPIKeyNotConfigured)

		case errors.Is(err, generateVoice.ErrVoiceIDNotConfigured):
			handlers.RespondError(w, http.StatusInternalServerError, msgVoiceIDNotConfigured)

		case errors.Is(err, generateVoice.ErrSynthesisFailed):
			// Статус провайдера пробрасывается клиенту как есть
			status, body, ok := generateVoice.UpstreamError(err)
			if !ok {
				status = http.StatusInternalServerError
			}
			handlers.RespondErrorDetails(w, status, msgSynthesisFailed, body)

		default:
			h.logger.Error("POST /voice - Unexpected error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.logger.Info("POST /voice - Voice generated, %d bytes", len(result.Audio))

	w.Header().Set("Content-Type", audioContentType)
	w.Header().Set("Content-Disposition", contentDispositionHeader)
	w.WriteHeader(http.StatusOK)
	// Клиенту уже отправлен статус; ошибку записи остается только залогировать
	if _, err := w.Write(result.Audio); err != nil {
		h.logger.Error("POST /voice - Failed to write audio response: %v", err)
	}
}
