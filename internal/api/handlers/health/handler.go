package health

import (
	"net/http"

	"github.com/vappi/voicebot-backend/internal/api/handlers"
	"github.com/vappi/voicebot-backend/internal/domain"
)

// Response модель ответа health check
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
// Отвечает 200 независимо от состояния конфигурации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:  "healthy",
		Service: domain.ServiceName,
	})
}
