package book_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vappi/voicebot-backend/internal/api/handlers"
	bookAppointment "github.com/vappi/voicebot-backend/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody        = "Invalid request body"
	msgIncompleteConfig          = "GoHighLevel API configuration incomplete"
	msgContactCreationFailed     = "Failed to create contact"
	msgContactIDMissing          = "Failed to get contact ID"
	msgAppointmentCreationFailed = "Failed to book appointment"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Проверка обязательных полей — до любого внешнего вызова
	if field, ok := req.MissingField(); !ok {
		h.logger.Warn("POST /book - Missing '%s' field", field)
		handlers.RespondBadRequest(w, fmt.Sprintf("Missing '%s' field", field))
		return
	}

	h.logger.Info("POST /book - Booking request received for %s", req.Name)

	// Парсинг и локализация времени слота
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book - Invalid datetime format: %v", err)
		handlers.RespondBadRequest(w, fmt.Sprintf("Invalid datetime format: %v", err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrMissingField):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookAppointment.ErrNotConfigured):
			h.logger.Error("POST /book - GoHighLevel configuration incomplete")
			handlers.RespondError(w, http.StatusInternalServerError, msgIncompleteConfig)

		case errors.Is(err, bookAppointment.ErrContactCreationFailed):
			handlers.RespondErrorDetails(w, http.StatusInternalServerError,
				msgContactCreationFailed, bookAppointment.UpstreamDetails(err))

		case errors.Is(err, bookAppointment.ErrContactIDMissing):
			handlers.RespondError(w, http.StatusInternalServerError, msgContactIDMissing)

		case errors.Is(err, bookAppointment.ErrAppointmentCreationFailed):
			handlers.RespondErrorDetails(w, http.StatusInternalServerError,
				msgAppointmentCreationFailed, bookAppointment.UpstreamDetails(err))

		default:
			h.logger.Error("POST /book - Unexpected error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.logger.Info("POST /book - Appointment booked for %s at %s", req.Name, result.ScheduledTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
