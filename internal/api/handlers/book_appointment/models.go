package book_appointment

import (
	"encoding/json"
	"strings"

	"github.com/vappi/voicebot-backend/internal/domain"
	bookAppointment "github.com/vappi/voicebot-backend/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	SelectedSlot string `json:"selectedSlot"` // "2023-04-25T14:00:00", локальное время без смещения
}

// MissingField возвращает имя первого отсутствующего обязательного поля
// и ok = false, когда все поля на месте
func (r *BookAppointmentRequest) MissingField() (string, bool) {
	fields := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"phone", r.Phone},
		{"email", r.Email},
		{"selectedSlot", r.SelectedSlot},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name, false
		}
	}

	return "", true
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом и локализацией времени слота)
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	slot, err := domain.ParseSlot(r.SelectedSlot)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Slot:  slot,
	}, nil
}

// BookAppointmentResponse HTTP response model
type BookAppointmentResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	ScheduledTime string          `json:"scheduled_time"`
	Appointment   json.RawMessage `json:"appointment"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *BookAppointmentResponse {
	return &BookAppointmentResponse{
		Success:       true,
		Message:       "Appointment booked successfully",
		ScheduledTime: resp.ScheduledTime,
		Appointment:   resp.Appointment,
	}
}
