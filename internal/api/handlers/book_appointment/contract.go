package book_appointment

import (
	"context"

	bookAppointment "github.com/vappi/voicebot-backend/internal/usecase/book_appointment"
)

// BookAppointmentUseCase интерфейс use case бронирования встречи
type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
