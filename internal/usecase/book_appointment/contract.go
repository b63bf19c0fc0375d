package book_appointment

import (
	"context"
	"encoding/json"

	"github.com/vappi/voicebot-backend/internal/integrations/gohighlevel"
)

// CRMClient интерфейс клиента GoHighLevel
type CRMClient interface {
	UpsertContact(ctx context.Context, contact *gohighlevel.ContactRequest) (string, error)
	CreateAppointment(ctx context.Context, appointment *gohighlevel.AppointmentRequest) (json.RawMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
