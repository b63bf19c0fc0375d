package book_appointment

import (
	"errors"

	"github.com/vappi/voicebot-backend/internal/integrations/gohighlevel"
)

var (
	// ErrMissingField возвращается, когда отсутствует обязательное поле запроса
	ErrMissingField = errors.New("book_appointment: missing required field")

	// ErrNotConfigured возвращается, когда не заданы учетные данные GoHighLevel.
	// Проверяется до любого сетевого вызова
	ErrNotConfigured = errors.New("book_appointment: gohighlevel configuration incomplete")

	// ErrContactCreationFailed возвращается, когда провайдер отклонил создание контакта
	ErrContactCreationFailed = errors.New("book_appointment: failed to create contact")

	// ErrContactIDMissing возвращается, когда провайдер ответил успехом,
	// но id контакта извлечь не удалось (нарушение контракта провайдера)
	ErrContactIDMissing = errors.New("book_appointment: failed to get contact id")

	// ErrAppointmentCreationFailed возвращается, когда провайдер отклонил создание встречи.
	// Созданный на предыдущем шаге контакт при этом не откатывается
	ErrAppointmentCreationFailed = errors.New("book_appointment: failed to book appointment")

	// ErrInternal возвращается при прочих внутренних ошибках
	ErrInternal = errors.New("book_appointment: internal error")
)

// UpstreamDetails извлекает из цепочки ошибок тело не-2xx ответа провайдера.
// Возвращает пустую строку, если ошибка не содержит ответа провайдера
func UpstreamDetails(err error) string {
	var apiErr *gohighlevel.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}
	return ""
}
