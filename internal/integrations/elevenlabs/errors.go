package elevenlabs

import (
	"errors"
	"fmt"
)

// ErrInternal возвращается при внутренних ошибках клиента
var ErrInternal = errors.New("elevenlabs client: internal error")

// APIError не-200 ответ провайдера. Сохраняет статус и тело ответа
// дословно для диагностики и сквозной передачи статуса
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("elevenlabs client: unexpected status %d: %s", e.StatusCode, e.Body)
}
