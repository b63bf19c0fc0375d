package gohighlevel

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gohighlevel client: internal error")

	// ErrContactIDMissing возвращается, когда провайдер ответил 2xx,
	// но ни одна из известных форм ответа не содержит id контакта
	ErrContactIDMissing = errors.New("gohighlevel client: contact id missing from provider response")
)

// APIError не-2xx ответ провайдера. Сохраняет статус и тело ответа
// дословно для диагностики
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gohighlevel client: unexpected status %d: %s", e.StatusCode, e.Body)
}
