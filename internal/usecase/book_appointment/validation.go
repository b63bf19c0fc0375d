package book_appointment

import (
	"fmt"
	"strings"
)

// validateRequest проверяет наличие всех обязательных полей запроса.
// Выполняется до любого сетевого вызова
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingField)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}

	if req.Slot.IsZero() {
		return fmt.Errorf("%w: selectedSlot", ErrMissingField)
	}

	return nil
}

// validateConfig проверяет, что заданы все учетные данные CRM.
// Вызывается на каждый запрос, флаг "сконфигурировано" не кэшируется
func (uc *UseCase) validateConfig() error {
	if uc.apiKey == "" {
		return fmt.Errorf("%w: api key", ErrNotConfigured)
	}

	if uc.locationID == "" {
		return fmt.Errorf("%w: location id", ErrNotConfigured)
	}

	if uc.calendarID == "" {
		return fmt.Errorf("%w: calendar id", ErrNotConfigured)
	}

	return nil
}
