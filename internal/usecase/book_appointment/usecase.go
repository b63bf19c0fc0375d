package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/vappi/voicebot-backend/internal/domain"
	"github.com/vappi/voicebot-backend/internal/integrations/gohighlevel"
)

// UseCase use case бронирования встречи: создает/обновляет контакт в CRM,
// затем создает встречу в календаре, привязанную к этому контакту
type UseCase struct {
	crmClient  CRMClient
	apiKey     string
	locationID string
	calendarID string
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(crmClient CRMClient, apiKey, locationID, calendarID string, logger Logger) *UseCase {
	return &UseCase{
		crmClient:  crmClient,
		apiKey:     apiKey,
		locationID: locationID,
		calendarID: calendarID,
		logger:     logger,
	}
}

// Execute выполняет двухшаговый workflow бронирования.
// Шаги строго последовательны: id контакта из первого вызова — обязательный
// вход второго. Ошибка на любом шаге прерывает workflow без компенсации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: request received for %s, slot=%s", req.Name, req.Slot)

	// 1. Валидация входных данных — до любого внешнего вызова
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка конфигурации CRM — до любого внешнего вызова
	if err := uc.validateConfig(); err != nil {
		uc.logger.Error("BookAppointment: %v", err)
		return nil, err
	}

	// 3. Создаем или обновляем контакт
	firstName, lastName := domain.SplitName(req.Name)

	contactID, err := uc.crmClient.UpsertContact(ctx, &gohighlevel.ContactRequest{
		Email:      req.Email,
		Phone:      req.Phone,
		FirstName:  firstName,
		LastName:   lastName,
		LocationID: uc.locationID,
	})
	if err != nil {
		if errors.Is(err, gohighlevel.ErrContactIDMissing) {
			uc.logger.Error("BookAppointment: provider returned success without contact id")
			return nil, ErrContactIDMissing
		}

		var apiErr *gohighlevel.APIError
		if errors.As(err, &apiErr) {
			uc.logger.Error("BookAppointment: contact creation rejected: status=%d, body=%s",
				apiErr.StatusCode, apiErr.Body)
			return nil, fmt.Errorf("%w: %w", ErrContactCreationFailed, err)
		}

		uc.logger.Error("BookAppointment: contact creation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: contact upserted, contact_id=%s", contactID)

	// 4. Создаем встречу в календаре.
	// При ошибке созданный контакт не удаляется — принятое окно несогласованности
	appointment, err := uc.crmClient.CreateAppointment(ctx, &gohighlevel.AppointmentRequest{
		CalendarID:  uc.calendarID,
		ContactID:   contactID,
		StartTime:   req.Slot.Format(),
		Title:       domain.AppointmentTitle(req.Name),
		Description: domain.AppointmentDescription,
		LocationID:  uc.locationID,
	})
	if err != nil {
		var apiErr *gohighlevel.APIError
		if errors.As(err, &apiErr) {
			uc.logger.Error("BookAppointment: appointment creation rejected: status=%d, body=%s",
				apiErr.StatusCode, apiErr.Body)
			return nil, fmt.Errorf("%w: %w", ErrAppointmentCreationFailed, err)
		}

		uc.logger.Error("BookAppointment: appointment creation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: appointment booked for %s at %s", req.Name, req.Slot)

	return &Response{
		ScheduledTime: req.Slot.Format(),
		Appointment:   appointment,
	}, nil
}
