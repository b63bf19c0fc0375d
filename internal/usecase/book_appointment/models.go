package book_appointment

import (
	"encoding/json"

	"github.com/vappi/voicebot-backend/internal/domain"
)

// Request модель запроса на бронирование встречи
type Request struct {
	Name  string      // Полное имя клиента, как его собрал голосовой бот
	Phone string      // Телефон клиента
	Email string      // Email клиента
	Slot  domain.Slot // Нормализованное время встречи
}

// Response модель ответа с созданной встречей
type Response struct {
	ScheduledTime string          // ISO-8601 со смещением
	Appointment   json.RawMessage // Сырой объект встречи из ответа провайдера
}
