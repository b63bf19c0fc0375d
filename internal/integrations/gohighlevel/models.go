package gohighlevel

// ContactRequest payload создания/обновления контакта в GoHighLevel
type ContactRequest struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	LocationID string `json:"locationId"`
}

// contactResponse ответ эндпоинта контактов.
// Провайдер отдает id либо на верхнем уровне, либо вложенным в contact
type contactResponse struct {
	ID      string `json:"id"`
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

// contactID извлекает идентификатор контакта из любой из двух известных форм ответа
func (r *contactResponse) contactID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Contact.ID
}

// AppointmentRequest payload создания встречи в календаре GoHighLevel
type AppointmentRequest struct {
	CalendarID  string `json:"calendarId"`
	ContactID   string `json:"contactId"`
	StartTime   string `json:"startTime"` // ISO-8601 со смещением
	Title       string `json:"title"`
	Description string `json:"description"`
	LocationID  string `json:"locationId"`
}
