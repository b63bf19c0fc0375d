package domain

// ServiceName имя сервиса, отдается в /health
const ServiceName = "VAPPI Voice Bot Backend"

// DefaultTimezone фиксированная таймзона, в которой бот собирает время у клиента
const DefaultTimezone = "America/Chicago"

// Slot time format constants
const (
	SlotFormat          = "2006-01-02T15:04:05" // ISO-8601 без смещения
	SlotFormatNoSeconds = "2006-01-02T15:04"
)

// AppointmentDescription фиксированный маркер источника бронирования
const AppointmentDescription = "Appointment booked via VAPPI Voice Bot"
