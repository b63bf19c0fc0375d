package domain

import (
	"fmt"
	"strings"
)

// SplitName splits a client-supplied full name into CRM first/last name
// parts: the first whitespace-delimited token becomes the first name, the
// remaining tokens joined by a single space become the last name (empty
// when the name is a single token).
func SplitName(full string) (firstName, lastName string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// AppointmentTitle строит заголовок встречи в календаре CRM
func AppointmentTitle(name string) string {
	return fmt.Sprintf("Appointment with %s", name)
}
