package domain

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidSlotFormat возвращается, когда строка слота не является
// корректной ISO-8601 датой-временем без смещения
var ErrInvalidSlotFormat = errors.New("domain: invalid slot format")

var (
	locationOnce sync.Once
	location     *time.Location
	locationErr  error
)

// defaultLocation лениво загружает фиксированную таймзону сервиса
func defaultLocation() (*time.Location, error) {
	locationOnce.Do(func() {
		location, locationErr = time.LoadLocation(DefaultTimezone)
	})
	return location, locationErr
}

// Slot represents an appointment start time bound to the fixed service
// timezone. A Slot always carries an explicit UTC offset and must be
// serialized with it (RFC3339), never as a naive timestamp.
type Slot struct {
	t time.Time
}

// ParseSlot parses an ISO-8601 local datetime string (no UTC offset, e.g.
// "2023-04-25T14:00:00") and binds it to the fixed default timezone.
// Strings that carry their own offset or zone suffix do not match the
// accepted layouts and are rejected as a format error: the caller's offset
// is never silently discarded.
func ParseSlot(value string) (Slot, error) {
	loc, err := defaultLocation()
	if err != nil {
		return Slot{}, fmt.Errorf("%w: timezone %s unavailable: %v", ErrInvalidSlotFormat, DefaultTimezone, err)
	}

	// Секунды опциональны; дробные секунды time.Parse принимает и без
	// соответствующего элемента в layout
	t, parseErr := time.ParseInLocation(SlotFormat, value, loc)
	if parseErr == nil {
		return Slot{t: t}, nil
	}

	if t, err := time.ParseInLocation(SlotFormatNoSeconds, value, loc); err == nil {
		return Slot{t: t}, nil
	}

	return Slot{}, fmt.Errorf("%w: %v", ErrInvalidSlotFormat, parseErr)
}

// Time returns the underlying timezone-aware instant.
func (s Slot) Time() time.Time {
	return s.t
}

// IsZero reports whether the slot is unset.
func (s Slot) IsZero() bool {
	return s.t.IsZero()
}

// Format serializes the slot as ISO-8601 with the timezone offset in
// effect on that date (DST-aware).
func (s Slot) Format() string {
	return s.t.Format(time.RFC3339)
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	return s.Format()
}
