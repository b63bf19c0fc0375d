package book_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vappi/voicebot-backend/internal/integrations/gohighlevel"
	bookAppointment "github.com/vappi/voicebot-backend/internal/usecase/book_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *bookAppointment.Response
	err  error

	calls []*bookAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &bookAppointment.Response{
			ScheduledTime: "2023-04-25T14:00:00-05:00",
			Appointment:   json.RawMessage(`{"id": "appt-1"}`),
		},
	}

	rec := doRequest(t, uc, `{
		"name": "Jane Doe",
		"phone": "+15551234567",
		"email": "jane@example.com",
		"selectedSlot": "2023-04-25T14:00:00"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Appointment booked successfully", resp.Message)
	assert.Equal(t, "2023-04-25T14:00:00-05:00", resp.ScheduledTime)
	assert.JSONEq(t, `{"id": "appt-1"}`, string(resp.Appointment))

	require.Len(t, uc.calls, 1)
	assert.Equal(t, "Jane Doe", uc.calls[0].Name)
	assert.Equal(t, "2023-04-25T14:00:00-05:00", uc.calls[0].Slot.Format())
}

func TestHandle_MissingFields(t *testing.T) {
	tests := []struct {
		field string
		body  string
	}{
		{"name", `{"phone": "1", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`},
		{"phone", `{"name": "Jane", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`},
		{"email", `{"name": "Jane", "phone": "1", "selectedSlot": "2023-04-25T14:00:00"}`},
		{"selectedSlot", `{"name": "Jane", "phone": "1", "email": "a@b.c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, fmt.Sprintf("Missing '%s' field", tt.field), decodeError(t, rec)["error"])

			// Use case не вызывается — сетевых вызовов нет
			assert.Empty(t, uc.calls)
		})
	}
}

func TestHandle_InvalidSlotFormat(t *testing.T) {
	for _, slot := range []string{"not-a-date", "2023-13-40T99:00:00", "2023-04-25T14:00:00Z"} {
		uc := &fakeUseCase{}
		rec := doRequest(t, uc, fmt.Sprintf(
			`{"name": "Jane", "phone": "1", "email": "a@b.c", "selectedSlot": %q}`, slot))

		require.Equal(t, http.StatusBadRequest, rec.Code, slot)
		assert.Contains(t, decodeError(t, rec)["error"], "Invalid datetime format", slot)
		assert.Empty(t, uc.calls, slot)
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, uc, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.calls)
}

func TestHandle_IncompleteConfig(t *testing.T) {
	uc := &fakeUseCase{err: bookAppointment.ErrNotConfigured}
	rec := doRequest(t, uc, `{"name": "Jane", "phone": "1", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "GoHighLevel API configuration incomplete", decodeError(t, rec)["error"])
}

func TestHandle_ContactCreationFailed(t *testing.T) {
	uc := &fakeUseCase{
		err: fmt.Errorf("%w: %w", bookAppointment.ErrContactCreationFailed, &gohighlevel.APIError{
			StatusCode: http.StatusUnprocessableEntity,
			Body:       `{"message": "invalid phone"}`,
		}),
	}
	rec := doRequest(t, uc, `{"name": "Jane", "phone": "1", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Failed to create contact", resp["error"])
	assert.Equal(t, `{"message": "invalid phone"}`, resp["details"])
}

func TestHandle_ContactIDMissing(t *testing.T) {
	uc := &fakeUseCase{err: bookAppointment.ErrContactIDMissing}
	rec := doRequest(t, uc, `{"name": "Jane", "phone": "1", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get contact ID", decodeError(t, rec)["error"])
}

func TestHandle_AppointmentCreationFailed(t *testing.T) {
	uc := &fakeUseCase{
		err: fmt.Errorf("%w: %w", bookAppointment.ErrAppointmentCreationFailed, &gohighlevel.APIError{
			StatusCode: http.StatusInternalServerError,
			Body:       "calendar unavailable",
		}),
	}
	rec := doRequest(t, uc, `{"name": "Jane", "phone": "1", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Failed to book appointment", resp["error"])
	assert.Equal(t, "calendar unavailable", resp["details"])
}

func TestHandle_UnexpectedError(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("something broke")}
	rec := doRequest(t, uc, `{"name": "Jane", "phone": "1", "email": "a@b.c", "selectedSlot": "2023-04-25T14:00:00"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "something broke", decodeError(t, rec)["error"])
}
