package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/serenity-danang/Serenity-BookingService/internal/usecase/create_booking"
	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (u *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, useCase CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(useCase, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{
	"name": "Linh Tran",
	"email": "linh@example.com",
	"phone": "+84 905 123 456",
	"date": "2026-03-07",
	"timeSlot": "17:30",
	"guestCount": 2
}`

func TestHandle_Created(t *testing.T) {
	useCase := &fakeUseCase{resp: &createBooking.Response{
		ID:          1,
		BookingCode: "070301",
		Name:        "Linh Tran",
		Email:       "linh@example.com",
		Date:        time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		TimeSlot:    types.TimeString("17:30"),
		ServiceType: "group-sound-bath",
		ServiceName: "Group Sound Bath",
		VenueName:   "Serenity Sound Studio",
		GuestCount:  2,
		TotalPrice:  700000,
		Status:      "pending",
	}}

	rec := doRequest(t, useCase, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "070301", resp.BookingCode)
	assert.Equal(t, "2026-03-07", resp.Date)
	assert.Equal(t, int64(700000), resp.TotalPrice)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"name":"A","email":"a@b.c","phone":"1","date":"07-03-2026","timeSlot":"17:30","guestCount":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"day full", createBooking.ErrDayFull, http.StatusConflict},
		{"slot full", createBooking.ErrSlotFull, http.StatusConflict},
		{"past date", createBooking.ErrDateInPast, http.StatusBadRequest},
		{"invalid slot", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"store unavailable", createBooking.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
