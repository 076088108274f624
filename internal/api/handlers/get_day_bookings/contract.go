package get_day_bookings

import (
	"context"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookingsForDate(ctx context.Context, date time.Time) *models.BookingListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
