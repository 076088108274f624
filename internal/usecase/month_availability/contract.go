package month_availability

import (
	"context"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountActiveByDateRange(ctx context.Context, from, to time.Time) ([]domain.DateCount, error)
}

// CountsCache интерфейс кеша счётчиков (Redis)
type CountsCache interface {
	Get(ctx context.Context, year int, month time.Month) (map[string]int, bool)
	Set(ctx context.Context, year int, month time.Month, counts map[string]int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
