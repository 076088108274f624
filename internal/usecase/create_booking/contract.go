package create_booking

import (
	"context"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	"github.com/serenity-danang/Serenity-BookingService/internal/integrations/mailservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time, includeCancelled bool) ([]*domain.Booking, error)
}

// MailServiceClient интерфейс клиента почтового сервиса
type MailServiceClient interface {
	SendBookingConfirmation(ctx context.Context, params *mailservice.BookingConfirmation) error
}

// CountsCache интерфейс кеша счётчиков календаря (может быть nil-обёрткой)
type CountsCache interface {
	Invalidate(ctx context.Context, year int, month time.Month) error
}

// BookingMetrics интерфейс счётчиков доменных событий (может быть nil)
type BookingMetrics interface {
	IncBookingCreated(serviceType, venue string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
