package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	"github.com/serenity-danang/Serenity-BookingService/internal/integrations/mailservice"
	"github.com/serenity-danang/Serenity-BookingService/internal/schedule"
	"github.com/serenity-danang/Serenity-BookingService/pkg/txmanager"
)

// notifyTimeout ограничение на отправку письма подтверждения
const notifyTimeout = 15 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	mailClient    MailServiceClient
	countsCache   CountsCache
	txManager     TransactionManager
	metrics       BookingMetrics
	timeProvider  TimeProvider
	initialStatus domain.BookingStatus
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// initialStatus — политика деплоя: pending или confirmed.
// countsCache и metrics могут быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	mailClient MailServiceClient,
	countsCache CountsCache,
	txManager TransactionManager,
	metrics BookingMetrics,
	initialStatus domain.BookingStatus,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		mailClient:    mailClient,
		countsCache:   countsCache,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		initialStatus: initialStatus,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки вместимости, расчёт кода бронирования и вставка выполняются на
// одном снимке внутри сериализуемой транзакции: параллельные заявки на один
// слот не могут совместно превысить вместимость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, slot=%s, guests=%d",
		req.Email, req.Date.Format(domain.DateFormat), req.TimeSlot, req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот должен входить в расписание на дату
	serviceType, err := validateSlot(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 3. Дата не в прошлом. UI не даёт выбрать прошедшие даты,
	// но заявка проверяется повторно
	now := uc.timeProvider.Now()
	if schedule.IsPastDate(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Площадка и цена — чистые функции расписания
	venue, err := schedule.VenueForSlot(req.Date, req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	totalPrice, err := schedule.TotalPrice(req.Date, req.TimeSlot, req.GuestCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	var result *domain.Booking

	// 5. Проверки вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Снимок неотменённых бронирований даты (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrStoreUnavailable, err)
		}

		// 5.2. Дневной лимит бронирований
		if len(bookings) >= domain.MaxBookingsPerDay {
			uc.logger.Warn("CreateBooking: day %s is full (%d bookings)",
				req.Date.Format(domain.DateFormat), len(bookings))
			return ErrDayFull
		}

		// 5.3. Вместимость слота по гостям
		booked := guestsInSlot(bookings, req.TimeSlot.String())
		if booked+req.GuestCount > domain.MaxGuestsPerSlot {
			uc.logger.Warn("CreateBooking: slot %s on %s is full: %d booked, %d requested",
				req.TimeSlot, req.Date.Format(domain.DateFormat), booked, req.GuestCount)
			return ErrSlotFull
		}

		// 5.4. Код бронирования считается по тому же снимку
		code := buildBookingCode(req.Date, len(bookings))

		booking := &domain.Booking{
			BookingCode: code,
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			BookingDate: req.Date,
			TimeSlot:    req.TimeSlot,
			ServiceType: serviceType,
			VenueCode:   venue.Code,
			GuestCount:  req.GuestCount,
			TotalPrice:  totalPrice,
			Notes:       req.Notes,
			Status:      uc.initialStatus,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrTxRetryExhausted) {
			uc.logger.Error("CreateBooking: transaction retries exhausted: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d code=%s", result.ID, result.BookingCode)

	offering, _ := domain.OfferingByType(serviceType)

	// 6. Подтверждение по почте — fire-and-forget: сбой доставки логируется,
	// но не влияет на результат бронирования
	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(string(result.ServiceType), string(result.VenueCode))
	}

	go uc.notify(result, offering.DisplayName, venue)

	return &Response{
		ID:          result.ID,
		BookingCode: result.BookingCode,
		Name:        result.Name,
		Email:       result.Email,
		Phone:       result.Phone,
		Date:        result.BookingDate,
		TimeSlot:    result.TimeSlot,
		ServiceType: string(result.ServiceType),
		ServiceName: offering.DisplayName,
		VenueName:   venue.Name,
		GuestCount:  result.GuestCount,
		TotalPrice:  result.TotalPrice,
		Notes:       result.Notes,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
	}, nil
}

// notify отправляет письмо подтверждения и сбрасывает кеш календаря.
// Выполняется вне транзакции, с собственным контекстом и таймаутом
func (uc *UseCase) notify(booking *domain.Booking, serviceName string, venue domain.Venue) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if uc.countsCache != nil {
		if err := uc.countsCache.Invalidate(ctx, booking.BookingDate.Year(), booking.BookingDate.Month()); err != nil {
			uc.logger.Warn("CreateBooking: failed to invalidate counts cache: %v", err)
		}
	}

	notes := "N/A"
	if booking.Notes != nil && *booking.Notes != "" {
		notes = *booking.Notes
	}

	params := &mailservice.BookingConfirmation{
		ToName:         booking.Name,
		ToEmail:        booking.Email,
		BookingCode:    booking.BookingCode,
		Date:           booking.BookingDate.Format(domain.DisplayDateFormat),
		Time:           booking.TimeSlot.String(),
		ServiceName:    serviceName,
		NumberOfGuests: booking.GuestCount,
		TotalPrice:     formatVND(booking.TotalPrice),
		Phone:          booking.Phone,
		Notes:          notes,
		VenueName:      venue.Name,
		VenueAddress:   venue.Address,
		GoogleMapsLink: venue.MapLink,
	}

	if err := uc.mailClient.SendBookingConfirmation(ctx, params); err != nil {
		uc.logger.Error("CreateBooking: failed to send confirmation for booking id=%d: %v", booking.ID, err)
	}
}

// formatVND форматирует сумму в донгах с точками-разделителями: 700.000 VND
func formatVND(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	n := len(s)
	if n <= 3 {
		return s + " VND"
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out) + " VND"
}
