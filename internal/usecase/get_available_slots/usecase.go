package get_available_slots

import (
	"context"
	"fmt"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	"github.com/serenity-danang/Serenity-BookingService/internal/schedule"
)

// UseCase use case для получения слотов на дату с занятостью и ценами
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает слоты на дату. Расписание и цены — чистые функции,
// занятость читается из хранилища. Сбой чтения не роняет страницу:
// слоты возвращаются без учёта занятости, ошибка логируется.
// Снимок не транзакционный — фактическая проверка вместимости выполняется
// при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	isPast := schedule.IsPastDate(req.Date, now)

	// Занятость: деградируем до пустого списка при сбое чтения
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s, degrading to empty: %v",
			req.Date.Format(domain.DateFormat), err)
		bookings = nil
	}

	dayFull := len(bookings) >= domain.MaxBookingsPerDay

	times := schedule.SlotsForDate(req.Date)
	slots := make([]Slot, 0, len(times))

	for _, t := range times {
		serviceType, err := schedule.ServiceTypeForSlot(t)
		if err != nil {
			// Слоты приходят из SlotsForDate, сюда попасть нельзя
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		venue, err := schedule.VenueForSlot(req.Date, t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		unitPrice, err := schedule.UnitPriceForSlot(req.Date, t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		offering, _ := domain.OfferingByType(serviceType)

		booked := 0
		for _, b := range bookings {
			if b.IsActive() && b.TimeSlot == t {
				booked += b.GuestCount
			}
		}

		slots = append(slots, Slot{
			Time:           t,
			ServiceType:    string(serviceType),
			ServiceName:    offering.DisplayName,
			VenueCode:      string(venue.Code),
			VenueName:      venue.Name,
			VenueAddress:   venue.Address,
			UnitPrice:      unitPrice,
			PricePerGuest:  offering.PricingUnit == domain.PricePerGuest,
			GuestsBooked:   booked,
			GuestsCapacity: domain.MaxGuestsPerSlot,
			Available:      !isPast && !dayFull && booked < domain.MaxGuestsPerSlot,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for %s (dayFull=%t, isPast=%t)",
		len(slots), req.Date.Format(domain.DateFormat), dayFull, isPast)

	return &Response{
		Date:    req.Date,
		IsPast:  isPast,
		DayFull: dayFull,
		Slots:   slots,
	}, nil
}
