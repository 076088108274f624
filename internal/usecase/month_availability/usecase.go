package month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
)

// UseCase use case для разметки календаря месяца счётчиками занятости
type UseCase struct {
	bookingRepo BookingRepository
	cache       CountsCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. cache может быть nil
func NewUseCase(bookingRepo BookingRepository, cache CountsCache, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Execute возвращает счётчики неотменённых бронирований по датам месяца.
// Это подсказка для календаря, а не источник истины: допустимо короткое
// устаревание, сбой чтения деградирует до пустого результата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Year < 2000 || req.Year > 2100 {
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, req.Month)
	}

	resp := &Response{
		Year:        req.Year,
		Month:       req.Month,
		DayCapacity: domain.MaxBookingsPerDay,
	}

	// Сначала кеш
	if uc.cache != nil {
		if counts, ok := uc.cache.Get(ctx, req.Year, req.Month); ok {
			resp.Counts = counts
			return resp, nil
		}
	}

	from := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	dateCounts, err := uc.bookingRepo.CountActiveByDateRange(ctx, from, to)
	if err != nil {
		// Деградация: календарь без индикаторов лучше, чем упавшая страница
		uc.logger.Error("MonthAvailability: failed to count bookings for %04d-%02d, degrading to empty: %v",
			req.Year, int(req.Month), err)
		resp.Counts = map[string]int{}
		return resp, nil
	}

	counts := make(map[string]int, len(dateCounts))
	for _, dc := range dateCounts {
		counts[dc.Date.Format(domain.DateFormat)] = dc.Count
	}
	resp.Counts = counts

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.Year, req.Month, counts); err != nil {
			uc.logger.Warn("MonthAvailability: failed to cache counts: %v", err)
		}
	}

	uc.logger.Info("MonthAvailability: %d dates with bookings in %04d-%02d",
		len(counts), req.Year, int(req.Month))

	return resp, nil
}
