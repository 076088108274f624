package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	bookingRepo "github.com/serenity-danang/Serenity-BookingService/internal/infra/storage/booking"
	"github.com/serenity-danang/Serenity-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями (чтение и админ-операции)
type Service struct {
	bookingRepo BookingRepository
	countsCache CountsCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, countsCache CountsCache, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		countsCache: countsCache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID (админка)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByEmail получает историю бронирований посетителя, сначала новые
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.BookingListResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	s.logger.Info("GetByEmail: fetching bookings for %s", email)

	filter := domain.BookingsFilter{
		Email:           &email,
		IncludeInactive: true, // История показывает и отменённые
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByEmail: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetBookingsForDate получает неотменённые бронирования на дату.
// Кормит индикаторы занятости календаря, поэтому сбой хранилища деградирует
// до пустого списка: страница рендерится, ошибка остаётся в логах
func (s *Service) GetBookingsForDate(ctx context.Context, date time.Time) *models.BookingListResponse {
	bookings, err := s.bookingRepo.GetByDate(ctx, date, false)
	if err != nil {
		s.logger.Error("GetBookingsForDate: repository error for %s, degrading to empty: %v",
			date.Format(domain.DateFormat), err)
		return models.FromDomainBookingList(nil)
	}

	return models.FromDomainBookingList(bookings)
}

// List получает бронирования с фильтрацией по периоду и статусу (админка)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v", req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в confirmed или cancelled (админка).
// Вместимость не перепроверяется: восстановление сверх лимита — осознанное
// решение администратора, лимиты действуют только при создании
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, status)

	newStatus := domain.BookingStatus(status)
	if newStatus != domain.StatusConfirmed && newStatus != domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", status, bookingID)
		return ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Статус влияет на счётчики занятости календаря, сбрасываем кеш месяца.
	// Ошибка сброса не отменяет обновление: кеш истечёт по TTL
	if err := s.countsCache.Invalidate(ctx, booking.BookingDate.Year(), booking.BookingDate.Month()); err != nil {
		s.logger.Warn("UpdateStatus: failed to invalidate counts cache for %s: %v",
			booking.BookingDate.Format(domain.DateFormat), err)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, newStatus)
	return nil
}
