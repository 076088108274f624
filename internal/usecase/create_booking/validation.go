package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	"github.com/serenity-danang/Serenity-BookingService/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if req.GuestCount < domain.MinGuestsPerBooking || req.GuestCount > domain.MaxGuestsPerSlot {
		return fmt.Errorf("%w: guestCount must be between %d and %d",
			ErrInvalidInput, domain.MinGuestsPerBooking, domain.MaxGuestsPerSlot)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что слот входит в расписание на дату,
// и что число гостей совместимо с типом сессии
func validateSlot(req *Request) (domain.ServiceType, error) {
	serviceType, err := schedule.ServiceTypeForSlot(req.TimeSlot)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if !schedule.IsSlotOffered(req.Date, req.TimeSlot) {
		return "", fmt.Errorf("%w: slot %s is not offered on %s",
			ErrInvalidTimeSlot, req.TimeSlot, req.Date.Format(domain.DateFormat))
	}

	// Сессия 1:1 принимает ровно одного гостя
	if serviceType == domain.ServiceTherapyOneOnOne && req.GuestCount != 1 {
		return "", fmt.Errorf("%w: 1:1 session takes exactly one guest", ErrInvalidInput)
	}

	return serviceType, nil
}

// guestsInSlot суммирует гостей неотменённых бронирований слота
func guestsInSlot(bookings []*domain.Booking, slot string) int {
	total := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.TimeSlot.String() == slot {
			total += b.GuestCount
		}
	}
	return total
}

// buildBookingCode формирует код бронирования: DDMM + двузначный порядковый
// номер в рамках даты. Номер считается по тому же снимку, что и проверки
// вместимости — это закрывает гонку с дублирующимися кодами
func buildBookingCode(date time.Time, existingCount int) string {
	return fmt.Sprintf("%02d%02d%02d", date.Day(), int(date.Month()), existingCount+1)
}
