// Package schedule определяет расписание студии: какие слоты существуют на
// дату, их тип сессии, площадку и цену. Все функции чистые и детерминированные,
// никакого I/O — занятость слотов считается отдельно, поверх данных хранилища.
package schedule

import (
	"fmt"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// Словарь временных слотов студии
const (
	SlotMorning   types.TimeString = "11:00" // только выходные
	SlotAfternoon types.TimeString = "15:00" // только выходные
	SlotEvening   types.TimeString = "17:30" // каждый день
	SlotTherapy   types.TimeString = "19:00" // индивидуальные сессии
)

// Цена групповой сессии в саду ниже, чем в студии
const sanctuaryGroupUnitPrice = 300000

// SlotsForDate возвращает упорядоченный список слотов на дату.
//
// Актуальное правило расписания:
//   - пн/ср/пт: вечерняя групповая сессия + сессия 1:1;
//   - вт/чт: единственная групповая сессия, проходит в саду;
//   - сб/вс: три групповые сессии (утро, день, вечер) + сессия 1:1.
//
// Ранние версии расписания (простое деление будни/выходные) устарели
// и не поддерживаются
func SlotsForDate(date time.Time) []types.TimeString {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return []types.TimeString{SlotMorning, SlotAfternoon, SlotEvening, SlotTherapy}
	case time.Tuesday, time.Thursday:
		return []types.TimeString{SlotEvening}
	default:
		return []types.TimeString{SlotEvening, SlotTherapy}
	}
}

// ServiceTypeForSlot возвращает тип сессии для слота.
// Время вне словаря — ошибка вызывающей стороны
func ServiceTypeForSlot(slot types.TimeString) (domain.ServiceType, error) {
	switch slot {
	case SlotTherapy:
		return domain.ServiceTherapyOneOnOne, nil
	case SlotMorning, SlotAfternoon, SlotEvening:
		return domain.ServiceGroupSoundBath, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeSlot, slot)
	}
}

// VenueForSlot возвращает площадку для слота на дату.
// Групповая сессия вт/чт проходит в саду, всё остальное — в студии
func VenueForSlot(date time.Time, slot types.TimeString) (domain.Venue, error) {
	if _, err := ServiceTypeForSlot(slot); err != nil {
		return domain.Venue{}, err
	}

	code := domain.VenueStudio
	if isSanctuaryDay(date) && slot == SlotEvening {
		code = domain.VenueSanctuary
	}

	venue, ok := domain.VenueByCode(code)
	if !ok {
		// Площадки фиксированы, сюда попасть нельзя
		return domain.Venue{}, fmt.Errorf("%w: venue %q is not registered", ErrUnknownTimeSlot, code)
	}
	return venue, nil
}

// UnitPriceForSlot возвращает цену слота в VND: за гостя для групповых
// сессий (ниже в саду), за сессию для 1:1
func UnitPriceForSlot(date time.Time, slot types.TimeString) (int64, error) {
	serviceType, err := ServiceTypeForSlot(slot)
	if err != nil {
		return 0, err
	}

	offering, ok := domain.OfferingByType(serviceType)
	if !ok {
		return 0, fmt.Errorf("%w: no offering for service %q", ErrUnknownTimeSlot, serviceType)
	}

	if serviceType == domain.ServiceGroupSoundBath && isSanctuaryDay(date) && slot == SlotEvening {
		return sanctuaryGroupUnitPrice, nil
	}

	return offering.BasePrice, nil
}

// TotalPrice возвращает полную стоимость бронирования.
// Цена фиксируется в момент создания бронирования и далее не пересчитывается
func TotalPrice(date time.Time, slot types.TimeString, guestCount int) (int64, error) {
	if guestCount < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGuestCount, guestCount)
	}

	serviceType, err := ServiceTypeForSlot(slot)
	if err != nil {
		return 0, err
	}

	unitPrice, err := UnitPriceForSlot(date, slot)
	if err != nil {
		return 0, err
	}

	offering, _ := domain.OfferingByType(serviceType)
	if offering.PricingUnit == domain.PricePerSession {
		return unitPrice, nil
	}
	return unitPrice * int64(guestCount), nil
}

// IsPastDate возвращает true, если date строго раньше сегодняшней календарной
// даты. Время суток игнорируется: бронирование на сегодня допустимо весь день
func IsPastDate(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSlotOffered возвращает true, если слот предлагается на указанную дату
func IsSlotOffered(date time.Time, slot types.TimeString) bool {
	for _, s := range SlotsForDate(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// isSanctuaryDay возвращает true для вт/чт
func isSanctuaryDay(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Tuesday || wd == time.Thursday
}
