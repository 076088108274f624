package schedule

import "errors"

var (
	// ErrUnknownTimeSlot возвращается для времени вне известного словаря слотов.
	// Это ошибка программирования вызывающей стороны, а не пользовательский ввод
	ErrUnknownTimeSlot = errors.New("schedule: unknown time slot")

	// ErrInvalidGuestCount возвращается при расчёте цены для некорректного числа гостей
	ErrInvalidGuestCount = errors.New("schedule: guest count must be positive")
)
