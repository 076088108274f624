package create_booking

import "errors"

var (
	// ErrDayFull возвращается, когда на дату уже набран дневной лимит бронирований
	ErrDayFull = errors.New("create_booking: day is fully booked")

	// ErrSlotFull возвращается, когда в слоте не хватает мест для запрошенных гостей
	ErrSlotFull = errors.New("create_booking: slot is fully booked")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrInvalidTimeSlot возвращается, когда время не входит в расписание на дату
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStoreUnavailable возвращается после исчерпания повторов транзакции
	// или при недоступности хранилища; пользователю показывается "попробуйте позже"
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
