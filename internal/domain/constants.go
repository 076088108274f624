package domain

// Capacity caps
const (
	// MaxBookingsPerDay максимальное количество неотменённых бронирований на дату
	MaxBookingsPerDay = 6

	// MaxGuestsPerSlot максимальная суммарная вместимость одного слота (гостей)
	MaxGuestsPerSlot = 20
)

// Business validation constants
const (
	MinGuestsPerBooking = 1
	MaxNotesLength      = 500
	MaxNameLength       = 255
	MaxPhoneLength      = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DisplayDateFormat формат даты в письмах подтверждения
	DisplayDateFormat = "02/01/2006" // dd/MM/yyyy
)

// InactiveStatuses статусы, не занимающие вместимость
// Используются при подсчёте занятости слотов и дневного лимита
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, занимающие вместимость
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
