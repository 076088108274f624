package domain

import (
	"time"

	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a booked session at the studio
type Booking struct {
	ID          int64
	BookingCode string // человекочитаемый код: DDMM + порядковый номер в рамках даты

	// Contact
	Name  string
	Email string
	Phone string

	// Session
	BookingDate time.Time // дата сессии, время суток не используется
	TimeSlot    types.TimeString
	ServiceType ServiceType
	VenueCode   VenueCode
	GuestCount  int

	// Денормализованная цена: фиксируется при создании и не пересчитывается
	TotalPrice int64 // VND

	Notes  *string
	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований (админка)
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	Email           *string        // Бронирования конкретного посетителя (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}

// DateCount количество бронирований на конкретную дату (для календаря месяца)
type DateCount struct {
	Date  time.Time
	Count int
}
