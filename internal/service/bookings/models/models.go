package models

import (
	"fmt"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
)

// ListBookingsRequest запрос списка бронирований с фильтрацией (админка)
type ListBookingsRequest struct {
	Status          *string    // Фильтр по статусу (опционально)
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	IncludeInactive bool       // Включать ли отменённые
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.IsValid() {
			return domain.BookingsFilter{}, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return domain.BookingsFilter{}, fmt.Errorf("end date is before start date")
	}

	return filter, nil
}

// BookingResponse модель бронирования для ответов сервиса
type BookingResponse struct {
	ID          int64   `json:"id"`
	BookingCode string  `json:"bookingCode"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	ServiceType string  `json:"serviceType"`
	ServiceName string  `json:"serviceName"`
	VenueName   string  `json:"venueName"`
	GuestCount  int     `json:"guestCount"`
	TotalPrice  int64   `json:"totalPrice"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	serviceName := string(b.ServiceType)
	if offering, ok := domain.OfferingByType(b.ServiceType); ok {
		serviceName = offering.DisplayName
	}

	venueName := string(b.VenueCode)
	if venue, ok := domain.VenueByCode(b.VenueCode); ok {
		venueName = venue.Name
	}

	return &BookingResponse{
		ID:          b.ID,
		BookingCode: b.BookingCode,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Date:        b.BookingDate.Format(domain.DateFormat),
		TimeSlot:    b.TimeSlot.String(),
		ServiceType: string(b.ServiceType),
		ServiceName: serviceName,
		VenueName:   venueName,
		GuestCount:  b.GuestCount,
		TotalPrice:  b.TotalPrice,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
