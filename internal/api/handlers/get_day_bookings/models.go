package get_day_bookings

import (
	"github.com/serenity-danang/Serenity-BookingService/internal/service/bookings/models"
)

// DayBookingResponse публичная модель бронирования без персональных данных.
// Наружу уходит только занятость слотов
type DayBookingResponse struct {
	TimeSlot    string `json:"timeSlot"`
	ServiceType string `json:"serviceType"`
	GuestCount  int    `json:"guestCount"`
	Status      string `json:"status"`
}

// DayBookingsResponse список бронирований на дату
type DayBookingsResponse struct {
	Date     string               `json:"date"`
	Bookings []DayBookingResponse `json:"bookings"`
	Total    int                  `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в публичную HTTP модель
func FromServiceResponse(date string, resp *models.BookingListResponse) *DayBookingsResponse {
	result := make([]DayBookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		result = append(result, DayBookingResponse{
			TimeSlot:    b.TimeSlot,
			ServiceType: b.ServiceType,
			GuestCount:  b.GuestCount,
			Status:      b.Status,
		})
	}
	return &DayBookingsResponse{
		Date:     date,
		Bookings: result,
		Total:    len(result),
	}
}
