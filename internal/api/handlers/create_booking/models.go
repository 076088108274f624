package create_booking

import (
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	createBooking "github.com/serenity-danang/Serenity-BookingService/internal/usecase/create_booking"
	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Date       string  `json:"date"`     // "2026-03-15"
	TimeSlot   string  `json:"timeSlot"` // "17:30"
	GuestCount int     `json:"guestCount"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
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
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время слота
	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Date:       bookingDate,
		TimeSlot:   timeSlot,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		BookingCode: resp.BookingCode,
		Name:        resp.Name,
		Email:       resp.Email,
		Phone:       resp.Phone,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
		ServiceType: resp.ServiceType,
		ServiceName: resp.ServiceName,
		VenueName:   resp.VenueName,
		GuestCount:  resp.GuestCount,
		TotalPrice:  resp.TotalPrice,
		Notes:       resp.Notes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
