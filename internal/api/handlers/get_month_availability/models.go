package get_month_availability

import (
	monthAvailability "github.com/serenity-danang/Serenity-BookingService/internal/usecase/month_availability"
)

// MonthAvailabilityResponse счётчики занятости по датам месяца
type MonthAvailabilityResponse struct {
	Year        int            `json:"year"`
	Month       int            `json:"month"`
	Counts      map[string]int `json:"counts"`
	DayCapacity int            `json:"dayCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *monthAvailability.Response) *MonthAvailabilityResponse {
	return &MonthAvailabilityResponse{
		Year:        resp.Year,
		Month:       int(resp.Month),
		Counts:      resp.Counts,
		DayCapacity: resp.DayCapacity,
	}
}
