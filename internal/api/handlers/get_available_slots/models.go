package get_available_slots

import (
	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	getSlots "github.com/serenity-danang/Serenity-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	Time           string `json:"time"`
	ServiceType    string `json:"serviceType"`
	ServiceName    string `json:"serviceName"`
	VenueCode      string `json:"venueCode"`
	VenueName      string `json:"venueName"`
	VenueAddress   string `json:"venueAddress"`
	UnitPrice      int64  `json:"unitPrice"`
	PricePerGuest  bool   `json:"pricePerGuest"`
	GuestsBooked   int    `json:"guestsBooked"`
	GuestsCapacity int    `json:"guestsCapacity"`
	Available      bool   `json:"available"`
}

// SlotsResponse HTTP модель списка слотов на дату
type SlotsResponse struct {
	Date    string         `json:"date"`
	IsPast  bool           `json:"isPast"`
	DayFull bool           `json:"dayFull"`
	Slots   []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:           s.Time.String(),
			ServiceType:    s.ServiceType,
			ServiceName:    s.ServiceName,
			VenueCode:      s.VenueCode,
			VenueName:      s.VenueName,
			VenueAddress:   s.VenueAddress,
			UnitPrice:      s.UnitPrice,
			PricePerGuest:  s.PricePerGuest,
			GuestsBooked:   s.GuestsBooked,
			GuestsCapacity: s.GuestsCapacity,
			Available:      s.Available,
		})
	}
	return &SlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		IsPast:  resp.IsPast,
		DayFull: resp.DayFull,
		Slots:   slots,
	}
}
