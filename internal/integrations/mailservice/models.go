package mailservice

// BookingConfirmation плоский набор параметров шаблона письма подтверждения.
// Структура повторяет контракт почтового провайдера: никакой вложенности,
// все значения уже отформатированы
type BookingConfirmation struct {
	ToName  string `json:"to_name"`
	ToEmail string `json:"to_email"`

	BookingCode    string `json:"booking_id"`
	Date           string `json:"date"` // dd/MM/yyyy
	Time           string `json:"time"` // HH:MM
	ServiceName    string `json:"service_name"`
	NumberOfGuests int    `json:"number_of_guests"`
	TotalPrice     string `json:"total_price"` // отформатированная сумма, например "700.000 VND"
	Phone          string `json:"phone"`
	Notes          string `json:"notes"`

	VenueName      string `json:"venue_name"`
	VenueAddress   string `json:"venue_address"`
	GoogleMapsLink string `json:"google_maps_link"`
}

// ErrorResponse модель ошибки от почтового сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
