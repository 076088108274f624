package get_day_bookings

import (
	"net/http"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/api/handlers"
	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/day - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/day - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Сбой хранилища деградирует до пустого списка внутри сервиса
	result := h.service.GetBookingsForDate(r.Context(), date)

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(dateStr, result))
}
