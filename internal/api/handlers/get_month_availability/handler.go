package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/serenity-danang/Serenity-BookingService/internal/api/handlers"
	monthAvailability "github.com/serenity-danang/Serenity-BookingService/internal/usecase/month_availability"
)

const (
	msgInvalidYearMonth = "некорректные параметры year и month"
)

type Handler struct {
	useCase MonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase MonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/availability?year=2026&month=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /bookings/availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /bookings/availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &monthAvailability.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, monthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /bookings/availability - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidYearMonth)
		default:
			h.logger.Error("GET /bookings/availability - Failed: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
