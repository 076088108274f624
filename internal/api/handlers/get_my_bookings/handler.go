package get_my_bookings

import (
	"net/http"

	"github.com/serenity-danang/Serenity-BookingService/internal/api/handlers"
	"github.com/serenity-danang/Serenity-BookingService/internal/api/middleware"
)

const (
	msgMissingEmail = "в токене отсутствует email пользователя"
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

// Handle GET /api/v1/my/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Email берём из токена (через middleware Auth)
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /my/bookings - Missing email in token")
		handlers.RespondUnauthorized(w, msgMissingEmail)
		return
	}

	result, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /my/bookings - Failed for %s: %v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /my/bookings - Fetched %d bookings for %s", result.Total, email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
