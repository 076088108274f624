package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/serenity-danang/Serenity-BookingService/internal/api/handlers"
	"github.com/serenity-danang/Serenity-BookingService/internal/integrations/identityservice"
)

const (
	msgAdminOnly      = "доступ только для администраторов"
	msgIdentityFailed = "не удалось проверить права доступа"
)

// IdentityClient интерфейс клиента identity-сервиса
type IdentityClient interface {
	GetUser(ctx context.Context, uid string) (*identityservice.User, error)
}

// Logger интерфейс для логирования в middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireAdmin пускает дальше только пользователей с ролью admin.
// Должен стоять после Auth: роль проверяется по uid из контекста
func RequireAdmin(client IdentityClient, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := GetUserUID(r.Context())
			if !ok {
				logger.Warn("%s %s - Missing user UID in context", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := client.GetUser(r.Context(), uid)
			if err != nil {
				if errors.Is(err, identityservice.ErrUserNotFound) {
					logger.Warn("%s %s - Unknown user uid=%s", r.Method, r.URL.Path, uid)
					handlers.RespondForbidden(w, msgAdminOnly)
					return
				}
				logger.Error("%s %s - Identity service error for uid=%s: %v", r.Method, r.URL.Path, uid, err)
				handlers.RespondError(w, http.StatusBadGateway, msgIdentityFailed)
				return
			}

			if !user.IsAdmin() {
				logger.Warn("%s %s - Forbidden for uid=%s, role=%s", r.Method, r.URL.Path, uid, user.Role)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
