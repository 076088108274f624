package identityservice

// Role роль пользователя в системе
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User модель пользователя из сервиса идентификации.
// Роль хранится в отдельной записи, ключ — uid провайдера аутентификации
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// IsAdmin возвращает true для администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse модель ошибки от сервиса идентификации
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
