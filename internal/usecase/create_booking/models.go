package create_booking

import (
	"time"

	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name       string           // Имя посетителя
	Email      string           // Email для подтверждения
	Phone      string           // Контактный телефон
	Date       time.Time        // Дата сессии (без времени)
	TimeSlot   types.TimeString // Время слота (например, "17:30")
	GuestCount int              // Количество гостей
	Notes      *string          // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	BookingCode string           // Человекочитаемый код бронирования
	Name        string
	Email       string
	Phone       string
	Date        time.Time
	TimeSlot    types.TimeString
	ServiceType string           // Тип сессии
	ServiceName string           // Отображаемое название услуги
	VenueName   string           // Название площадки
	GuestCount  int
	TotalPrice  int64            // Полная стоимость, VND
	Notes       *string
	Status      string
	CreatedAt   time.Time
}
