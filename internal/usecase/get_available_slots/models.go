package get_available_slots

import (
	"time"

	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date    time.Time // Запрошенная дата
	IsPast  bool      // Дата в прошлом: слоты показываются, но недоступны для выбора
	DayFull bool      // Достигнут дневной лимит бронирований
	Slots   []Slot    // Упорядоченный список слотов
}

// Slot модель временного слота с занятостью и ценой
type Slot struct {
	Time           types.TimeString // Время начала слота
	ServiceType    string           // Тип сессии
	ServiceName    string           // Отображаемое название услуги
	VenueCode      string           // Код площадки
	VenueName      string           // Название площадки
	VenueAddress   string           // Адрес площадки
	UnitPrice      int64            // Цена, VND: за гостя (группа) или за сессию (1:1)
	PricePerGuest  bool             // true — цена указана за гостя
	GuestsBooked   int              // Занято гостей
	GuestsCapacity int              // Вместимость слота
	Available      bool             // Можно ли бронировать слот
}
