package month_availability

import "time"

// Request модель запроса счётчиков занятости месяца
type Request struct {
	Year  int
	Month time.Month
}

// Response счётчики неотменённых бронирований по датам месяца.
// Ключ — дата в формате YYYY-MM-DD; даты без бронирований отсутствуют
type Response struct {
	Year   int
	Month  time.Month
	Counts map[string]int

	// DayCapacity дневной лимит бронирований, для расчёта индикатора занятости
	DayCapacity int
}
