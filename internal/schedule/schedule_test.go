package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// 2026-03-02 — понедельник
func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestSlotsForDate_Weekday(t *testing.T) {
	for _, day := range []int{2, 4, 6} { // пн, ср, пт
		slots := SlotsForDate(date(day))
		assert.Equal(t, []types.TimeString{SlotEvening, SlotTherapy}, slots, "day %d", day)
	}
}

func TestSlotsForDate_SanctuaryDays(t *testing.T) {
	for _, day := range []int{3, 5} { // вт, чт
		slots := SlotsForDate(date(day))
		assert.Equal(t, []types.TimeString{SlotEvening}, slots, "day %d", day)
	}
}

func TestSlotsForDate_Weekend(t *testing.T) {
	for _, day := range []int{7, 8} { // сб, вс
		slots := SlotsForDate(date(day))
		assert.Equal(t, []types.TimeString{SlotMorning, SlotAfternoon, SlotEvening, SlotTherapy}, slots, "day %d", day)
	}
}

func TestSlotsForDate_Deterministic(t *testing.T) {
	first := SlotsForDate(date(7))
	second := SlotsForDate(date(7))
	assert.Equal(t, first, second)
}

func TestServiceTypeForSlot(t *testing.T) {
	tests := []struct {
		slot     types.TimeString
		expected domain.ServiceType
	}{
		{SlotMorning, domain.ServiceGroupSoundBath},
		{SlotAfternoon, domain.ServiceGroupSoundBath},
		{SlotEvening, domain.ServiceGroupSoundBath},
		{SlotTherapy, domain.ServiceTherapyOneOnOne},
	}

	for _, tt := range tests {
		serviceType, err := ServiceTypeForSlot(tt.slot)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, serviceType)
	}
}

func TestServiceTypeForSlot_Unknown(t *testing.T) {
	_, err := ServiceTypeForSlot("12:00")
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestVenueForSlot_SanctuaryRouting(t *testing.T) {
	// Вечерняя групповая сессия вт/чт — в саду
	venue, err := VenueForSlot(date(3), SlotEvening)
	require.NoError(t, err)
	assert.Equal(t, domain.VenueSanctuary, venue.Code)

	// Та же сессия в понедельник — в студии
	venue, err = VenueForSlot(date(2), SlotEvening)
	require.NoError(t, err)
	assert.Equal(t, domain.VenueStudio, venue.Code)

	// Выходные — в студии
	venue, err = VenueForSlot(date(7), SlotEvening)
	require.NoError(t, err)
	assert.Equal(t, domain.VenueStudio, venue.Code)
}

func TestUnitPriceForSlot(t *testing.T) {
	// Группа в студии
	price, err := UnitPriceForSlot(date(2), SlotEvening)
	require.NoError(t, err)
	assert.Equal(t, int64(350000), price)

	// Группа в саду дешевле
	price, err = UnitPriceForSlot(date(3), SlotEvening)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), price)

	// Сессия 1:1 — фиксированная цена
	price, err = UnitPriceForSlot(date(2), SlotTherapy)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), price)
}

func TestTotalPrice_PerGuest(t *testing.T) {
	total, err := TotalPrice(date(2), SlotEvening, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(700000), total)

	total, err = TotalPrice(date(3), SlotEvening, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), total)
}

func TestTotalPrice_PerSession(t *testing.T) {
	// Цена 1:1 не зависит от числа гостей
	total, err := TotalPrice(date(2), SlotTherapy, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), total)
}

func TestTotalPrice_InvalidGuestCount(t *testing.T) {
	_, err := TotalPrice(date(2), SlotEvening, 0)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestIsSlotOffered(t *testing.T) {
	// Утренний слот существует только в выходные
	assert.True(t, IsSlotOffered(date(7), SlotMorning))
	assert.False(t, IsSlotOffered(date(2), SlotMorning))

	// Слот 1:1 отсутствует вт/чт
	assert.False(t, IsSlotOffered(date(3), SlotTherapy))
	assert.True(t, IsSlotOffered(date(6), SlotTherapy))
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC)

	// Вчера — в прошлом
	assert.True(t, IsPastDate(time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), now))

	// Сегодня — не в прошлом, даже поздно вечером
	assert.False(t, IsPastDate(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), now))

	// Завтра — не в прошлом
	assert.False(t, IsPastDate(time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), now))
}
