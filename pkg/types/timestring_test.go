package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.March, 7, 17, 30, 45, 0, time.UTC))
	assert.Equal(t, "17:30", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("1730")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.Error(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("17:60").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("11:00").IsBefore("15:00"))
	assert.True(t, TimeString("19:00").IsAfter("17:30"))
	assert.False(t, TimeString("17:30").IsBefore("17:30"))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("17:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "19:00", ts.String())
}

func TestScanAndValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("17:30"))
	assert.Equal(t, "17:30", ts.String())

	require.NoError(t, ts.Scan([]byte("15:00")))
	assert.Equal(t, "15:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, time.March, 7, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, "11:00", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	v, err := TimeString("15:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "15:00", v)

	_, err = TimeString("99:99").Value()
	assert.Error(t, err)
}
