package trip

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNewTripRecord_derivedFields(t *testing.T) {
	// 2017-03-01 was a Wednesday
	startTime := time.Date(2017, time.March, 1, 17, 45, 3, 0, time.UTC)

	record := NewTripRecord(startTime, "Canal St & Adams St", "Clinton St & Madison St", 321, "Subscriber")

	require.Equal(t, 3, record.GetMonth())
	require.Equal(t, 2, record.GetWeekday())
	require.Equal(t, 17, record.GetHour())
	require.Equal(t, "Canal St & Adams St and Clinton St & Madison St", record.GetCombinedStations())
	require.Nil(t, record.Gender)
	require.Nil(t, record.BirthYear)
}

func TestWeekdayIndex(t *testing.T) {
	// 2017-01-02 was a Monday
	monday := time.Date(2017, time.January, 2, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		require.Equal(t, offset, WeekdayIndex(day), "day %s", day.Weekday())
	}
}
