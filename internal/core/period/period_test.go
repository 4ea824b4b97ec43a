package period_test

import (
	"testing"
	"time"

	"github.com/Chikimuras/ezlife/internal/core/period"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekBounds_EveryDayOfWeek(t *testing.T) {
	monday := date(2026, 1, 5)
	sunday := date(2026, 1, 11)

	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		got := period.WeekBounds(d)
		require.Equal(t, monday, got.Start, d.Weekday().String())
		require.Equal(t, sunday, got.End, d.Weekday().String())
		require.Equal(t, time.Monday, got.Start.Weekday())
		require.Equal(t, time.Sunday, got.End.Weekday())
		require.False(t, d.Before(got.Start))
		require.False(t, d.After(got.End))
	}
}

func TestWeekBounds_AcrossYearBoundary(t *testing.T) {
	got := period.WeekBounds(date(2026, 1, 1))
	require.Equal(t, date(2025, 12, 29), got.Start)
	require.Equal(t, date(2026, 1, 4), got.End)
}

func TestWeekBounds_IgnoresTimeOfDay(t *testing.T) {
	got := period.WeekBounds(time.Date(2026, 1, 7, 23, 59, 0, 0, time.UTC))
	require.Equal(t, date(2026, 1, 5), got.Start)
}

func TestPreviousWeek(t *testing.T) {
	got := period.PreviousWeek(period.WeekBounds(date(2026, 1, 7)))
	require.Equal(t, date(2025, 12, 29), got.Start)
	require.Equal(t, date(2026, 1, 4), got.End)
}

func TestPreviousDay(t *testing.T) {
	require.Equal(t, date(2026, 2, 28), period.PreviousDay(date(2026, 3, 1)))
}

func TestDayNameAndDays(t *testing.T) {
	week := period.WeekBounds(date(2026, 1, 7))
	days := period.Days(week)
	require.Len(t, days, 7)
	require.Equal(t, "Monday", period.DayName(days[0]))
	require.Equal(t, "Sunday", period.DayName(days[6]))
}
