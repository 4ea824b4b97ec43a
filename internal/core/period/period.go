// Package period holds the calendar arithmetic used by insights.
package period

import (
	"time"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

const DaysPerWeek = 7

var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Weekday returns 0 for Monday through 6 for Sunday.
func Weekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

func DayName(d time.Time) string {
	return dayNames[Weekday(d)]
}

// WeekBounds returns the Monday on or before d and the Sunday six days later.
func WeekBounds(d time.Time) domain.DateRange {
	day := Date(d)
	start := day.AddDate(0, 0, -Weekday(day))
	return domain.DateRange{Start: start, End: start.AddDate(0, 0, DaysPerWeek-1)}
}

func PreviousWeek(week domain.DateRange) domain.DateRange {
	return WeekBounds(week.Start.AddDate(0, 0, -DaysPerWeek))
}

func Day(d time.Time) domain.DateRange {
	day := Date(d)
	return domain.DateRange{Start: day, End: day}
}

func PreviousDay(d time.Time) time.Time {
	return Date(d).AddDate(0, 0, -1)
}

// Days lists every date of r in ascending order.
func Days(r domain.DateRange) []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
