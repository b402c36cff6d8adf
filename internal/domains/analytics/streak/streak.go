// Package streak computes trailing completion streaks from sets of
// completion timestamps. It is pure: callers fix "today" and the result is
// independent of wall-clock time.
package streak

import (
	"sort"
	"time"
)

// Trailing counts consecutive calendar days ending at today on which at
// least one completion happened. Timestamps are truncated to their calendar
// date; duplicates within a day collapse. The walk starts at today and
// stops at the first gap, so a streak requires a completion dated today.
func Trailing(today time.Time, completions []time.Time) int {
	dates := distinctDates(today.Location(), completions)
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	todayDate := startOfDay(today)
	streak := 0

	for i, date := range dates {
		expected := todayDate.AddDate(0, 0, -i)
		if !date.Equal(expected) {
			break
		}

		streak++
	}

	return streak
}

// PerDay buckets completions by calendar date over the window
// [today-days+1, today], oldest first.
func PerDay(today time.Time, completions []time.Time, days int) []DayCount {
	counts := make(map[time.Time]int)

	for _, completion := range completions {
		counts[startOfDay(completion.In(today.Location()))]++
	}

	todayDate := startOfDay(today)
	series := make([]DayCount, 0, days)

	for offset := days - 1; offset >= 0; offset-- {
		date := todayDate.AddDate(0, 0, -offset)
		series = append(series, DayCount{Date: date, Count: counts[date]})
	}

	return series
}

type DayCount struct {
	Date  time.Time
	Count int
}

func distinctDates(loc *time.Location, completions []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(completions))
	dates := make([]time.Time, 0, len(completions))

	for _, completion := range completions {
		date := startOfDay(completion.In(loc))
		if _, ok := seen[date]; ok {
			continue
		}

		seen[date] = struct{}{}
		dates = append(dates, date)
	}

	return dates
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
