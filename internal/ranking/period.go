package ranking

import (
	"sort"
	"time"

	"github.com/wodboard/wodboard/pkg"
)

// Clock supplies "today" so the period calendar is testable. The
// service pins it to the gym's operating timezone.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Period is an inclusive civil date range.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (p Period) Contains(date time.Time) bool {
	d := pkg.DateOnly(date)
	return !d.Before(p.From) && !d.After(p.To)
}

// WeekOf returns the Monday to Friday span of the week containing the
// given date. Weekend dates map to their own week's weekday span.
func WeekOf(date time.Time) Period {
	d := pkg.DateOnly(date)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week, it does not start one
	}
	monday := d.AddDate(0, 0, -(weekday - 1))
	return Period{
		From: monday,
		To:   monday.AddDate(0, 0, 4),
	}
}

// MonthOf returns the calendar month span containing the given date.
func MonthOf(date time.Time) Period {
	d := pkg.DateOnly(date)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		From: first,
		To:   first.AddDate(0, 1, -1),
	}
}

// IsDayCompleted reports whether a date's board is final. Today never
// is, since submissions may still arrive.
func IsDayCompleted(today, date time.Time) bool {
	return pkg.DateOnly(date).Before(pkg.DateOnly(today))
}

// IsWeekCompleted reports whether the week containing the date is
// done, i.e. its Friday is strictly before today.
func IsWeekCompleted(today, date time.Time) bool {
	return WeekOf(date).To.Before(pkg.DateOnly(today))
}

// IsMonthCompleted reports whether the month containing the date is
// strictly before the month containing today.
func IsMonthCompleted(today, date time.Time) bool {
	t := pkg.DateOnly(today)
	d := pkg.DateOnly(date)
	if d.Year() != t.Year() {
		return d.Year() < t.Year()
	}
	return d.Month() < t.Month()
}

// CompletedDays filters the given dates down to completed weekdays,
// deduplicated and sorted oldest first.
func CompletedDays(today time.Time, dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{})
	var completed []time.Time
	for _, date := range dates {
		d := pkg.DateOnly(date)
		if !IsDayCompleted(today, d) {
			continue
		}
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		completed = append(completed, d)
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i].Before(completed[j]) })
	return completed
}

// CompletedWeeks returns the distinct completed Monday to Friday weeks
// touched by the given dates, oldest first.
func CompletedWeeks(today time.Time, dates []time.Time) []Period {
	seen := make(map[time.Time]struct{})
	var weeks []Period
	for _, date := range dates {
		if !IsWeekCompleted(today, date) {
			continue
		}
		week := WeekOf(date)
		if _, ok := seen[week.From]; ok {
			continue
		}
		seen[week.From] = struct{}{}
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].From.Before(weeks[j].From) })
	return weeks
}

// CompletedMonths returns the distinct completed calendar months
// touched by the given dates, oldest first.
func CompletedMonths(today time.Time, dates []time.Time) []Period {
	seen := make(map[time.Time]struct{})
	var months []Period
	for _, date := range dates {
		if !IsMonthCompleted(today, date) {
			continue
		}
		month := MonthOf(date)
		if _, ok := seen[month.From]; ok {
			continue
		}
		seen[month.From] = struct{}{}
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].From.Before(months[j].From) })
	return months
}
