// Package model defines shared data structures.
package model

import (
	"strconv"
	"strings"
	"time"
)

// Config defines quiz settings.
type Config struct {
	Seed         int64
	HasSeed      bool
	WeekdayNames bool
	TUI          bool
}

// CalendarDate is a day in the proleptic Gregorian calendar, interpreted in UTC.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.UTC().Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week, 0=Sunday..6=Saturday.
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysUntil returns the signed number of days from d to other.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Medium renders the date like "Jan 5, 1987".
func (d CalendarDate) Medium() string {
	return d.Time().Format("Jan 2, 2006")
}

// Long renders the date like "Mon Jan 05 1987".
func (d CalendarDate) Long() string {
	return d.Time().Format("Mon Jan 02 2006")
}

var weekdayShort = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayShort returns a fixed English three-letter weekday name.
func WeekdayShort(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return "?"
	}
	return weekdayShort[w]
}

// FormatWeekday renders a weekday as its index, or as "Tue (2)" when named is set.
func FormatWeekday(w time.Weekday, named bool) string {
	if named {
		return WeekdayShort(w) + " (" + strconv.Itoa(int(w)) + ")"
	}
	return strconv.Itoa(int(w))
}

// ParseWeekday parses a numeric answer. Anything that is not an integer in
// 0..6 reports ok=false and never matches a weekday.
func ParseWeekday(input string) (time.Weekday, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 || n > 6 {
		return 0, false
	}
	return time.Weekday(n), true
}

// RoundResult is the outcome of one quiz round.
type RoundResult struct {
	Completed       bool
	DoomsdaySeconds int
	TotalSeconds    int
}

// SessionSummary aggregates the rounds of a session.
type SessionSummary struct {
	Completed    int
	Total        int
	TotalSeconds int
}

// Average returns the floored mean seconds per completed round. ok is false
// when no round was completed.
func (s SessionSummary) Average() (avg int, ok bool) {
	if s.Completed <= 0 {
		return 0, false
	}
	return s.TotalSeconds / s.Completed, true
}
