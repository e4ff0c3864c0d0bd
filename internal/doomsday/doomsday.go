// Package doomsday holds the anchor tables of the doomsday rule.
package doomsday

import (
	"time"

	"github.com/verte-zerg/ddtrain/internal/model"
)

// AnchorEntry is a month/day that falls on the doomsday weekday of its year.
type AnchorEntry struct {
	Month time.Month
	Day   int
}

// Closest is the anchor nearest to a date. Offset is the signed day count
// from the anchor to the date.
type Closest struct {
	Anchor AnchorEntry
	Offset int
}

// AnchorDate is an anchor resolved for a concrete year.
type AnchorDate struct {
	Anchor  AnchorEntry
	Date    model.CalendarDate
	Weekday time.Weekday
}

// Ordered by month, then day.
var standard = [...]AnchorEntry{
	{time.January, 3},
	{time.February, 28},
	{time.March, 14},
	{time.April, 4},
	{time.May, 9},
	{time.June, 6},
	{time.July, 4},
	{time.July, 11},
	{time.August, 8},
	{time.September, 5},
	{time.October, 10},
	{time.October, 31},
	{time.November, 7},
	{time.December, 12},
	{time.December, 26},
}

var leap = func() [len(standard)]AnchorEntry {
	t := standard
	t[0] = AnchorEntry{time.January, 4}
	t[1] = AnchorEntry{time.February, 29}
	return t
}()

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DoomsdayWeekday returns the weekday of December 12 in year.
func DoomsdayWeekday(year int) time.Weekday {
	return model.CalendarDate{Year: year, Month: time.December, Day: 12}.Weekday()
}

// Table returns a copy of the anchor table that applies to year.
func Table(year int) []AnchorEntry {
	if IsLeapYear(year) {
		return append([]AnchorEntry(nil), leap[:]...)
	}
	return append([]AnchorEntry(nil), standard[:]...)
}

// ClosestAnchor finds the anchor with the smallest absolute day distance to d
// within d's year. The first entry in table order wins a tie.
func ClosestAnchor(d model.CalendarDate) Closest {
	table := &standard
	if IsLeapYear(d.Year) {
		table = &leap
	}
	var best Closest
	bestAbs := -1
	for _, entry := range table {
		anchor := model.CalendarDate{Year: d.Year, Month: entry.Month, Day: entry.Day}
		offset := anchor.DaysUntil(d)
		abs := offset
		if abs < 0 {
			abs = -abs
		}
		if bestAbs < 0 || abs < bestAbs {
			best = Closest{Anchor: entry, Offset: offset}
			bestAbs = abs
		}
	}
	return best
}

// Anchors resolves every anchor of year to a date and weekday.
func Anchors(year int) []AnchorDate {
	table := Table(year)
	out := make([]AnchorDate, 0, len(table))
	for _, entry := range table {
		date := model.CalendarDate{Year: year, Month: entry.Month, Day: entry.Day}
		out = append(out, AnchorDate{Anchor: entry, Date: date, Weekday: date.Weekday()})
	}
	return out
}
