package bangla

import (
	"fmt"
	"time"
)

// Date is an approximate Bengali calendar date.
type Date struct {
	Year       int    `json:"year"`
	MonthIndex int    `json:"month_index"`
	Day        int    `json:"day"`
	MonthName  string `json:"month_name"`
}

// String formats the date as "<day> <month>, <year>".
func (d Date) String() string {
	return fmt.Sprintf("%d %s, %d", d.Day, d.MonthName, d.Year)
}

// Cursor returns the month containing d.
func (d Date) Cursor() Cursor {
	return Cursor{Year: d.Year, MonthIndex: d.MonthIndex}
}

// CivilDate drops the time of day and location from t, keeping its calendar
// date at midnight UTC.
func CivilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// inFirstBand reports whether a Gregorian month/day falls between Boishakh 1
// (April 14) and the end of the Gregorian year. Everything else (January 1
// through April 13) is the second band and belongs to the previous Bengali year.
func inFirstBand(month time.Month, day int) bool {
	return (month == time.April && day >= BoundaryDay) || month > time.April
}

// FromGregorian converts a Gregorian date to its approximate Bengali date.
// Only the calendar date of t is used.
//
// The month is picked from the Gregorian month alone, so dates before the
// 14th keep the month index of the band while their day is counted from the
// previous month's start. The day is clamped into [1, 31].
func FromGregorian(t time.Time) Date {
	g := CivilDate(t)
	month, day := g.Month(), g.Day()

	year := g.Year() - YearOffset
	var monthIndex int
	if inFirstBand(month, day) {
		monthIndex = (int(month) + 8) % MonthsPerYear
	} else {
		monthIndex = (int(month) + 7) % MonthsPerYear
		year--
	}

	var bengaliDay int
	if start := monthStart(year, monthIndex); !g.Before(start) {
		bengaliDay = day - (BoundaryDay - 1)
	} else {
		prev := Cursor{Year: year, MonthIndex: monthIndex}.Prev()
		bengaliDay = daysBetween(monthStart(prev.Year, prev.MonthIndex), g) + 1
	}

	return Date{
		Year:       year,
		MonthIndex: monthIndex,
		Day:        clamp(bengaliDay, 1, 31),
		MonthName:  Months[monthIndex],
	}
}

// MonthStart returns the Gregorian date on which a Bengali month begins: the
// 14th of Gregorian month (monthIndex+3) mod 12 in year bengaliYear+593.
// Magh, Falgun and Choitro roll over into the following Gregorian year.
func MonthStart(bengaliYear, monthIndex int) (time.Time, error) {
	if err := checkMonthIndex(monthIndex); err != nil {
		return time.Time{}, err
	}
	return monthStart(bengaliYear, monthIndex), nil
}

func monthStart(bengaliYear, monthIndex int) time.Time {
	// time.Date normalizes months past December into the next year.
	return time.Date(bengaliYear+YearOffset, time.April+time.Month(monthIndex), BoundaryDay, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b. Both must be civil dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
