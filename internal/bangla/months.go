// Package bangla converts Gregorian dates to an approximate Bengali calendar
// and lays Bengali months out as week grids.
//
// The conversion is a fixed heuristic, not the solar calculation used by the
// reformed Bengali calendar:
//   - every Bengali month starts on the 14th of a Gregorian month
//   - Boishakh (the first month) starts on April 14
//   - month lengths come from a fixed table (31 days for Boishakh and Falgun, 30 otherwise)
//
// Results are therefore approximate near month boundaries and leap years are
// not modelled. Callers should treat dates as "close enough" for display.
package bangla

import (
	"errors"
	"fmt"
)

const (
	// YearOffset is subtracted from the Gregorian year to get the Bengali
	// year for dates on or after Boishakh 1.
	YearOffset = 593

	// BoundaryDay is the Gregorian day of month on which a Bengali month starts.
	BoundaryDay = 14

	// MonthsPerYear is the number of Bengali months.
	MonthsPerYear = 12
)

// Months holds the Bengali month names in calendar order, Boishakh first.
var Months = [MonthsPerYear]string{
	"বৈশাখ", "জ্যৈষ্ঠ", "আষাঢ়", "শ্রাবণ", "ভাদ্র", "আশ্বিন",
	"কার্তিক", "অগ্রহায়ণ", "পৌষ", "মাঘ", "ফাল্গুন", "চৈত্র",
}

// WeekdayNames holds the grid header labels, Sunday first.
var WeekdayNames = [7]string{"রবি", "সোম", "মঙ্গল", "বুধ", "বৃহস্পতি", "শুক্র", "শনি"}

// Month indexes with special handling.
const (
	Boishakh = 0
	Falgun   = 10
	Choitro  = 11
)

// ErrInvalidMonthIndex is returned when a month index is outside [0, 11].
var ErrInvalidMonthIndex = errors.New("invalid month index")

func checkMonthIndex(monthIndex int) error {
	if monthIndex < 0 || monthIndex >= MonthsPerYear {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidMonthIndex, monthIndex, MonthsPerYear-1)
	}
	return nil
}

// MonthName returns the Bengali name of the month at monthIndex.
func MonthName(monthIndex int) (string, error) {
	if err := checkMonthIndex(monthIndex); err != nil {
		return "", err
	}
	return Months[monthIndex], nil
}

// DaysInMonth returns the fixed day count of a Bengali month.
func DaysInMonth(monthIndex int) (int, error) {
	if err := checkMonthIndex(monthIndex); err != nil {
		return 0, err
	}
	return daysInMonth(monthIndex), nil
}

func daysInMonth(monthIndex int) int {
	if monthIndex == Boishakh || monthIndex == Falgun {
		return 31
	}
	return 30
}
