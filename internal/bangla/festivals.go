package bangla

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// FestivalKey identifies a festival by Bengali day and month index.
type FestivalKey struct {
	Day        int `json:"day"`
	MonthIndex int `json:"month_index"`
}

// String formats the key as "day-month", the form ParseFestivalKey accepts.
func (k FestivalKey) String() string {
	return fmt.Sprintf("%d-%d", k.Day, k.MonthIndex)
}

// Validate checks the month index and that the day exists in that month.
func (k FestivalKey) Validate() error {
	if err := checkMonthIndex(k.MonthIndex); err != nil {
		return err
	}
	if days := daysInMonth(k.MonthIndex); k.Day < 1 || k.Day > days {
		return fmt.Errorf("day %d out of range for %s (1-%d)", k.Day, Months[k.MonthIndex], days)
	}
	return nil
}

// ParseFestivalKey parses "day-month". Both numbers may use ASCII or
// Bengali numerals, e.g. "1-0" or "১-০" for 1 Boishakh.
func ParseFestivalKey(s string) (FestivalKey, error) {
	dayStr, monthStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return FestivalKey{}, fmt.Errorf("festival key %q: want day-month", s)
	}

	day, err := ParseDigits(dayStr)
	if err != nil {
		return FestivalKey{}, fmt.Errorf("festival key %q: day: %w", s, err)
	}
	month, err := ParseDigits(monthStr)
	if err != nil {
		return FestivalKey{}, fmt.Errorf("festival key %q: month: %w", s, err)
	}

	key := FestivalKey{Day: day, MonthIndex: month}
	if err := key.Validate(); err != nil {
		return FestivalKey{}, fmt.Errorf("festival key %q: %w", s, err)
	}
	return key, nil
}

// Festival is a named day in a Bengali month.
type Festival struct {
	FestivalKey
	Name string `json:"name"`
}

// FestivalTable maps a Bengali day and month to a festival name.
type FestivalTable map[FestivalKey]string

// Lookup returns the festival on the given day, or "" if there is none.
// A nil table has no festivals.
func (t FestivalTable) Lookup(day, monthIndex int) string {
	return t[FestivalKey{Day: day, MonthIndex: monthIndex}]
}

// InMonth returns the festivals of one month ordered by day.
func (t FestivalTable) InMonth(monthIndex int) []Festival {
	var out []Festival
	for key, name := range t {
		if key.MonthIndex == monthIndex {
			out = append(out, Festival{FestivalKey: key, Name: name})
		}
	}
	slices.SortFunc(out, func(a, b Festival) int { return a.Day - b.Day })
	return out
}

// ParseFestivalTable validates raw "day-month" keys and builds a table.
// All invalid entries are reported together.
func ParseFestivalTable(raw map[string]string) (FestivalTable, error) {
	table := make(FestivalTable, len(raw))
	var errs []error

	for rawKey, name := range raw {
		key, err := ParseFestivalKey(rawKey)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			errs = append(errs, fmt.Errorf("festival key %q: name is empty", rawKey))
			continue
		}
		if existing, dup := table[key]; dup {
			errs = append(errs, fmt.Errorf("festival key %q: duplicate of %s (%s)", rawKey, key, existing))
			continue
		}
		table[key] = name
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return table, nil
}

// DefaultFestivals returns the built-in festival table.
func DefaultFestivals() FestivalTable {
	return FestivalTable{
		{Day: 1, MonthIndex: Boishakh}: "নববর্ষ",
		{Day: 1, MonthIndex: Falgun}:   "পহেলা ফাল্গুন",
		{Day: 8, MonthIndex: Falgun}:   "শহীদ দিবস",
	}
}
