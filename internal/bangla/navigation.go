package bangla

import "time"

// Cursor is the month being viewed. It is a plain value: navigation returns
// a new cursor and never mutates shared state.
type Cursor struct {
	Year       int `json:"year"`
	MonthIndex int `json:"month_index"`
}

// CursorFor returns the cursor of the Bengali month containing today.
func CursorFor(today time.Time) Cursor {
	return FromGregorian(today).Cursor()
}

// Validate checks the month index.
func (c Cursor) Validate() error {
	return checkMonthIndex(c.MonthIndex)
}

// Prev moves one month back, wrapping Boishakh to Choitro of the previous year.
func (c Cursor) Prev() Cursor {
	c.MonthIndex--
	if c.MonthIndex < 0 {
		c.MonthIndex = MonthsPerYear - 1
		c.Year--
	}
	return c
}

// Next moves one month forward, wrapping Choitro to Boishakh of the next year.
func (c Cursor) Next() Cursor {
	c.MonthIndex++
	if c.MonthIndex > MonthsPerYear-1 {
		c.MonthIndex = 0
		c.Year++
	}
	return c
}

// Move applies n steps of Next (n > 0) or Prev (n < 0).
func (c Cursor) Move(n int) Cursor {
	for ; n < 0; n++ {
		c = c.Prev()
	}
	for ; n > 0; n-- {
		c = c.Next()
	}
	return c
}

// Grid builds the month grid at the cursor.
func (c Cursor) Grid(festivals FestivalTable, today time.Time) (*MonthGrid, error) {
	return BuildMonthGrid(c.Year, c.MonthIndex, festivals, today)
}
