package bangla

import "time"

// GridWeeks is the number of week rows in a month grid. The grid always has
// six rows even when the last one is empty.
const GridWeeks = 6

// Cell is one populated day of a month grid.
type Cell struct {
	BengaliDay    int       `json:"bengali_day"`
	GregorianDay  int       `json:"gregorian_day"`
	GregorianDate string    `json:"gregorian_date"` // YYYY-MM-DD
	Gregorian     time.Time `json:"-"`
	Festival      string    `json:"festival,omitempty"`
	IsToday       bool      `json:"is_today"`
}

// Week is a row of seven slots, Sunday first. Nil slots are empty.
type Week [7]*Cell

// MonthGrid is a Bengali month laid out as calendar weeks.
type MonthGrid struct {
	Year        int             `json:"year"`
	MonthIndex  int             `json:"month_index"`
	MonthName   string          `json:"month_name"`
	Start       time.Time       `json:"start"`
	DaysInMonth int             `json:"days_in_month"`
	Weeks       [GridWeeks]Week `json:"weeks"`
}

// Cursor returns the navigation position of the grid.
func (g *MonthGrid) Cursor() Cursor {
	return Cursor{Year: g.Year, MonthIndex: g.MonthIndex}
}

// Cells returns the populated cells in day order.
func (g *MonthGrid) Cells() []*Cell {
	cells := make([]*Cell, 0, g.DaysInMonth)
	for _, week := range g.Weeks {
		for _, cell := range week {
			if cell != nil {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// BuildMonthGrid lays out a Bengali month as six weeks of seven days. Every
// populated cell carries its Bengali day, the Gregorian day it maps to, the
// festival from festivals (if any) and whether it is today's date.
//
// today is compared by calendar date only. festivals may be nil.
func BuildMonthGrid(year, monthIndex int, festivals FestivalTable, today time.Time) (*MonthGrid, error) {
	if err := checkMonthIndex(monthIndex); err != nil {
		return nil, err
	}

	start := monthStart(year, monthIndex)
	startWeekday := int(start.Weekday())
	days := daysInMonth(monthIndex)
	today = CivilDate(today)

	grid := &MonthGrid{
		Year:        year,
		MonthIndex:  monthIndex,
		MonthName:   Months[monthIndex],
		Start:       start,
		DaysInMonth: days,
	}

	for p := 0; p < GridWeeks*7; p++ {
		day := p - startWeekday + 1
		if day < 1 || day > days {
			continue
		}

		gregorian := start.AddDate(0, 0, day-1)
		grid.Weeks[p/7][p%7] = &Cell{
			BengaliDay:    day,
			GregorianDay:  gregorian.Day(),
			GregorianDate: gregorian.Format(time.DateOnly),
			Gregorian:     gregorian,
			Festival:      festivals.Lookup(day, monthIndex),
			IsToday:       gregorian.Equal(today),
		}
	}

	return grid, nil
}
