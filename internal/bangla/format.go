package bangla

import (
	"fmt"
	"time"
)

// YearLabel follows the year in the today string.
const YearLabel = "বাংলা বছর"

// FormatToday renders today as
// "<day> <month>, <year> বাংলা বছর | <d>-<m>-<y>".
func FormatToday(today time.Time) string {
	g := CivilDate(today)
	b := FromGregorian(g)
	return fmt.Sprintf("%d %s, %d %s | %d-%d-%d",
		b.Day, b.MonthName, b.Year, YearLabel,
		g.Day(), int(g.Month()), g.Year())
}
