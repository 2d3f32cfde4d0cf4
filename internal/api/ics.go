package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
)

// ICSProductID identifies calendars exported by this service.
const ICSProductID = "-//bengali-calendar-api//festivals//BN"

// GetMonthICS handles GET /api/v1/months/{year}/{month}/festivals.ics
func (h *Handlers) GetMonthICS(w http.ResponseWriter, r *http.Request) {
	cursor, ok := parseCursor(w, r)
	if !ok {
		return
	}

	grid, _, ok := h.buildGrid(w, r, cursor)
	if !ok {
		return
	}

	cal := FestivalCalendar(grid, h.now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=festivals_%d_%02d.ics", grid.Year, grid.MonthIndex+1))
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		h.log(r).Warn("failed to write calendar", slog.Any("error", err))
	}
}

// FestivalCalendar returns an iCalendar with one all-day event per festival
// in grid, dated by each cell's Gregorian date. stamp is used as DTSTAMP.
func FestivalCalendar(grid *bangla.MonthGrid, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(fmt.Sprintf("%s %d", grid.MonthName, grid.Year))

	for _, cell := range grid.Cells() {
		if cell.Festival == "" {
			continue
		}

		uid := fmt.Sprintf("%d-%d-%d@bengali-calendar-api", grid.Year, grid.MonthIndex, cell.BengaliDay)
		event := cal.AddEvent(uid)
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(cell.Gregorian)
		event.SetAllDayEndAt(cell.Gregorian.AddDate(0, 0, 1))
		event.SetSummary(cell.Festival)
		event.SetDescription(fmt.Sprintf("%d %s, %d", cell.BengaliDay, grid.MonthName, grid.Year))
	}

	return cal
}
