package database

import (
	"time"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
)

// Festival is a stored festival row.
type Festival struct {
	ID         int64     `json:"id"`
	MonthIndex int       `json:"month_index"` // 0 = Boishakh
	MonthName  string    `json:"month_name"`
	Day        int       `json:"day"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Key returns the festival's calendar key.
func (f Festival) Key() bangla.FestivalKey {
	return bangla.FestivalKey{Day: f.Day, MonthIndex: f.MonthIndex}
}
