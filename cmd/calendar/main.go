// Command calendar prints a Bengali month grid to the terminal.
//
// Usage:
//
//	go run ./cmd/calendar                       # the current month
//	go run ./cmd/calendar -offset -1            # previous month
//	go run ./cmd/calendar -year 1431 -month 10  # Falgun 1431
//	go run ./cmd/calendar -date 2025-02-21 -bn  # as if today were 2025-02-21
//
// Festivals come from -db when given, otherwise from the built-in table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
	"github.com/zapponejosh/bengali-calendar-api/internal/config"
	"github.com/zapponejosh/bengali-calendar-api/internal/database"
)

type options struct {
	date    string
	year    int
	month   int
	offset  int
	dbPath  string
	bengali bool
}

func main() {
	var opts options
	flag.StringVar(&opts.date, "date", "", "Treat this date as today (YYYY-MM-DD)")
	flag.IntVar(&opts.year, "year", 0, "Bengali year to show (default: current)")
	flag.IntVar(&opts.month, "month", -1, "Bengali month index 0-11 to show (default: current)")
	flag.IntVar(&opts.offset, "offset", 0, "Move this many months from the selected month")
	flag.StringVar(&opts.dbPath, "db", "", "Optional SQLite database to read festivals from")
	flag.BoolVar(&opts.bengali, "bn", false, "Print numbers with Bengali numerals")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if err := run(opts, logger); err != nil {
		fmt.Fprintln(os.Stderr, "calendar:", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	today, err := resolveToday(opts.date)
	if err != nil {
		return err
	}

	cursor, err := resolveCursor(opts, today)
	if err != nil {
		return err
	}

	festivals, err := loadFestivals(opts.dbPath, logger)
	if err != nil {
		return err
	}

	grid, err := cursor.Grid(festivals, today)
	if err != nil {
		return err
	}

	fmt.Println(Render(grid, today, opts.bengali))
	return nil
}

// resolveToday parses value as a civil date, or returns the current date in
// TIMEZONE (Asia/Dhaka when unset).
func resolveToday(value string) (time.Time, error) {
	if value != "" {
		t, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid -date %q: want YYYY-MM-DD", value)
		}
		return t, nil
	}

	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = config.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return time.Now().In(loc), nil
}

// resolveCursor starts from today's month, replaces the year or month when
// given and then applies the offset.
func resolveCursor(opts options, today time.Time) (bangla.Cursor, error) {
	cursor := bangla.CursorFor(today)
	if opts.year != 0 {
		cursor.Year = opts.year
	}
	if opts.month != -1 {
		cursor.MonthIndex = opts.month
	}
	if err := cursor.Validate(); err != nil {
		return bangla.Cursor{}, err
	}
	return cursor.Move(opts.offset), nil
}

func loadFestivals(dbPath string, logger *slog.Logger) (bangla.FestivalTable, error) {
	if dbPath == "" {
		return bangla.DefaultFestivals(), nil
	}

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	table, err := db.FestivalTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load festivals: %w", err)
	}
	return table, nil
}
