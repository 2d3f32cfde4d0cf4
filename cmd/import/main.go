// Command import loads a festival JSON file into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -json data/festivals.json -db data/calendar.db
//
// The file maps "day-month" keys to festival names; month is the Bengali
// month index (0 = Boishakh) and either number may use Bengali numerals:
//
//	{"source": "...", "festivals": {"১-০": "নববর্ষ", "8-10": "শহীদ দিবস"}}
//
// Every key is validated before the database is touched. The import replaces
// all stored festivals in a single transaction.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
	"github.com/zapponejosh/bengali-calendar-api/internal/database"
)

// FestivalFile is the on-disk import format.
type FestivalFile struct {
	Source    string            `json:"source"`
	Festivals map[string]string `json:"festivals"`
}

func main() {
	jsonPath := flag.String("json", "data/festivals.json", "Path to festival JSON file")
	dbPath := flag.String("db", "data/calendar.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*jsonPath, *dbPath, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(jsonPath, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	logger.Info("reading JSON file", slog.String("path", jsonPath))

	table, source, err := loadFestivals(jsonPath)
	if err != nil {
		return err
	}

	logger.Info("parsed festivals",
		slog.Int("count", len(table)),
		slog.String("source", source),
	)

	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	inserted, err := db.ImportFestivals(ctx, table)
	if err != nil {
		return fmt.Errorf("import festivals: %w", err)
	}

	elapsed := time.Since(startTime)
	logger.Info("import verified",
		slog.Int("festivals", inserted),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	for month := 0; month < bangla.MonthsPerYear; month++ {
		for _, f := range table.InMonth(month) {
			fmt.Printf("%2d %-10s %s\n", f.Day, bangla.Months[month], f.Name)
		}
	}
	fmt.Printf("Festivals imported:  %d\n", inserted)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// loadFestivals reads and validates a festival file.
func loadFestivals(path string) (bangla.FestivalTable, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read JSON file: %w", err)
	}

	var file FestivalFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("parse JSON: %w", err)
	}
	if len(file.Festivals) == 0 {
		return nil, "", fmt.Errorf("%s: no festivals", path)
	}

	table, err := bangla.ParseFestivalTable(file.Festivals)
	if err != nil {
		return nil, "", fmt.Errorf("validate festivals: %w", err)
	}

	return table, file.Source, nil
}
