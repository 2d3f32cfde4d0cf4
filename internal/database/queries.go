package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when a requested record doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyName is returned when a festival name is blank.
	ErrEmptyName = errors.New("festival name is empty")
)

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}

// =============================================================================
// Helper Functions
// =============================================================================

// execer is satisfied by both *DB and *Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// parseTimestamp parses a SQLite TEXT timestamp, returning the zero time if
// the value is empty or in an unknown format.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFestival(row scanner) (*Festival, error) {
	var f Festival
	var createdAt, updatedAt string
	if err := row.Scan(&f.ID, &f.MonthIndex, &f.Day, &f.Name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	f.MonthName = bangla.Months[f.MonthIndex]
	f.CreatedAt = parseTimestamp(createdAt)
	f.UpdatedAt = parseTimestamp(updatedAt)
	return &f, nil
}

func validateFestival(key bangla.FestivalKey, name string) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

const festivalColumns = `id, month_index, day, name, created_at, updated_at`

// =============================================================================
// Festival Queries
// =============================================================================

// ListFestivals returns every stored festival ordered by month and day.
func (db *DB) ListFestivals(ctx context.Context) ([]Festival, error) {
	return db.queryFestivals(ctx,
		`SELECT `+festivalColumns+` FROM festivals ORDER BY month_index, day`)
}

// ListFestivalsByMonth returns one month's festivals ordered by day.
func (db *DB) ListFestivalsByMonth(ctx context.Context, monthIndex int) ([]Festival, error) {
	return db.queryFestivals(ctx,
		`SELECT `+festivalColumns+` FROM festivals WHERE month_index = ? ORDER BY day`,
		monthIndex)
}

func (db *DB) queryFestivals(ctx context.Context, query string, args ...any) ([]Festival, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query festivals: %w", err)
	}
	defer rows.Close()

	festivals := []Festival{}
	for rows.Next() {
		f, err := scanFestival(rows)
		if err != nil {
			return nil, fmt.Errorf("scan festival: %w", err)
		}
		festivals = append(festivals, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate festivals: %w", err)
	}

	return festivals, nil
}

// GetFestival returns the festival on key. Returns ErrNotFound if none.
func (db *DB) GetFestival(ctx context.Context, key bangla.FestivalKey) (*Festival, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+festivalColumns+` FROM festivals WHERE month_index = ? AND day = ?`,
		key.MonthIndex, key.Day)

	f, err := scanFestival(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query festival %s: %w", key, err)
	}
	return f, nil
}

// UpsertFestival stores name on key, replacing any existing festival there.
func (db *DB) UpsertFestival(ctx context.Context, key bangla.FestivalKey, name string) (*Festival, error) {
	name, err := validateFestival(key, name)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO festivals (month_index, day, name)
		VALUES (?, ?, ?)
		ON CONFLICT (month_index, day) DO UPDATE SET
			name = excluded.name,
			updated_at = datetime('now')
	`, key.MonthIndex, key.Day, name)
	if err != nil {
		return nil, fmt.Errorf("upsert festival %s: %w", key, err)
	}

	db.logger.Debug("festival stored",
		"key", key.String(),
		"name", name,
	)

	return db.GetFestival(ctx, key)
}

// DeleteFestival removes the festival on key. Returns ErrNotFound if none.
func (db *DB) DeleteFestival(ctx context.Context, key bangla.FestivalKey) error {
	res, err := db.ExecContext(ctx,
		`DELETE FROM festivals WHERE month_index = ? AND day = ?`,
		key.MonthIndex, key.Day)
	if err != nil {
		return fmt.Errorf("delete festival %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete festival %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FestivalTable loads every stored festival into a lookup table.
func (db *DB) FestivalTable(ctx context.Context) (bangla.FestivalTable, error) {
	festivals, err := db.ListFestivals(ctx)
	if err != nil {
		return nil, err
	}

	table := make(bangla.FestivalTable, len(festivals))
	for _, f := range festivals {
		table[f.Key()] = f.Name
	}
	return table, nil
}

// SeedFestivals inserts table only if no festivals are stored yet.
// Returns the number of rows inserted.
func (db *DB) SeedFestivals(ctx context.Context, table bangla.FestivalTable) (int, error) {
	var inserted int
	err := db.WithTx(ctx, func(tx *Tx) error {
		var existing int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM festivals`).Scan(&existing); err != nil {
			return fmt.Errorf("count festivals: %w", err)
		}
		if existing > 0 {
			return nil
		}

		n, err := insertFestivals(ctx, tx, table)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		db.logger.Info("seeded festivals", "count", inserted)
	}
	return inserted, nil
}

// ImportFestivals replaces all stored festivals with table in one
// transaction. Returns the number of rows inserted.
func (db *DB) ImportFestivals(ctx context.Context, table bangla.FestivalTable) (int, error) {
	var inserted int
	err := db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM festivals`); err != nil {
			return fmt.Errorf("clear festivals: %w", err)
		}

		n, err := insertFestivals(ctx, tx, table)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func insertFestivals(ctx context.Context, ex execer, table bangla.FestivalTable) (int, error) {
	count := 0
	for key, name := range table {
		name, err := validateFestival(key, name)
		if err != nil {
			return count, fmt.Errorf("festival %s: %w", key, err)
		}

		if _, err := ex.ExecContext(ctx,
			`INSERT INTO festivals (month_index, day, name) VALUES (?, ?, ?)`,
			key.MonthIndex, key.Day, name,
		); err != nil {
			return count, fmt.Errorf("insert festival %s: %w", key, err)
		}
		count++
	}
	return count, nil
}
