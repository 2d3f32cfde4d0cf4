package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "festivals.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadFestivals(t *testing.T) {
	path := writeFile(t, `{"source": "test", "festivals": {"১-০": "নববর্ষ", "8-10": "শহীদ দিবস"}}`)

	table, source, err := loadFestivals(path)
	if err != nil {
		t.Fatalf("loadFestivals() error = %v", err)
	}
	if source != "test" {
		t.Errorf("source = %q, want test", source)
	}
	if got := table.Lookup(1, 0); got != "নববর্ষ" {
		t.Errorf("Lookup(1, 0) = %q, want নববর্ষ", got)
	}
	if got := table.Lookup(8, 10); got != "শহীদ দিবস" {
		t.Errorf("Lookup(8, 10) = %q, want শহীদ দিবস", got)
	}
}

func TestLoadFestivals_Errors(t *testing.T) {
	tests := map[string]string{
		"bad json":    `{"festivals": [`,
		"empty":       `{"festivals": {}}`,
		"invalid key": `{"festivals": {"1-12": "x"}}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := loadFestivals(writeFile(t, content)); err == nil {
				t.Error("loadFestivals() error = nil, want error")
			}
		})
	}

	if _, _, err := loadFestivals(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("loadFestivals(missing) error = nil, want error")
	}
}

func TestRun(t *testing.T) {
	path := writeFile(t, `{"festivals": {"1-0": "নববর্ষ"}}`)
	dbPath := filepath.Join(t.TempDir(), "calendar.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(path, dbPath, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	// A second run replaces rather than duplicates.
	if err := run(path, dbPath, logger); err != nil {
		t.Fatalf("second run() error = %v", err)
	}
}
