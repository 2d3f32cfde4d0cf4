package bangla

import (
	"testing"
	"time"
)

func TestCursor_Wraparound(t *testing.T) {
	if got, want := (Cursor{Year: 1431, MonthIndex: 0}).Prev(), (Cursor{Year: 1430, MonthIndex: 11}); got != want {
		t.Errorf("Prev() = %+v, want %+v", got, want)
	}
	if got, want := (Cursor{Year: 1431, MonthIndex: 11}).Next(), (Cursor{Year: 1432, MonthIndex: 0}); got != want {
		t.Errorf("Next() = %+v, want %+v", got, want)
	}
	if got, want := (Cursor{Year: 1431, MonthIndex: 5}).Next(), (Cursor{Year: 1431, MonthIndex: 6}); got != want {
		t.Errorf("Next() = %+v, want %+v", got, want)
	}
}

func TestCursor_Move(t *testing.T) {
	start := Cursor{Year: 1431, MonthIndex: 3}

	tests := []struct {
		n    int
		want Cursor
	}{
		{0, start},
		{1, Cursor{Year: 1431, MonthIndex: 4}},
		{-4, Cursor{Year: 1430, MonthIndex: 11}},
		{12, Cursor{Year: 1432, MonthIndex: 3}},
		{-25, Cursor{Year: 1429, MonthIndex: 2}},
	}

	for _, tt := range tests {
		if got := start.Move(tt.n); got != tt.want {
			t.Errorf("Move(%d) = %+v, want %+v", tt.n, got, tt.want)
		}
	}

	if got := start.Move(7).Move(-7); got != start {
		t.Errorf("Move(7).Move(-7) = %+v, want %+v", got, start)
	}
}

func TestCursorFor(t *testing.T) {
	got := CursorFor(date(2024, time.April, 14))
	if want := (Cursor{Year: 1431, MonthIndex: 0}); got != want {
		t.Errorf("CursorFor() = %+v, want %+v", got, want)
	}
}

func TestCursor_Validate(t *testing.T) {
	if err := (Cursor{Year: 1431, MonthIndex: 11}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (Cursor{Year: 1431, MonthIndex: 12}).Validate(); err == nil {
		t.Error("Validate() error = nil, want error")
	}
}

func TestCursor_Grid(t *testing.T) {
	grid, err := (Cursor{Year: 1431, MonthIndex: 0}).Next().Grid(nil, time.Time{})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if grid.MonthIndex != 1 || grid.MonthName != "জ্যৈষ্ঠ" {
		t.Errorf("Grid() month = %d %q, want 1 জ্যৈষ্ঠ", grid.MonthIndex, grid.MonthName)
	}
}
