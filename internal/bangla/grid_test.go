package bangla

import (
	"errors"
	"testing"
	"time"
)

func TestBuildMonthGrid_Boishakh(t *testing.T) {
	// 14 April 2024 is a Sunday, so 1 Boishakh sits in the first slot.
	today := date(2024, time.April, 14)
	grid, err := BuildMonthGrid(1431, Boishakh, DefaultFestivals(), today)
	if err != nil {
		t.Fatalf("BuildMonthGrid() error = %v", err)
	}

	first := grid.Weeks[0][0]
	if first == nil {
		t.Fatal("Weeks[0][0] = nil, want 1 Boishakh")
	}
	if first.BengaliDay != 1 || first.GregorianDay != 14 {
		t.Errorf("Weeks[0][0] = %d/%d, want 1/14", first.BengaliDay, first.GregorianDay)
	}
	if first.Festival != "নববর্ষ" {
		t.Errorf("Weeks[0][0].Festival = %q, want %q", first.Festival, "নববর্ষ")
	}
	if !first.IsToday {
		t.Error("Weeks[0][0].IsToday = false, want true")
	}
	if first.GregorianDate != "2024-04-14" {
		t.Errorf("Weeks[0][0].GregorianDate = %q, want 2024-04-14", first.GregorianDate)
	}

	last := grid.Weeks[4][2]
	if last == nil || last.BengaliDay != 31 || last.GregorianDate != "2024-05-14" {
		t.Errorf("Weeks[4][2] = %+v, want 31 Boishakh on 2024-05-14", last)
	}

	for i, cell := range grid.Weeks[5] {
		if cell != nil {
			t.Errorf("Weeks[5][%d] = %+v, want empty", i, cell)
		}
	}
}

func TestBuildMonthGrid_FalgunUsesSixthRow(t *testing.T) {
	// 14 February 2025 is a Friday.
	grid, err := BuildMonthGrid(1431, Falgun, DefaultFestivals(), date(2024, time.January, 1))
	if err != nil {
		t.Fatalf("BuildMonthGrid() error = %v", err)
	}

	if grid.Weeks[0][4] != nil {
		t.Errorf("Weeks[0][4] = %+v, want empty", grid.Weeks[0][4])
	}
	if c := grid.Weeks[0][5]; c == nil || c.BengaliDay != 1 || c.Festival != "পহেলা ফাল্গুন" {
		t.Errorf("Weeks[0][5] = %+v, want 1 Falgun with festival", c)
	}
	if c := grid.Weeks[1][5]; c == nil || c.BengaliDay != 8 || c.GregorianDay != 21 || c.Festival != "শহীদ দিবস" {
		t.Errorf("Weeks[1][5] = %+v, want 8 Falgun on the 21st", c)
	}
	if c := grid.Weeks[5][0]; c == nil || c.BengaliDay != 31 {
		t.Errorf("Weeks[5][0] = %+v, want 31 Falgun", c)
	}

	for _, c := range grid.Cells() {
		if c.IsToday {
			t.Errorf("cell %d IsToday = true, want false", c.BengaliDay)
		}
	}
}

func TestBuildMonthGrid_CellCounts(t *testing.T) {
	for _, year := range []int{1430, 1431, 1432} {
		for m := 0; m < MonthsPerYear; m++ {
			grid, err := BuildMonthGrid(year, m, nil, time.Time{})
			if err != nil {
				t.Fatalf("BuildMonthGrid(%d, %d) error = %v", year, m, err)
			}

			want := 30
			if m == Boishakh || m == Falgun {
				want = 31
			}

			if len(grid.Weeks) != 6 {
				t.Errorf("BuildMonthGrid(%d, %d) rows = %d, want 6", year, m, len(grid.Weeks))
			}

			cells := grid.Cells()
			if len(cells) != want {
				t.Errorf("BuildMonthGrid(%d, %d) cells = %d, want %d", year, m, len(cells), want)
			}
			for i, c := range cells {
				if c.BengaliDay != i+1 {
					t.Errorf("BuildMonthGrid(%d, %d) cell %d BengaliDay = %d, want %d", year, m, i, c.BengaliDay, i+1)
				}
				if c.Festival != "" {
					t.Errorf("BuildMonthGrid(%d, %d) cell %d Festival = %q, want none", year, m, i, c.Festival)
				}
			}
		}
	}
}

func TestBuildMonthGrid_FestivalLookup(t *testing.T) {
	festivals := FestivalTable{
		{Day: 10, MonthIndex: 3}: "test festival",
		{Day: 10, MonthIndex: 4}: "other month",
	}

	grid, err := BuildMonthGrid(1431, 3, festivals, time.Time{})
	if err != nil {
		t.Fatalf("BuildMonthGrid() error = %v", err)
	}

	for _, c := range grid.Cells() {
		want := ""
		if c.BengaliDay == 10 {
			want = "test festival"
		}
		if c.Festival != want {
			t.Errorf("day %d Festival = %q, want %q", c.BengaliDay, c.Festival, want)
		}
	}
}

func TestBuildMonthGrid_GregorianMapping(t *testing.T) {
	grid, err := BuildMonthGrid(1431, 9, nil, time.Time{})
	if err != nil {
		t.Fatalf("BuildMonthGrid() error = %v", err)
	}

	start := date(2025, time.January, 14)
	for _, c := range grid.Cells() {
		if want := start.AddDate(0, 0, c.BengaliDay-1); !c.Gregorian.Equal(want) {
			t.Errorf("day %d Gregorian = %s, want %s", c.BengaliDay, c.Gregorian.Format(time.DateOnly), want.Format(time.DateOnly))
		}
	}
}

func TestBuildMonthGrid_InvalidMonth(t *testing.T) {
	for _, m := range []int{-1, 12} {
		grid, err := BuildMonthGrid(1431, m, nil, time.Time{})
		if !errors.Is(err, ErrInvalidMonthIndex) {
			t.Errorf("BuildMonthGrid(1431, %d) error = %v, want ErrInvalidMonthIndex", m, err)
		}
		if grid != nil {
			t.Errorf("BuildMonthGrid(1431, %d) grid = %+v, want nil", m, grid)
		}
	}
}
