package bangla

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want Date
	}{
		{"boishakh boundary", date(2024, time.April, 14), Date{Year: 1431, MonthIndex: 0, Day: 1, MonthName: "বৈশাখ"}},
		{"late boishakh", date(2024, time.April, 30), Date{Year: 1431, MonthIndex: 0, Day: 17, MonthName: "বৈশাখ"}},
		{"mid month after start", date(2024, time.May, 20), Date{Year: 1431, MonthIndex: 1, Day: 7, MonthName: "জ্যৈষ্ঠ"}},
		{"before start counts from previous month", date(2024, time.May, 5), Date{Year: 1431, MonthIndex: 1, Day: 22, MonthName: "জ্যৈষ্ঠ"}},
		{"december after start", date(2024, time.December, 20), Date{Year: 1431, MonthIndex: 8, Day: 7, MonthName: "পৌষ"}},
		{"december before start", date(2024, time.December, 13), Date{Year: 1431, MonthIndex: 8, Day: 30, MonthName: "পৌষ"}},
		{"february of next gregorian year", date(2025, time.February, 20), Date{Year: 1431, MonthIndex: 9, Day: 7, MonthName: "মাঘ"}},
		{"early january clamps", date(2025, time.January, 5), Date{Year: 1431, MonthIndex: 8, Day: 1, MonthName: "পৌষ"}},
		{"day before new year", date(2024, time.April, 13), Date{Year: 1430, MonthIndex: 11, Day: 1, MonthName: "চৈত্র"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromGregorian(tt.in); got != tt.want {
				t.Errorf("FromGregorian(%s) = %+v, want %+v", tt.in.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestFromGregorian_IgnoresTimeOfDay(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)
	late := time.Date(2024, time.April, 14, 23, 59, 0, 0, dhaka)

	got := FromGregorian(late)
	if got.MonthIndex != Boishakh || got.Day != 1 || got.Year != 1431 {
		t.Errorf("FromGregorian(%v) = %+v, want 1 Boishakh 1431", late, got)
	}
}

func TestFromGregorian_Ranges(t *testing.T) {
	// Walk a leap year and its neighbours.
	for d := date(2023, time.January, 1); d.Before(date(2026, time.January, 1)); d = d.AddDate(0, 0, 1) {
		got := FromGregorian(d)
		if got.MonthIndex < 0 || got.MonthIndex > 11 {
			t.Fatalf("FromGregorian(%s).MonthIndex = %d, want 0-11", d.Format(time.DateOnly), got.MonthIndex)
		}
		if got.Day < 1 || got.Day > 31 {
			t.Fatalf("FromGregorian(%s).Day = %d, want 1-31", d.Format(time.DateOnly), got.Day)
		}
		if got.MonthName != Months[got.MonthIndex] {
			t.Fatalf("FromGregorian(%s).MonthName = %q, want %q", d.Format(time.DateOnly), got.MonthName, Months[got.MonthIndex])
		}
	}
}

func TestFromGregorian_DayFromMonthStart(t *testing.T) {
	for d := date(2024, time.January, 1); d.Before(date(2025, time.January, 1)); d = d.AddDate(0, 0, 1) {
		got := FromGregorian(d)
		start, err := MonthStart(got.Year, got.MonthIndex)
		if err != nil {
			t.Fatalf("MonthStart(%d, %d) error = %v", got.Year, got.MonthIndex, err)
		}
		if d.Before(start) {
			continue
		}
		if want := clamp(d.Day()-start.Day()+1, 1, 31); got.Day != want {
			t.Errorf("FromGregorian(%s).Day = %d, want %d", d.Format(time.DateOnly), got.Day, want)
		}
	}
}

func TestBands_ExactlyOne(t *testing.T) {
	first, second := 0, 0
	boishakh := date(2024, time.April, 14)

	for d := date(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		inFirst := inFirstBand(d.Month(), d.Day())
		if want := !d.Before(boishakh); inFirst != want {
			t.Errorf("inFirstBand(%s) = %v, want %v", d.Format(time.DateOnly), inFirst, want)
		}

		if inFirst {
			first++
			if got := FromGregorian(d).Year; got != d.Year()-593 {
				t.Errorf("FromGregorian(%s).Year = %d, want %d", d.Format(time.DateOnly), got, d.Year()-593)
			}
		} else {
			second++
			if got := FromGregorian(d).Year; got != d.Year()-594 {
				t.Errorf("FromGregorian(%s).Year = %d, want %d", d.Format(time.DateOnly), got, d.Year()-594)
			}
		}
	}

	if first != 262 || second != 104 {
		t.Errorf("band sizes = %d/%d, want 262/104", first, second)
	}
}

func TestMonthStart(t *testing.T) {
	tests := []struct {
		month int
		want  time.Time
	}{
		{0, date(2024, time.April, 14)},
		{8, date(2024, time.December, 14)},
		{9, date(2025, time.January, 14)},
		{11, date(2025, time.March, 14)},
	}

	for _, tt := range tests {
		got, err := MonthStart(1431, tt.month)
		if err != nil {
			t.Fatalf("MonthStart(1431, %d) error = %v", tt.month, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("MonthStart(1431, %d) = %s, want %s", tt.month, got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
		}
	}
}

func TestMonthStart_Monotonic(t *testing.T) {
	for _, year := range []int{1400, 1430, 1431, 1432} {
		prev, _ := MonthStart(year, 0)
		for m := 1; m < MonthsPerYear; m++ {
			cur, err := MonthStart(year, m)
			if err != nil {
				t.Fatalf("MonthStart(%d, %d) error = %v", year, m, err)
			}
			if cur.Before(prev) {
				t.Errorf("MonthStart(%d, %d) = %s is before month %d (%s)", year, m, cur.Format(time.DateOnly), m-1, prev.Format(time.DateOnly))
			}
			prev = cur
		}
	}
}

func TestInvalidMonthIndex(t *testing.T) {
	for _, m := range []int{-1, 12, 100} {
		if _, err := MonthStart(1431, m); !errors.Is(err, ErrInvalidMonthIndex) {
			t.Errorf("MonthStart(1431, %d) error = %v, want ErrInvalidMonthIndex", m, err)
		}
		if _, err := DaysInMonth(m); !errors.Is(err, ErrInvalidMonthIndex) {
			t.Errorf("DaysInMonth(%d) error = %v, want ErrInvalidMonthIndex", m, err)
		}
		if _, err := MonthName(m); !errors.Is(err, ErrInvalidMonthIndex) {
			t.Errorf("MonthName(%d) error = %v, want ErrInvalidMonthIndex", m, err)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for m := 0; m < MonthsPerYear; m++ {
		want := 30
		if m == Boishakh || m == Falgun {
			want = 31
		}
		got, err := DaysInMonth(m)
		if err != nil {
			t.Fatalf("DaysInMonth(%d) error = %v", m, err)
		}
		if got != want {
			t.Errorf("DaysInMonth(%d) = %d, want %d", m, got, want)
		}
	}
}

func TestFormatToday(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)
	got := FormatToday(time.Date(2024, time.April, 14, 9, 30, 0, 0, dhaka))
	want := "1 বৈশাখ, 1431 বাংলা বছর | 14-4-2024"
	if got != want {
		t.Errorf("FormatToday() = %q, want %q", got, want)
	}
}

func TestDigits(t *testing.T) {
	if got := Digits(1431); got != "১৪৩১" {
		t.Errorf("Digits(1431) = %q, want %q", got, "১৪৩১")
	}
	if got := Digits(-7); got != "-৭" {
		t.Errorf("Digits(-7) = %q, want %q", got, "-৭")
	}

	for _, in := range []string{"১৪৩১", "1431", " ১৪৩১ "} {
		got, err := ParseDigits(in)
		if err != nil {
			t.Fatalf("ParseDigits(%q) error = %v", in, err)
		}
		if got != 1431 {
			t.Errorf("ParseDigits(%q) = %d, want 1431", in, got)
		}
	}

	if _, err := ParseDigits("১x"); err == nil {
		t.Error("ParseDigits(\"১x\") error = nil, want error")
	}
}
