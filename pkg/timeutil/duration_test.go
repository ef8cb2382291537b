package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowEmpty(t *testing.T) {
	dur, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 0 {
		t.Fatalf("expected no window, got %v", dur)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, err := ParseWindow("2w3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 17 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label := FormatWindow(dur); label != "2w3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, err := ParseWindow(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	now := time.Date(2026, 3, 29, 0, 30, 0, 0, loc)

	tests := []struct {
		from string
		want int
	}{
		{"2026-03-29", 0},
		{"2026-03-28", 1},
		{"2026-03-01", 28},
		{"2026-03-30", -1},
	}
	for _, tt := range tests {
		from, err := time.ParseInLocation(LayoutDate, tt.from, loc)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.from, err)
		}
		if got := DaysBetween(from, now); got != tt.want {
			t.Errorf("DaysBetween(%s) = %d, want %d", tt.from, got, tt.want)
		}
	}
}

func TestFormatDateIsLocal(t *testing.T) {
	ts := time.Date(2026, 10, 19, 23, 30, 0, 0, time.Local)
	if got := FormatDate(ts); got != "2026-10-19" {
		t.Fatalf("FormatDate = %s", got)
	}
	back, err := ParseDate("2026-10-19")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if DaysBetween(back, ts) != 0 {
		t.Fatalf("round trip moved the date")
	}
}
