package core

import (
	"testing"
	"time"
)

func TestPeriodRangeYesterday(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, loc)

	start, end := PeriodYesterday.Range(now)

	wantStart := time.Date(2024, 3, 14, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if end == nil {
		t.Fatal("end = nil, want exclusive upper bound at today's midnight")
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", *end, wantEnd)
	}
}

func TestPeriodRangeOpenEnded(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		period    Period
		wantStart time.Time
	}{
		{PeriodToday, midnight},
		{PeriodLast7Days, midnight.AddDate(0, 0, -7)},
		{PeriodLast30Days, midnight.AddDate(0, 0, -30)},
		{PeriodLast90Days, midnight.AddDate(0, 0, -90)},
		{Period("bogus"), midnight.AddDate(0, 0, -7)},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end := tt.period.Range(now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if end != nil {
				t.Errorf("end = %v, want nil (open-ended)", *end)
			}
		})
	}
}

func TestPeriodRangeDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 59, 59, 0, time.Local)
	s1, _ := PeriodLast30Days.Range(now)
	s2, _ := PeriodLast30Days.Range(now)
	if !s1.Equal(s2) {
		t.Errorf("Range not deterministic for fixed now: %v vs %v", s1, s2)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"today", PeriodToday},
		{"yesterday", PeriodYesterday},
		{"last7days", PeriodLast7Days},
		{"last30days", PeriodLast30Days},
		{"last90days", PeriodLast90Days},
		{"", PeriodLast7Days},
		{"lastyear", PeriodLast7Days},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParsePeriod(tt.in); got != tt.want {
				t.Errorf("ParsePeriod(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextPeriodCycles(t *testing.T) {
	p := PeriodToday
	for i := 0; i < len(ValidPeriods); i++ {
		p = NextPeriod(p)
	}
	if p != PeriodToday {
		t.Errorf("cycling %d times = %q, want %q", len(ValidPeriods), p, PeriodToday)
	}
	if got := NextPeriod(Period("bogus")); got != ValidPeriods[0] {
		t.Errorf("NextPeriod(bogus) = %q, want %q", got, ValidPeriods[0])
	}
}
