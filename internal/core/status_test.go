package core

import "testing"

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name        string
		isStreaming bool
		success     bool
		statusCode  int
		want        RecordStatus
	}{
		{"streaming success", true, true, 200, StatusStreaming},
		{"standard success", false, true, 200, StatusStandard},
		{"explicit failure", false, false, 500, StatusFailed},
		{"failure without status code", true, false, 0, StatusFailed},
		{"success flag but 4xx", false, true, 429, StatusFailed},
		{"streaming but 5xx", true, true, 502, StatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(tt.isStreaming, tt.success, tt.statusCode)
			if got != tt.want {
				t.Errorf("ClassifyStatus(%v, %v, %d) = %q, want %q",
					tt.isStreaming, tt.success, tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestStatusFilterMatches(t *testing.T) {
	tests := []struct {
		name        string
		filter      StatusFilter
		isStreaming bool
		success     bool
		statusCode  int
		want        bool
	}{
		{"all matches anything", StatusFilterAll, false, false, 500, true},
		{"empty filter matches anything", StatusFilter(""), true, true, 200, true},
		{"streaming matches streaming", StatusFilterStreaming, true, true, 200, true},
		{"streaming rejects standard", StatusFilterStreaming, false, true, 200, false},
		{"standard matches standard", StatusFilterStandard, false, true, 200, true},
		{"failed matches 4xx", StatusFilterFailed, false, true, 404, true},
		{"failed rejects success", StatusFilterFailed, false, true, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Matches(tt.isStreaming, tt.success, tt.statusCode)
			if got != tt.want {
				t.Errorf("%q.Matches(%v, %v, %d) = %v, want %v",
					tt.filter, tt.isStreaming, tt.success, tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestNextStatusFilterCycles(t *testing.T) {
	f := StatusFilterAll
	seen := map[StatusFilter]bool{}
	for i := 0; i < len(ValidStatusFilters); i++ {
		seen[f] = true
		f = NextStatusFilter(f)
	}
	if f != StatusFilterAll {
		t.Errorf("cycle did not return to start: got %q", f)
	}
	if len(seen) != len(ValidStatusFilters) {
		t.Errorf("cycle visited %d filters, want %d", len(seen), len(ValidStatusFilters))
	}
}
