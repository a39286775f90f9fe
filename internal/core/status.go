package core

// RecordStatus is the derived status dimension of a usage record. The
// backend does not understand it; it is computed client-side from the
// success/streaming/status-code fields of each fetched row.
type RecordStatus string

const (
	StatusStreaming RecordStatus = "streaming"
	StatusStandard  RecordStatus = "standard"
	StatusFailed    RecordStatus = "failed"
)

// StatusFilter is the list-page filter over RecordStatus. StatusFilterAll
// disables the post-filter entirely.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterStreaming StatusFilter = StatusFilter(StatusStreaming)
	StatusFilterStandard  StatusFilter = StatusFilter(StatusStandard)
	StatusFilterFailed    StatusFilter = StatusFilter(StatusFailed)
)

var ValidStatusFilters = []StatusFilter{
	StatusFilterAll,
	StatusFilterStreaming,
	StatusFilterStandard,
	StatusFilterFailed,
}

func (f StatusFilter) Label() string {
	switch f {
	case StatusFilterStreaming:
		return "Streaming"
	case StatusFilterStandard:
		return "Standard"
	case StatusFilterFailed:
		return "Failed"
	default:
		return "All"
	}
}

// ClassifyStatus derives the status of a record. Any non-success, as well as
// any HTTP status at or above 400, counts as failed regardless of the
// streaming flag.
func ClassifyStatus(isStreaming, success bool, statusCode int) RecordStatus {
	if !success || statusCode >= 400 {
		return StatusFailed
	}
	if isStreaming {
		return StatusStreaming
	}
	return StatusStandard
}

// Matches reports whether a record with the given fields passes the filter.
func (f StatusFilter) Matches(isStreaming, success bool, statusCode int) bool {
	if f == StatusFilterAll || f == "" {
		return true
	}
	return RecordStatus(f) == ClassifyStatus(isStreaming, success, statusCode)
}

// NextStatusFilter returns the next filter in the cycle.
func NextStatusFilter(current StatusFilter) StatusFilter {
	for i, f := range ValidStatusFilters {
		if f == current {
			return ValidStatusFilters[(i+1)%len(ValidStatusFilters)]
		}
	}
	return ValidStatusFilters[0]
}
