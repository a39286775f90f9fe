package core

import "time"

// Period is the human-friendly time range selector shown in the dashboard
// header. Ranges are derived relative to local midnight at evaluation time.
type Period string

const (
	PeriodToday      Period = "today"
	PeriodYesterday  Period = "yesterday"
	PeriodLast7Days  Period = "last7days"
	PeriodLast30Days Period = "last30days"
	PeriodLast90Days Period = "last90days"
)

var ValidPeriods = []Period{
	PeriodToday,
	PeriodYesterday,
	PeriodLast7Days,
	PeriodLast30Days,
	PeriodLast90Days,
}

func (p Period) Label() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodYesterday:
		return "Yesterday"
	case PeriodLast7Days:
		return "7 Days"
	case PeriodLast30Days:
		return "30 Days"
	case PeriodLast90Days:
		return "90 Days"
	default:
		return "7 Days"
	}
}

// Range derives the backend time range for the period. start is always set.
// end is set only for PeriodYesterday, as an exclusive upper bound at today's
// local midnight; every other period is open-ended through "now".
func (p Period) Range(now time.Time) (start time.Time, end *time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodToday:
		return midnight, nil
	case PeriodYesterday:
		e := midnight
		return midnight.AddDate(0, 0, -1), &e
	case PeriodLast7Days:
		return midnight.AddDate(0, 0, -7), nil
	case PeriodLast30Days:
		return midnight.AddDate(0, 0, -30), nil
	case PeriodLast90Days:
		return midnight.AddDate(0, 0, -90), nil
	default:
		return midnight.AddDate(0, 0, -7), nil
	}
}

func ParsePeriod(s string) Period {
	for _, p := range ValidPeriods {
		if string(p) == s {
			return p
		}
	}
	return PeriodLast7Days
}

// NextPeriod returns the next period in the cycle.
func NextPeriod(current Period) Period {
	for i, p := range ValidPeriods {
		if p == current {
			return ValidPeriods[(i+1)%len(ValidPeriods)]
		}
	}
	return ValidPeriods[0]
}
