package core

import "time"

// SentinelRequests marks a padding cell inserted to square off a calendar
// week. Padding cells carry no date and never render as activity.
const SentinelRequests = -1

// DayCell is one day of heatmap input. A cell with Date == "" and
// Requests == SentinelRequests is synthetic week padding, not real data.
type DayCell struct {
	Date        string // ISO calendar day, "2006-01-02"
	Requests    int64
	TotalTokens int64
}

// IsSentinel reports whether the cell is week padding.
func (c DayCell) IsSentinel() bool {
	return c.Date == "" && c.Requests == SentinelRequests
}

// MonthLabel marks the first week column in which a calendar month's first
// visible day appears.
type MonthLabel struct {
	Label      string // short month name, e.g. "Mar"
	WeekColumn int
}

// HeatmapLayout is the week-bucketed projection of a chronological day feed.
// Every week holds exactly 7 cells, index 0 = Sunday through 6 = Saturday.
type HeatmapLayout struct {
	Weeks       [][]DayCell
	MonthLabels []MonthLabel
}

func sentinelCell() DayCell {
	return DayCell{Date: "", Requests: SentinelRequests}
}

// BuildHeatmapLayout buckets a chronological, gap-free day sequence into
// week columns. The first week is pre-padded with sentinels up to the first
// day's UTC weekday so columns stay aligned to Sunday; the last week is
// padded out to 7 cells. Dates are interpreted as UTC midnights so the
// weekday never drifts with the local timezone.
func BuildHeatmapLayout(days []DayCell) HeatmapLayout {
	if len(days) == 0 {
		return HeatmapLayout{}
	}

	first, err := time.Parse("2006-01-02", days[0].Date)
	if err != nil {
		return HeatmapLayout{}
	}

	var (
		weeks    [][]DayCell
		labels   []MonthLabel
		curWeek  []DayCell
		curMonth time.Month
	)

	for i := 0; i < int(first.Weekday()); i++ {
		curWeek = append(curWeek, sentinelCell())
	}

	for _, day := range days {
		t, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		if t.Month() != curMonth {
			curMonth = t.Month()
			labels = append(labels, MonthLabel{
				Label:      t.Format("Jan"),
				WeekColumn: len(weeks),
			})
		}
		curWeek = append(curWeek, day)
		if len(curWeek) == 7 {
			weeks = append(weeks, curWeek)
			curWeek = nil
		}
	}

	if len(curWeek) > 0 {
		for len(curWeek) < 7 {
			curWeek = append(curWeek, sentinelCell())
		}
		weeks = append(weeks, curWeek)
	}

	return HeatmapLayout{Weeks: weeks, MonthLabels: labels}
}

// FitWeeks computes how many trailing week columns fit in containerWidth,
// given a fixed cell size, inter-cell gap and leading weekday gutter.
// The result is clamped to [1, totalWeeks].
func FitWeeks(containerWidth, cellSize, gap, gutter, totalWeeks int) int {
	if totalWeeks < 1 {
		return 0
	}
	fit := (containerWidth - gutter + gap) / (cellSize + gap)
	if fit < 1 {
		fit = 1
	}
	if fit > totalWeeks {
		fit = totalWeeks
	}
	return fit
}

// VisibleWindow truncates the layout to its trailing weeksCanFit week
// columns, preferring the most recent data. Month labels are re-based to the
// new first column; labels that fall left of the window are dropped.
func VisibleWindow(l HeatmapLayout, weeksCanFit int) HeatmapLayout {
	total := len(l.Weeks)
	if weeksCanFit >= total {
		return l
	}
	if weeksCanFit < 1 {
		return HeatmapLayout{}
	}

	firstVisible := total - weeksCanFit
	out := HeatmapLayout{Weeks: l.Weeks[firstVisible:]}
	for _, ml := range l.MonthLabels {
		if ml.WeekColumn < firstVisible {
			continue
		}
		out.MonthLabels = append(out.MonthLabels, MonthLabel{
			Label:      ml.Label,
			WeekColumn: ml.WeekColumn - firstVisible,
		})
	}
	return out
}

// IntensityLevel buckets a day's request count into a discrete 0-4 level
// relative to the busiest day. Thresholds at 25/50/75% are inclusive upper
// bounds. Sentinel cells must be filtered by the caller before calling.
func IntensityLevel(requests, maxRequests int64) int {
	if requests <= 0 || maxRequests <= 0 {
		return 0
	}
	ratio := float64(requests) / float64(maxRequests)
	switch {
	case ratio <= 0.25:
		return 1
	case ratio <= 0.5:
		return 2
	case ratio <= 0.75:
		return 3
	default:
		return 4
	}
}
