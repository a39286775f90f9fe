package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/core"
)

// Terminal cell geometry for the heatmap grid. Each day cell is two columns
// wide; the gutter holds the weekday labels.
const (
	heatCellWidth   = 2
	heatCellGap     = 0
	heatGutterWidth = 4
)

var weekdayGutter = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}

// heatRamp builds the 0-4 intensity styles by blending from the surface
// color up to the palette green, GitHub-contribution style.
func heatRamp() [5]lipgloss.Style {
	low, _ := colorful.Hex("#313244")
	high, _ := colorful.Hex("#A6E3A1")

	var ramp [5]lipgloss.Style
	ramp[0] = lipgloss.NewStyle().Foreground(colorSurface0)
	for level := 1; level <= 4; level++ {
		t := float64(level) / 4
		c := low.BlendLuv(high, t).Clamped()
		ramp[level] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return ramp
}

var heatStyles = heatRamp()

// renderHeatmap draws the activity heatmap as week columns fitted to the
// available width, with a month-label header row and weekday gutter. Older
// weeks are dropped from the left when the terminal is too narrow.
func renderHeatmap(hm *api.Heatmap, width int) string {
	if hm == nil || len(hm.Days) == 0 {
		return dimStyle.Render("  No activity data")
	}

	cells := lo.Map(hm.Days, func(d api.HeatmapDay, _ int) core.DayCell {
		return core.DayCell{Date: d.Date, Requests: d.Requests, TotalTokens: d.TotalTokens}
	})
	layout := core.BuildHeatmapLayout(cells)
	if len(layout.Weeks) == 0 {
		return dimStyle.Render("  No activity data")
	}

	fit := core.FitWeeks(width, heatCellWidth, heatCellGap, heatGutterWidth, len(layout.Weeks))
	visible := core.VisibleWindow(layout, fit)

	var sb strings.Builder
	sb.WriteString(renderMonthLabels(visible.MonthLabels, len(visible.Weeks)))
	sb.WriteString("\n")

	for weekday := 0; weekday < 7; weekday++ {
		sb.WriteString(dimStyle.Width(heatGutterWidth).Render(weekdayGutter[weekday]))
		for _, week := range visible.Weeks {
			cell := week[weekday]
			if cell.IsSentinel() {
				sb.WriteString(strings.Repeat(" ", heatCellWidth))
				continue
			}
			level := core.IntensityLevel(cell.Requests, hm.MaxRequests)
			sb.WriteString(heatStyles[level].Render("■ "))
		}
		if weekday < 6 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderMonthLabels(labels []core.MonthLabel, totalWeeks int) string {
	line := []byte(strings.Repeat(" ", heatGutterWidth+totalWeeks*heatCellWidth))
	for _, ml := range labels {
		start := heatGutterWidth + ml.WeekColumn*heatCellWidth
		for i := 0; i < len(ml.Label) && start+i < len(line); i++ {
			line[start+i] = ml.Label[i]
		}
	}
	return dimStyle.Render(strings.TrimRight(string(line), " "))
}
