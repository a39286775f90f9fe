package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/usagedeck/usagedeck/internal/api"
)

type chartItem struct {
	Label    string
	Value    float64
	Color    lipgloss.Color
	SubLabel string
}

// renderHBarChart draws labeled horizontal bars scaled to the largest value.
func renderHBarChart(items []chartItem, maxBarW, labelW int) string {
	if len(items) == 0 {
		return dimStyle.Render("  No data available")
	}
	if maxBarW < 4 {
		maxBarW = 4
	}

	maxVal := float64(0)
	for _, item := range items {
		if item.Value > maxVal {
			maxVal = item.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var lines []string
	for _, item := range items {
		label := item.Label
		if len(label) > labelW {
			label = label[:labelW-1] + "…"
		}

		barLen := int(item.Value / maxVal * float64(maxBarW))
		if barLen < 1 && item.Value > 0 {
			barLen = 1
		}

		bar := lipgloss.NewStyle().Foreground(item.Color).Render(strings.Repeat("█", barLen))
		track := lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", maxBarW-barLen))
		value := lipgloss.NewStyle().Foreground(item.Color).Bold(true).Render(formatCount(int64(item.Value)))

		line := fmt.Sprintf("  %s %s%s  %s", labelStyle.Width(labelW).Render(label), bar, track, value)
		if item.SubLabel != "" {
			line += "  " + dimStyle.Render(item.SubLabel)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

var barPalette = []lipgloss.Color{
	colorBlue, colorTeal, colorPeach, colorAccent, colorGreen, colorYellow, colorSapphire,
}

func modelChartItems(stats *api.ModelStatsResult, limit int) []chartItem {
	if stats == nil {
		return nil
	}
	models := stats.Models
	if len(models) > limit {
		models = models[:limit]
	}
	return lo.Map(models, func(s api.ModelStats, i int) chartItem {
		return chartItem{
			Label:    s.Model,
			Value:    float64(s.RequestCount),
			Color:    barPalette[i%len(barPalette)],
			SubLabel: formatCount(s.TotalTokens) + " tok",
		}
	})
}

func providerChartItems(stats *api.ProviderStatsResult, limit int) []chartItem {
	if stats == nil {
		return nil
	}
	providers := stats.Providers
	if len(providers) > limit {
		providers = providers[:limit]
	}
	return lo.Map(providers, func(s api.ProviderStats, i int) chartItem {
		return chartItem{
			Label:    s.Provider,
			Value:    float64(s.RequestCount),
			Color:    barPalette[i%len(barPalette)],
			SubLabel: fmt.Sprintf("%d models", s.ModelCount),
		}
	})
}

// renderTimeline draws the hourly request distribution as a sparkline with
// first/last hour labels underneath.
func renderTimeline(tl *api.Timeline, width, height int) string {
	if tl == nil || len(tl.Points) == 0 {
		return dimStyle.Render("  No timeline data")
	}
	if width < 10 {
		width = 10
	}
	if height < 1 {
		height = 1
	}

	sl := sparkline.New(width, height,
		sparkline.WithMaxValue(float64(tl.MaxRequests)),
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorTeal)),
	)
	for _, p := range tl.Points {
		sl.Push(float64(p.Requests))
	}
	sl.Draw()

	first := tl.Points[0].Hour
	last := tl.Points[len(tl.Points)-1].Hour
	gap := width - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	axis := dimStyle.Render(first + strings.Repeat(" ", gap) + last)

	return sl.View() + "\n" + axis
}
