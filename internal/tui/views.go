package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/core"
)

func (m Model) View() string {
	if m.width == 0 {
		return "initializing..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")

	if m.conn != api.Connected {
		sb.WriteString(m.renderDisconnected())
		sb.WriteString("\n\n")
		sb.WriteString(m.renderFooter())
		return sb.String()
	}

	if m.detailOpen {
		sb.WriteString(m.renderDetailDrawer())
		sb.WriteString("\n")
		sb.WriteString(m.renderFooter())
		return sb.String()
	}

	sb.WriteString(m.renderSummaryRow())
	sb.WriteString("\n\n")

	sb.WriteString(sectionHeaderStyle.Render("  Activity"))
	sb.WriteString("\n")
	sb.WriteString(m.renderHeatmapSection())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderChartsRow())
	sb.WriteString("\n\n")

	sb.WriteString(sectionHeaderStyle.Render("  Requests"))
	sb.WriteString(dimStyle.Render("  " + m.filterSummary()))
	sb.WriteString("\n")
	sb.WriteString(m.renderRecordsTable())
	sb.WriteString("\n")

	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderHeader() string {
	brand := headerStyle.Render(" usagedeck ")

	var conn string
	switch m.conn {
	case api.Connected:
		conn = statusStandardStyle.Render("● " + m.cfg.Endpoint)
	case api.Connecting:
		conn = noticeStyle.Render(m.spinner.View() + " connecting " + m.cfg.Endpoint)
	default:
		conn = errorStyle.Render("○ " + m.cfg.Endpoint + " unreachable")
	}

	refresh := dimStyle.Render("auto-refresh off")
	if m.autoRefresh {
		refresh = statusStandardStyle.Render("auto-refresh on")
	}

	line := brand + "  " + conn + "  " + refresh
	if m.updateHint != "" {
		line += "  " + noticeStyle.Render(m.updateHint)
	}
	return line
}

func (m Model) renderDisconnected() string {
	if m.conn == api.Connecting {
		return "  " + m.spinner.View() + labelStyle.Render(" contacting backend...")
	}
	return "  " + errorStyle.Render("Backend unreachable.") + "\n" +
		"  " + labelStyle.Render("Retrying every few seconds. Check that the proxy is running and the") + "\n" +
		"  " + labelStyle.Render("management key in the config matches. Press ") +
		helpKeyStyle.Render("r") + labelStyle.Render(" to retry now.")
}

func kpi(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}

func (m Model) renderSummaryRow() string {
	if m.summary.err != nil && !m.summary.ready {
		return "  " + errorStyle.Render("summary: "+m.summary.err.Error())
	}
	s := m.summary.data
	if s == nil {
		return "  " + m.spinner.View() + labelStyle.Render(" loading summary...")
	}

	parts := []string{
		kpi("requests", formatCount(s.TotalRequests)),
		kpi("success", formatPercent(s.SuccessRate)),
		kpi("tokens", formatCount(s.TotalTokens)),
		kpi("avg", formatDurationMs(s.AvgDuration)),
		kpi("models", fmt.Sprintf("%d", s.UniqueModels)),
		kpi("providers", fmt.Sprintf("%d", s.UniqueProviders)),
	}
	return "  " + strings.Join(parts, dimStyle.Render("  │  "))
}

func (m Model) renderHeatmapSection() string {
	switch {
	case m.heatmap.err != nil && !m.heatmap.ready:
		return "  " + errorStyle.Render("heatmap: "+m.heatmap.err.Error())
	case m.heatmap.data == nil:
		return "  " + m.spinner.View() + labelStyle.Render(" loading activity...")
	}
	return renderHeatmap(m.heatmap.data, m.width-2)
}

// renderChartsRow places the timeline sparkline next to the model and
// provider breakdowns when the terminal is wide enough, stacked otherwise.
func (m Model) renderChartsRow() string {
	timeline := m.renderTimelineSection()
	models := m.renderStatsSection("Models", m.modelStats.err, m.modelStats.data != nil,
		func() string { return renderHBarChart(modelChartItems(m.modelStats.data, 5), 24, 22) })
	providers := m.renderStatsSection("Providers", m.providerStats.err, m.providerStats.data != nil,
		func() string { return renderHBarChart(providerChartItems(m.providerStats.data, 5), 24, 22) })

	if m.width < 120 {
		return timeline + "\n\n" + models + "\n\n" + providers
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		timeline, "    ", models, "    ", providers)
}

func (m Model) renderTimelineSection() string {
	title := sectionHeaderStyle.Render("  Timeline") + "\n"
	switch {
	case m.timeline.err != nil && !m.timeline.ready:
		return title + "  " + errorStyle.Render(m.timeline.err.Error())
	case m.timeline.data == nil:
		return title + "  " + m.spinner.View() + labelStyle.Render(" loading...")
	}
	w := m.width - 4
	if w > 48 {
		w = 48
	}
	return title + renderTimeline(m.timeline.data, w, 5)
}

func (m Model) renderStatsSection(title string, err error, haveData bool, render func() string) string {
	head := sectionHeaderStyle.Render("  "+title) + "\n"
	switch {
	case err != nil && !haveData:
		return head + "  " + errorStyle.Render(err.Error())
	case !haveData:
		return head + "  " + m.spinner.View() + labelStyle.Render(" loading...")
	}
	return head + render()
}

func (m Model) filterSummary() string {
	parts := []string{m.period.Label()}
	if m.modelFilter != "" {
		parts = append(parts, "model="+m.modelFilter)
	}
	if m.providerFilter != "" {
		parts = append(parts, "provider="+m.providerFilter)
	}
	if m.statusFilter != core.StatusFilterAll {
		parts = append(parts, "status="+m.statusFilter.Label())
	}
	return strings.Join(parts, " · ")
}

func helpEntry(key, desc string) string {
	return helpKeyStyle.Render(key) + labelStyle.Render(" "+desc)
}

func (m Model) renderFooter() string {
	var entries []string
	if m.detailOpen {
		entries = []string{
			helpEntry("↑/↓", "scroll"),
			helpEntry("esc", "close"),
			helpEntry("q", "quit"),
		}
	} else {
		entries = []string{
			helpEntry("↑/↓", "select"),
			helpEntry("←/→", "page"),
			helpEntry("[/]", "page size"),
			helpEntry("p", "period"),
			helpEntry("s", "status"),
			helpEntry("m", "model"),
			helpEntry("o", "provider"),
			helpEntry("a", "auto-refresh"),
			helpEntry("r", "reload"),
			helpEntry("enter", "detail"),
			helpEntry("q", "quit"),
		}
	}

	line := "  " + strings.Join(entries, dimStyle.Render("  "))
	if m.notice != "" {
		line += "\n  " + noticeStyle.Render(m.notice)
	}
	if m.width > 0 && ansi.StringWidth(line) > m.width {
		line = ansi.Cut(line, 0, m.width)
	}
	return line
}
