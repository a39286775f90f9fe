package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

func (m Model) detailPanelWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) detailPanelHeight() int {
	h := m.height - 8
	if h < 10 {
		h = 10
	}
	return h
}

func detailField(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value)
}

func renderHeaderMap(headers map[string]string) string {
	if len(headers) == 0 {
		return dimStyle.Render("  (none)")
	}
	keys := lo.Keys(headers)
	sort.Strings(keys)
	lines := lo.Map(keys, func(k string, _ int) string {
		return "  " + labelStyle.Render(k+": ") + valueStyle.Render(headers[k])
	})
	return strings.Join(lines, "\n")
}

func renderBody(body string) string {
	if body == "" {
		return dimStyle.Render("  (empty)")
	}
	return valueStyle.Render(body)
}

func (m Model) renderDetailContent() string {
	r := m.detailRec
	if r == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("Request #%d", r.ID)))
	sb.WriteString("\n\n")

	sb.WriteString(detailField("Time", r.Timestamp.Local().Format("2006-01-02 15:04:05")) + "\n")
	sb.WriteString(detailField("Status", statusCell(*r)) + "\n")
	sb.WriteString(detailField("HTTP code", fmt.Sprintf("%d", r.StatusCode)) + "\n")
	sb.WriteString(detailField("Model", r.Model) + "\n")
	sb.WriteString(detailField("Provider", r.Provider) + "\n")
	sb.WriteString(detailField("API key", r.APIKeyMasked) + "\n")
	sb.WriteString(detailField("Client IP", r.IP) + "\n")
	sb.WriteString(detailField("Request ID", r.RequestID) + "\n")
	sb.WriteString(detailField("Duration", formatDurationMs(float64(r.DurationMs))) + "\n")
	sb.WriteString("\n")

	sb.WriteString(sectionHeaderStyle.Render("Tokens") + "\n")
	sb.WriteString(detailField("Input", formatCount(r.InputTokens)) + "\n")
	sb.WriteString(detailField("Output", formatCount(r.OutputTokens)) + "\n")
	if r.CachedTokens > 0 {
		sb.WriteString(detailField("Cached", formatCount(r.CachedTokens)) + "\n")
	}
	if r.ReasoningTokens > 0 {
		sb.WriteString(detailField("Reasoning", formatCount(r.ReasoningTokens)) + "\n")
	}
	sb.WriteString(detailField("Total", formatCount(r.TotalTokens)) + "\n")
	sb.WriteString("\n")

	sb.WriteString(sectionHeaderStyle.Render("Request") + "\n")
	sb.WriteString(detailField("Method", r.RequestMethod) + "\n")
	sb.WriteString(detailField("URL", r.RequestURL) + "\n")
	sb.WriteString(labelStyle.Render("Headers") + "\n")
	sb.WriteString(renderHeaderMap(r.RequestHeaders) + "\n")
	sb.WriteString(labelStyle.Render("Body") + "\n")
	sb.WriteString(renderBody(r.RequestBody) + "\n")
	sb.WriteString("\n")

	sb.WriteString(sectionHeaderStyle.Render("Response") + "\n")
	sb.WriteString(labelStyle.Render("Headers") + "\n")
	sb.WriteString(renderHeaderMap(r.ResponseHeaders) + "\n")
	sb.WriteString(labelStyle.Render("Body") + "\n")
	sb.WriteString(renderBody(r.ResponseBody) + "\n")

	return sb.String()
}

func (m Model) renderDetailDrawer() string {
	var inner string
	switch {
	case m.detailLoading:
		inner = m.spinner.View() + labelStyle.Render(" loading request detail...")
	case m.detailRec == nil:
		inner = dimStyle.Render("no record loaded")
	default:
		inner = m.detailView.View()
	}

	footer := dimStyle.Render("↑/↓ scroll · esc close")
	return detailBorderStyle.Width(m.detailPanelWidth()).Render(inner + "\n\n" + footer)
}
