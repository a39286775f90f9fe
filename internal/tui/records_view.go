package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/core"
)

type column struct {
	title string
	width int
}

var recordColumns = []column{
	{"Time", 15},
	{"Status", 10},
	{"Model", 24},
	{"Provider", 12},
	{"Tokens", 9},
	{"Duration", 9},
	{"Code", 5},
	{"Key", 12},
}

// pad clips or pads a cell to its column width, ANSI-aware so styled
// content never breaks the grid.
func pad(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Cut(s, 0, width-1) + "…"
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

func statusCell(r api.Record) string {
	switch core.ClassifyStatus(r.IsStreaming, r.Success, r.StatusCode) {
	case core.StatusStreaming:
		return statusStreamingStyle.Render("streaming")
	case core.StatusFailed:
		return statusFailedStyle.Render("failed")
	default:
		return statusStandardStyle.Render("standard")
	}
}

func (m Model) renderRecordsTable() string {
	var sb strings.Builder

	var header []string
	for _, c := range recordColumns {
		header = append(header, pad(c.title, c.width))
	}
	sb.WriteString("  " + sectionHeaderStyle.Render(strings.Join(header, " ")))
	sb.WriteString("\n")

	rows := m.visibleRecords()
	switch {
	case m.list.loading && !m.list.ready:
		sb.WriteString("  " + m.spinner.View() + labelStyle.Render(" loading records..."))
	case m.list.err != nil:
		sb.WriteString("  " + errorStyle.Render("records: "+m.list.err.Error()))
	case len(rows) == 0:
		sb.WriteString("  " + dimStyle.Render("No matching requests"))
	default:
		for i, r := range rows {
			cells := []string{
				pad(formatTimestamp(r.Timestamp), recordColumns[0].width),
				pad(statusCell(r), recordColumns[1].width),
				pad(r.Model, recordColumns[2].width),
				pad(r.Provider, recordColumns[3].width),
				pad(formatCount(r.TotalTokens), recordColumns[4].width),
				pad(formatDurationMs(float64(r.DurationMs)), recordColumns[5].width),
				pad(fmt.Sprintf("%d", r.StatusCode), recordColumns[6].width),
				pad(r.APIKeyMasked, recordColumns[7].width),
			}
			line := strings.Join(cells, " ")
			if i == m.cursor {
				line = selectedRowStyle.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			sb.WriteString(line)
			if i < len(rows)-1 {
				sb.WriteString("\n")
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderPagination(len(rows)))
	return sb.String()
}

// renderPagination shows the server-side page position. With a status
// filter active the visible row count can undershoot the page size: the
// filter only prunes the fetched page, it never fetches replacements.
func (m Model) renderPagination(visible int) string {
	total := m.listTotal()
	totalPages := int((total + int64(m.pageSize) - 1) / int64(m.pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	line := fmt.Sprintf("  page %d/%d · %d total", m.page, totalPages, total)
	if m.statusFilter != core.StatusFilterAll {
		fetched := 0
		if m.list.data != nil {
			fetched = len(m.list.data.Records)
		}
		line += fmt.Sprintf(" · showing %d of %d on this page", visible, fetched)
	}
	if m.list.loading && m.list.ready {
		line += " · refreshing"
	}
	return dimStyle.Render(line)
}
