package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/core"
)

func sampleHeatmap(t *testing.T, start string, days int) *api.Heatmap {
	t.Helper()
	first, err := time.Parse("2006-01-02", start)
	if err != nil {
		t.Fatal(err)
	}
	hm := &api.Heatmap{
		StartDate:   start,
		TotalDays:   days,
		MaxRequests: 100,
	}
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i)
		hm.Days = append(hm.Days, api.HeatmapDay{
			Date:     d.Format("2006-01-02"),
			Requests: int64(i % 101),
		})
	}
	hm.EndDate = first.AddDate(0, 0, days-1).Format("2006-01-02")
	return hm
}

func TestRenderHeatmapShape(t *testing.T) {
	out := renderHeatmap(sampleHeatmap(t, "2024-03-03", 28), 200)

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("heatmap rows = %d, want month labels plus 7 weekday rows", len(lines))
	}
	if !strings.Contains(out, "Mar") {
		t.Error("month header must name March")
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Fri") {
		t.Error("gutter must carry the Mon/Wed/Fri labels")
	}
}

func TestRenderHeatmapNarrowWindowKeepsRecentWeeks(t *testing.T) {
	hm := sampleHeatmap(t, "2024-01-01", 112) // Jan through Apr
	wide := renderHeatmap(hm, 200)
	if !strings.Contains(wide, "Jan") {
		t.Fatal("full window must include the earliest month")
	}

	// Room for roughly four week columns, so only the latest weeks stay.
	narrow := renderHeatmap(hm, heatGutterWidth+4*heatCellWidth)
	if strings.Contains(narrow, "Jan") {
		t.Error("truncated window must drop the oldest weeks")
	}
	if !strings.Contains(narrow, "Apr") {
		t.Error("truncated window must keep the most recent month")
	}
}

func TestRenderHeatmapEmpty(t *testing.T) {
	if out := renderHeatmap(nil, 80); !strings.Contains(out, "No activity") {
		t.Errorf("nil heatmap output = %q", out)
	}
	if out := renderHeatmap(&api.Heatmap{}, 80); !strings.Contains(out, "No activity") {
		t.Errorf("empty heatmap output = %q", out)
	}
}

func TestRenderTimelineAxis(t *testing.T) {
	tl := &api.Timeline{
		MaxRequests: 50,
		Points: []api.TimelinePoint{
			{Hour: "2024-03-01 00:00", Requests: 3},
			{Hour: "2024-03-01 01:00", Requests: 50},
			{Hour: "2024-03-01 02:00", Requests: 12},
		},
	}
	out := renderTimeline(tl, 48, 4)
	if !strings.Contains(out, "2024-03-01 00:00") || !strings.Contains(out, "2024-03-01 02:00") {
		t.Error("axis must show the first and last hour")
	}
}

func TestRenderHBarChartScaling(t *testing.T) {
	items := []chartItem{
		{Label: "gemini-2.5-pro", Value: 100, Color: colorBlue},
		{Label: "claude-sonnet-4", Value: 1, Color: colorTeal},
	}
	out := renderHBarChart(items, 20, 18)
	if strings.Count(out, "█") < 21 {
		t.Error("largest bar must fill the track, smallest must still show one cell")
	}
	if !strings.Contains(out, "gemini-2.5-pro") {
		t.Error("labels must be rendered")
	}
}

func TestViewStates(t *testing.T) {
	t.Run("before first WindowSizeMsg", func(t *testing.T) {
		m := NewModel(config.DefaultConfig())
		if out := m.View(); !strings.Contains(out, "initializing") {
			t.Errorf("zero-width view = %q", out)
		}
	})

	t.Run("disconnected", func(t *testing.T) {
		m := testModel()
		m.conn = api.Unavailable
		out := m.View()
		if !strings.Contains(out, "unreachable") {
			t.Error("disconnected view must say the backend is unreachable")
		}
		if strings.Contains(out, "Requests") {
			t.Error("disconnected view must not render the dashboard sections")
		}
	})

	t.Run("connected with data", func(t *testing.T) {
		m := testModel()
		m.summary.finish(&api.UsageSummary{TotalRequests: 1234, SuccessRate: 98.7}, nil, false)
		m.heatmap.finish(sampleHeatmap(t, "2024-03-03", 14), nil, false)
		m.list.finish(sampleList(1, api.Record{
			ID: 1, Timestamp: time.Now(), Model: "gpt-4o", Provider: "openai",
			Success: true, StatusCode: 200, TotalTokens: 512, DurationMs: 840,
			APIKeyMasked: "sk-...abcd",
		}), nil, false)
		out := m.View()
		for _, want := range []string{"usagedeck", "1.2K", "98.7%", "gpt-4o", "page 1/1"} {
			if !strings.Contains(out, want) {
				t.Errorf("view missing %q", want)
			}
		}
	})

	t.Run("detail drawer", func(t *testing.T) {
		m := testModel()
		m.detailOpen = true
		m.detailLoading = true
		out := m.View()
		if !strings.Contains(out, "loading request detail") {
			t.Error("open drawer without a record must show the loading state")
		}
	})
}

func TestFilterSummaryLine(t *testing.T) {
	m := testModel()
	m.period = core.PeriodLast30Days
	m.statusFilter = core.StatusFilterFailed
	m.modelFilter = "gpt-4o"

	got := m.filterSummary()
	for _, want := range []string{"30 Days", "model=gpt-4o", "status=Failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("filter summary %q missing %q", got, want)
		}
	}
}
