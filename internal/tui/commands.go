package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/appupdate"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/version"
)

const fetchTimeout = 10 * time.Second

type connCheckedMsg struct {
	state api.ConnState
}

type connRetryMsg struct{}

type listLoadedMsg struct {
	seq    int
	silent bool
	result *api.ListResult
	err    error
}

type heatmapLoadedMsg struct {
	seq    int
	silent bool
	result *api.Heatmap
	err    error
}

type modelStatsLoadedMsg struct {
	seq    int
	silent bool
	result *api.ModelStatsResult
	err    error
}

type providerStatsLoadedMsg struct {
	seq    int
	silent bool
	result *api.ProviderStatsResult
	err    error
}

type summaryLoadedMsg struct {
	seq    int
	silent bool
	result *api.UsageSummary
	err    error
}

type timelineLoadedMsg struct {
	seq    int
	silent bool
	result *api.Timeline
	err    error
}

type optionsLoadedMsg struct {
	seq    int
	silent bool
	result *api.FilterOptions
	err    error
}

type detailLoadedMsg struct {
	id     int64
	record *api.Record
	err    error
}

type debounceFiredMsg struct {
	gen int
}

type autoRefreshTickMsg struct {
	gen int
}

type updateCheckedMsg struct {
	result appupdate.Result
	err    error
}

// ConfigReloadedMsg delivers a hot-reloaded config file into the program.
type ConfigReloadedMsg struct {
	Config config.Config
}

func (m Model) probeConnCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			return connCheckedMsg{state: api.Unavailable}
		}
		return connCheckedMsg{state: api.Connected}
	}
}

func (m Model) checkUpdateCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := appupdate.Check(context.Background(), appupdate.CheckOptions{
			CurrentVersion: version.Version,
		})
		return updateCheckedMsg{result: result, err: err}
	}
}

// listQuery builds the backend query for the current page and filters. The
// list is always newest-first; the server ordering is authoritative.
func (m Model) listQuery() api.ListQuery {
	start, end := m.period.Range(time.Now())
	return api.ListQuery{
		Page:      m.page,
		PageSize:  m.pageSize,
		SortBy:    "timestamp",
		SortOrder: "desc",
		Start:     &start,
		End:       end,
		Model:     m.modelFilter,
		Provider:  m.providerFilter,
	}
}

// reloadList issues a list fetch unless the backend is unreachable. It bumps
// the list sequence so responses from superseded fetches are discarded.
func (m *Model) reloadList(silent bool) tea.Cmd {
	if m.conn != api.Connected {
		return nil
	}
	seq := m.list.begin(silent)
	client := m.client
	query := m.listQuery()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		result, err := client.ListRecords(ctx, query)
		return listLoadedMsg{seq: seq, silent: silent, result: result, err: err}
	}
}

// reloadAnalytics refreshes the five aggregate sections together. The
// heatmap always covers the fixed lookback window; the other four follow the
// period selector. Each fetch fails independently.
func (m *Model) reloadAnalytics(silent bool) tea.Cmd {
	if m.conn != api.Connected {
		return nil
	}
	client := m.client
	start, end := m.period.Range(time.Now())
	lookback := m.cfg.Heatmap.LookbackDays

	heatmapSeq := m.heatmap.begin(silent)
	modelSeq := m.modelStats.begin(silent)
	providerSeq := m.providerStats.begin(silent)
	summarySeq := m.summary.begin(silent)
	timelineSeq := m.timeline.begin(silent)

	return tea.Batch(
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			result, err := client.ActivityHeatmap(ctx, lookback)
			return heatmapLoadedMsg{seq: heatmapSeq, silent: silent, result: result, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			result, err := client.ModelStats(ctx, &start, end)
			return modelStatsLoadedMsg{seq: modelSeq, silent: silent, result: result, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			result, err := client.ProviderStats(ctx, &start, end)
			return providerStatsLoadedMsg{seq: providerSeq, silent: silent, result: result, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			result, err := client.UsageSummary(ctx, &start, end)
			return summaryLoadedMsg{seq: summarySeq, silent: silent, result: result, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			result, err := client.RequestTimeline(ctx, &start, end)
			return timelineLoadedMsg{seq: timelineSeq, silent: silent, result: result, err: err}
		},
	)
}

// reloadOptions refreshes the model/provider filter choices. The choices
// depend only on the period range, never on the filters themselves.
func (m *Model) reloadOptions() tea.Cmd {
	if m.conn != api.Connected {
		return nil
	}
	seq := m.options.begin(false)
	client := m.client
	start, end := m.period.Range(time.Now())
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		result, err := client.FilterOptions(ctx, &start, end)
		return optionsLoadedMsg{seq: seq, silent: false, result: result, err: err}
	}
}

func (m Model) fetchDetailCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		record, err := client.GetRecord(ctx, id)
		return detailLoadedMsg{id: id, record: record, err: err}
	}
}

// startDebounce restarts the quiet window before a filtered list reload.
// Back-to-back filter changes coalesce: each restart invalidates the
// previous timer, so only the last one fires a reload.
func (m *Model) startDebounce() tea.Cmd {
	m.debounceGen++
	gen := m.debounceGen
	return tea.Tick(debounceQuiet, func(time.Time) tea.Msg {
		return debounceFiredMsg{gen: gen}
	})
}

// scheduleAutoRefresh arms the next silent reload tick. Toggling
// auto-refresh bumps refreshGen, so a tick armed before the toggle is dead
// on arrival.
func (m *Model) scheduleAutoRefresh() tea.Cmd {
	gen := m.refreshGen
	interval := time.Duration(m.cfg.RefreshIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = autoRefreshEvery
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autoRefreshTickMsg{gen: gen}
	})
}
