package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/core"
)

const (
	// debounceQuiet is the quiet window after the last filter change before
	// the list reloads.
	debounceQuiet = 400 * time.Millisecond
	// autoRefreshEvery is the fallback interval between silent reloads when
	// the config does not set one.
	autoRefreshEvery = 5 * time.Second
	// connRetryEvery is how often the backend is re-probed while unreachable.
	connRetryEvery = 3 * time.Second
)

var pageSizes = []int{10, 20, 50, 100}

type Model struct {
	cfg    config.Config
	client *api.Client

	conn api.ConnState

	// Filter state. Any change debounces a list reload and resets to page 1.
	period         core.Period
	modelFilter    string
	providerFilter string
	statusFilter   core.StatusFilter

	page     int
	pageSize int

	list          section[*api.ListResult]
	heatmap       section[*api.Heatmap]
	modelStats    section[*api.ModelStatsResult]
	providerStats section[*api.ProviderStatsResult]
	summary       section[*api.UsageSummary]
	timeline      section[*api.Timeline]
	options       section[*api.FilterOptions]

	detailOpen    bool
	detailID      int64
	detailLoading bool
	detailRec     *api.Record
	detailView    viewport.Model

	autoRefresh bool
	refreshGen  int // invalidates in-flight auto-refresh timers
	debounceGen int // invalidates pending debounce timers

	cursor     int
	notice     string
	updateHint string

	width   int
	height  int
	spinner spinner.Model
}

func NewModel(cfg config.Config) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipglossAccent()),
	)
	return Model{
		cfg:          cfg,
		client:       api.NewClient(cfg.Endpoint, cfg.ManagementKey),
		conn:         api.Connecting,
		period:       core.PeriodLast7Days,
		statusFilter: core.StatusFilterAll,
		page:         1,
		pageSize:     cfg.List.PageSize,
		detailView:   viewport.New(0, 0),
		spinner:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.probeConnCmd(),
		m.checkUpdateCmd(),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detailView.Width = m.detailPanelWidth()
		m.detailView.Height = m.detailPanelHeight()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case connCheckedMsg:
		return m.handleConnChecked(msg)

	case connRetryMsg:
		if m.conn == api.Connected {
			return m, nil
		}
		return m, m.probeConnCmd()

	case listLoadedMsg:
		if !m.list.accept(msg.seq) {
			return m, nil
		}
		m.list.finish(msg.result, msg.err, msg.silent)
		m.clampCursor()
		return m, nil

	case heatmapLoadedMsg:
		if !m.heatmap.accept(msg.seq) {
			return m, nil
		}
		m.heatmap.finish(msg.result, msg.err, msg.silent)
		return m, nil

	case modelStatsLoadedMsg:
		if !m.modelStats.accept(msg.seq) {
			return m, nil
		}
		m.modelStats.finish(msg.result, msg.err, msg.silent)
		return m, nil

	case providerStatsLoadedMsg:
		if !m.providerStats.accept(msg.seq) {
			return m, nil
		}
		m.providerStats.finish(msg.result, msg.err, msg.silent)
		return m, nil

	case summaryLoadedMsg:
		if !m.summary.accept(msg.seq) {
			return m, nil
		}
		m.summary.finish(msg.result, msg.err, msg.silent)
		return m, nil

	case timelineLoadedMsg:
		if !m.timeline.accept(msg.seq) {
			return m, nil
		}
		m.timeline.finish(msg.result, msg.err, msg.silent)
		return m, nil

	case optionsLoadedMsg:
		if !m.options.accept(msg.seq) {
			return m, nil
		}
		m.options.finish(msg.result, msg.err, msg.silent)
		return m, nil

	case detailLoadedMsg:
		if !m.detailOpen || msg.id != m.detailID {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.detailOpen = false
			m.notice = "record load failed: " + msg.err.Error()
			return m, nil
		}
		m.detailRec = msg.record
		m.detailView.SetContent(m.renderDetailContent())
		m.detailView.GotoTop()
		return m, nil

	case debounceFiredMsg:
		if msg.gen != m.debounceGen {
			return m, nil
		}
		cmd := m.reloadList(false)
		return m, cmd

	case autoRefreshTickMsg:
		if !m.autoRefresh || msg.gen != m.refreshGen {
			return m, nil
		}
		cmd := tea.Batch(
			m.reloadList(true),
			m.reloadAnalytics(true),
			m.scheduleAutoRefresh(),
		)
		return m, cmd

	case updateCheckedMsg:
		if msg.err == nil && msg.result.UpdateAvailable {
			m.updateHint = "update available: " + msg.result.LatestVersion
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleConnChecked(msg connCheckedMsg) (Model, tea.Cmd) {
	prev := m.conn
	m.conn = msg.state
	if msg.state != api.Connected {
		return m, tea.Tick(connRetryEvery, func(time.Time) tea.Msg {
			return connRetryMsg{}
		})
	}
	if prev == api.Connected {
		return m, nil
	}
	// Connection came up: load everything.
	cmd := tea.Batch(
		m.reloadList(false),
		m.reloadAnalytics(false),
		m.reloadOptions(),
	)
	return m, cmd
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (Model, tea.Cmd) {
	endpointChanged := msg.Config.Endpoint != m.cfg.Endpoint ||
		msg.Config.ManagementKey != m.cfg.ManagementKey
	m.cfg = msg.Config
	if !endpointChanged {
		return m, nil
	}
	m.client = api.NewClient(m.cfg.Endpoint, m.cfg.ManagementKey)
	m.conn = api.Connecting
	return m, m.probeConnCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""

	if m.detailOpen {
		switch msg.String() {
		case "esc", "q", "enter":
			m.detailOpen = false
			m.detailRec = nil
			m.detailLoading = false
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.detailView, cmd = m.detailView.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visibleRecords())-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		if m.page > 1 {
			m.page--
			cmd := m.reloadList(false)
			return m, cmd
		}
		return m, nil

	case "right", "l":
		if int64(m.page*m.pageSize) < m.listTotal() {
			m.page++
			cmd := m.reloadList(false)
			return m, cmd
		}
		return m, nil

	case "[", "]":
		m.pageSize = nextPageSize(m.pageSize, msg.String() == "]")
		cmd := m.reloadList(false)
		return m, cmd

	case "p":
		m.period = core.NextPeriod(m.period)
		m.page = 1
		cmd := tea.Batch(
			m.startDebounce(),
			m.reloadAnalytics(false),
			m.reloadOptions(),
		)
		return m, cmd

	case "s":
		m.statusFilter = core.NextStatusFilter(m.statusFilter)
		m.page = 1
		cmd := m.startDebounce()
		return m, cmd

	case "m":
		m.modelFilter = nextOption(m.modelOptions(), m.modelFilter)
		m.page = 1
		cmd := m.startDebounce()
		return m, cmd

	case "o":
		m.providerFilter = nextOption(m.providerOptions(), m.providerFilter)
		m.page = 1
		cmd := m.startDebounce()
		return m, cmd

	case "a":
		m.autoRefresh = !m.autoRefresh
		m.refreshGen++
		if !m.autoRefresh {
			return m, nil
		}
		cmd := tea.Batch(
			m.reloadList(true),
			m.reloadAnalytics(true),
			m.scheduleAutoRefresh(),
		)
		return m, cmd

	case "r":
		cmd := tea.Batch(
			m.probeConnCmd(),
			m.reloadList(false),
			m.reloadAnalytics(false),
			m.reloadOptions(),
		)
		return m, cmd

	case "enter":
		rows := m.visibleRecords()
		if len(rows) == 0 || m.cursor >= len(rows) {
			return m, nil
		}
		rec := rows[m.cursor]
		m.detailOpen = true
		m.detailID = rec.ID
		m.detailLoading = true
		m.detailRec = nil
		return m, m.fetchDetailCmd(rec.ID)
	}

	return m, nil
}

// visibleRecords applies the client-side status post-filter to the current
// page. The filter never reaches the backend and never compensates with
// extra fetches, so a filtered page may hold fewer than pageSize rows.
func (m Model) visibleRecords() []api.Record {
	if m.list.data == nil {
		return nil
	}
	if m.statusFilter == core.StatusFilterAll {
		return m.list.data.Records
	}
	return lo.Filter(m.list.data.Records, func(r api.Record, _ int) bool {
		return m.statusFilter.Matches(r.IsStreaming, r.Success, r.StatusCode)
	})
}

func (m Model) listTotal() int64 {
	if m.list.data == nil {
		return 0
	}
	return m.list.data.Total
}

func (m *Model) clampCursor() {
	if n := len(m.visibleRecords()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) modelOptions() []string {
	if m.options.data == nil {
		return nil
	}
	return m.options.data.Models
}

func (m Model) providerOptions() []string {
	if m.options.data == nil {
		return nil
	}
	return m.options.data.Providers
}

// nextOption cycles through options with "" (no filter) as the first stop.
func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

func nextPageSize(current int, up bool) int {
	for i, s := range pageSizes {
		if s == current {
			if up && i+1 < len(pageSizes) {
				return pageSizes[i+1]
			}
			if !up && i > 0 {
				return pageSizes[i-1]
			}
			return current
		}
	}
	return pageSizes[1]
}
