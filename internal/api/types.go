package api

import "time"

// ConnState is the tri-state connection signal for the backend. Fetches are
// only issued while Connected.
type ConnState int

const (
	Connecting ConnState = iota
	Connected
	Unavailable
)

func (s ConnState) String() string {
	switch s {
	case Connected:
		return "connected"
	case Unavailable:
		return "unavailable"
	default:
		return "connecting"
	}
}

// Record is one proxied API request as stored by the backend. Header and
// body payloads are only populated by the single-record endpoint.
type Record struct {
	ID              int64             `json:"id"`
	RequestID       string            `json:"request_id"`
	Timestamp       time.Time         `json:"timestamp"`
	IP              string            `json:"ip"`
	APIKeyMasked    string            `json:"api_key_masked"`
	Model           string            `json:"model"`
	Provider        string            `json:"provider"`
	IsStreaming     bool              `json:"is_streaming"`
	InputTokens     int64             `json:"input_tokens"`
	OutputTokens    int64             `json:"output_tokens"`
	TotalTokens     int64             `json:"total_tokens"`
	CachedTokens    int64             `json:"cached_tokens"`
	ReasoningTokens int64             `json:"reasoning_tokens"`
	DurationMs      int64             `json:"duration_ms"`
	StatusCode      int               `json:"status_code"`
	Success         bool              `json:"success"`
	RequestURL      string            `json:"request_url"`
	RequestMethod   string            `json:"request_method"`
	RequestHeaders  map[string]string `json:"request_headers,omitempty"`
	RequestBody     string            `json:"request_body,omitempty"`
	ResponseHeaders map[string]string `json:"response_headers,omitempty"`
	ResponseBody    string            `json:"response_body,omitempty"`
}

// ListQuery selects a page of usage records. The derived status dimension is
// deliberately absent: the backend does not support it and it is applied
// client-side after the fetch.
type ListQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Start     *time.Time
	End       *time.Time
	Model     string
	Provider  string
}

type ListResult struct {
	Records  []Record `json:"records"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// HeatmapDay is one day of the activity heatmap feed. The backend emits a
// contiguous, gap-free day sequence.
type HeatmapDay struct {
	Date        string `json:"date"`
	Requests    int64  `json:"requests"`
	TotalTokens int64  `json:"total_tokens"`
}

type Heatmap struct {
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	TotalDays   int          `json:"total_days"`
	MaxRequests int64        `json:"max_requests"`
	Days        []HeatmapDay `json:"days"`
}

type ModelStats struct {
	Model        string  `json:"model"`
	Provider     string  `json:"provider"`
	RequestCount int64   `json:"request_count"`
	SuccessCount int64   `json:"success_count"`
	FailureCount int64   `json:"failure_count"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	TotalTokens  int64   `json:"total_tokens"`
	AvgDuration  float64 `json:"avg_duration_ms"`
}

type ModelStatsResult struct {
	Models      []ModelStats `json:"models"`
	TotalModels int          `json:"total_models"`
}

type ProviderStats struct {
	Provider     string  `json:"provider"`
	RequestCount int64   `json:"request_count"`
	SuccessCount int64   `json:"success_count"`
	FailureCount int64   `json:"failure_count"`
	TotalTokens  int64   `json:"total_tokens"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	ModelCount   int64   `json:"model_count"`
}

type ProviderStatsResult struct {
	Providers      []ProviderStats `json:"providers"`
	TotalProviders int             `json:"total_providers"`
}

type UsageSummary struct {
	TotalRequests   int64   `json:"total_requests"`
	SuccessRequests int64   `json:"success_requests"`
	FailureRequests int64   `json:"failure_requests"`
	SuccessRate     float64 `json:"success_rate"`
	TotalTokens     int64   `json:"total_tokens"`
	InputTokens     int64   `json:"input_tokens"`
	OutputTokens    int64   `json:"output_tokens"`
	AvgDuration     float64 `json:"avg_duration_ms"`
	UniqueModels    int64   `json:"unique_models"`
	UniqueProviders int64   `json:"unique_providers"`
}

// TimelinePoint is one hour of the request timeline. Hour is formatted as
// "2006-01-02 15:00".
type TimelinePoint struct {
	Hour     string `json:"hour"`
	Requests int64  `json:"requests"`
	Tokens   int64  `json:"tokens"`
}

type Timeline struct {
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	TotalHours  int             `json:"total_hours"`
	MaxRequests int64           `json:"max_requests"`
	Points      []TimelinePoint `json:"points"`
}

// FilterOptions lists the distinct model and provider values present in the
// selected range. It feeds the list-page filter choices.
type FilterOptions struct {
	Models    []string `json:"models"`
	Providers []string `json:"providers"`
}
