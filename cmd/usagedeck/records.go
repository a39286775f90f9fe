package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/core"
)

type recordsFlags struct {
	period   string
	model    string
	provider string
	status   string
	page     int
	pageSize int
}

// newRecordsCommand lists usage records once and exits, for piping and quick
// checks without the full dashboard.
func newRecordsCommand(cfg *config.Config) *cobra.Command {
	var flags recordsFlags

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print one page of usage records as a table.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRecords(*cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.period, "period", string(core.PeriodLast7Days),
		"time period (today, yesterday, last7days, last30days, last90days)")
	cmd.Flags().StringVar(&flags.model, "model", "", "filter by model")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "filter by provider")
	cmd.Flags().StringVar(&flags.status, "status", "", "filter by derived status (streaming, standard, failed)")
	cmd.Flags().IntVar(&flags.page, "page", 1, "page number")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 20, "records per page")

	return cmd
}

func runRecords(cfg config.Config, flags recordsFlags) error {
	statusFilter := core.StatusFilterAll
	if flags.status != "" {
		statusFilter = core.StatusFilter(flags.status)
		if !lo.Contains(core.ValidStatusFilters, statusFilter) {
			return fmt.Errorf("unknown status %q", flags.status)
		}
	}

	client := api.NewClient(cfg.Endpoint, cfg.ManagementKey)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	start, end := core.ParsePeriod(flags.period).Range(time.Now())
	result, err := client.ListRecords(ctx, api.ListQuery{
		Page:      flags.page,
		PageSize:  flags.pageSize,
		SortBy:    "timestamp",
		SortOrder: "desc",
		Start:     &start,
		End:       end,
		Model:     flags.model,
		Provider:  flags.provider,
	})
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	// The status dimension is derived client-side; the page may come back
	// shorter than requested once filtered.
	rows := lo.Filter(result.Records, func(r api.Record, _ int) bool {
		return statusFilter.Matches(r.IsStreaming, r.Success, r.StatusCode)
	})

	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignRight},
			},
		}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"Time", "Status", "Model", "Provider", "Tokens", "Duration", "Code", "Key"})
	for _, r := range rows {
		table.Append([]string{
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			string(core.ClassifyStatus(r.IsStreaming, r.Success, r.StatusCode)),
			r.Model,
			r.Provider,
			fmt.Sprintf("%d", r.TotalTokens),
			fmt.Sprintf("%dms", r.DurationMs),
			fmt.Sprintf("%d", r.StatusCode),
			r.APIKeyMasked,
		})
	}
	table.Render()

	fmt.Print(buf.String())
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Printf("page %d, %d of %d records", flags.page, len(rows), result.Total)
		if statusFilter != core.StatusFilterAll {
			fmt.Printf(" (status=%s applied to fetched page)", statusFilter)
		}
		fmt.Println()
	}
	return nil
}
