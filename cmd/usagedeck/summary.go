package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/usagedeck/usagedeck/internal/api"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/core"
)

func newSummaryCommand(cfg *config.Config) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print aggregate usage statistics for a period.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSummary(*cfg, period)
		},
	}

	cmd.Flags().StringVar(&period, "period", string(core.PeriodLast7Days),
		"time period (today, yesterday, last7days, last30days, last90days)")

	return cmd
}

func runSummary(cfg config.Config, period string) error {
	client := api.NewClient(cfg.Endpoint, cfg.ManagementKey)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	p := core.ParsePeriod(period)
	start, end := p.Range(time.Now())
	s, err := client.UsageSummary(ctx, &start, end)
	if err != nil {
		return fmt.Errorf("usage summary: %w", err)
	}

	fmt.Printf("Usage summary (%s)\n\n", p.Label())
	fmt.Printf("  %-16s %d\n", "Requests", s.TotalRequests)
	fmt.Printf("  %-16s %d\n", "Succeeded", s.SuccessRequests)
	fmt.Printf("  %-16s %d\n", "Failed", s.FailureRequests)
	fmt.Printf("  %-16s %.1f%%\n", "Success rate", s.SuccessRate)
	fmt.Printf("  %-16s %d\n", "Total tokens", s.TotalTokens)
	fmt.Printf("  %-16s %d\n", "Input tokens", s.InputTokens)
	fmt.Printf("  %-16s %d\n", "Output tokens", s.OutputTokens)
	fmt.Printf("  %-16s %.0fms\n", "Avg duration", s.AvgDuration)
	fmt.Printf("  %-16s %d\n", "Models", s.UniqueModels)
	fmt.Printf("  %-16s %d\n", "Providers", s.UniqueProviders)
	return nil
}
