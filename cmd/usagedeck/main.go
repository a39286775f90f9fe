package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/usagedeck/usagedeck/internal/config"
	"github.com/usagedeck/usagedeck/internal/version"
)

func main() {
	if os.Getenv("USAGEDECK_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	root := cobra.Command{
		Use:     "usagedeck",
		Short:   "Usagedeck is a terminal dashboard for AI proxy usage records and analytics.",
		Version: version.String(),
		Run: func(_ *cobra.Command, _ []string) {
			runDashboard(cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "management API base URL")
	root.PersistentFlags().StringVar(&cfg.ManagementKey, "key", cfg.ManagementKey, "management API key")

	root.AddCommand(newRecordsCommand(&cfg))
	root.AddCommand(newSummaryCommand(&cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
