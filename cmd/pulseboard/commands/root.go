package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"pulseboard/internal/config"
	"pulseboard/internal/dashboard"
	"pulseboard/internal/logging"
	"pulseboard/internal/notion"
	"pulseboard/internal/server"
	"pulseboard/internal/snapshot"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose     bool
	openBrowser bool
	reportRange string

	cfg      *config.AppConfig
	composer *snapshot.Composer
)

var rootCmd = &cobra.Command{
	Use:   "pulseboard",
	Short: "Pulseboard serves management metrics derived from a Notion workspace",
	Long: `A reporting server that ingests project, task, and sprint records from
Notion databases, normalizes them into a snapshot, and serves derived
metrics (portfolio health, capacity load, sprint burn, weekly goals,
burn-up trend) over HTTP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		client := notion.NewClient(cfg.Notion)
		composer = snapshot.NewComposer(snapshot.NewRepository(client, cfg.Databases))

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Pulseboard starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(composer, cfg.Auth)

		if openBrowser {
			url := "http://" + strings.TrimPrefix(cfg.ListenAddr, ":")
			if strings.HasPrefix(cfg.ListenAddr, ":") {
				url = "http://localhost" + cfg.ListenAddr
			}
			go func() {
				time.Sleep(500 * time.Millisecond)
				if err := browser.OpenURL(url); err != nil {
					log.Warn().Err(err).Str("url", url).Msg("Failed to open browser")
				}
			}()
		}

		return srv.Start(cfg.ListenAddr)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compose one snapshot and print the aggregated panels as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := dashboard.Range(reportRange)
		if !rng.Valid() {
			return fmt.Errorf("unsupported range %q", reportRange)
		}

		snap, err := composer.Compose()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dashboard.BuildReport(snap, rng))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&openBrowser, "open", false, "open the dashboard in the default browser after startup")
	reportCmd.Flags().StringVar(&reportRange, "range", string(dashboard.DefaultRange), "burn-up lookback window (7d, 15d, 30d, 3m, 6m, 1y)")
	rootCmd.AddCommand(reportCmd)
}
