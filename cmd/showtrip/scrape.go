package showtrip

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rdvelde/showtrip/pkg/config"
	"github.com/rdvelde/showtrip/pkg/logger"
	"github.com/rdvelde/showtrip/pkg/scrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the theater listing into the show graph",
	Long: `Scrape renders the theater's listing site with a headless browser,
visits every show page with a bounded worker pool, and writes the collected
titles, durations and performance dates as a Turtle graph.`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{
		Level:   logger.ParseLevel(cfg.Log.Level),
		NoColor: cfg.Log.NoColor,
	})

	s := scrape.New(cfg.Scrape.StartURL, cfg.Scrape.Workers,
		time.Duration(cfg.Scrape.NavTimeoutSeconds)*time.Second, log)

	g, err := s.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("scrape: %w", err)
	}

	if err := g.Save(cfg.Scrape.OutputFile); err != nil {
		return err
	}
	log.Info("show graph written", "file", cfg.Scrape.OutputFile, "facts", g.Len())
	return nil
}
