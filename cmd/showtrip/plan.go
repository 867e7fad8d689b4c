package showtrip

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	planner "github.com/rdvelde/showtrip"
	"github.com/rdvelde/showtrip/pkg/config"
	"github.com/rdvelde/showtrip/pkg/enrich"
	"github.com/rdvelde/showtrip/pkg/facts"
	"github.com/rdvelde/showtrip/pkg/logger"
	"github.com/rdvelde/showtrip/pkg/trains"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run an interactive trip planning session",
	Long: `Plan loads the show and performer graphs, lets you pick a show and a
performance date, and searches train trips around the show's time window.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{
		Level:   logger.ParseLevel(cfg.Log.Level),
		NoColor: cfg.Log.NoColor,
	})

	showGraph, err := facts.Load(cfg.Planner.ShowsGraph)
	if err != nil {
		return fmt.Errorf("load show graph: %w", err)
	}
	performerGraph, err := facts.Load(cfg.Planner.PerformersGraph)
	if err != nil {
		return fmt.Errorf("load performer graph: %w", err)
	}
	log.Info("graphs loaded",
		"shows", cfg.Planner.ShowsGraph, "show_facts", showGraph.Len(),
		"performers", cfg.Planner.PerformersGraph, "performer_facts", performerGraph.Len())

	trips := trains.NewClient(cfg.Trains.BaseURL, cfg.Trains.APIKey,
		time.Duration(cfg.Trains.TimeoutSeconds)*time.Second)
	fallback := enrich.NewFallback(cfg.Enrich.FallbackURL,
		time.Duration(cfg.Enrich.FallbackTimeoutSeconds)*time.Second)

	p := planner.NewPlanner(showGraph, performerGraph, trips, fallback, cfg.Planner, log)
	err = p.Run(cmd.Context(), os.Stdin, os.Stdout)
	if errors.Is(err, planner.ErrInvalidInput) {
		// Terminal by design: report, no retry loop.
		fmt.Fprintln(os.Stderr, "Invalid input:", err)
		os.Exit(1)
	}
	return err
}
